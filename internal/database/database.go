package database

import (
	"fmt"
	"log"

	"github.com/bikefight/bikefight.github.io/internal/config"
	"github.com/bikefight/bikefight.github.io/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

// AutoMigrate keeps the schema additive-only so old and new server versions
// can share a database during a rolling upgrade. New columns arrive with
// defaults before gorm's own migration runs.
func AutoMigrate(db *gorm.DB) {
	// Deployments that predate the scoring game lack the points column.
	db.Exec(`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'participants')
		   AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'participants' AND column_name = 'points')
		THEN
			ALTER TABLE participants ADD COLUMN points integer NOT NULL DEFAULT 0;
		END IF;
	END $$;`)

	// Rating columns were added after the first challenge rollout.
	db.Exec(`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'challenges')
		   AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'challenges' AND column_name = 'beauty')
		THEN
			ALTER TABLE challenges ADD COLUMN beauty integer DEFAULT 0;
			ALTER TABLE challenges ADD COLUMN creativity integer DEFAULT 0;
			ALTER TABLE challenges ADD COLUMN creepiness integer DEFAULT 0;
		END IF;
	END $$;`)

	err := db.AutoMigrate(
		&models.Participant{},
		&models.Challenge{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}
