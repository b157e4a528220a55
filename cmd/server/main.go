package main

import (
	"log"

	"github.com/bikefight/bikefight.github.io/internal/config"
	"github.com/bikefight/bikefight.github.io/internal/database"
	"github.com/bikefight/bikefight.github.io/internal/handlers"
	"github.com/bikefight/bikefight.github.io/internal/middleware"
	"github.com/bikefight/bikefight.github.io/internal/services"
	"github.com/bikefight/bikefight.github.io/internal/store"
	"github.com/bikefight/bikefight.github.io/internal/ws"

	_ "github.com/bikefight/bikefight.github.io/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Bikefight API
// @version         1.0
// @description     Realtime presence and photo-challenge backend
// @BasePath        /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	cfg := config.Load()

	var presence store.PresenceStore
	var challenges store.ChallengeStore
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Println("using in-memory store, state is lost on restart")
		presence = store.NewMemoryPresenceStore()
		challenges = store.NewMemoryChallengeStore()
	} else {
		db := database.Connect(cfg)
		database.AutoMigrate(db)
		presence = store.NewGormPresenceStore(db)
		challenges = store.NewGormChallengeStore(db)
	}

	hub := ws.NewHub()
	scoringService := services.NewScoringService()

	presenceHandler := handlers.NewPresenceHandler(presence, hub)
	challengeHandler := handlers.NewChallengeHandler(challenges, presence, scoringService, hub)
	wsHandler := handlers.NewWSHandler(hub, presence)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws", wsHandler.HandleWebSocket)

	api := r.Group("/api")
	{
		api.GET("/users", presenceHandler.ListUsers)
		api.POST("/update", presenceHandler.UpdateLocation)
		api.POST("/challenge", challengeHandler.CreateChallenge)
		api.POST("/response", challengeHandler.RespondChallenge)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
