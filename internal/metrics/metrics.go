package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bikefight_ws_connections_active",
		Help: "Live websocket connections registered with the hub.",
	})

	BroadcastErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bikefight_ws_broadcast_errors_total",
		Help: "Websocket writes that failed and dropped the connection.",
	})

	PresenceUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bikefight_presence_updates_total",
		Help: "Accepted location updates.",
	})

	ChallengesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bikefight_challenges_created_total",
		Help: "Challenges created.",
	})

	ChallengesResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bikefight_challenges_resolved_total",
		Help: "Challenges resolved, by terminal status.",
	}, []string{"status"})
)
