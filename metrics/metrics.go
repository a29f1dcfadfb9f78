package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Room lifecycle
	RoomsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "burnroom_rooms_created_total",
			Help: "Total rooms created",
		},
	)

	RoomsClosed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burnroom_rooms_closed_total",
			Help: "Total rooms removed from the registry",
		},
		[]string{"reason"}, // "closed" or "expired"
	)

	RoomsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "burnroom_rooms_active",
			Help: "Rooms currently held in the registry",
		},
	)

	JoinsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burnroom_joins_rejected_total",
			Help: "Join attempts rejected",
		},
		[]string{"reason"},
	)

	// Message routing
	MessagesRouted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burnroom_messages_routed_total",
			Help: "Messages recorded and fanned out",
		},
		[]string{"kind"},
	)

	MessagesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burnroom_messages_rejected_total",
			Help: "Inbound events rejected before recording",
		},
		[]string{"reason"},
	)

	// Background duties
	SweepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "burnroom_sweep_duration_seconds",
			Help:    "Duration of registry sweeps",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"sweep"}, // "expiry" or "presence"
	)

	ScheduledSends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burnroom_scheduled_sends_total",
			Help: "Scheduled message outcomes",
		},
		[]string{"outcome"}, // "scheduled", "delivered", "dropped"
	)
)
