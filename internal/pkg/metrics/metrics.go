package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// PacketsAccepted counts records that passed validation end to end.
	PacketsAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "groundlink_packets_accepted_total",
			Help: "Total number of telemetry records accepted.",
		},
	)

	// PacketsRejected counts discarded lines by rejection reason.
	PacketsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groundlink_packets_rejected_total",
			Help: "Total number of telemetry lines rejected, by reason.",
		},
		[]string{"reason"},
	)

	// PacketsLost accumulates the estimated loss from sequence gaps.
	PacketsLost = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "groundlink_packets_lost_total",
			Help: "Estimated number of packets lost, from sequence gaps.",
		},
	)

	// LastSequence exposes the most recently accepted packet count.
	LastSequence = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "groundlink_last_sequence",
			Help: "Last accepted packet-count value.",
		},
	)

	// LinkUp is 1 while telemetry arrives within the liveness window.
	LinkUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "groundlink_link_up",
			Help: "Whether the downlink is live (1) or stale (0).",
		},
	)

	// CommandsSent counts uplink frames by outcome.
	CommandsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groundlink_commands_sent_total",
			Help: "Total number of uplink command frames, by outcome.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(PacketsAccepted)
	prometheus.MustRegister(PacketsRejected)
	prometheus.MustRegister(PacketsLost)
	prometheus.MustRegister(LastSequence)
	prometheus.MustRegister(LinkUp)
	prometheus.MustRegister(CommandsSent)
}
