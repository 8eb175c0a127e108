package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeAccepted     = "accepted"
	outcomeApplied      = "applied"
	outcomeNoop         = "noop"
	outcomePending      = "pending"
	outcomeBadSignature = "bad_signature"
	outcomeStale        = "stale"
	outcomeUnknown      = "unknown_order"
	outcomeRejected     = "rejected"
	outcomeError        = "error"

	sourceVerify = "verify"
	sourceManual = "manual"
)

var (
	paymentInitiations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "payments",
			Name:      "initiations_total",
			Help:      "Total number of payment initiations by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	webhooksReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "payments",
			Name:      "webhooks_total",
			Help:      "Total number of provider webhooks by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	confirmations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "payments",
			Name:      "confirmations_total",
			Help:      "Total number of verify and manual confirmations by outcome",
		},
		[]string{"source", "outcome"},
	)
)

var (
	notificationsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "notifications",
			Name:      "sent_total",
			Help:      "Total number of order confirmations sent",
		},
	)

	notificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "notifications",
			Name:      "failed_total",
			Help:      "Total number of failed order confirmation attempts",
		},
	)

	notificationsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "notifications",
			Name:      "dlq_total",
			Help:      "Total number of notifications written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "notifications",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	notificationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "notifications",
			Name:      "processing_duration_seconds",
			Help:      "Histogram of notification processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		paymentInitiations,
		webhooksReceived,
		confirmations,

		notificationsSent,
		notificationsFailed,
		notificationsDLQ,
		commitErrors,
		notificationDuration,
	)
}
