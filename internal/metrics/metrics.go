package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring simulation and inbound processing
var (
	WebhooksScheduledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhooks_scheduled_total",
			Help: "Total number of webhook deliveries scheduled",
		},
		[]string{"provider"},
	)

	WebhookDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_deliveries_total",
			Help: "Total number of completed webhook deliveries by result",
		},
		[]string{"provider", "result"},
	)

	WebhookDeliveryAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_delivery_attempts_total",
			Help: "Total number of individual delivery attempts including retries",
		},
		[]string{"provider"},
	)

	WebhookDeliveryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "webhook_delivery_duration_seconds",
			Help:    "End-to-end duration of a webhook delivery including retries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	InboundEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inbound_events_total",
			Help: "Total number of inbound webhook events by processing reason",
		},
		[]string{"provider", "reason"},
	)

	InboundProcessingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inbound_processing_duration_seconds",
			Help:    "Duration of inbound webhook processing",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	SignatureFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signature_failures_total",
			Help: "Total number of rejected inbound signatures",
		},
		[]string{"provider"},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(WebhooksScheduledTotal)
	prometheus.MustRegister(WebhookDeliveriesTotal)
	prometheus.MustRegister(WebhookDeliveryAttemptsTotal)
	prometheus.MustRegister(WebhookDeliveryDuration)
	prometheus.MustRegister(InboundEventsTotal)
	prometheus.MustRegister(InboundProcessingDuration)
	prometheus.MustRegister(SignatureFailuresTotal)
}
