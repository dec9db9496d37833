package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus represents the lifecycle state of a scheduled delivery.
type DeliveryStatus string

const (
	DeliveryStatusScheduled DeliveryStatus = "scheduled"
	DeliveryStatusSending   DeliveryStatus = "sending"
	DeliveryStatusCompleted DeliveryStatus = "completed"
	DeliveryStatusFailed    DeliveryStatus = "failed"
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

// IsTerminal reports whether the delivery can no longer change state.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusCompleted || s == DeliveryStatusFailed || s == DeliveryStatusCancelled
}

// ScheduledDelivery is a future (or in-flight) webhook send.
type ScheduledDelivery struct {
	ID                string         `json:"schedule_id"`
	CheckID           uuid.UUID      `json:"check_id"`
	UserID            uuid.UUID      `json:"user_id"`
	Provider          Provider       `json:"provider"`
	ProviderReference string         `json:"provider_reference"`
	Outcome           Outcome        `json:"outcome"`
	TargetURL         string         `json:"target_url"`
	Status            DeliveryStatus `json:"status"`
	Attempts          int            `json:"attempts"`
	CreatedAt         time.Time      `json:"created_at"`
	FireAt            time.Time      `json:"fire_at"`
	CompletedAt       *time.Time     `json:"completed_at,omitempty"`
}

// DeliveryAttempt is one concrete send. Immutable once recorded.
type DeliveryAttempt struct {
	DeliveryID string        `json:"delivery_id"`
	Attempt    int           `json:"attempt"`
	Provider   Provider      `json:"provider"`
	TargetURL  string        `json:"target_url"`
	Signature  string        `json:"signature"`
	StatusCode *int          `json:"status_code,omitempty"`
	Latency    time.Duration `json:"latency"`
	Success    bool          `json:"success"`
	Error      *string       `json:"error,omitempty"`
	SentAt     time.Time     `json:"sent_at"`
}

// DeliveryResult summarises a finished dispatch (all retries included).
type DeliveryResult struct {
	DeliveryID string        `json:"delivery_id"`
	Success    bool          `json:"success"`
	StatusCode *int          `json:"status_code,omitempty"`
	Attempts   int           `json:"attempts"`
	Error      *string       `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// ProviderDeliveryStats aggregates attempts for a single provider.
type ProviderDeliveryStats struct {
	Total        int64   `json:"total"`
	Successful   int64   `json:"successful"`
	Failed       int64   `json:"failed"`
	SuccessRate  float64 `json:"success_rate"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
}

// DeliveryStatistics is a read-side aggregate over recorded attempts. It is
// derived, never a source of truth.
type DeliveryStatistics struct {
	TotalDeliveries      int64                              `json:"total_deliveries"`
	SuccessfulDeliveries int64                              `json:"successful_deliveries"`
	FailedDeliveries     int64                              `json:"failed_deliveries"`
	SuccessRate          float64                            `json:"success_rate"`
	AvgLatencyMs         float64                            `json:"average_delivery_time_ms"`
	ProviderStats        map[Provider]ProviderDeliveryStats `json:"provider_stats"`
	RecentDeliveries     []DeliveryAttempt                  `json:"recent_deliveries"`
}
