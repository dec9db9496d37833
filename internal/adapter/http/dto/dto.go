package dto

import (
	"time"

	"kyc-webhook-simulator/internal/core/domain"
)

// ScheduleSimulationRequest is the request body for scheduling a simulated
// webhook delivery. Delays are given in seconds; equal min and max mean an
// exact delay, both zero means the configured default range.
type ScheduleSimulationRequest struct {
	Provider          string  `json:"provider" binding:"required,safe_id"`
	Outcome           string  `json:"outcome" binding:"required,safe_id"`
	CheckID           string  `json:"check_id,omitempty" binding:"omitempty,uuid"`
	UserID            string  `json:"user_id,omitempty" binding:"omitempty,uuid"`
	ProviderReference string  `json:"provider_reference,omitempty" binding:"omitempty,max=100,safe_id"`
	TargetURL         string  `json:"target_url,omitempty" binding:"omitempty,safe_url"`
	DelayMinSeconds   float64 `json:"delay_min_seconds,omitempty" binding:"omitempty,gte=0"`
	DelayMaxSeconds   float64 `json:"delay_max_seconds,omitempty" binding:"omitempty,gte=0"`
}

// ScheduleSimulationResponse acknowledges a scheduled delivery.
type ScheduleSimulationResponse struct {
	ScheduleID string `json:"schedule_id"`
	Status     string `json:"status"`
	FireAt     string `json:"fire_at"`
}

// DeliveryResponse is the read-side view of a scheduled delivery.
type DeliveryResponse struct {
	ScheduleID        string  `json:"schedule_id"`
	CheckID           string  `json:"check_id"`
	UserID            string  `json:"user_id"`
	Provider          string  `json:"provider"`
	ProviderReference string  `json:"provider_reference"`
	Outcome           string  `json:"outcome"`
	TargetURL         string  `json:"target_url"`
	Status            string  `json:"status"`
	Attempts          int     `json:"attempts"`
	CreatedAt         string  `json:"created_at"`
	FireAt            string  `json:"fire_at"`
	CompletedAt       *string `json:"completed_at,omitempty"`
}

// DispatchResultResponse reports a synchronous send-now dispatch.
type DispatchResultResponse struct {
	DeliveryID string  `json:"delivery_id"`
	Success    bool    `json:"success"`
	StatusCode *int    `json:"status_code,omitempty"`
	Attempts   int     `json:"attempts"`
	Error      *string `json:"error,omitempty"`
	DurationMs float64 `json:"duration_ms"`
}

// InboundEventResponse is the audit view of a received webhook.
type InboundEventResponse struct {
	ID                string  `json:"id"`
	Provider          string  `json:"provider"`
	ProviderEventID   *string `json:"provider_event_id,omitempty"`
	EventType         string  `json:"event_type"`
	IdempotencyKey    string  `json:"idempotency_key"`
	PayloadHash       string  `json:"payload_hash"`
	SignatureVerified bool    `json:"signature_verified"`
	CheckID           *string `json:"check_id,omitempty"`
	Status            string  `json:"status"`
	Reason            string  `json:"reason,omitempty"`
	ReceivedAt        string  `json:"received_at"`
}

// ToDeliveryResponse converts a domain delivery to its DTO.
func ToDeliveryResponse(d domain.ScheduledDelivery) DeliveryResponse {
	resp := DeliveryResponse{
		ScheduleID:        d.ID,
		CheckID:           d.CheckID.String(),
		UserID:            d.UserID.String(),
		Provider:          string(d.Provider),
		ProviderReference: d.ProviderReference,
		Outcome:           string(d.Outcome),
		TargetURL:         d.TargetURL,
		Status:            string(d.Status),
		Attempts:          d.Attempts,
		CreatedAt:         d.CreatedAt.UTC().Format(time.RFC3339),
		FireAt:            d.FireAt.UTC().Format(time.RFC3339),
	}
	if d.CompletedAt != nil {
		s := d.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}

// ToDispatchResultResponse converts a dispatch result to its DTO.
func ToDispatchResultResponse(r *domain.DeliveryResult) DispatchResultResponse {
	return DispatchResultResponse{
		DeliveryID: r.DeliveryID,
		Success:    r.Success,
		StatusCode: r.StatusCode,
		Attempts:   r.Attempts,
		Error:      r.Error,
		DurationMs: float64(r.Duration.Microseconds()) / 1000.0,
	}
}

// ToInboundEventResponse converts an inbound event record to its DTO.
func ToInboundEventResponse(e domain.InboundEvent) InboundEventResponse {
	resp := InboundEventResponse{
		ID:                e.ID.String(),
		Provider:          string(e.Provider),
		ProviderEventID:   e.ProviderEventID,
		EventType:         string(e.EventType),
		IdempotencyKey:    e.IdempotencyKey,
		PayloadHash:       e.PayloadHash,
		SignatureVerified: e.SignatureVerified,
		Status:            string(e.Status),
		Reason:            e.Reason,
		ReceivedAt:        e.ReceivedAt.UTC().Format(time.RFC3339),
	}
	if e.CheckID != nil {
		s := e.CheckID.String()
		resp.CheckID = &s
	}
	return resp
}
