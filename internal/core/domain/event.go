package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// EventProcessingStatus tracks the audit state of an inbound event.
type EventProcessingStatus string

const (
	EventStatusProcessed EventProcessingStatus = "processed"
	EventStatusDuplicate EventProcessingStatus = "duplicate"
	EventStatusTerminal  EventProcessingStatus = "terminal_noop"
	EventStatusRejected  EventProcessingStatus = "rejected"
)

// InboundEvent is a received provider callback, recorded for audit. The raw
// payload is stored only as a hash: webhook bodies carry PII.
type InboundEvent struct {
	ID                uuid.UUID             `json:"id"`
	Provider          Provider              `json:"provider"`
	ProviderEventID   *string               `json:"provider_event_id,omitempty"`
	EventType         EventType             `json:"event_type"`
	IdempotencyKey    string                `json:"idempotency_key"`
	PayloadHash       string                `json:"payload_hash"`
	Signature         string                `json:"signature"`
	SignatureVerified bool                  `json:"signature_verified"`
	CheckID           *uuid.UUID            `json:"check_id,omitempty"`
	Status            EventProcessingStatus `json:"status"`
	Reason            string                `json:"reason,omitempty"`
	ReceivedAt        time.Time             `json:"received_at"`
}

// BuildIdempotencyKey constructs the fallback key for providers without a
// unique event id. Format: "provider:reference:outcome".
func BuildIdempotencyKey(provider Provider, reference string, outcome Outcome) string {
	return string(provider) + ":" + reference + ":" + string(outcome)
}

// BuildEventIdempotencyKey constructs the key for providers that supply a
// unique event identifier.
func BuildEventIdempotencyKey(provider Provider, eventID string) string {
	return string(provider) + ":event:" + eventID
}

// HashPayload returns the hex SHA-256 of a raw payload, the only form in
// which payload bytes appear in logs or audit records.
func HashPayload(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
