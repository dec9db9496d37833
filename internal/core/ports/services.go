package ports

import (
	"context"
	"net/http"
	"time"

	"kyc-webhook-simulator/internal/core/domain"

	"github.com/google/uuid"
)

// SignatureService computes and verifies provider-specific HMAC signatures.
type SignatureService interface {
	// Sign computes the signature for payload in the provider's scheme,
	// including the configured prefix. The canonical string is
	// "<timestamp>.<payload>" when timestamp is non-zero, the raw payload
	// otherwise.
	Sign(payload []byte, provider domain.Provider, timestamp int64, secret string) (string, error)
	// Verify checks a claimed signature. It fails closed: unknown provider,
	// malformed signature or any internal error yields false. Comparison is
	// constant-time.
	Verify(payload []byte, signature string, provider domain.Provider, timestamp int64, secret string) bool
	// ValidateTimestamp rejects timestamps outside the provider's tolerance
	// window. A zero tolerance means the provider default.
	ValidateTimestamp(timestamp int64, provider domain.Provider, tolerance time.Duration) error
	// ExtractSignature returns the value of the provider's signature header,
	// or "" if absent.
	ExtractSignature(h http.Header, provider domain.Provider) string
	// ExtractTimestamp parses the provider's timestamp header. ok is false
	// when the header is absent or unparseable.
	ExtractTimestamp(h http.Header, provider domain.Provider) (ts int64, ok bool)
}

// SubjectRefs identifies the verification subject a webhook refers to.
type SubjectRefs struct {
	CheckID           uuid.UUID
	UserID            uuid.UUID
	ProviderReference string
}

// PayloadGenerator produces provider-shaped webhook bodies.
type PayloadGenerator interface {
	// Generate builds a payload for the requested outcome. Template choice is
	// weighted-random; the outcome itself is never randomised.
	Generate(provider domain.Provider, outcome domain.Outcome, refs SubjectRefs) (map[string]interface{}, error)
}

// DeliveryTracker records delivery attempts and serves read-side aggregates.
type DeliveryTracker interface {
	Record(attempt domain.DeliveryAttempt)
	// Stats reflects every attempt whose Record call returned before Stats
	// was invoked. A nil provider means all providers.
	Stats(provider *domain.Provider) domain.DeliveryStatistics
	Recent(n int) []domain.DeliveryAttempt
	// Clear irreversibly resets tracked history. Test/demo tooling only.
	Clear()
}

// DeliveryDispatcher performs the outbound call with retry/backoff.
type DeliveryDispatcher interface {
	// Dispatch sends the delivery's signed payload, retrying per policy.
	// It never panics or returns an error: every outcome, including
	// transport failures, is captured in the result and recorded as
	// DeliveryAttempts on the tracker.
	Dispatch(ctx context.Context, delivery *domain.ScheduledDelivery) *domain.DeliveryResult
}

// ScheduleRequest describes a webhook to be simulated.
type ScheduleRequest struct {
	CheckID           uuid.UUID
	UserID            uuid.UUID
	Provider          domain.Provider
	ProviderReference string
	Outcome           domain.Outcome
	// TargetURL overrides the configured base URL when non-empty.
	TargetURL string
	// DelayMin/DelayMax bound the fire delay. Equal values mean an exact
	// delay; otherwise a uniform-random delay in [DelayMin, DelayMax] is
	// drawn once at schedule time.
	DelayMin time.Duration
	DelayMax time.Duration
}

// WebhookScheduler holds pending deliveries and fires them after their delay.
type WebhookScheduler interface {
	Schedule(ctx context.Context, req ScheduleRequest) (string, error)
	// SendImmediately bypasses scheduling and dispatches synchronously. The
	// dispatch is still tracked like any scheduled one.
	SendImmediately(ctx context.Context, req ScheduleRequest) (*domain.DeliveryResult, error)
	// Cancel is legal only while the delivery is still scheduled; it returns
	// false for fired, finished or unknown deliveries. An in-flight dispatch
	// is never preempted: it completes and records its result even if Cancel
	// raced with the fire.
	Cancel(id string) bool
	Get(id string) (*domain.ScheduledDelivery, bool)
	// List returns a snapshot; a nil status means all deliveries.
	List(status *domain.DeliveryStatus) []domain.ScheduledDelivery
	// Close stops pending timers and waits for in-flight dispatches.
	Close()
}

// Processing result reasons.
const (
	ReasonProcessed        = "processed"
	ReasonDuplicate        = "duplicate"
	ReasonAlreadyTerminal  = "already_terminal"
	ReasonInvalidSignature = "invalid_signature"
	ReasonMalformedPayload = "malformed_payload"
	ReasonUnknownProvider  = "unknown_provider"
	ReasonUnknownCheck     = "unknown_check"
	// ReasonStoreFailure means the event was valid but the transition could
	// not be persisted; the provider should retry.
	ReasonStoreFailure = "datastore_error"
)

// InboundRequest carries a received callback into the processor.
type InboundRequest struct {
	Provider     domain.Provider
	Payload      []byte
	Signature    string
	Timestamp    int64
	HasTimestamp bool
	ReceivedAt   time.Time
}

// ProcessingResult is the structured outcome of inbound processing. It is
// returned to the transport layer; processing never raises past it.
type ProcessingResult struct {
	Accepted      bool               `json:"accepted"`
	Reason        string             `json:"reason"`
	IdempotentHit bool               `json:"idempotent_hit"`
	EventID       uuid.UUID          `json:"event_id,omitempty"`
	CheckStatus   domain.CheckStatus `json:"check_status,omitempty"`
}

// InboundProcessor verifies, deduplicates and applies inbound callbacks.
type InboundProcessor interface {
	Process(ctx context.Context, req InboundRequest) ProcessingResult
}

// AuditService records security-relevant events. Implementations must log
// payload hashes only, never raw payload bytes.
type AuditService interface {
	SecurityEvent(provider domain.Provider, reason string, payloadHash string)
	ProcessingEvent(provider domain.Provider, result ProcessingResult, payloadHash string)
}
