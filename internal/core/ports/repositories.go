package ports

import (
	"context"
	"time"

	"kyc-webhook-simulator/internal/core/domain"

	"github.com/google/uuid"
)

// CheckRepository defines persistence operations for verification checks.
// The datastore is opaque to the webhook engine; this is its full surface.
type CheckRepository interface {
	Create(ctx context.Context, check *domain.VerificationCheck) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VerificationCheck, error)
	GetByProviderReference(ctx context.Context, provider domain.Provider, reference string) (*domain.VerificationCheck, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CheckStatus, completedAt *time.Time) error
}

// EventRepository records inbound webhook events for audit.
type EventRepository interface {
	Create(ctx context.Context, event *domain.InboundEvent) error
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.InboundEvent, error)
	ListByProvider(ctx context.Context, provider domain.Provider, limit int) ([]domain.InboundEvent, error)
}

// IdempotencyStore tracks which idempotency keys have completed processing.
// Seen and MarkProcessed are separate so a failure mid-processing does not
// poison the key; the processor serialises same-key callers itself.
type IdempotencyStore interface {
	Seen(ctx context.Context, key string) (bool, error)
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) error
}
