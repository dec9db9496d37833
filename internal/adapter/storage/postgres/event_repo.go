package postgres

import (
	"context"
	"errors"
	"fmt"

	"kyc-webhook-simulator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Create inserts an inbound event record.
func (r *EventRepo) Create(ctx context.Context, e *domain.InboundEvent) error {
	query := `INSERT INTO inbound_events (id, provider, provider_event_id, event_type, idempotency_key,
		payload_hash, signature, signature_verified, check_id, status, reason, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Provider, e.ProviderEventID, e.EventType, e.IdempotencyKey,
		e.PayloadHash, e.Signature, e.SignatureVerified, e.CheckID, e.Status,
		e.Reason, e.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inbound event: %w", err)
	}
	return nil
}

// GetByIdempotencyKey fetches the earliest settled event recorded under a
// key. Rejected records are excluded: they do not count as prior processing.
func (r *EventRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.InboundEvent, error) {
	query := `SELECT id, provider, provider_event_id, event_type, idempotency_key, payload_hash,
		signature, signature_verified, check_id, status, reason, received_at
		FROM inbound_events WHERE idempotency_key = $1 AND status <> 'rejected'
		ORDER BY received_at ASC LIMIT 1`

	return r.scanEvent(r.pool.QueryRow(ctx, query, key))
}

// ListByProvider fetches recent events for a provider, newest first.
func (r *EventRepo) ListByProvider(ctx context.Context, provider domain.Provider, limit int) ([]domain.InboundEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, provider, provider_event_id, event_type, idempotency_key, payload_hash,
		signature, signature_verified, check_id, status, reason, received_at
		FROM inbound_events WHERE provider = $1 ORDER BY received_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, provider, limit)
	if err != nil {
		return nil, fmt.Errorf("list inbound events: %w", err)
	}
	defer rows.Close()

	var events []domain.InboundEvent
	for rows.Next() {
		e := domain.InboundEvent{}
		err := rows.Scan(
			&e.ID, &e.Provider, &e.ProviderEventID, &e.EventType, &e.IdempotencyKey,
			&e.PayloadHash, &e.Signature, &e.SignatureVerified, &e.CheckID, &e.Status,
			&e.Reason, &e.ReceivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan inbound event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inbound event rows: %w", err)
	}
	return events, nil
}

func (r *EventRepo) scanEvent(row pgx.Row) (*domain.InboundEvent, error) {
	e := &domain.InboundEvent{}
	err := row.Scan(
		&e.ID, &e.Provider, &e.ProviderEventID, &e.EventType, &e.IdempotencyKey,
		&e.PayloadHash, &e.Signature, &e.SignatureVerified, &e.CheckID, &e.Status,
		&e.Reason, &e.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan inbound event: %w", err)
	}
	return e, nil
}
