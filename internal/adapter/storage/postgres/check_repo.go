package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kyc-webhook-simulator/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CheckRepo implements ports.CheckRepository.
type CheckRepo struct {
	pool Pool
}

// NewCheckRepo creates a new CheckRepo.
func NewCheckRepo(pool Pool) *CheckRepo {
	return &CheckRepo{pool: pool}
}

// Create inserts a new verification check.
func (r *CheckRepo) Create(ctx context.Context, c *domain.VerificationCheck) error {
	query := `INSERT INTO verification_checks (id, user_id, provider, provider_reference, status,
		risk_level, notes, submitted_at, completed_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.UserID, c.Provider, c.ProviderReference, c.Status,
		c.RiskLevel, c.Notes, c.SubmittedAt, c.CompletedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert verification check: %w", err)
	}
	return nil
}

// GetByID fetches a check by UUID.
func (r *CheckRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VerificationCheck, error) {
	query := `SELECT id, user_id, provider, provider_reference, status, risk_level, notes,
		submitted_at, completed_at, updated_at
		FROM verification_checks WHERE id = $1`

	return r.scanCheck(r.pool.QueryRow(ctx, query, id))
}

// GetByProviderReference fetches a check by provider and reference.
func (r *CheckRepo) GetByProviderReference(ctx context.Context, provider domain.Provider, reference string) (*domain.VerificationCheck, error) {
	query := `SELECT id, user_id, provider, provider_reference, status, risk_level, notes,
		submitted_at, completed_at, updated_at
		FROM verification_checks WHERE provider = $1 AND provider_reference = $2`

	return r.scanCheck(r.pool.QueryRow(ctx, query, provider, reference))
}

// UpdateStatus persists a status transition.
func (r *CheckRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CheckStatus, completedAt *time.Time) error {
	query := `UPDATE verification_checks SET status = $1, completed_at = $2, updated_at = $3 WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, status, completedAt, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update check status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("verification check not found: %s", id)
	}
	return nil
}

// scanCheck is a helper to scan a single row into a VerificationCheck.
func (r *CheckRepo) scanCheck(row pgx.Row) (*domain.VerificationCheck, error) {
	c := &domain.VerificationCheck{}
	err := row.Scan(
		&c.ID, &c.UserID, &c.Provider, &c.ProviderReference, &c.Status,
		&c.RiskLevel, &c.Notes, &c.SubmittedAt, &c.CompletedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan verification check: %w", err)
	}
	return c, nil
}
