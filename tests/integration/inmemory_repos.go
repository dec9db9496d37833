package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"kyc-webhook-simulator/internal/core/domain"

	"github.com/google/uuid"
)

// --- In-Memory Check Repo ---

type inMemoryCheckRepo struct {
	mu     sync.RWMutex
	checks map[uuid.UUID]*domain.VerificationCheck
}

func newInMemoryCheckRepo() *inMemoryCheckRepo {
	return &inMemoryCheckRepo{checks: make(map[uuid.UUID]*domain.VerificationCheck)}
}

func (r *inMemoryCheckRepo) Create(ctx context.Context, check *domain.VerificationCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *check
	r.checks[check.ID] = &cp
	return nil
}

func (r *inMemoryCheckRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VerificationCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.checks[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *inMemoryCheckRepo) GetByProviderReference(ctx context.Context, provider domain.Provider, reference string) (*domain.VerificationCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.checks {
		if c.Provider == provider && c.ProviderReference == reference {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryCheckRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CheckStatus, completedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.checks[id]
	if !ok {
		return fmt.Errorf("verification check not found")
	}
	c.Status = status
	c.CompletedAt = completedAt
	c.UpdatedAt = time.Now()
	return nil
}

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events []domain.InboundEvent
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{}
}

func (r *inMemoryEventRepo) Create(ctx context.Context, event *domain.InboundEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *inMemoryEventRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.InboundEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.events {
		if r.events[i].IdempotencyKey == key && r.events[i].Status != domain.EventStatusRejected {
			cp := r.events[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryEventRepo) ListByProvider(ctx context.Context, provider domain.Provider, limit int) ([]domain.InboundEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 {
		limit = 50
	}
	var out []domain.InboundEvent
	for _, e := range r.events {
		if e.Provider == provider {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReceivedAt.After(out[j].ReceivedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryEventRepo) countByStatus(status domain.EventProcessingStatus) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, e := range r.events {
		if e.Status == status {
			n++
		}
	}
	return n
}
