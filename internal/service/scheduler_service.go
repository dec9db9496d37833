package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"kyc-webhook-simulator/internal/core/domain"
	"kyc-webhook-simulator/internal/core/ports"
	"kyc-webhook-simulator/internal/metrics"
	"kyc-webhook-simulator/pkg/apperror"
)

// SchedulerConfig tunes delivery scheduling.
type SchedulerConfig struct {
	// BaseWebhookURL is the consumer root used when a request carries no
	// explicit target, e.g. "http://localhost:8080/webhooks".
	BaseWebhookURL string
	// DefaultDelayMin/Max bound the random fire delay when the request
	// leaves both unset.
	DefaultDelayMin time.Duration
	DefaultDelayMax time.Duration
	QueueSize       int
	Workers         int
	// Retention bounds how long terminal deliveries stay listable before
	// they are swept.
	Retention time.Duration
}

type scheduledEntry struct {
	delivery *domain.ScheduledDelivery
	timer    *time.Timer
}

// timerScheduler implements ports.WebhookScheduler. One timer per scheduled
// delivery; fired deliveries are handed to a fixed worker pool so a slow
// consumer cannot pile up goroutines.
type timerScheduler struct {
	cfg        SchedulerConfig
	dispatcher ports.DeliveryDispatcher
	log        zerolog.Logger

	mu      sync.Mutex
	entries map[string]*scheduledEntry
	rng     *rand.Rand
	closed  bool

	jobs   chan string
	wg     sync.WaitGroup
	fireWG sync.WaitGroup
}

// NewTimerScheduler creates a scheduler and starts its workers.
func NewTimerScheduler(cfg SchedulerConfig, dispatcher ports.DeliveryDispatcher, log zerolog.Logger) ports.WebhookScheduler {
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 256
	}
	if cfg.Workers < 1 {
		cfg.Workers = 4
	}
	if cfg.DefaultDelayMax < cfg.DefaultDelayMin {
		cfg.DefaultDelayMax = cfg.DefaultDelayMin
	}
	if cfg.Retention <= 0 {
		cfg.Retention = time.Hour
	}
	s := &timerScheduler{
		cfg:        cfg,
		dispatcher: dispatcher,
		log:        log,
		entries:    make(map[string]*scheduledEntry),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		jobs:       make(chan string, cfg.QueueSize),
	}
	for i := 0; i < cfg.Workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

// Schedule registers a delivery to fire after a delay drawn once, now, from
// the request's range.
func (s *timerScheduler) Schedule(ctx context.Context, req ports.ScheduleRequest) (string, error) {
	delivery, delay, err := s.prepare(req)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", apperror.InternalError(fmt.Errorf("scheduler closed"))
	}
	s.sweepLocked(time.Now())
	entry := &scheduledEntry{delivery: delivery}
	entry.timer = time.AfterFunc(delay, func() { s.fire(delivery.ID) })
	s.entries[delivery.ID] = entry
	s.mu.Unlock()

	metrics.WebhooksScheduledTotal.WithLabelValues(string(req.Provider)).Inc()
	s.log.Info().
		Str("delivery_id", delivery.ID).
		Str("provider", string(req.Provider)).
		Str("outcome", string(req.Outcome)).
		Dur("delay", delay).
		Msg("webhook scheduled")
	return delivery.ID, nil
}

// SendImmediately dispatches synchronously, bypassing the delay and queue.
func (s *timerScheduler) SendImmediately(ctx context.Context, req ports.ScheduleRequest) (*domain.DeliveryResult, error) {
	delivery, _, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	delivery.Status = domain.DeliveryStatusSending

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, apperror.InternalError(fmt.Errorf("scheduler closed"))
	}
	s.sweepLocked(time.Now())
	s.entries[delivery.ID] = &scheduledEntry{delivery: delivery}
	s.mu.Unlock()

	metrics.WebhooksScheduledTotal.WithLabelValues(string(req.Provider)).Inc()
	result := s.dispatcher.Dispatch(ctx, delivery)
	s.settle(delivery.ID, result)
	return result, nil
}

// Cancel stops a still-scheduled delivery. The status flip happens under the
// entry lock, so a concurrently firing timer observes it and no-ops; a timer
// that already moved the delivery to sending wins the race.
func (s *timerScheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || entry.delivery.Status != domain.DeliveryStatusScheduled {
		return false
	}
	if entry.timer != nil {
		entry.timer.Stop()
	}
	entry.delivery.Status = domain.DeliveryStatusCancelled
	now := time.Now()
	entry.delivery.CompletedAt = &now
	s.log.Info().Str("delivery_id", id).Msg("webhook cancelled")
	return true
}

// Get returns a copy of the delivery, so callers cannot mutate scheduler
// state.
func (s *timerScheduler) Get(id string) (*domain.ScheduledDelivery, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	cp := *entry.delivery
	return &cp, true
}

// List snapshots deliveries, newest first. A nil status means all.
func (s *timerScheduler) List(status *domain.DeliveryStatus) []domain.ScheduledDelivery {
	s.mu.Lock()
	out := make([]domain.ScheduledDelivery, 0, len(s.entries))
	for _, entry := range s.entries {
		if status != nil && entry.delivery.Status != *status {
			continue
		}
		out = append(out, *entry.delivery)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Close stops pending timers and waits for queued and in-flight dispatches.
func (s *timerScheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for _, entry := range s.entries {
		if entry.delivery.Status == domain.DeliveryStatusScheduled && entry.timer != nil {
			entry.timer.Stop()
		}
	}
	s.mu.Unlock()

	// No new fires can start once closed; wait for in-progress enqueues,
	// then let workers drain the queue.
	s.fireWG.Wait()
	close(s.jobs)
	s.wg.Wait()
}

func (s *timerScheduler) prepare(req ports.ScheduleRequest) (*domain.ScheduledDelivery, time.Duration, error) {
	if !domain.IsKnownProvider(req.Provider) {
		return nil, 0, apperror.ErrUnknownProvider(string(req.Provider))
	}
	if _, ok := domain.ParseOutcome(string(req.Outcome)); !ok {
		return nil, 0, apperror.ErrInvalidOutcome(string(req.Outcome))
	}

	min, max := req.DelayMin, req.DelayMax
	if min == 0 && max == 0 {
		min, max = s.cfg.DefaultDelayMin, s.cfg.DefaultDelayMax
	}
	if min < 0 || max < min {
		return nil, 0, apperror.ErrInvalidDelayRange()
	}
	delay := min
	if max > min {
		s.mu.Lock()
		delay = min + time.Duration(s.rng.Int63n(int64(max-min)+1))
		s.mu.Unlock()
	}

	target := req.TargetURL
	if target == "" {
		target = fmt.Sprintf("%s/%s/%s", s.cfg.BaseWebhookURL, pathFor(req.Outcome), req.Provider)
	}

	now := time.Now()
	return &domain.ScheduledDelivery{
		ID:                uuid.New().String(),
		CheckID:           req.CheckID,
		UserID:            req.UserID,
		Provider:          req.Provider,
		ProviderReference: req.ProviderReference,
		Outcome:           req.Outcome,
		TargetURL:         target,
		Status:            domain.DeliveryStatusScheduled,
		CreatedAt:         now,
		FireAt:            now.Add(delay),
	}, delay, nil
}

// pathFor routes AML outcomes to the AML consumer endpoint, everything else
// to the KYC endpoint.
func pathFor(o domain.Outcome) string {
	if o == domain.OutcomeAMLClear || o == domain.OutcomeAMLFlagged {
		return "aml"
	}
	return "kyc"
}

// fire moves a due delivery to sending and queues it for a worker. Cancelled
// or already-fired deliveries are left alone.
func (s *timerScheduler) fire(id string) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	if !ok || s.closed || entry.delivery.Status != domain.DeliveryStatusScheduled {
		s.mu.Unlock()
		return
	}
	entry.delivery.Status = domain.DeliveryStatusSending
	s.fireWG.Add(1)
	s.mu.Unlock()

	defer s.fireWG.Done()
	s.jobs <- id
}

func (s *timerScheduler) worker() {
	defer s.wg.Done()
	for id := range s.jobs {
		s.run(id)
	}
}

func (s *timerScheduler) run(id string) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	cp := *entry.delivery
	s.mu.Unlock()

	// Dispatch owns its own lifetime; Close waits for it rather than
	// cancelling it.
	result := s.dispatcher.Dispatch(context.Background(), &cp)
	s.settle(id, result)
}

// sweepLocked drops terminal deliveries that settled longer ago than the
// retention window. Caller holds s.mu.
func (s *timerScheduler) sweepLocked(now time.Time) {
	cutoff := now.Add(-s.cfg.Retention)
	for id, entry := range s.entries {
		switch entry.delivery.Status {
		case domain.DeliveryStatusCompleted, domain.DeliveryStatusFailed, domain.DeliveryStatusCancelled:
			if entry.delivery.CompletedAt != nil && entry.delivery.CompletedAt.Before(cutoff) {
				delete(s.entries, id)
			}
		}
	}
}

func (s *timerScheduler) settle(id string, result *domain.DeliveryResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return
	}
	now := time.Now()
	entry.delivery.Attempts = result.Attempts
	entry.delivery.CompletedAt = &now
	if result.Success {
		entry.delivery.Status = domain.DeliveryStatusCompleted
	} else {
		entry.delivery.Status = domain.DeliveryStatusFailed
	}
}
