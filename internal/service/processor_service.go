package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"kyc-webhook-simulator/internal/core/domain"
	"kyc-webhook-simulator/internal/core/ports"
	"kyc-webhook-simulator/internal/metrics"
)

// ProcessorConfig tunes inbound webhook processing.
type ProcessorConfig struct {
	// Secret verifies inbound signatures.
	Secret string
	// IdempotencyTTL bounds how long processed keys are remembered in the
	// fast-path store. The event repository remains the durable record.
	IdempotencyTTL time.Duration
}

// inboundBody is the provider-agnostic view of a webhook payload. Providers
// disagree on envelope fields; these are the ones processing needs.
type inboundBody struct {
	EventID           string `json:"event_id"`
	EventType         string `json:"event_type"`
	CheckID           string `json:"check_id"`
	ProviderReference string `json:"provider_reference"`
	Status            string `json:"status"`
	VerificationState string `json:"verification_status"`
}

// inboundProcessor implements ports.InboundProcessor. Same-key requests are
// serialised through a per-key mutex so concurrent duplicates cannot both
// pass the idempotency check.
type inboundProcessor struct {
	cfg       ProcessorConfig
	checkRepo ports.CheckRepository
	eventRepo ports.EventRepository
	idemStore ports.IdempotencyStore
	sigSvc    ports.SignatureService
	audit     ports.AuditService
	log       zerolog.Logger

	mu   sync.Mutex
	keys map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

// NewInboundProcessor creates the inbound webhook processor.
func NewInboundProcessor(
	cfg ProcessorConfig,
	checkRepo ports.CheckRepository,
	eventRepo ports.EventRepository,
	idemStore ports.IdempotencyStore,
	sigSvc ports.SignatureService,
	audit ports.AuditService,
	log zerolog.Logger,
) ports.InboundProcessor {
	if cfg.IdempotencyTTL <= 0 {
		cfg.IdempotencyTTL = 24 * time.Hour
	}
	return &inboundProcessor{
		cfg:       cfg,
		checkRepo: checkRepo,
		eventRepo: eventRepo,
		idemStore: idemStore,
		sigSvc:    sigSvc,
		audit:     audit,
		log:       log,
		keys:      make(map[string]*keyLock),
	}
}

// Process runs verify, dedupe, load, transition, persist. It never panics and
// never returns transport errors: every path ends in a ProcessingResult.
func (p *inboundProcessor) Process(ctx context.Context, req ports.InboundRequest) ports.ProcessingResult {
	start := time.Now()
	payloadHash := domain.HashPayload(req.Payload)
	provider := string(req.Provider)
	defer func() {
		metrics.InboundProcessingDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	}()

	if !domain.IsKnownProvider(req.Provider) {
		return p.reject(ctx, req, payloadHash, ports.ReasonUnknownProvider, "")
	}

	// Signature first: nothing from an unauthenticated payload is trusted,
	// parsed or logged beyond its hash.
	if !p.verifySignature(req) {
		metrics.SignatureFailuresTotal.WithLabelValues(provider).Inc()
		return p.reject(ctx, req, payloadHash, ports.ReasonInvalidSignature, "")
	}

	body, outcome, ok := p.parse(req.Payload)
	if !ok {
		return p.reject(ctx, req, payloadHash, ports.ReasonMalformedPayload, "")
	}

	key := p.idempotencyKey(req.Provider, body, outcome)

	unlock := p.lockKey(key)
	defer unlock()

	if result, hit := p.checkDuplicate(ctx, key); hit {
		dup := &domain.InboundEvent{
			ID:                uuid.New(),
			Provider:          req.Provider,
			EventType:         domain.EventTypeFor(outcome),
			IdempotencyKey:    key,
			PayloadHash:       payloadHash,
			Signature:         req.Signature,
			SignatureVerified: true,
			Status:            domain.EventStatusDuplicate,
			Reason:            result.Reason,
			ReceivedAt:        req.ReceivedAt,
		}
		if body.EventID != "" {
			dup.ProviderEventID = &body.EventID
		}
		p.recordEvent(ctx, dup)
		p.audit.ProcessingEvent(req.Provider, result, payloadHash)
		metrics.InboundEventsTotal.WithLabelValues(provider, result.Reason).Inc()
		return result
	}

	check, err := p.loadCheck(ctx, req.Provider, body)
	if err != nil || check == nil {
		return p.reject(ctx, req, payloadHash, ports.ReasonUnknownCheck, key)
	}

	result := p.apply(ctx, check, outcome)

	event := &domain.InboundEvent{
		ID:                uuid.New(),
		Provider:          req.Provider,
		EventType:         domain.EventTypeFor(outcome),
		IdempotencyKey:    key,
		PayloadHash:       payloadHash,
		Signature:         req.Signature,
		SignatureVerified: true,
		CheckID:           &check.ID,
		Status:            eventStatusFor(result),
		Reason:            result.Reason,
		ReceivedAt:        req.ReceivedAt,
	}
	if body.EventID != "" {
		event.ProviderEventID = &body.EventID
	}
	p.recordEvent(ctx, event)
	result.EventID = event.ID

	// A failed transition is not marked processed: the provider's retry must
	// get another chance at the datastore.
	if result.Accepted {
		if err := p.idemStore.MarkProcessed(ctx, key, p.cfg.IdempotencyTTL); err != nil {
			// the durable event record still dedupes; only the fast path is lost
			p.log.Warn().Err(err).Str("provider", provider).Msg("inbound: idempotency mark failed")
		}
	}

	p.audit.ProcessingEvent(req.Provider, result, payloadHash)
	metrics.InboundEventsTotal.WithLabelValues(provider, result.Reason).Inc()
	return result
}

func (p *inboundProcessor) verifySignature(req ports.InboundRequest) bool {
	if req.Signature == "" {
		return false
	}
	if req.HasTimestamp {
		if err := p.sigSvc.ValidateTimestamp(req.Timestamp, req.Provider, 0); err != nil {
			return false
		}
		return p.sigSvc.Verify(req.Payload, req.Signature, req.Provider, req.Timestamp, p.cfg.Secret)
	}
	return p.sigSvc.Verify(req.Payload, req.Signature, req.Provider, 0, p.cfg.Secret)
}

func (p *inboundProcessor) parse(payload []byte) (inboundBody, domain.Outcome, bool) {
	var body inboundBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return body, "", false
	}

	status := body.Status
	if status == "" {
		status = body.VerificationState
	}
	outcome, ok := domain.MapProviderStatus(status)
	if !ok {
		return body, "", false
	}
	if body.ProviderReference == "" && body.CheckID == "" {
		return body, "", false
	}
	return body, outcome, true
}

func (p *inboundProcessor) idempotencyKey(provider domain.Provider, body inboundBody, outcome domain.Outcome) string {
	cfg, _ := domain.ConfigFor(provider)
	if cfg.UsesEventID && body.EventID != "" {
		return domain.BuildEventIdempotencyKey(provider, body.EventID)
	}
	ref := body.ProviderReference
	if ref == "" {
		ref = body.CheckID
	}
	return domain.BuildIdempotencyKey(provider, ref, outcome)
}

// checkDuplicate consults the fast-path store, then the durable event record.
func (p *inboundProcessor) checkDuplicate(ctx context.Context, key string) (ports.ProcessingResult, bool) {
	dup := ports.ProcessingResult{
		Accepted:      true,
		Reason:        ports.ReasonDuplicate,
		IdempotentHit: true,
	}

	seen, err := p.idemStore.Seen(ctx, key)
	if err != nil {
		p.log.Warn().Err(err).Msg("inbound: idempotency lookup failed, falling back to event record")
	} else if seen {
		if prior, err := p.eventRepo.GetByIdempotencyKey(ctx, key); err == nil && prior != nil {
			dup.EventID = prior.ID
		}
		return dup, true
	}

	prior, err := p.eventRepo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		p.log.Warn().Err(err).Msg("inbound: event lookup failed")
		return ports.ProcessingResult{}, false
	}
	// a rejected record is not prior processing; the retry gets a fresh run
	if prior != nil && prior.Status != domain.EventStatusRejected {
		dup.EventID = prior.ID
		return dup, true
	}
	return ports.ProcessingResult{}, false
}

func (p *inboundProcessor) loadCheck(ctx context.Context, provider domain.Provider, body inboundBody) (*domain.VerificationCheck, error) {
	if body.CheckID != "" {
		if id, err := uuid.Parse(body.CheckID); err == nil {
			if check, err := p.checkRepo.GetByID(ctx, id); err == nil && check != nil {
				return check, nil
			}
		}
	}
	if body.ProviderReference != "" {
		return p.checkRepo.GetByProviderReference(ctx, provider, body.ProviderReference)
	}
	return nil, nil
}

// apply drives the state machine. A terminal check is acknowledged without a
// transition so the provider stops retrying.
func (p *inboundProcessor) apply(ctx context.Context, check *domain.VerificationCheck, outcome domain.Outcome) ports.ProcessingResult {
	if check.IsTerminal() {
		return ports.ProcessingResult{
			Accepted:    true,
			Reason:      ports.ReasonAlreadyTerminal,
			CheckStatus: check.Status,
		}
	}

	if !check.ApplyOutcome(outcome, nil) {
		// a progress event that does not move the state is acknowledged as-is
		return ports.ProcessingResult{
			Accepted:    true,
			Reason:      ports.ReasonProcessed,
			CheckStatus: check.Status,
		}
	}

	if err := p.checkRepo.UpdateStatus(ctx, check.ID, check.Status, check.CompletedAt); err != nil {
		p.log.Error().Err(err).Str("check_id", check.ID.String()).Msg("inbound: status persist failed")
		return ports.ProcessingResult{
			Accepted:    false,
			Reason:      ports.ReasonStoreFailure,
			CheckStatus: check.Status,
		}
	}

	p.log.Info().
		Str("check_id", check.ID.String()).
		Str("status", string(check.Status)).
		Str("outcome", string(outcome)).
		Msg("inbound: check transitioned")
	return ports.ProcessingResult{
		Accepted:    true,
		Reason:      ports.ReasonProcessed,
		CheckStatus: check.Status,
	}
}

func (p *inboundProcessor) reject(ctx context.Context, req ports.InboundRequest, payloadHash, reason, key string) ports.ProcessingResult {
	event := &domain.InboundEvent{
		ID:             uuid.New(),
		Provider:       req.Provider,
		IdempotencyKey: key,
		PayloadHash:    payloadHash,
		Signature:      req.Signature,
		// malformed_payload and unknown_check happen after verification;
		// the earlier reasons mean the payload was never authenticated
		SignatureVerified: reason == ports.ReasonMalformedPayload || reason == ports.ReasonUnknownCheck,
		Status:            domain.EventStatusRejected,
		Reason:            reason,
		ReceivedAt:        req.ReceivedAt,
	}
	p.recordEvent(ctx, event)

	p.audit.SecurityEvent(req.Provider, reason, payloadHash)
	metrics.InboundEventsTotal.WithLabelValues(string(req.Provider), reason).Inc()
	p.log.Warn().
		Str("provider", string(req.Provider)).
		Str("reason", reason).
		Str("payload_sha256", payloadHash).
		Msg("inbound: rejected")
	return ports.ProcessingResult{Accepted: false, Reason: reason, EventID: event.ID}
}

// recordEvent persists the audit record. Failure to record never blocks the
// acknowledgement; it is logged and surfaced through metrics only.
func (p *inboundProcessor) recordEvent(ctx context.Context, event *domain.InboundEvent) {
	if err := p.eventRepo.Create(ctx, event); err != nil {
		p.log.Error().Err(err).Str("provider", string(event.Provider)).Msg("inbound: event record failed")
	}
}

func eventStatusFor(result ports.ProcessingResult) domain.EventProcessingStatus {
	switch result.Reason {
	case ports.ReasonAlreadyTerminal:
		return domain.EventStatusTerminal
	case ports.ReasonDuplicate:
		return domain.EventStatusDuplicate
	case ports.ReasonProcessed:
		return domain.EventStatusProcessed
	default:
		return domain.EventStatusRejected
	}
}

// lockKey serialises callers on the same idempotency key. Locks are reference
// counted and removed when the last holder releases.
func (p *inboundProcessor) lockKey(key string) func() {
	p.mu.Lock()
	l, ok := p.keys[key]
	if !ok {
		l = &keyLock{}
		p.keys[key] = l
	}
	l.refs++
	p.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.keys, key)
		}
		p.mu.Unlock()
	}
}
