package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"kyc-webhook-simulator/internal/core/domain"
	"kyc-webhook-simulator/internal/core/ports"
	"kyc-webhook-simulator/internal/metrics"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BackoffPolicy returns the wait before retry attempt n (1-based). It must be
// pure apart from jitter.
type BackoffPolicy func(attempt int) time.Duration

// ExponentialBackoff doubles the base delay per attempt and adds up to 10%
// jitter, mirroring provider retry behaviour without thundering herds.
func ExponentialBackoff(base time.Duration) BackoffPolicy {
	return func(attempt int) time.Duration {
		d := base << (attempt - 1)
		return d + time.Duration(rand.Int63n(int64(d)/10+1))
	}
}

// DispatcherConfig tunes outbound delivery behaviour.
type DispatcherConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	// SimulateFailures short-circuits a fraction of dispatches before any
	// network call, exercising consumer retry paths.
	SimulateFailures bool
	FailureRate      float64
	// Secret signs outbound payloads. Consumers verify with the same secret.
	Secret string
}

// httpDispatcher implements ports.DeliveryDispatcher over a plain HTTP client.
type httpDispatcher struct {
	cfg     DispatcherConfig
	client  HTTPClient
	gen     ports.PayloadGenerator
	sigSvc  ports.SignatureService
	tracker ports.DeliveryTracker
	backoff BackoffPolicy
	log     zerolog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewHTTPDispatcher creates a delivery dispatcher.
func NewHTTPDispatcher(
	cfg DispatcherConfig,
	client HTTPClient,
	gen ports.PayloadGenerator,
	sigSvc ports.SignatureService,
	tracker ports.DeliveryTracker,
	backoff BackoffPolicy,
	log zerolog.Logger,
) ports.DeliveryDispatcher {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 5 * time.Second
	}
	if backoff == nil {
		backoff = ExponentialBackoff(cfg.RetryDelay)
	}
	return &httpDispatcher{
		cfg:     cfg,
		client:  client,
		gen:     gen,
		sigSvc:  sigSvc,
		tracker: tracker,
		backoff: backoff,
		log:     log,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Dispatch builds, signs and sends the delivery's payload, retrying per
// policy. Every attempt is recorded on the tracker; the returned result is
// never nil.
func (d *httpDispatcher) Dispatch(ctx context.Context, delivery *domain.ScheduledDelivery) *domain.DeliveryResult {
	start := time.Now()
	provider := string(delivery.Provider)

	payload, err := d.gen.Generate(delivery.Provider, delivery.Outcome, ports.SubjectRefs{
		CheckID:           delivery.CheckID,
		UserID:            delivery.UserID,
		ProviderReference: delivery.ProviderReference,
	})
	if err != nil {
		return d.fail(delivery, start, fmt.Sprintf("payload generation failed: %v", err))
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return d.fail(delivery, start, fmt.Sprintf("payload marshal failed: %v", err))
	}

	timestamp := time.Now().Unix()
	signature, err := d.sigSvc.Sign(body, delivery.Provider, timestamp, d.cfg.Secret)
	if err != nil {
		return d.fail(delivery, start, fmt.Sprintf("signing failed: %v", err))
	}

	if d.injectFailure() {
		d.record(delivery, 1, signature, nil, time.Since(start), false, strPtr("simulated delivery failure"))
		metrics.WebhookDeliveriesTotal.WithLabelValues(provider, "failed").Inc()
		return &domain.DeliveryResult{
			DeliveryID: delivery.ID,
			Success:    false,
			Attempts:   1,
			Error:      strPtr("simulated delivery failure"),
			Duration:   time.Since(start),
		}
	}

	var lastCode *int
	var lastErr *string

	for attempt := 1; attempt <= d.cfg.MaxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(d.backoff(attempt - 1)):
			case <-ctx.Done():
				lastErr = strPtr(ctx.Err().Error())
				return d.finish(delivery, start, attempt-1, lastCode, lastErr, false)
			}
		}

		attemptStart := time.Now()
		code, sendErr := d.send(ctx, delivery, body, signature, timestamp)
		latency := time.Since(attemptStart)
		metrics.WebhookDeliveryAttemptsTotal.WithLabelValues(provider).Inc()

		success := sendErr == nil && code >= 200 && code < 300
		var codePtr *int
		if code != 0 {
			codePtr = &code
			lastCode = codePtr
		}
		var errPtr *string
		if sendErr != nil {
			errPtr = strPtr(sendErr.Error())
			lastErr = errPtr
		} else if !success {
			errPtr = strPtr(fmt.Sprintf("non-2xx response: %d", code))
			lastErr = errPtr
		}

		d.record(delivery, attempt, signature, codePtr, latency, success, errPtr)

		if success {
			d.log.Info().
				Str("delivery_id", delivery.ID).
				Str("provider", provider).
				Int("attempt", attempt).
				Int("status", code).
				Dur("latency", latency).
				Msg("webhook: delivered")
			return d.finish(delivery, start, attempt, codePtr, nil, true)
		}

		d.log.Warn().
			Str("delivery_id", delivery.ID).
			Str("provider", provider).
			Int("attempt", attempt).
			Str("error", *lastErr).
			Msg("webhook: attempt failed")
	}

	d.log.Error().
		Str("delivery_id", delivery.ID).
		Str("provider", provider).
		Int("attempts", d.cfg.MaxRetries).
		Msg("webhook: all retry attempts exhausted")
	return d.finish(delivery, start, d.cfg.MaxRetries, lastCode, lastErr, false)
}

func (d *httpDispatcher) send(ctx context.Context, delivery *domain.ScheduledDelivery, body []byte, signature string, timestamp int64) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, delivery.TargetURL, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}

	cfg, _ := domain.ConfigFor(delivery.Provider)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf("MockWebhookSender/%s/1.0", delivery.Provider))
	req.Header.Set(cfg.SignatureHeader, signature)
	if cfg.TimestampHeader != "" {
		req.Header.Set(cfg.TimestampHeader, fmt.Sprintf("%d", timestamp))
	}
	req.Header.Set("X-Provider-Name", string(delivery.Provider))

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

func (d *httpDispatcher) injectFailure() bool {
	if !d.cfg.SimulateFailures || d.cfg.FailureRate <= 0 {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Float64() < d.cfg.FailureRate
}

func (d *httpDispatcher) record(delivery *domain.ScheduledDelivery, attempt int, signature string, code *int, latency time.Duration, success bool, errMsg *string) {
	d.tracker.Record(domain.DeliveryAttempt{
		DeliveryID: delivery.ID,
		Attempt:    attempt,
		Provider:   delivery.Provider,
		TargetURL:  delivery.TargetURL,
		Signature:  signature,
		StatusCode: code,
		Latency:    latency,
		Success:    success,
		Error:      errMsg,
		SentAt:     time.Now(),
	})
}

func (d *httpDispatcher) finish(delivery *domain.ScheduledDelivery, start time.Time, attempts int, code *int, errMsg *string, success bool) *domain.DeliveryResult {
	provider := string(delivery.Provider)
	result := "success"
	if !success {
		result = "failed"
	}
	metrics.WebhookDeliveriesTotal.WithLabelValues(provider, result).Inc()
	metrics.WebhookDeliveryDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	return &domain.DeliveryResult{
		DeliveryID: delivery.ID,
		Success:    success,
		StatusCode: code,
		Attempts:   attempts,
		Error:      errMsg,
		Duration:   time.Since(start),
	}
}

// fail covers pre-network errors: nothing was sent, one failed attempt is
// recorded so the tracker still sees the delivery.
func (d *httpDispatcher) fail(delivery *domain.ScheduledDelivery, start time.Time, msg string) *domain.DeliveryResult {
	d.record(delivery, 1, "", nil, time.Since(start), false, &msg)
	metrics.WebhookDeliveriesTotal.WithLabelValues(string(delivery.Provider), "failed").Inc()
	return &domain.DeliveryResult{
		DeliveryID: delivery.ID,
		Success:    false,
		Attempts:   1,
		Error:      &msg,
		Duration:   time.Since(start),
	}
}

func strPtr(s string) *string { return &s }
