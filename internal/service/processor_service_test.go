package service

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kyc-webhook-simulator/internal/core/domain"
	"kyc-webhook-simulator/internal/core/ports"
	"kyc-webhook-simulator/internal/core/ports/mocks"
)

const testSecret = "inbound-test-secret"

// memIdemStore is a minimal in-process IdempotencyStore for tests that need
// real first-wins semantics.
type memIdemStore struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newMemIdemStore() *memIdemStore {
	return &memIdemStore{seen: make(map[string]bool)}
}

func (s *memIdemStore) Seen(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen[key], nil
}

func (s *memIdemStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[key] = true
	return nil
}

type processorFixture struct {
	checkRepo *mocks.MockCheckRepository
	eventRepo *mocks.MockEventRepository
	idemStore ports.IdempotencyStore
	audit     *mocks.MockAuditService
	processor ports.InboundProcessor
}

func newProcessorFixture(t *testing.T, ctrl *gomock.Controller, store ports.IdempotencyStore) *processorFixture {
	t.Helper()
	f := &processorFixture{
		checkRepo: mocks.NewMockCheckRepository(ctrl),
		eventRepo: mocks.NewMockEventRepository(ctrl),
		audit:     mocks.NewMockAuditService(ctrl),
	}
	if store == nil {
		store = newMemIdemStore()
	}
	f.idemStore = store
	f.processor = NewInboundProcessor(
		ProcessorConfig{Secret: testSecret, IdempotencyTTL: time.Hour},
		f.checkRepo,
		f.eventRepo,
		f.idemStore,
		NewHMACSignatureService(),
		f.audit,
		newTestLogger(),
	)
	return f
}

// signedRequest builds an InboundRequest whose signature verifies.
func signedRequest(t *testing.T, provider domain.Provider, body map[string]interface{}) ports.InboundRequest {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	ts := time.Now().Unix()
	sig, err := NewHMACSignatureService().Sign(payload, provider, ts, testSecret)
	require.NoError(t, err)

	return ports.InboundRequest{
		Provider:     provider,
		Payload:      payload,
		Signature:    sig,
		Timestamp:    ts,
		HasTimestamp: true,
		ReceivedAt:   time.Now(),
	}
}

func pendingCheck(provider domain.Provider, ref string) *domain.VerificationCheck {
	return &domain.VerificationCheck{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		Provider:          provider,
		ProviderReference: ref,
		Status:            domain.CheckStatusPending,
		SubmittedAt:       time.Now(),
	}
}

func TestInboundProcessor_ApprovesPendingCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newProcessorFixture(t, ctrl, nil)

	check := pendingCheck(domain.ProviderMock1, "ref-100")
	req := signedRequest(t, domain.ProviderMock1, map[string]interface{}{
		"event_id":           "evt-1",
		"check_id":           check.ID.String(),
		"provider_reference": "ref-100",
		"status":             "approved",
	})

	f.eventRepo.EXPECT().
		GetByIdempotencyKey(gomock.Any(), "mock_provider_1:event:evt-1").
		Return(nil, nil)
	f.checkRepo.EXPECT().GetByID(gomock.Any(), check.ID).Return(check, nil)
	f.checkRepo.EXPECT().
		UpdateStatus(gomock.Any(), check.ID, domain.CheckStatusApproved, gomock.Any()).
		Return(nil)
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.InboundEvent) error {
			assert.Equal(t, domain.EventStatusProcessed, event.Status)
			assert.Equal(t, "mock_provider_1:event:evt-1", event.IdempotencyKey)
			assert.True(t, event.SignatureVerified)
			require.NotNil(t, event.ProviderEventID)
			assert.Equal(t, "evt-1", *event.ProviderEventID)
			return nil
		})
	f.audit.EXPECT().ProcessingEvent(domain.ProviderMock1, gomock.Any(), gomock.Any())

	result := f.processor.Process(context.Background(), req)

	assert.True(t, result.Accepted)
	assert.Equal(t, ports.ReasonProcessed, result.Reason)
	assert.False(t, result.IdempotentHit)
	assert.Equal(t, domain.CheckStatusApproved, result.CheckStatus)
	assert.NotEqual(t, uuid.Nil, result.EventID)
}

func TestInboundProcessor_RejectsBadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newProcessorFixture(t, ctrl, nil)

	req := signedRequest(t, domain.ProviderMock1, map[string]interface{}{
		"provider_reference": "ref-1",
		"status":             "approved",
	})
	req.Signature = "sha256=0000000000000000000000000000000000000000000000000000000000000000"

	f.audit.EXPECT().SecurityEvent(domain.ProviderMock1, ports.ReasonInvalidSignature, gomock.Any())
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.InboundEvent) error {
			assert.Equal(t, domain.EventStatusRejected, event.Status)
			assert.Equal(t, ports.ReasonInvalidSignature, event.Reason)
			assert.False(t, event.SignatureVerified)
			assert.Equal(t, domain.HashPayload(req.Payload), event.PayloadHash)
			return nil
		})

	result := f.processor.Process(context.Background(), req)

	assert.False(t, result.Accepted)
	assert.Equal(t, ports.ReasonInvalidSignature, result.Reason)
}

func TestInboundProcessor_RejectsMissingSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newProcessorFixture(t, ctrl, nil)

	req := signedRequest(t, domain.ProviderMock1, map[string]interface{}{
		"provider_reference": "ref-1",
		"status":             "approved",
	})
	req.Signature = ""

	f.audit.EXPECT().SecurityEvent(domain.ProviderMock1, ports.ReasonInvalidSignature, gomock.Any())
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	result := f.processor.Process(context.Background(), req)
	assert.False(t, result.Accepted)
	assert.Equal(t, ports.ReasonInvalidSignature, result.Reason)
}

func TestInboundProcessor_RejectsExpiredTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newProcessorFixture(t, ctrl, nil)

	payload, _ := json.Marshal(map[string]interface{}{
		"provider_reference": "ref-1",
		"status":             "approved",
	})
	stale := time.Now().Add(-20 * time.Minute).Unix()
	sig, err := NewHMACSignatureService().Sign(payload, domain.ProviderMock1, stale, testSecret)
	require.NoError(t, err)

	req := ports.InboundRequest{
		Provider:     domain.ProviderMock1,
		Payload:      payload,
		Signature:    sig,
		Timestamp:    stale,
		HasTimestamp: true,
		ReceivedAt:   time.Now(),
	}

	f.audit.EXPECT().SecurityEvent(domain.ProviderMock1, ports.ReasonInvalidSignature, gomock.Any())
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	result := f.processor.Process(context.Background(), req)
	assert.False(t, result.Accepted)
	assert.Equal(t, ports.ReasonInvalidSignature, result.Reason)
}

func TestInboundProcessor_RejectsUnknownProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newProcessorFixture(t, ctrl, nil)

	req := ports.InboundRequest{
		Provider:   domain.Provider("stripe"),
		Payload:    []byte(`{}`),
		Signature:  "sha256=abc",
		ReceivedAt: time.Now(),
	}

	f.audit.EXPECT().SecurityEvent(domain.Provider("stripe"), ports.ReasonUnknownProvider, gomock.Any())
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.InboundEvent) error {
			assert.Equal(t, domain.EventStatusRejected, event.Status)
			assert.False(t, event.SignatureVerified)
			return nil
		})

	result := f.processor.Process(context.Background(), req)
	assert.False(t, result.Accepted)
	assert.Equal(t, ports.ReasonUnknownProvider, result.Reason)
}

func TestInboundProcessor_RejectsMalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newProcessorFixture(t, ctrl, nil)

	tests := []struct {
		name string
		body map[string]interface{}
		raw  []byte
	}{
		{name: "not json", raw: []byte("{{{")},
		{name: "unknown status", body: map[string]interface{}{
			"provider_reference": "ref-1",
			"status":             "definitely_not_a_status",
		}},
		{name: "no subject reference", body: map[string]interface{}{
			"status": "approved",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ports.InboundRequest
			if tt.raw != nil {
				ts := time.Now().Unix()
				sig, err := NewHMACSignatureService().Sign(tt.raw, domain.ProviderMock1, ts, testSecret)
				require.NoError(t, err)
				req = ports.InboundRequest{
					Provider: domain.ProviderMock1, Payload: tt.raw,
					Signature: sig, Timestamp: ts, HasTimestamp: true, ReceivedAt: time.Now(),
				}
			} else {
				req = signedRequest(t, domain.ProviderMock1, tt.body)
			}

			f.audit.EXPECT().SecurityEvent(domain.ProviderMock1, ports.ReasonMalformedPayload, gomock.Any())
			f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, event *domain.InboundEvent) error {
					assert.Equal(t, domain.EventStatusRejected, event.Status)
					assert.True(t, event.SignatureVerified, "rejection happened after verification")
					return nil
				})

			result := f.processor.Process(context.Background(), req)
			assert.False(t, result.Accepted)
			assert.Equal(t, ports.ReasonMalformedPayload, result.Reason)
		})
	}
}

func TestInboundProcessor_RejectsUnknownCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newProcessorFixture(t, ctrl, nil)

	req := signedRequest(t, domain.ProviderVeriff, map[string]interface{}{
		"provider_reference": "ref-missing",
		"status":             "approved",
	})

	f.eventRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.checkRepo.EXPECT().
		GetByProviderReference(gomock.Any(), domain.ProviderVeriff, "ref-missing").
		Return(nil, nil)
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.InboundEvent) error {
			assert.Equal(t, domain.EventStatusRejected, event.Status)
			assert.True(t, event.SignatureVerified)
			assert.Equal(t,
				domain.BuildIdempotencyKey(domain.ProviderVeriff, "ref-missing", domain.OutcomeApproved),
				event.IdempotencyKey)
			return nil
		})
	f.audit.EXPECT().SecurityEvent(domain.ProviderVeriff, ports.ReasonUnknownCheck, gomock.Any())

	result := f.processor.Process(context.Background(), req)
	assert.False(t, result.Accepted)
	assert.Equal(t, ports.ReasonUnknownCheck, result.Reason)
}

func TestInboundProcessor_DuplicateViaStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newMemIdemStore()
	require.NoError(t, store.MarkProcessed(context.Background(), "mock_provider_1:event:evt-dup", 0))

	f := newProcessorFixture(t, ctrl, store)

	req := signedRequest(t, domain.ProviderMock1, map[string]interface{}{
		"event_id":           "evt-dup",
		"provider_reference": "ref-1",
		"status":             "approved",
	})

	priorID := uuid.New()
	f.eventRepo.EXPECT().
		GetByIdempotencyKey(gomock.Any(), "mock_provider_1:event:evt-dup").
		Return(&domain.InboundEvent{ID: priorID}, nil)
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.InboundEvent) error {
			assert.Equal(t, domain.EventStatusDuplicate, event.Status)
			assert.Equal(t, "mock_provider_1:event:evt-dup", event.IdempotencyKey)
			assert.NotEqual(t, priorID, event.ID, "the duplicate gets its own audit record")
			return nil
		})
	f.audit.EXPECT().ProcessingEvent(domain.ProviderMock1, gomock.Any(), gomock.Any())

	result := f.processor.Process(context.Background(), req)

	assert.True(t, result.Accepted)
	assert.Equal(t, ports.ReasonDuplicate, result.Reason)
	assert.True(t, result.IdempotentHit)
	assert.Equal(t, priorID, result.EventID)
}

func TestInboundProcessor_DuplicateViaEventRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newProcessorFixture(t, ctrl, nil)

	req := signedRequest(t, domain.ProviderVeriff, map[string]interface{}{
		"provider_reference": "ref-5",
		"status":             "rejected",
	})

	key := domain.BuildIdempotencyKey(domain.ProviderVeriff, "ref-5", domain.OutcomeRejected)
	f.eventRepo.EXPECT().
		GetByIdempotencyKey(gomock.Any(), key).
		Return(&domain.InboundEvent{ID: uuid.New(), Status: domain.EventStatusProcessed}, nil)
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.InboundEvent) error {
			assert.Equal(t, domain.EventStatusDuplicate, event.Status)
			return nil
		})
	f.audit.EXPECT().ProcessingEvent(domain.ProviderVeriff, gomock.Any(), gomock.Any())

	result := f.processor.Process(context.Background(), req)

	assert.True(t, result.Accepted)
	assert.True(t, result.IdempotentHit)
}

func TestInboundProcessor_TerminalCheckAcknowledged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newProcessorFixture(t, ctrl, nil)

	check := pendingCheck(domain.ProviderVeriff, "ref-9")
	check.Status = domain.CheckStatusApproved

	req := signedRequest(t, domain.ProviderVeriff, map[string]interface{}{
		"provider_reference": "ref-9",
		"status":             "rejected",
	})

	f.eventRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.checkRepo.EXPECT().
		GetByProviderReference(gomock.Any(), domain.ProviderVeriff, "ref-9").
		Return(check, nil)
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.InboundEvent) error {
			assert.Equal(t, domain.EventStatusTerminal, event.Status)
			return nil
		})
	f.audit.EXPECT().ProcessingEvent(domain.ProviderVeriff, gomock.Any(), gomock.Any())

	result := f.processor.Process(context.Background(), req)

	assert.True(t, result.Accepted, "terminal events are acknowledged, not errored")
	assert.Equal(t, ports.ReasonAlreadyTerminal, result.Reason)
	assert.Equal(t, domain.CheckStatusApproved, result.CheckStatus)
}

func TestInboundProcessor_ProgressEventMovesPendingToInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newProcessorFixture(t, ctrl, nil)

	check := pendingCheck(domain.ProviderJumio, "ref-20")
	req := signedRequest(t, domain.ProviderJumio, map[string]interface{}{
		"provider_reference": "ref-20",
		"status":             "clear",
	})

	f.eventRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.checkRepo.EXPECT().
		GetByProviderReference(gomock.Any(), domain.ProviderJumio, "ref-20").
		Return(check, nil)
	f.checkRepo.EXPECT().
		UpdateStatus(gomock.Any(), check.ID, domain.CheckStatusInProgress, gomock.Any()).
		Return(nil)
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.InboundEvent) error {
			assert.Equal(t, domain.EventAMLCheckComplete, event.EventType)
			return nil
		})
	f.audit.EXPECT().ProcessingEvent(domain.ProviderJumio, gomock.Any(), gomock.Any())

	result := f.processor.Process(context.Background(), req)

	assert.True(t, result.Accepted)
	assert.Equal(t, domain.CheckStatusInProgress, result.CheckStatus)
}

func TestInboundProcessor_StoreFailureIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newMemIdemStore()
	f := newProcessorFixture(t, ctrl, store)

	check := pendingCheck(domain.ProviderMock1, "ref-55")
	req := signedRequest(t, domain.ProviderMock1, map[string]interface{}{
		"event_id":           "evt-55",
		"check_id":           check.ID.String(),
		"provider_reference": "ref-55",
		"status":             "approved",
	})
	key := domain.BuildEventIdempotencyKey(domain.ProviderMock1, "evt-55")

	// first delivery: the transition cannot be persisted
	f.eventRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), key).Return(nil, nil)
	f.checkRepo.EXPECT().GetByID(gomock.Any(), check.ID).Return(check, nil)
	f.checkRepo.EXPECT().
		UpdateStatus(gomock.Any(), check.ID, domain.CheckStatusApproved, gomock.Any()).
		Return(assert.AnError)
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.InboundEvent) error {
			assert.Equal(t, domain.EventStatusRejected, event.Status)
			assert.Equal(t, ports.ReasonStoreFailure, event.Reason)
			return nil
		})
	f.audit.EXPECT().ProcessingEvent(domain.ProviderMock1, gomock.Any(), gomock.Any())

	result := f.processor.Process(context.Background(), req)
	assert.False(t, result.Accepted)
	assert.Equal(t, ports.ReasonStoreFailure, result.Reason)

	seen, err := store.Seen(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, seen, "a failed transition must not poison the idempotency key")

	// the provider's retry gets a fresh run and succeeds
	retry := pendingCheck(domain.ProviderMock1, "ref-55")
	retry.ID = check.ID
	f.eventRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), key).Return(nil, nil)
	f.checkRepo.EXPECT().GetByID(gomock.Any(), check.ID).Return(retry, nil)
	f.checkRepo.EXPECT().
		UpdateStatus(gomock.Any(), check.ID, domain.CheckStatusApproved, gomock.Any()).
		Return(nil)
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.InboundEvent) error {
			assert.Equal(t, domain.EventStatusProcessed, event.Status)
			return nil
		})
	f.audit.EXPECT().ProcessingEvent(domain.ProviderMock1, gomock.Any(), gomock.Any())

	result = f.processor.Process(context.Background(), req)
	assert.True(t, result.Accepted)
	assert.Equal(t, ports.ReasonProcessed, result.Reason)
}

func TestInboundProcessor_ConcurrentDuplicatesProcessOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newProcessorFixture(t, ctrl, newMemIdemStore())

	check := pendingCheck(domain.ProviderMock1, "ref-77")
	req := signedRequest(t, domain.ProviderMock1, map[string]interface{}{
		"event_id":           "evt-77",
		"check_id":           check.ID.String(),
		"provider_reference": "ref-77",
		"status":             "approved",
	})

	var created sync.Map
	var processedRecords, duplicateRecords int32
	// first caller does the full pipeline; all others must short-circuit
	f.eventRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, key string) (*domain.InboundEvent, error) {
			if e, ok := created.Load(key); ok {
				return e.(*domain.InboundEvent), nil
			}
			return nil, nil
		}).AnyTimes()
	f.checkRepo.EXPECT().GetByID(gomock.Any(), check.ID).Return(check, nil).Times(1)
	f.checkRepo.EXPECT().
		UpdateStatus(gomock.Any(), check.ID, domain.CheckStatusApproved, gomock.Any()).
		Return(nil).
		Times(1)
	// every delivery leaves an audit record; only the first is processed
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *domain.InboundEvent) error {
			switch event.Status {
			case domain.EventStatusProcessed:
				atomic.AddInt32(&processedRecords, 1)
				created.Store(event.IdempotencyKey, event)
			case domain.EventStatusDuplicate:
				atomic.AddInt32(&duplicateRecords, 1)
			default:
				t.Errorf("unexpected event status %q", event.Status)
			}
			return nil
		}).AnyTimes()
	f.audit.EXPECT().ProcessingEvent(domain.ProviderMock1, gomock.Any(), gomock.Any()).AnyTimes()

	const n = 8
	results := make([]ports.ProcessingResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.processor.Process(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var processed, duplicates int
	for _, r := range results {
		require.True(t, r.Accepted)
		switch r.Reason {
		case ports.ReasonProcessed:
			processed++
		case ports.ReasonDuplicate:
			duplicates++
			assert.True(t, r.IdempotentHit)
		default:
			t.Fatalf("unexpected reason %q", r.Reason)
		}
	}
	assert.Equal(t, 1, processed, "exactly one request may mutate the check")
	assert.Equal(t, n-1, duplicates)
	assert.Equal(t, int32(1), atomic.LoadInt32(&processedRecords))
	assert.Equal(t, int32(n-1), atomic.LoadInt32(&duplicateRecords))
}
