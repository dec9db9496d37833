package handler

import (
	"io"
	"strconv"
	"time"

	"kyc-webhook-simulator/internal/adapter/http/dto"
	"kyc-webhook-simulator/internal/core/domain"
	"kyc-webhook-simulator/internal/core/ports"
	"kyc-webhook-simulator/pkg/apperror"
	"kyc-webhook-simulator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WebhookHandler handles inbound provider callbacks and the event audit
// read side.
type WebhookHandler struct {
	processor ports.InboundProcessor
	sigSvc    ports.SignatureService
	eventRepo ports.EventRepository
	log       zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(processor ports.InboundProcessor, sigSvc ports.SignatureService, eventRepo ports.EventRepository, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{processor: processor, sigSvc: sigSvc, eventRepo: eventRepo, log: log}
}

// Receive handles POST /webhooks/kyc/:provider and POST /webhooks/aml/:provider.
// KYC and AML callbacks share the pipeline; the outcome vocabulary in the
// payload distinguishes them.
func (h *WebhookHandler) Receive(c *gin.Context) {
	provider := domain.Provider(c.Param("provider"))
	if !domain.IsKnownProvider(provider) {
		response.Error(c, apperror.ErrUnknownProvider(string(provider)))
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	ts, hasTS := h.sigSvc.ExtractTimestamp(c.Request.Header, provider)
	result := h.processor.Process(c.Request.Context(), ports.InboundRequest{
		Provider:     provider,
		Payload:      payload,
		Signature:    h.sigSvc.ExtractSignature(c.Request.Header, provider),
		Timestamp:    ts,
		HasTimestamp: hasTS,
		ReceivedAt:   time.Now().UTC(),
	})

	if !result.Accepted {
		response.Error(c, rejectionError(provider, result.Reason))
		return
	}
	response.Accepted(c, result)
}

// rejectionError maps a processing rejection reason to its transport error.
func rejectionError(provider domain.Provider, reason string) *apperror.AppError {
	switch reason {
	case ports.ReasonInvalidSignature:
		return apperror.ErrInvalidSignature()
	case ports.ReasonMalformedPayload:
		return apperror.ErrMalformedPayload()
	case ports.ReasonUnknownProvider:
		return apperror.ErrUnknownProvider(string(provider))
	case ports.ReasonUnknownCheck:
		return apperror.ErrUnknownCheck()
	case ports.ReasonStoreFailure:
		return apperror.ErrDatastore(nil)
	default:
		return apperror.InternalError(nil)
	}
}

// ListEvents handles GET /api/v1/events?provider=&limit= — the inbound
// audit trail for one provider, newest first.
func (h *WebhookHandler) ListEvents(c *gin.Context) {
	provider := domain.Provider(c.Query("provider"))
	if !domain.IsKnownProvider(provider) {
		response.Error(c, apperror.ErrUnknownProvider(string(provider)))
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			response.Error(c, apperror.Validation("limit must be an integer between 1 and 500"))
			return
		}
		limit = n
	}

	events, err := h.eventRepo.ListByProvider(c.Request.Context(), provider, limit)
	if err != nil {
		h.log.Error().Err(err).Str("provider", string(provider)).Msg("failed to list inbound events")
		response.Error(c, err)
		return
	}

	items := make([]dto.InboundEventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, dto.ToInboundEventResponse(e))
	}
	response.OK(c, gin.H{"items": items, "count": len(items)})
}
