package handler

import (
	"strconv"
	"time"

	"kyc-webhook-simulator/internal/adapter/http/dto"
	"kyc-webhook-simulator/internal/core/domain"
	"kyc-webhook-simulator/internal/core/ports"
	"kyc-webhook-simulator/pkg/apperror"
	"kyc-webhook-simulator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SimulationHandler handles the simulation admin surface: scheduling,
// cancelling and inspecting outbound webhook deliveries.
type SimulationHandler struct {
	scheduler ports.WebhookScheduler
	tracker   ports.DeliveryTracker
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(scheduler ports.WebhookScheduler, tracker ports.DeliveryTracker) *SimulationHandler {
	return &SimulationHandler{scheduler: scheduler, tracker: tracker}
}

// Schedule handles POST /api/v1/simulations.
func (h *SimulationHandler) Schedule(c *gin.Context) {
	req, err := h.bindScheduleRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.scheduler.Schedule(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	delivery, _ := h.scheduler.Get(id)
	resp := dto.ScheduleSimulationResponse{ScheduleID: id, Status: string(domain.DeliveryStatusScheduled)}
	if delivery != nil {
		resp.FireAt = delivery.FireAt.UTC().Format(time.RFC3339)
	}
	response.Created(c, resp)
}

// SendNow handles POST /api/v1/simulations/send — synchronous dispatch
// bypassing the delay.
func (h *SimulationHandler) SendNow(c *gin.Context) {
	req, err := h.bindScheduleRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.scheduler.SendImmediately(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToDispatchResultResponse(result))
}

// List handles GET /api/v1/simulations?status=.
func (h *SimulationHandler) List(c *gin.Context) {
	var status *domain.DeliveryStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.DeliveryStatus(raw)
		switch s {
		case domain.DeliveryStatusScheduled, domain.DeliveryStatusSending,
			domain.DeliveryStatusCompleted, domain.DeliveryStatusFailed,
			domain.DeliveryStatusCancelled:
			status = &s
		default:
			response.Error(c, apperror.Validation("unknown delivery status: "+raw))
			return
		}
	}

	deliveries := h.scheduler.List(status)
	items := make([]dto.DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		items = append(items, dto.ToDeliveryResponse(d))
	}
	response.OK(c, gin.H{"items": items, "count": len(items)})
}

// Get handles GET /api/v1/simulations/:id.
func (h *SimulationHandler) Get(c *gin.Context) {
	delivery, ok := h.scheduler.Get(c.Param("id"))
	if !ok {
		response.Error(c, apperror.ErrDeliveryNotFound())
		return
	}
	response.OK(c, dto.ToDeliveryResponse(*delivery))
}

// Cancel handles DELETE /api/v1/simulations/:id. Only still-scheduled
// deliveries can be cancelled.
func (h *SimulationHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if h.scheduler.Cancel(id) {
		response.OK(c, gin.H{"schedule_id": id, "status": string(domain.DeliveryStatusCancelled)})
		return
	}
	if _, ok := h.scheduler.Get(id); !ok {
		response.Error(c, apperror.ErrDeliveryNotFound())
		return
	}
	response.Error(c, apperror.ErrDeliveryNotCancellable())
}

// Stats handles GET /api/v1/simulations/stats?provider=.
func (h *SimulationHandler) Stats(c *gin.Context) {
	var provider *domain.Provider
	if raw := c.Query("provider"); raw != "" {
		p := domain.Provider(raw)
		if !domain.IsKnownProvider(p) {
			response.Error(c, apperror.ErrUnknownProvider(raw))
			return
		}
		provider = &p
	}
	response.OK(c, h.tracker.Stats(provider))
}

// Recent handles GET /api/v1/simulations/recent?limit=.
func (h *SimulationHandler) Recent(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			response.Error(c, apperror.Validation("limit must be an integer between 1 and 500"))
			return
		}
		limit = n
	}
	attempts := h.tracker.Recent(limit)
	response.OK(c, gin.H{"items": attempts, "count": len(attempts)})
}

// Clear handles POST /api/v1/simulations/clear — wipes tracked delivery
// history. Demo tooling, not part of normal operation.
func (h *SimulationHandler) Clear(c *gin.Context) {
	h.tracker.Clear()
	response.OK(c, gin.H{"cleared": true})
}

// bindScheduleRequest validates the body and fills in generated subject
// identifiers where the caller left them out.
func (h *SimulationHandler) bindScheduleRequest(c *gin.Context) (ports.ScheduleRequest, error) {
	var body dto.ScheduleSimulationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		return ports.ScheduleRequest{}, apperror.Validation(err.Error())
	}

	outcome, ok := domain.ParseOutcome(body.Outcome)
	if !ok {
		return ports.ScheduleRequest{}, apperror.ErrInvalidOutcome(body.Outcome)
	}

	req := ports.ScheduleRequest{
		Provider:          domain.Provider(body.Provider),
		Outcome:           outcome,
		ProviderReference: body.ProviderReference,
		TargetURL:         body.TargetURL,
		DelayMin:          time.Duration(body.DelayMinSeconds * float64(time.Second)),
		DelayMax:          time.Duration(body.DelayMaxSeconds * float64(time.Second)),
	}

	// Generated subject identifiers keep ad-hoc simulations one-call.
	req.CheckID = uuid.New()
	if body.CheckID != "" {
		id, err := uuid.Parse(body.CheckID)
		if err != nil {
			return ports.ScheduleRequest{}, apperror.Validation("check_id must be a UUID")
		}
		req.CheckID = id
	}
	req.UserID = uuid.New()
	if body.UserID != "" {
		id, err := uuid.Parse(body.UserID)
		if err != nil {
			return ports.ScheduleRequest{}, apperror.Validation("user_id must be a UUID")
		}
		req.UserID = id
	}
	if req.ProviderReference == "" {
		req.ProviderReference = "sim_" + uuid.New().String()[:8]
	}
	return req, nil
}
