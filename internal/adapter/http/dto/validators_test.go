package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kyc-webhook-simulator/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func bindJSON(t *testing.T, body string) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var dst ScheduleSimulationRequest
	return c.ShouldBindJSON(&dst)
}

func TestScheduleSimulationRequest_ValidBody(t *testing.T) {
	err := bindJSON(t, `{"provider":"mock_provider_1","outcome":"approved"}`)
	assert.NoError(t, err)
}

func TestScheduleSimulationRequest_SafeIDRejectsInjection(t *testing.T) {
	err := bindJSON(t, `{"provider":"mock_provider_1","outcome":"approved","provider_reference":"ref; DROP TABLE"}`)
	assert.Error(t, err)
}

func TestScheduleSimulationRequest_SafeURLRejectsScheme(t *testing.T) {
	err := bindJSON(t, `{"provider":"jumio","outcome":"approved","target_url":"ftp://example.com/hook"}`)
	assert.Error(t, err)

	err = bindJSON(t, `{"provider":"jumio","outcome":"approved","target_url":"https://example.com/hook"}`)
	assert.NoError(t, err)
}

func TestScheduleSimulationRequest_InvalidUUID(t *testing.T) {
	err := bindJSON(t, `{"provider":"veriff","outcome":"rejected","check_id":"not-a-uuid"}`)
	assert.Error(t, err)
}

func TestScheduleSimulationRequest_NegativeDelay(t *testing.T) {
	err := bindJSON(t, `{"provider":"onfido","outcome":"approved","delay_min_seconds":-3}`)
	assert.Error(t, err)
}

func TestToDeliveryResponse_MapsCompletedAt(t *testing.T) {
	done := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d := domain.ScheduledDelivery{
		ID:          "d-1",
		CheckID:     uuid.New(),
		UserID:      uuid.New(),
		Provider:    domain.ProviderJumio,
		Outcome:     domain.OutcomeApproved,
		Status:      domain.DeliveryStatusCompleted,
		Attempts:    2,
		CreatedAt:   done.Add(-time.Minute),
		FireAt:      done.Add(-30 * time.Second),
		CompletedAt: &done,
	}

	resp := ToDeliveryResponse(d)
	assert.Equal(t, "d-1", resp.ScheduleID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 2, resp.Attempts)
	require.NotNil(t, resp.CompletedAt)
	assert.Equal(t, "2026-03-01T12:00:00Z", *resp.CompletedAt)
}

func TestToInboundEventResponse_OmitsNilCheckID(t *testing.T) {
	e := domain.InboundEvent{
		ID:         uuid.New(),
		Provider:   domain.ProviderMock1,
		EventType:  domain.EventKYCStatusUpdate,
		Status:     domain.EventStatusRejected,
		Reason:     "invalid_signature",
		ReceivedAt: time.Now(),
	}
	resp := ToInboundEventResponse(e)
	assert.Nil(t, resp.CheckID)
	assert.Equal(t, "rejected", resp.Status)
}
