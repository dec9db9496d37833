package service

import (
	"github.com/rs/zerolog"

	"kyc-webhook-simulator/internal/core/domain"
	"kyc-webhook-simulator/internal/core/ports"
)

type auditService struct {
	log zerolog.Logger
}

// NewAuditService creates the structured audit logger. Payloads appear only
// as hashes; raw webhook bodies carry PII and must never reach a log line.
func NewAuditService(log zerolog.Logger) ports.AuditService {
	return &auditService{log: log}
}

// SecurityEvent records a rejected inbound request.
func (s *auditService) SecurityEvent(provider domain.Provider, reason string, payloadHash string) {
	s.log.Warn().
		Str("audit", "security").
		Str("provider", string(provider)).
		Str("reason", reason).
		Str("payload_sha256", payloadHash).
		Msg("webhook security event")
}

// ProcessingEvent records the outcome of inbound processing.
func (s *auditService) ProcessingEvent(provider domain.Provider, result ports.ProcessingResult, payloadHash string) {
	evt := s.log.Info()
	if !result.Accepted {
		evt = s.log.Warn()
	}
	evt.
		Str("audit", "processing").
		Str("provider", string(provider)).
		Str("reason", result.Reason).
		Bool("accepted", result.Accepted).
		Bool("idempotent_hit", result.IdempotentHit).
		Str("payload_sha256", payloadHash).
		Msg("webhook processed")
}
