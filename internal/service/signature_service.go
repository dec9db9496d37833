package service

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kyc-webhook-simulator/internal/core/domain"
	"kyc-webhook-simulator/internal/core/ports"
	"kyc-webhook-simulator/pkg/apperror"
)

// HMACSignatureService implements ports.SignatureService for every provider
// scheme in the registry.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new multi-scheme HMAC signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

func hashFor(scheme domain.SignatureScheme) (func() hash.Hash, bool) {
	switch scheme {
	case domain.SchemeHMACSHA256:
		return sha256.New, true
	case domain.SchemeHMACSHA1:
		return sha1.New, true
	case domain.SchemeHMACSHA512:
		return sha512.New, true
	default:
		return nil, false
	}
}

// canonicalString builds the signed message. Format: TIMESTAMP.PAYLOAD when a
// timestamp is present, bare payload otherwise.
func canonicalString(payload []byte, timestamp int64) []byte {
	if timestamp == 0 {
		return payload
	}
	return []byte(fmt.Sprintf("%d.%s", timestamp, payload))
}

// Sign computes the provider-scheme HMAC of payload.
// Returns the lowercase hex digest with the provider's prefix applied.
func (s *HMACSignatureService) Sign(payload []byte, provider domain.Provider, timestamp int64, secret string) (string, error) {
	cfg, ok := domain.ConfigFor(provider)
	if !ok {
		return "", apperror.ErrUnknownProvider(string(provider))
	}
	newHash, ok := hashFor(cfg.Scheme)
	if !ok {
		return "", apperror.InternalError(fmt.Errorf("unsupported signature scheme %q", cfg.Scheme))
	}
	mac := hmac.New(newHash, []byte(secret))
	mac.Write(canonicalString(payload, timestamp))
	return cfg.SignaturePrefix + hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks if signature matches the provider-scheme HMAC of payload.
// Uses constant-time comparison to prevent timing attacks and fails closed
// on any error.
func (s *HMACSignatureService) Verify(payload []byte, signature string, provider domain.Provider, timestamp int64, secret string) bool {
	if signature == "" {
		return false
	}
	expected, err := s.Sign(payload, provider, timestamp, secret)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ValidateTimestamp rejects timestamps outside the tolerance window in either
// direction. A zero tolerance falls back to the provider default.
func (s *HMACSignatureService) ValidateTimestamp(timestamp int64, provider domain.Provider, tolerance time.Duration) error {
	cfg, ok := domain.ConfigFor(provider)
	if !ok {
		return apperror.ErrUnknownProvider(string(provider))
	}
	if tolerance <= 0 {
		tolerance = cfg.TimestampTolerance
	}
	drift := time.Since(time.Unix(timestamp, 0))
	if drift < 0 {
		drift = -drift
	}
	if drift > tolerance {
		return apperror.ErrTimestampExpired()
	}
	return nil
}

// ExtractSignature returns the value of the provider's signature header.
func (s *HMACSignatureService) ExtractSignature(h http.Header, provider domain.Provider) string {
	cfg, ok := domain.ConfigFor(provider)
	if !ok {
		return ""
	}
	return strings.TrimSpace(h.Get(cfg.SignatureHeader))
}

// ExtractTimestamp parses the provider's timestamp header as unix seconds.
func (s *HMACSignatureService) ExtractTimestamp(h http.Header, provider domain.Provider) (int64, bool) {
	cfg, ok := domain.ConfigFor(provider)
	if !ok || cfg.TimestampHeader == "" {
		return 0, false
	}
	raw := strings.TrimSpace(h.Get(cfg.TimestampHeader))
	if raw == "" {
		return 0, false
	}
	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}

var _ ports.SignatureService = (*HMACSignatureService)(nil)
