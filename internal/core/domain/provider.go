package domain

import "time"

// Provider identifies a simulated external KYC/AML verification source.
type Provider string

const (
	ProviderMock1  Provider = "mock_provider_1"
	ProviderMock2  Provider = "mock_provider_2"
	ProviderJumio  Provider = "jumio"
	ProviderOnfido Provider = "onfido"
	ProviderVeriff Provider = "veriff"
)

// SignatureScheme is the HMAC scheme a provider signs payloads with.
type SignatureScheme string

const (
	SchemeHMACSHA256 SignatureScheme = "hmac_sha256"
	SchemeHMACSHA1   SignatureScheme = "hmac_sha1"
	SchemeHMACSHA512 SignatureScheme = "hmac_sha512"
)

// ProviderConfig describes how a provider signs and shapes its webhooks.
type ProviderConfig struct {
	Scheme             SignatureScheme
	SignatureHeader    string
	SignaturePrefix    string
	TimestampHeader    string
	TimestampTolerance time.Duration
	// UsesEventID selects idempotency key derivation: providers that emit a
	// unique event_id key on it; the rest fall back to
	// provider:reference:outcome.
	UsesEventID bool
}

// providerConfigs is the closed set of supported providers.
var providerConfigs = map[Provider]ProviderConfig{
	ProviderMock1: {
		Scheme:             SchemeHMACSHA256,
		SignatureHeader:    "X-Webhook-Signature",
		SignaturePrefix:    "sha256=",
		TimestampHeader:    "X-Webhook-Timestamp",
		TimestampTolerance: 5 * time.Minute,
		UsesEventID:        true,
	},
	ProviderMock2: {
		Scheme:             SchemeHMACSHA512,
		SignatureHeader:    "X-Provider-Signature",
		SignaturePrefix:    "sha512=",
		TimestampHeader:    "X-Provider-Timestamp",
		TimestampTolerance: 10 * time.Minute,
		UsesEventID:        true,
	},
	ProviderJumio: {
		Scheme:             SchemeHMACSHA256,
		SignatureHeader:    "X-Jumio-Signature",
		SignaturePrefix:    "sha256=",
		TimestampHeader:    "X-Jumio-Timestamp",
		TimestampTolerance: 5 * time.Minute,
	},
	ProviderOnfido: {
		Scheme:             SchemeHMACSHA1,
		SignatureHeader:    "X-SHA1-Signature",
		SignaturePrefix:    "sha1=",
		TimestampHeader:    "X-Onfido-Timestamp",
		TimestampTolerance: 5 * time.Minute,
	},
	ProviderVeriff: {
		Scheme:             SchemeHMACSHA256,
		SignatureHeader:    "X-Veriff-Signature",
		SignaturePrefix:    "hmac-sha256=",
		TimestampHeader:    "X-Veriff-Timestamp",
		TimestampTolerance: 5 * time.Minute,
	},
}

// ConfigFor returns the provider configuration for a known provider.
func ConfigFor(p Provider) (ProviderConfig, bool) {
	cfg, ok := providerConfigs[p]
	return cfg, ok
}

// KnownProviders returns the closed provider set.
func KnownProviders() []Provider {
	providers := make([]Provider, 0, len(providerConfigs))
	for p := range providerConfigs {
		providers = append(providers, p)
	}
	return providers
}

// IsKnownProvider reports whether p is in the closed provider set.
func IsKnownProvider(p Provider) bool {
	_, ok := providerConfigs[p]
	return ok
}

// Outcome is the verification result communicated by a webhook.
type Outcome string

const (
	OutcomeApproved         Outcome = "approved"
	OutcomeRejected         Outcome = "rejected"
	OutcomeManualReview     Outcome = "manual_review"
	OutcomeDocumentVerified Outcome = "document_verified"
	OutcomeAMLClear         Outcome = "aml_clear"
	OutcomeAMLFlagged       Outcome = "aml_flagged"
)

// ParseOutcome validates an outcome string from the admin surface.
func ParseOutcome(s string) (Outcome, bool) {
	switch Outcome(s) {
	case OutcomeApproved, OutcomeRejected, OutcomeManualReview,
		OutcomeDocumentVerified, OutcomeAMLClear, OutcomeAMLFlagged:
		return Outcome(s), true
	}
	return "", false
}

// statusVocabulary maps provider status terms back to the internal outcome
// enum. Providers share terms for KYC statuses; AML and document events use
// their own vocabulary.
var statusVocabulary = map[string]Outcome{
	"approved":      OutcomeApproved,
	"rejected":      OutcomeRejected,
	"manual_review": OutcomeManualReview,
	"verified":      OutcomeDocumentVerified,
	"clear":         OutcomeAMLClear,
	"flagged":       OutcomeAMLFlagged,
}

// MapProviderStatus translates a provider's status term to the internal
// outcome enum.
func MapProviderStatus(status string) (Outcome, bool) {
	o, ok := statusVocabulary[status]
	return o, ok
}

// EventType classifies inbound webhook events.
type EventType string

const (
	EventKYCStatusUpdate  EventType = "kyc_status_update"
	EventDocumentVerified EventType = "kyc_document_verified"
	EventAMLCheckComplete EventType = "aml_check_complete"
)

// EventTypeFor returns the event type carrying a given outcome.
func EventTypeFor(o Outcome) EventType {
	switch o {
	case OutcomeDocumentVerified:
		return EventDocumentVerified
	case OutcomeAMLClear, OutcomeAMLFlagged:
		return EventAMLCheckComplete
	default:
		return EventKYCStatusUpdate
	}
}
