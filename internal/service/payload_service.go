package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"kyc-webhook-simulator/internal/core/domain"
	"kyc-webhook-simulator/internal/core/ports"
	"kyc-webhook-simulator/pkg/apperror"
)

// payloadTemplate is one candidate body shape for an outcome. Weight is the
// relative probability of choosing this template among the candidates; base
// returns a fresh copy of the template-specific fields.
type payloadTemplate struct {
	provider  domain.Provider
	eventType domain.EventType
	weight    float64
	base      func() map[string]interface{}
}

// templatePayloadGenerator implements ports.PayloadGenerator with
// weighted-random template selection. The outcome is fixed by the caller;
// only the body shape varies.
type templatePayloadGenerator struct {
	mu        sync.Mutex
	rng       *rand.Rand
	templates map[domain.Outcome][]payloadTemplate
	now       func() time.Time
}

// NewTemplatePayloadGenerator creates a payload generator seeded from seed.
// Pass 0 for a time-based seed.
func NewTemplatePayloadGenerator(seed int64) ports.PayloadGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &templatePayloadGenerator{
		rng:       rand.New(rand.NewSource(seed)),
		templates: defaultTemplates(),
		now:       time.Now,
	}
}

// Generate builds a provider-shaped body for the outcome. Common fields
// always override template fields so a subject reference is never lost to a
// template collision.
func (g *templatePayloadGenerator) Generate(provider domain.Provider, outcome domain.Outcome, refs ports.SubjectRefs) (map[string]interface{}, error) {
	if !domain.IsKnownProvider(provider) {
		return nil, apperror.ErrUnknownProvider(string(provider))
	}
	candidates, ok := g.templates[outcome]
	if !ok || len(candidates) == 0 {
		return nil, apperror.ErrInvalidOutcome(string(outcome))
	}

	// Prefer templates authored for this provider, fall back to the full set.
	matching := make([]payloadTemplate, 0, len(candidates))
	for _, t := range candidates {
		if t.provider == provider {
			matching = append(matching, t)
		}
	}
	if len(matching) == 0 {
		matching = candidates
	}

	tmpl := g.pick(matching)
	payload := tmpl.base()

	payload["check_id"] = refs.CheckID.String()
	payload["user_id"] = refs.UserID.String()
	payload["provider_reference"] = refs.ProviderReference
	payload["timestamp"] = g.now().UTC().Format(time.RFC3339)
	payload["event_id"] = uuid.New().String()
	payload["event_type"] = string(tmpl.eventType)

	switch provider {
	case domain.ProviderMock1:
		payload["api_version"] = "v2.1"
		payload["webhook_version"] = "1.0"
		payload["environment"] = "sandbox"
	case domain.ProviderMock2:
		payload["version"] = "2.0"
		payload["source"] = "kyc_service"
		payload["test_mode"] = true
	}

	return payload, nil
}

// pick selects one template proportionally to weight.
func (g *templatePayloadGenerator) pick(candidates []payloadTemplate) payloadTemplate {
	if len(candidates) == 1 {
		return candidates[0]
	}
	var total float64
	for _, t := range candidates {
		total += t.weight
	}
	g.mu.Lock()
	r := g.rng.Float64() * total
	g.mu.Unlock()
	for _, t := range candidates {
		r -= t.weight
		if r < 0 {
			return t
		}
	}
	return candidates[len(candidates)-1]
}

func defaultTemplates() map[domain.Outcome][]payloadTemplate {
	return map[domain.Outcome][]payloadTemplate{
		domain.OutcomeApproved: {
			{
				provider:  domain.ProviderMock1,
				eventType: domain.EventKYCStatusUpdate,
				weight:    0.7,
				base: func() map[string]interface{} {
					return map[string]interface{}{
						"status": "approved",
						"result": map[string]interface{}{
							"overall_result":   "PASS",
							"confidence_score": 0.95,
							"risk_level":       "low",
							"verification_checks": map[string]interface{}{
								"document_verification": "PASS",
								"face_match":            "PASS",
								"liveness_check":        "PASS",
							},
							"extracted_data": map[string]interface{}{
								"first_name":      "John",
								"last_name":       "Doe",
								"date_of_birth":   "1990-01-15",
								"document_number": "P123456789",
								"nationality":     "US",
							},
						},
					}
				},
			},
			{
				provider:  domain.ProviderMock2,
				eventType: domain.EventKYCStatusUpdate,
				weight:    0.7,
				base: func() map[string]interface{} {
					return map[string]interface{}{
						"status": "approved",
						"result": map[string]interface{}{
							"decision": "APPROVED",
							"score":    92,
							"reasons": []string{
								"High confidence document verification",
								"Successful biometric match",
							},
							"document_analysis": map[string]interface{}{
								"authenticity": "AUTHENTIC",
								"quality":      "HIGH",
								"tampering":    "NONE_DETECTED",
							},
						},
					}
				},
			},
		},
		domain.OutcomeRejected: {
			{
				provider:  domain.ProviderMock1,
				eventType: domain.EventKYCStatusUpdate,
				weight:    0.15,
				base: func() map[string]interface{} {
					return map[string]interface{}{
						"status": "rejected",
						"result": map[string]interface{}{
							"overall_result":   "FAIL",
							"confidence_score": 0.25,
							"risk_level":       "high",
							"verification_checks": map[string]interface{}{
								"document_verification": "FAIL",
								"face_match":            "FAIL",
								"liveness_check":        "PASS",
							},
							"rejection_reasons": []string{
								"Document appears to be tampered",
								"Face match confidence too low",
								"Suspicious document patterns detected",
							},
						},
					}
				},
			},
			{
				provider:  domain.ProviderMock2,
				eventType: domain.EventKYCStatusUpdate,
				weight:    0.15,
				base: func() map[string]interface{} {
					return map[string]interface{}{
						"status": "rejected",
						"result": map[string]interface{}{
							"decision": "DECLINED",
							"score":    18,
							"reasons": []string{
								"Poor document quality",
								"Failed liveness detection",
								"Potential fraud indicators",
							},
							"document_analysis": map[string]interface{}{
								"authenticity": "SUSPICIOUS",
								"quality":      "LOW",
								"tampering":    "DETECTED",
							},
						},
					}
				},
			},
		},
		domain.OutcomeManualReview: {
			{
				provider:  domain.ProviderMock1,
				eventType: domain.EventKYCStatusUpdate,
				weight:    0.15,
				base: func() map[string]interface{} {
					return map[string]interface{}{
						"status": "manual_review",
						"result": map[string]interface{}{
							"overall_result":   "REVIEW",
							"confidence_score": 0.65,
							"risk_level":       "medium",
							"verification_checks": map[string]interface{}{
								"document_verification": "PASS",
								"face_match":            "REVIEW",
								"liveness_check":        "PASS",
							},
							"review_reasons": []string{
								"Borderline face match score requires human review",
								"Document quality acceptable but not optimal",
							},
						},
					}
				},
			},
			{
				provider:  domain.ProviderMock2,
				eventType: domain.EventKYCStatusUpdate,
				weight:    0.15,
				base: func() map[string]interface{} {
					return map[string]interface{}{
						"status": "manual_review",
						"result": map[string]interface{}{
							"decision": "REVIEW_REQUIRED",
							"score":    68,
							"reasons": []string{
								"Ambiguous document features",
								"Moderate confidence scores",
							},
							"document_analysis": map[string]interface{}{
								"authenticity": "UNCLEAR",
								"quality":      "MEDIUM",
								"tampering":    "NONE_DETECTED",
							},
							"review_notes": "Manual verification recommended due to borderline automated results",
						},
					}
				},
			},
		},
		domain.OutcomeDocumentVerified: {
			{
				provider:  domain.ProviderMock1,
				eventType: domain.EventDocumentVerified,
				weight:    1.0,
				base: func() map[string]interface{} {
					return map[string]interface{}{
						"document_type":       "passport",
						"verification_status": "verified",
						"extracted_data": map[string]interface{}{
							"document_number": "P987654321",
							"expiry_date":     "2030-12-31",
							"issuing_country": "US",
							"holder_name":     "Jane Smith",
						},
						"quality_checks": map[string]interface{}{
							"image_quality":     "HIGH",
							"text_clarity":      "GOOD",
							"security_features": "VERIFIED",
						},
					}
				},
			},
		},
		domain.OutcomeAMLClear: {
			{
				provider:  domain.ProviderMock1,
				eventType: domain.EventAMLCheckComplete,
				weight:    0.8,
				base: func() map[string]interface{} {
					return map[string]interface{}{
						"status":     "clear",
						"risk_score": 15,
						"risk_level": "low",
						"matches":    []interface{}{},
						"screening_results": map[string]interface{}{
							"sanctions_check": "CLEAR",
							"pep_check":       "CLEAR",
							"adverse_media":   "CLEAR",
							"watchlist_check": "CLEAR",
						},
					}
				},
			},
		},
		domain.OutcomeAMLFlagged: {
			{
				provider:  domain.ProviderMock1,
				eventType: domain.EventAMLCheckComplete,
				weight:    0.1,
				base: func() map[string]interface{} {
					return map[string]interface{}{
						"status":     "flagged",
						"risk_score": 85,
						"risk_level": "high",
						"matches": []interface{}{
							map[string]interface{}{
								"list_type":      "sanctions",
								"match_strength": "strong",
								"entity_name":    "John Doe",
								"match_details":  "Name and DOB match",
							},
						},
						"screening_results": map[string]interface{}{
							"sanctions_check": "MATCH",
							"pep_check":       "CLEAR",
							"adverse_media":   "POTENTIAL_MATCH",
							"watchlist_check": "CLEAR",
						},
					}
				},
			},
		},
	}
}
