package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckStatus represents the verification state of a check.
type CheckStatus string

const (
	CheckStatusPending      CheckStatus = "pending"
	CheckStatusInProgress   CheckStatus = "in_progress"
	CheckStatusApproved     CheckStatus = "approved"
	CheckStatusRejected     CheckStatus = "rejected"
	CheckStatusManualReview CheckStatus = "manual_review"
)

// VerificationCheck is a KYC verification driven by inbound webhook events.
type VerificationCheck struct {
	ID                uuid.UUID   `json:"id"`
	UserID            uuid.UUID   `json:"user_id"`
	Provider          Provider    `json:"provider"`
	ProviderReference string      `json:"provider_reference"`
	Status            CheckStatus `json:"status"`
	RiskLevel         *string     `json:"risk_level"`
	Notes             *string     `json:"notes"`
	SubmittedAt       time.Time   `json:"submitted_at"`
	CompletedAt       *time.Time  `json:"completed_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// automatedTransitions is the state machine driven by the webhook pipeline.
// manual_review has no automated exits: a human reviewer resolves it.
var automatedTransitions = map[CheckStatus][]CheckStatus{
	CheckStatusPending:      {CheckStatusInProgress, CheckStatusRejected},
	CheckStatusInProgress:   {CheckStatusApproved, CheckStatusRejected, CheckStatusManualReview},
	CheckStatusApproved:     {},
	CheckStatusRejected:     {},
	CheckStatusManualReview: {},
}

// manualTransitions covers human review actions, which arrive through an
// external collaborator rather than the webhook pipeline.
var manualTransitions = map[CheckStatus][]CheckStatus{
	CheckStatusManualReview: {CheckStatusApproved, CheckStatusRejected},
}

// IsTerminal reports whether the automated pipeline may still move the check.
func (c *VerificationCheck) IsTerminal() bool {
	return len(automatedTransitions[c.Status]) == 0
}

// CanTransitionTo checks the automated state machine.
func (c *VerificationCheck) CanTransitionTo(next CheckStatus) bool {
	for _, s := range automatedTransitions[c.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// CanTransitionManually checks the human-review state machine.
func (c *VerificationCheck) CanTransitionManually(next CheckStatus) bool {
	for _, s := range manualTransitions[c.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// UpdateStatus applies an automated transition with validation. Returns false
// without mutating the check if the transition is not permitted.
func (c *VerificationCheck) UpdateStatus(next CheckStatus, notes *string) bool {
	if !c.CanTransitionTo(next) {
		return false
	}

	c.Status = next
	if notes != nil {
		c.Notes = notes
	}
	c.UpdatedAt = time.Now().UTC()

	if next == CheckStatusApproved || next == CheckStatusRejected || next == CheckStatusManualReview {
		now := time.Now().UTC()
		c.CompletedAt = &now
	}
	return true
}

// ApplyOutcome drives the check with a webhook outcome. A provider can decide
// a still-pending check in one callback, so a pending check passes through
// in_progress before taking a decision state.
func (c *VerificationCheck) ApplyOutcome(o Outcome, notes *string) bool {
	next, ok := StatusForOutcome(o)
	if !ok {
		return false
	}

	if c.Status == CheckStatusPending && next != CheckStatusInProgress && c.CanTransitionTo(CheckStatusInProgress) && !c.CanTransitionTo(next) {
		c.Status = CheckStatusInProgress
	}
	return c.UpdateStatus(next, notes)
}

// StatusForOutcome maps a webhook outcome to the check status it drives.
// Progress events (document verified, AML clear) move a pending check into
// in_progress; an AML flag forces manual review.
func StatusForOutcome(o Outcome) (CheckStatus, bool) {
	switch o {
	case OutcomeApproved:
		return CheckStatusApproved, true
	case OutcomeRejected:
		return CheckStatusRejected, true
	case OutcomeManualReview:
		return CheckStatusManualReview, true
	case OutcomeDocumentVerified, OutcomeAMLClear:
		return CheckStatusInProgress, true
	case OutcomeAMLFlagged:
		return CheckStatusManualReview, true
	}
	return "", false
}
