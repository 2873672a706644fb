package moderation

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the review lifecycle state shared by every submission table.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known lifecycle state.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Review holds the moderation columns embedded in every submission model.
// A new record starts pending with the review fields null; approve and reject
// set them together. Transitions are deliberately permissive: any state can be
// approved or rejected again (re-review is allowed, and rejecting an approved
// record is how a live listing is taken down), but nothing ever returns to
// pending.
type Review struct {
	Status          Status     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	SubmittedBy     *uuid.UUID `gorm:"type:uuid;index" json:"submitted_by,omitempty"`
	SubmittedAt     time.Time  `gorm:"not null;index" json:"submitted_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	RejectionReason *string    `gorm:"size:500" json:"rejection_reason,omitempty"`
}

// ApproveUpdates builds the column map for an approval: status approved,
// reviewer identity and timestamp recorded, any prior rejection reason cleared.
func ApproveUpdates(reviewerID uuid.UUID, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"status":           StatusApproved,
		"reviewed_at":      now,
		"reviewed_by":      reviewerID,
		"rejection_reason": nil,
	}
}

// RejectUpdates builds the column map for a rejection. The reason is trimmed;
// a blank reason is stored as null.
func RejectUpdates(reviewerID uuid.UUID, reason string, now time.Time) map[string]interface{} {
	updates := map[string]interface{}{
		"status":           StatusRejected,
		"reviewed_at":      now,
		"reviewed_by":      reviewerID,
		"rejection_reason": nil,
	}
	if trimmed := strings.TrimSpace(reason); trimmed != "" {
		updates["rejection_reason"] = trimmed
	}
	return updates
}
