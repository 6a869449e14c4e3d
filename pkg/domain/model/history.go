package model

import (
	"time"

	"github.com/google/uuid"
)

// HistoryID is a UUID-based identifier for a saved consultation summary
type HistoryID string

// NewHistoryID generates a new UUID v4 HistoryID
func NewHistoryID() HistoryID {
	return HistoryID(uuid.New().String())
}

// String returns the string representation of HistoryID
func (x HistoryID) String() string {
	return string(x)
}

// HistoryEntry is one finalized consultation summary saved by a user.
// Entries are insert-only: never mutated, never deleted.
type HistoryEntry struct {
	ID          HistoryID
	UserID      string
	PatientName string
	DateOfVisit string
	Summary     string
	CreatedAt   time.Time
}

// Validate checks the fields required before persisting an entry
func (x *HistoryEntry) Validate() error {
	if x.UserID == "" {
		return ErrInvalidRequest
	}
	if x.PatientName == "" || x.DateOfVisit == "" || x.Summary == "" {
		return ErrInvalidRequest
	}
	return nil
}
