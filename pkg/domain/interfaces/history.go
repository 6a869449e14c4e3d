package interfaces

import (
	"context"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
)

// HistoryRepository defines the interface for consultation history persistence
type HistoryRepository interface {
	// Save inserts one immutable entry and returns it with the generated ID
	// and server-assigned creation timestamp. Duplicate calls create
	// duplicate rows.
	Save(ctx context.Context, entry *model.HistoryEntry) (*model.HistoryEntry, error)

	// ListByUser returns entries owned by userID only, newest-created-first,
	// truncated to limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.HistoryEntry, error)
}
