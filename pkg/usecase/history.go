package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
)

// DefaultHistoryLimit caps a history listing at the 50 most recent entries
const DefaultHistoryLimit = 50

// SaveHistory persists one finalized summary for the given user
func (uc *UseCases) SaveHistory(ctx context.Context, userID string, entry *model.HistoryEntry) (*model.HistoryEntry, error) {
	toSave := *entry
	toSave.UserID = userID
	if err := toSave.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid history entry")
	}

	saved, err := uc.repo.History().Save(ctx, &toSave)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save history entry", goerr.V("user_id", userID))
	}
	return saved, nil
}

// ListHistory returns the user's newest entries, capped at the default limit
func (uc *UseCases) ListHistory(ctx context.Context, userID string) ([]*model.HistoryEntry, error) {
	entries, err := uc.repo.History().ListByUser(ctx, userID, DefaultHistoryLimit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list history entries", goerr.V("user_id", userID))
	}
	return entries, nil
}
