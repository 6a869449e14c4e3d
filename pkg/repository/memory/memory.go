package memory

import (
	"context"
	"sync"
	"time"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
)

// Client is an in-memory repository for development and tests
type Client struct {
	history *historyRepository
}

var _ interfaces.Repository = (*Client)(nil)

// New creates an in-memory repository
func New() *Client {
	return &Client{
		history: &historyRepository{
			entries: make(map[string][]*model.HistoryEntry),
		},
	}
}

// History returns the consultation history repository
func (x *Client) History() interfaces.HistoryRepository {
	return x.history
}

// Close is a no-op for the in-memory backend
func (x *Client) Close() error {
	return nil
}

type historyRepository struct {
	mu      sync.RWMutex
	entries map[string][]*model.HistoryEntry
}

func copyEntry(e *model.HistoryEntry) *model.HistoryEntry {
	copied := *e
	return &copied
}

func (x *historyRepository) Save(ctx context.Context, entry *model.HistoryEntry) (*model.HistoryEntry, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	saved := copyEntry(entry)
	if saved.ID == "" {
		saved.ID = model.NewHistoryID()
	}
	saved.CreatedAt = time.Now().UTC()

	// Keep timestamps non-decreasing even when inserts land within clock
	// resolution; list order relies on it.
	owned := x.entries[saved.UserID]
	if n := len(owned); n > 0 && saved.CreatedAt.Before(owned[n-1].CreatedAt) {
		saved.CreatedAt = owned[n-1].CreatedAt
	}

	x.entries[saved.UserID] = append(owned, saved)
	return copyEntry(saved), nil
}

func (x *historyRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*model.HistoryEntry, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	owned := x.entries[userID]
	var entries []*model.HistoryEntry
	for i := len(owned) - 1; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, copyEntry(owned[i]))
	}
	return entries, nil
}
