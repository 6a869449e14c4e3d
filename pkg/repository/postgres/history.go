package postgres

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
)

// createHistoryTable is idempotent and executed inside the same transaction
// as the statement that needs it, so the schema appears on first use.
// date_of_visit is TEXT on purpose: the core never validates the format and
// the contract is to round-trip the caller's string.
const createHistoryTable = `
CREATE TABLE IF NOT EXISTS consultation_history (
	id UUID PRIMARY KEY,
	user_id TEXT NOT NULL,
	patient_name TEXT NOT NULL,
	date_of_visit TEXT NOT NULL,
	summary TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func errNotConfigured() error {
	return goerr.Wrap(model.ErrStoreNotConfigured, "set VISITNOTES_DATABASE_DSN or DATABASE_URL")
}

type historyRepository struct {
	db *sql.DB
}

// Save inserts one entry in a single transaction: ensure schema, insert,
// commit. Any failure rolls the transaction back.
func (x *historyRepository) Save(ctx context.Context, entry *model.HistoryEntry) (*model.HistoryEntry, error) {
	if x.db == nil {
		return nil, errNotConfigured()
	}

	saved := *entry
	if saved.ID == "" {
		saved.ID = model.NewHistoryID()
	}

	tx, err := x.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, createHistoryTable); err != nil {
		return nil, goerr.Wrap(err, "failed to ensure history schema")
	}

	row := tx.QueryRowContext(ctx,
		`INSERT INTO consultation_history (id, user_id, patient_name, date_of_visit, summary)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		saved.ID.String(), saved.UserID, saved.PatientName, saved.DateOfVisit, saved.Summary,
	)
	if err := row.Scan(&saved.CreatedAt); err != nil {
		return nil, goerr.Wrap(err, "failed to insert history entry", goerr.V("id", saved.ID))
	}

	if err := tx.Commit(); err != nil {
		return nil, goerr.Wrap(err, "failed to commit history entry", goerr.V("id", saved.ID))
	}

	return &saved, nil
}

// ListByUser returns the newest entries owned by userID, capped at limit
func (x *historyRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*model.HistoryEntry, error) {
	if x.db == nil {
		return nil, errNotConfigured()
	}

	tx, err := x.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, createHistoryTable); err != nil {
		return nil, goerr.Wrap(err, "failed to ensure history schema")
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id, user_id, patient_name, date_of_visit, summary, created_at
		 FROM consultation_history
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query history entries", goerr.V("user_id", userID))
	}
	defer rows.Close() //nolint:errcheck

	var entries []*model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		var id string
		if err := rows.Scan(&id, &entry.UserID, &entry.PatientName, &entry.DateOfVisit, &entry.Summary, &entry.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan history entry")
		}
		entry.ID = model.HistoryID(id)
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate history entries")
	}

	if err := tx.Commit(); err != nil {
		return nil, goerr.Wrap(err, "failed to commit history listing")
	}

	return entries, nil
}
