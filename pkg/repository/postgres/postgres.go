package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
)

// Client is a PostgreSQL-backed repository. With an empty DSN the client is
// created in an unconfigured state: every operation fails with
// model.ErrStoreNotConfigured without touching the network, so the service
// can still serve summarization requests.
type Client struct {
	db      *sql.DB
	history *historyRepository
}

var _ interfaces.Repository = (*Client)(nil)

// New creates a repository client. sql.Open does not dial; connections are
// established lazily on first use.
func New(dsn string) (*Client, error) {
	client := &Client{}
	if dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open postgres connection pool")
		}
		client.db = db
	}
	client.history = &historyRepository{db: client.db}
	return client, nil
}

// History returns the consultation history repository
func (x *Client) History() interfaces.HistoryRepository {
	return x.history
}

// Migrate ensures the history schema exists. Used by the migrate command;
// the repositories also create it lazily on first use.
func (x *Client) Migrate(ctx context.Context) error {
	if x.db == nil {
		return goerr.Wrap(errNotConfigured(), "cannot migrate")
	}
	if _, err := x.db.ExecContext(ctx, createHistoryTable); err != nil {
		return goerr.Wrap(err, "failed to create history schema")
	}
	return nil
}

// Close releases the connection pool
func (x *Client) Close() error {
	if x.db == nil {
		return nil
	}
	return x.db.Close()
}
