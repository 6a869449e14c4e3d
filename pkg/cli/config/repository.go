package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
	"github.com/visitnotes-lab/visitnotes/pkg/repository/memory"
	"github.com/visitnotes-lab/visitnotes/pkg/repository/postgres"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/logging"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend string
	dsn     string
}

// Flags returns CLI flags for repository configuration
func (x *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (postgres or memory)",
			Value:       "postgres",
			Sources:     cli.EnvVars("VISITNOTES_REPOSITORY_BACKEND"),
			Destination: &x.backend,
		},
		&cli.StringFlag{
			Name:        "database-dsn",
			Usage:       "PostgreSQL connection string for the history store",
			Sources:     cli.EnvVars("VISITNOTES_DATABASE_DSN", "DATABASE_URL"),
			Destination: &x.dsn,
		},
	}
}

// DSN returns the configured connection string
func (x *Repository) DSN() string {
	return x.dsn
}

// Configure initializes and returns a repository based on the configured
// backend. The caller is responsible for calling Close() on the returned
// repository. A postgres backend without a DSN still starts: history
// operations fail with a configuration error while summarization keeps
// working.
func (x *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch x.backend {
	case "postgres":
		repo, err := postgres.New(x.dsn)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize postgres repository")
		}
		if x.dsn == "" {
			logging.Default().Warn("No database DSN configured, history endpoints will be unavailable")
		} else {
			logging.Default().Info("Using PostgreSQL repository")
		}
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", x.backend))
	}
}
