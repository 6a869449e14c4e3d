package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/visitnotes-lab/visitnotes/pkg/repository/postgres"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/logging"
)

func cmdMigrate() *cli.Command {
	var dsn string

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Create or update the consultation history schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "database-dsn",
				Usage:       "PostgreSQL connection string (required)",
				Required:    true,
				Sources:     cli.EnvVars("VISITNOTES_DATABASE_DSN", "DATABASE_URL"),
				Destination: &dsn,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			client, err := postgres.New(dsn)
			if err != nil {
				return goerr.Wrap(err, "failed to create postgres client")
			}
			defer func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close postgres client", "error", err.Error())
				}
			}()

			logger.Info("Applying migrations")
			if err := client.Migrate(ctx); err != nil {
				return goerr.Wrap(err, "failed to apply migrations")
			}
			logger.Info("Migrations applied successfully")

			return nil
		},
	}
}
