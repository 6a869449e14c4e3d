package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/visitnotes-lab/visitnotes/pkg/cli/config"
	httpctrl "github.com/visitnotes-lab/visitnotes/pkg/controller/http"
	"github.com/visitnotes-lab/visitnotes/pkg/service/extract"
	"github.com/visitnotes-lab/visitnotes/pkg/usecase"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var noAuthSub string
	var repoCfg config.Repository
	var llmCfg config.LLM
	var authCfg config.Auth

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("VISITNOTES_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "no-auth",
			Usage:       "Skip credential verification and run as the specified subject (development only). Example: --no-auth=user_dev",
			Category:    "Authentication",
			Sources:     cli.EnvVars("VISITNOTES_NO_AUTH"),
			Destination: &noAuthSub,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, authCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			if noAuthSub != "" {
				authCfg.SetNoAuthSub(noAuthSub)
			}

			verifier, err := authCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure authentication")
			}
			if authCfg.IsNoAuthMode() {
				logging.Default().Warn("Running in no-auth mode (development only)", "sub", noAuthSub)
			}

			streamer, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM service")
			}

			vision, err := llmCfg.ConfigureVision()
			if err != nil {
				return goerr.Wrap(err, "failed to configure vision extractor")
			}

			uc := usecase.New(repo, streamer,
				usecase.WithPDFExtractor(extract.NewPDF()),
				usecase.WithImageExtractor(vision),
			)

			srv := httpctrl.New(uc, httpctrl.WithVerifier(verifier))
			server := &http.Server{
				Addr:              addr,
				Handler:           srv,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
