package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
	"github.com/visitnotes-lab/visitnotes/pkg/usecase"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/logging"
)

// Auth holds CLI flags for identity provider configuration
type Auth struct {
	jwksURL   string
	noAuthSub string
}

// Flags returns CLI flags for authentication configuration
func (x *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwks-url",
			Usage:       "Identity provider JWKS endpoint for bearer token verification (e.g. Clerk)",
			Sources:     cli.EnvVars("VISITNOTES_JWKS_URL", "CLERK_JWKS_URL"),
			Destination: &x.jwksURL,
		},
	}
}

// SetNoAuthSub enables no-auth development mode as the given subject
func (x *Auth) SetNoAuthSub(sub string) {
	x.noAuthSub = sub
}

// IsNoAuthMode reports whether credential verification is bypassed
func (x *Auth) IsNoAuthMode() bool {
	return x.noAuthSub != ""
}

// Configure creates the bearer token verifier
func (x *Auth) Configure(ctx context.Context) (interfaces.TokenVerifier, error) {
	if x.noAuthSub != "" {
		return usecase.NewNoAuthnVerifier(x.noAuthSub), nil
	}

	if x.jwksURL == "" {
		return nil, goerr.New("jwks-url is required unless --no-auth is set")
	}

	verifier, err := usecase.NewAuthUseCase(ctx, x.jwksURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize token verifier")
	}
	logging.Default().Info("Bearer token verification enabled", "jwks_url", x.jwksURL)
	return verifier, nil
}
