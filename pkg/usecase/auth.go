package usecase

import (
	"context"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
	"github.com/visitnotes-lab/visitnotes/pkg/domain/model/auth"
)

// AuthUseCase verifies bearer credentials against the identity provider's
// published JWK set (e.g. Clerk). The key set is cached and refreshed in the
// background.
type AuthUseCase struct {
	jwksURL string
	cache   *jwk.Cache
}

var _ interfaces.TokenVerifier = (*AuthUseCase)(nil)

// NewAuthUseCase creates a verifier bound to the given JWKS URL
func NewAuthUseCase(ctx context.Context, jwksURL string) (*AuthUseCase, error) {
	cache := jwk.NewCache(ctx)
	if err := cache.Register(jwksURL, jwk.WithMinRefreshInterval(15*time.Minute)); err != nil {
		return nil, goerr.Wrap(err, "failed to register JWKS URL", goerr.V("jwks_url", jwksURL))
	}

	return &AuthUseCase{
		jwksURL: jwksURL,
		cache:   cache,
	}, nil
}

// Verify parses and verifies the token and extracts the subject and the
// entitlement claim. Client-supplied identity fields are never trusted;
// everything comes from the verified token.
func (uc *AuthUseCase) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	keySet, err := uc.cache.Get(ctx, uc.jwksURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch identity provider keys", goerr.V("jwks_url", uc.jwksURL))
	}

	// Allow 10 seconds of clock skew to handle time synchronization differences
	parsed, err := jwt.Parse([]byte(token),
		jwt.WithKeySet(keySet),
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(10*time.Second),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse or verify bearer token")
	}

	sub := parsed.Subject()
	if sub == "" {
		return nil, goerr.New("sub claim not found in token")
	}

	identity := &auth.Identity{Sub: sub}
	if v, ok := parsed.Get("pla"); ok {
		if plan, ok := v.(string); ok {
			identity.Plan = plan
		}
	}

	return identity, nil
}
