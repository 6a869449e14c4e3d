package interfaces

import (
	"context"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/model/auth"
)

// TokenVerifier verifies a bearer credential against the identity provider
// and returns the caller's identity. The core never inspects tokens itself.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*auth.Identity, error)
}
