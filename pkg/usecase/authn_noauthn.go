package usecase

import (
	"context"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
	"github.com/visitnotes-lab/visitnotes/pkg/domain/model/auth"
)

// NoAuthnVerifier accepts every request as a fixed identity. Development
// only; enabled with --no-auth=<sub>.
type NoAuthnVerifier struct {
	sub string
}

var _ interfaces.TokenVerifier = (*NoAuthnVerifier)(nil)

// NewNoAuthnVerifier creates a verifier that skips credential verification
func NewNoAuthnVerifier(sub string) *NoAuthnVerifier {
	return &NoAuthnVerifier{sub: sub}
}

// Verify ignores the token and returns the configured identity
func (uc *NoAuthnVerifier) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	return auth.NewAnonymousIdentity(uc.sub), nil
}
