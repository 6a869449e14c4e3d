package auth

import (
	"context"
	"strings"
)

// premiumMarker is the substring of the plan claim that grants access to the
// higher-capability model.
const premiumMarker = "premium_subscription"

// Identity is the verified caller extracted from a bearer credential.
// Sub is the stable user identifier; Plan carries the entitlement claim
// ("pla") as issued by the identity provider, e.g. "u:premium_subscription".
type Identity struct {
	Sub  string
	Plan string
}

// IsPremium reports whether the entitlement claim contains the premium marker
func (x *Identity) IsPremium() bool {
	return strings.Contains(x.Plan, premiumMarker)
}

// NewAnonymousIdentity returns an identity for no-auth development mode
func NewAnonymousIdentity(sub string) *Identity {
	return &Identity{Sub: sub}
}

type ctxIdentityKey struct{}

// ContextWithIdentity returns a context carrying the verified identity
func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, ctxIdentityKey{}, identity)
}

// IdentityFromContext returns the verified identity bound to ctx, or nil
func IdentityFromContext(ctx context.Context) *Identity {
	identity, ok := ctx.Value(ctxIdentityKey{}).(*Identity)
	if !ok {
		return nil
	}
	return identity
}
