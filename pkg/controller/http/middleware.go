package http

import (
	"net/http"
	"strings"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
	"github.com/visitnotes-lab/visitnotes/pkg/domain/model/auth"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/errutil"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/logging"
)

// authMiddleware verifies the bearer credential and binds the caller's
// identity to the request context
func authMiddleware(verifier interfaces.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				errutil.WriteDetail(r.Context(), w, http.StatusServiceUnavailable, "authentication is not configured")
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				errutil.WriteDetail(r.Context(), w, http.StatusUnauthorized, "authentication required")
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logging.From(r.Context()).Warn("bearer token verification failed", "error", err.Error())
				errutil.WriteDetail(r.Context(), w, http.StatusUnauthorized, "invalid bearer token")
				return
			}

			ctx := auth.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
