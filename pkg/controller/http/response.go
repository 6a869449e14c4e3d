package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/errutil"
)

// writeJSON writes a JSON response with proper error handling
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		errutil.Handle(ctx, err, "failed to encode JSON response")
	}
}

// handleError maps core errors to HTTP statuses. Input problems carry their
// message to the caller; persistence failures stay opaque.
func (s *Server) handleError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNoContent), errors.Is(err, model.ErrInvalidRequest):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	case errors.Is(err, model.ErrStoreNotConfigured):
		errutil.HandleHTTP(ctx, w, err, http.StatusServiceUnavailable)
	default:
		errutil.Handle(ctx, err, "request failed")
		errutil.WriteDetail(ctx, w, http.StatusInternalServerError, "internal error")
	}
}
