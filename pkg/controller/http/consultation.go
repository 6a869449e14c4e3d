package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
	"github.com/visitnotes-lab/visitnotes/pkg/domain/model/auth"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/errutil"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/logging"
)

// handleConsultation resolves the visit's notes, opens a streaming completion
// and relays it to the caller as Server-Sent Events
func (s *Server) handleConsultation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity := auth.IdentityFromContext(ctx)
	if identity == nil {
		errutil.WriteDetail(ctx, w, http.StatusUnauthorized, "authentication required")
		return
	}

	var visit model.Visit
	if err := json.NewDecoder(r.Body).Decode(&visit); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode visit request"), http.StatusBadRequest)
		return
	}

	stream, err := s.uc.Summarize(ctx, &visit, identity)
	if err != nil {
		s.handleError(ctx, w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		errutil.WriteDetail(ctx, w, http.StatusInternalServerError, "streaming is not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Headers are committed; from here an upstream failure just truncates
	// the event stream.
	for delta := range stream {
		for _, event := range encodeDelta(delta) {
			if _, err := io.WriteString(w, event); err != nil {
				logging.From(ctx).Debug("client disconnected during stream", "error", err.Error())
				return
			}
			flusher.Flush()
		}
	}
}
