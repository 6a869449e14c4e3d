package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
	"github.com/visitnotes-lab/visitnotes/pkg/domain/model/auth"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/errutil"
)

type historySaveRequest struct {
	PatientName string `json:"patient_name"`
	DateOfVisit string `json:"date_of_visit"`
	Summary     string `json:"summary"`
}

type historySaveResponse struct {
	ID string `json:"id"`
	OK bool   `json:"ok"`
}

type historyEntryResponse struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	DateOfVisit string `json:"date_of_visit"`
	Summary     string `json:"summary"`
	CreatedAt   string `json:"created_at"`
}

type historyListResponse struct {
	History []historyEntryResponse `json:"history"`
}

func (s *Server) handleSaveHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity := auth.IdentityFromContext(ctx)
	if identity == nil {
		errutil.WriteDetail(ctx, w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req historySaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode history request"), http.StatusBadRequest)
		return
	}

	saved, err := s.uc.SaveHistory(ctx, identity.Sub, &model.HistoryEntry{
		PatientName: req.PatientName,
		DateOfVisit: req.DateOfVisit,
		Summary:     req.Summary,
	})
	if err != nil {
		s.handleError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, historySaveResponse{
		ID: saved.ID.String(),
		OK: true,
	})
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity := auth.IdentityFromContext(ctx)
	if identity == nil {
		errutil.WriteDetail(ctx, w, http.StatusUnauthorized, "authentication required")
		return
	}

	entries, err := s.uc.ListHistory(ctx, identity.Sub)
	if err != nil {
		s.handleError(ctx, w, err)
		return
	}

	resp := historyListResponse{
		History: make([]historyEntryResponse, len(entries)),
	}
	for i, entry := range entries {
		resp.History[i] = historyEntryResponse{
			ID:          entry.ID.String(),
			PatientName: entry.PatientName,
			DateOfVisit: entry.DateOfVisit,
			Summary:     entry.Summary,
			CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
		}
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
