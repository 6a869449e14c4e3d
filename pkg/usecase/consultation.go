package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
	"github.com/visitnotes-lab/visitnotes/pkg/domain/model/auth"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/logging"
)

// Summarize resolves the visit's note content, builds the prompt and opens a
// streaming completion. The returned channel yields raw text deltas and
// closes when the provider stream terminates.
func (uc *UseCases) Summarize(ctx context.Context, visit *model.Visit, identity *auth.Identity) (<-chan string, error) {
	if err := visit.Validate(); err != nil {
		return nil, err
	}

	notes, err := uc.ResolveNotes(ctx, visit)
	if err != nil {
		return nil, err
	}

	prompt := model.NewPrompt(visit.PatientName, visit.DateOfVisit, notes)

	logging.From(ctx).Info("starting consultation summary",
		"user_id", identity.Sub,
		"premium", identity.IsPremium(),
		"note_length", len(notes),
	)

	stream, err := uc.streamer.StreamCompletion(ctx, prompt, identity.IsPremium())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open completion stream")
	}
	return stream, nil
}
