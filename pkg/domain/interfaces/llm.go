package interfaces

import (
	"context"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
)

// CompletionStreamer opens a streaming completion against the LLM provider.
// The returned channel is a lazy, finite, non-restartable sequence of text
// deltas in provider delivery order. It is closed when the upstream stream
// terminates, including on provider errors: the caller sees a truncated
// sequence and no retry is attempted.
type CompletionStreamer interface {
	StreamCompletion(ctx context.Context, prompt model.Prompt, premium bool) (<-chan string, error)
}
