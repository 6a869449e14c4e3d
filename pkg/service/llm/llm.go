package llm

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/openai"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/logging"
)

// Service streams summarization completions from the LLM provider. It holds
// one client per subscription tier; model selection is a pure function of the
// caller's premium entitlement.
type Service struct {
	defaultClient gollem.LLMClient
	premiumClient gollem.LLMClient
	defaultModel  string
	premiumModel  string
}

var _ interfaces.CompletionStreamer = (*Service)(nil)

// New creates a streamer with one OpenAI client per tier
func New(ctx context.Context, apiKey, defaultModel, premiumModel string) (*Service, error) {
	defaultClient, err := openai.New(ctx, apiKey, openai.WithModel(defaultModel))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create default LLM client", goerr.V("model", defaultModel))
	}
	premiumClient, err := openai.New(ctx, apiKey, openai.WithModel(premiumModel))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create premium LLM client", goerr.V("model", premiumModel))
	}

	return newService(defaultClient, premiumClient, defaultModel, premiumModel), nil
}

func newService(defaultClient, premiumClient gollem.LLMClient, defaultModel, premiumModel string) *Service {
	return &Service{
		defaultClient: defaultClient,
		premiumClient: premiumClient,
		defaultModel:  defaultModel,
		premiumModel:  premiumModel,
	}
}

// Model returns the model identifier used for the given tier
func (x *Service) Model(premium bool) string {
	if premium {
		return x.premiumModel
	}
	return x.defaultModel
}

func (x *Service) client(premium bool) gollem.LLMClient {
	if premium {
		return x.premiumClient
	}
	return x.defaultClient
}

// StreamCompletion opens a streaming completion and relays its text deltas.
// The returned channel closes when the upstream stream terminates; a provider
// failure mid-stream truncates the sequence without retry.
func (x *Service) StreamCompletion(ctx context.Context, prompt model.Prompt, premium bool) (<-chan string, error) {
	session, err := x.client(premium).NewSession(ctx,
		gollem.WithSessionSystemPrompt(prompt.System),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session", goerr.V("model", x.Model(premium)))
	}

	stream, err := session.GenerateStream(ctx, gollem.Text(prompt.User))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open completion stream", goerr.V("model", x.Model(premium)))
	}

	out := make(chan string)
	go func() {
		defer close(out)
		defer func() {
			if ctx.Err() != nil {
				logging.From(ctx).Debug("completion stream cancelled", "model", x.Model(premium))
			}
		}()
		for resp := range stream {
			if resp == nil {
				continue
			}
			for _, text := range resp.Texts {
				if text == "" {
					continue
				}
				select {
				case out <- text:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
