package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/visitnotes-lab/visitnotes/pkg/service/extract"
	"github.com/visitnotes-lab/visitnotes/pkg/service/llm"
)

// LLM holds CLI flags for the completion and vision model configuration
type LLM struct {
	apiKey       string
	defaultModel string
	premiumModel string
	visionModel  string
}

// Flags returns CLI flags for LLM configuration
func (x *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Sources:     cli.EnvVars("VISITNOTES_OPENAI_API_KEY", "OPENAI_API_KEY"),
			Destination: &x.apiKey,
		},
		&cli.StringFlag{
			Name:        "default-model",
			Usage:       "Model identifier for free-tier summarization",
			Value:       "gpt-4o-mini",
			Sources:     cli.EnvVars("VISITNOTES_DEFAULT_MODEL"),
			Destination: &x.defaultModel,
		},
		&cli.StringFlag{
			Name:        "premium-model",
			Usage:       "Model identifier for premium-tier summarization",
			Value:       "gpt-5",
			Sources:     cli.EnvVars("VISITNOTES_PREMIUM_MODEL"),
			Destination: &x.premiumModel,
		},
		&cli.StringFlag{
			Name:        "vision-model",
			Usage:       "Vision-capable model for image note transcription",
			Value:       "gpt-4o-mini",
			Sources:     cli.EnvVars("VISITNOTES_VISION_MODEL"),
			Destination: &x.visionModel,
		},
	}
}

// Configure creates the completion streamer
func (x *LLM) Configure(ctx context.Context) (*llm.Service, error) {
	if x.apiKey == "" {
		return nil, goerr.New("openai-api-key is required")
	}
	svc, err := llm.New(ctx, x.apiKey, x.defaultModel, x.premiumModel)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize LLM clients")
	}
	return svc, nil
}

// ConfigureVision creates the image text extractor
func (x *LLM) ConfigureVision() (*extract.Vision, error) {
	if x.apiKey == "" {
		return nil, goerr.New("openai-api-key is required")
	}
	return extract.NewVision(x.apiKey, x.visionModel), nil
}
