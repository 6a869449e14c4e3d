package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sashabaranov/go-openai"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
)

// visionInstruction asks for a verbatim transcription with no commentary so
// the result can be fed straight into the summarization prompt.
const visionInstruction = "Extract all text visible in this image. If it contains handwritten or typed medical or consultation notes, transcribe them exactly. Return only the extracted text, no commentary."

const visionMaxTokens = 4096

// Vision transcribes text from images of notes using a vision-capable model.
// gollem sessions are text-in/text-out, so this talks to the provider SDK
// directly.
type Vision struct {
	client *openai.Client
	model  string
}

var _ interfaces.ImageExtractor = (*Vision)(nil)

// NewVision creates an image text extractor
func NewVision(apiKey, model string) *Vision {
	return &Vision{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// ExtractText transcribes all visible text from the image. An empty result
// is valid input for the caller.
func (x *Vision) ExtractText(ctx context.Context, data []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	resp, err := x.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     x.model,
		MaxTokens: visionMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: visionInstruction,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: dataURL,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to call vision model", goerr.V("model", x.model), goerr.V("mime", mimeType))
	}
	if len(resp.Choices) == 0 {
		return "", goerr.New("vision model returned no choices", goerr.V("model", x.model))
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
