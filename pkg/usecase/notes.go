package usecase

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
)

// fileSeparator labels file-derived text so the model can distinguish
// provenance from typed notes.
const fileSeparator = "\n\n--- From file ---\n\n"

// ResolveNotes merges typed notes with text extracted from an optional
// attached file into one non-empty string. Extraction failures are fatal for
// the request; an empty combination fails with model.ErrNoContent.
func (uc *UseCases) ResolveNotes(ctx context.Context, visit *model.Visit) (string, error) {
	var parts []string

	if notes := strings.TrimSpace(visit.Notes); notes != "" {
		parts = append(parts, notes)
	}

	if visit.FileBase64 != "" && visit.FileMime != "" {
		raw, err := base64.StdEncoding.DecodeString(visit.FileBase64)
		if err != nil {
			return "", goerr.Wrap(err, "failed to decode file payload", goerr.V("mime", visit.FileMime))
		}

		text, err := uc.extractFileText(ctx, raw, visit.FileMime)
		if err != nil {
			return "", err
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		return "", goerr.Wrap(model.ErrNoContent, "no consultation content after resolution")
	}
	return strings.Join(parts, fileSeparator), nil
}

// extractFileText dispatches on the MIME type. Unsupported types contribute
// nothing rather than failing, matching the transport contract.
func (uc *UseCases) extractFileText(ctx context.Context, raw []byte, mimeType string) (string, error) {
	mime := strings.ToLower(mimeType)

	switch {
	case strings.Contains(mime, "pdf"):
		if uc.pdf == nil {
			return "", goerr.New("PDF extraction is not configured")
		}
		text, err := uc.pdf.ExtractText(ctx, raw)
		if err != nil {
			return "", goerr.Wrap(err, "failed to extract text from PDF")
		}
		return text, nil

	case strings.Contains(mime, "image"):
		if uc.image == nil {
			return "", goerr.New("image extraction is not configured")
		}
		text, err := uc.image.ExtractText(ctx, raw, mimeType)
		if err != nil {
			return "", goerr.Wrap(err, "failed to extract text from image")
		}
		return text, nil

	default:
		return "", nil
	}
}
