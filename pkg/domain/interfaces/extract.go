package interfaces

import "context"

// PDFExtractor extracts embedded page text from a PDF document.
// Unreadable pages yield empty text, not an error.
type PDFExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// ImageExtractor transcribes text from an image of notes via a
// vision-capable model. An empty result is valid.
type ImageExtractor interface {
	ExtractText(ctx context.Context, data []byte, mimeType string) (string, error)
}
