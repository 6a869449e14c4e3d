package usecase

import (
	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
)

// UseCases binds the repository, the completion streamer and the text
// extraction capabilities together
type UseCases struct {
	repo     interfaces.Repository
	streamer interfaces.CompletionStreamer
	pdf      interfaces.PDFExtractor
	image    interfaces.ImageExtractor
}

// Option is a functional option for UseCases
type Option func(*UseCases)

// WithPDFExtractor sets the PDF text extraction capability
func WithPDFExtractor(extractor interfaces.PDFExtractor) Option {
	return func(uc *UseCases) {
		uc.pdf = extractor
	}
}

// WithImageExtractor sets the image text extraction capability
func WithImageExtractor(extractor interfaces.ImageExtractor) Option {
	return func(uc *UseCases) {
		uc.image = extractor
	}
}

// New creates a UseCases instance
func New(repo interfaces.Repository, streamer interfaces.CompletionStreamer, options ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		streamer: streamer,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
