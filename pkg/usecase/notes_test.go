package usecase_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
	"github.com/visitnotes-lab/visitnotes/pkg/repository/memory"
	"github.com/visitnotes-lab/visitnotes/pkg/usecase"
)

// mockPDFExtractor is a scripted PDF text extraction capability
type mockPDFExtractor struct {
	text string
	err  error
}

func (x *mockPDFExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	return x.text, x.err
}

// mockImageExtractor is a scripted image text extraction capability
type mockImageExtractor struct {
	text string
	err  error
	mime string
}

func (x *mockImageExtractor) ExtractText(ctx context.Context, data []byte, mimeType string) (string, error) {
	x.mime = mimeType
	return x.text, x.err
}

func TestResolveNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("returns trimmed notes when no file is attached", func(t *testing.T) {
		uc := usecase.New(memory.New(), nil)

		notes, err := uc.ResolveNotes(ctx, &model.Visit{
			PatientName: "Alice Smith",
			DateOfVisit: "2026-08-01",
			Notes:       "  Patient presented with mild fever.  \n",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, notes).Equal("Patient presented with mild fever.")
	})

	t.Run("fails with no-content error when nothing is provided", func(t *testing.T) {
		uc := usecase.New(memory.New(), nil)

		_, err := uc.ResolveNotes(ctx, &model.Visit{
			PatientName: "Alice Smith",
			DateOfVisit: "2026-08-01",
			Notes:       "   ",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, model.ErrNoContent)).True()
	})

	t.Run("joins notes and PDF text with the file separator", func(t *testing.T) {
		uc := usecase.New(memory.New(), nil,
			usecase.WithPDFExtractor(&mockPDFExtractor{text: "page one\npage two"}),
		)

		notes, err := uc.ResolveNotes(ctx, &model.Visit{
			PatientName: "Alice Smith",
			DateOfVisit: "2026-08-01",
			Notes:       "typed notes",
			FileBase64:  base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
			FileMime:    "application/pdf",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, notes).Equal("typed notes\n\n--- From file ---\n\npage one\npage two")
	})

	t.Run("returns file text alone when no notes are typed", func(t *testing.T) {
		uc := usecase.New(memory.New(), nil,
			usecase.WithPDFExtractor(&mockPDFExtractor{text: "scanned text"}),
		)

		notes, err := uc.ResolveNotes(ctx, &model.Visit{
			PatientName: "Alice Smith",
			DateOfVisit: "2026-08-01",
			FileBase64:  base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
			FileMime:    "application/pdf",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, notes).Equal("scanned text")
	})

	t.Run("empty file text combines with typed notes without separator", func(t *testing.T) {
		uc := usecase.New(memory.New(), nil,
			usecase.WithPDFExtractor(&mockPDFExtractor{text: ""}),
		)

		notes, err := uc.ResolveNotes(ctx, &model.Visit{
			PatientName: "Alice Smith",
			DateOfVisit: "2026-08-01",
			Notes:       "typed notes",
			FileBase64:  base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
			FileMime:    "application/pdf",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, notes).Equal("typed notes")
	})

	t.Run("empty file text alone fails with no-content error", func(t *testing.T) {
		uc := usecase.New(memory.New(), nil,
			usecase.WithPDFExtractor(&mockPDFExtractor{text: ""}),
		)

		_, err := uc.ResolveNotes(ctx, &model.Visit{
			PatientName: "Alice Smith",
			DateOfVisit: "2026-08-01",
			FileBase64:  base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
			FileMime:    "application/pdf",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, model.ErrNoContent)).True()
	})

	t.Run("image files go through the vision extractor with the request mime", func(t *testing.T) {
		imageExtractor := &mockImageExtractor{text: "handwritten note"}
		uc := usecase.New(memory.New(), nil,
			usecase.WithImageExtractor(imageExtractor),
		)

		notes, err := uc.ResolveNotes(ctx, &model.Visit{
			PatientName: "Alice Smith",
			DateOfVisit: "2026-08-01",
			FileBase64:  base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8}),
			FileMime:    "image/png",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, notes).Equal("handwritten note")
		gt.Value(t, imageExtractor.mime).Equal("image/png")
	})

	t.Run("malformed base64 payload is a fatal error", func(t *testing.T) {
		uc := usecase.New(memory.New(), nil,
			usecase.WithPDFExtractor(&mockPDFExtractor{text: "unused"}),
		)

		_, err := uc.ResolveNotes(ctx, &model.Visit{
			PatientName: "Alice Smith",
			DateOfVisit: "2026-08-01",
			FileBase64:  "not-base64!!!",
			FileMime:    "application/pdf",
		})
		gt.Error(t, err)
	})

	t.Run("extraction failure propagates without retry", func(t *testing.T) {
		uc := usecase.New(memory.New(), nil,
			usecase.WithPDFExtractor(&mockPDFExtractor{err: goerr.New("broken document")}),
		)

		_, err := uc.ResolveNotes(ctx, &model.Visit{
			PatientName: "Alice Smith",
			DateOfVisit: "2026-08-01",
			Notes:       "typed notes",
			FileBase64:  base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
			FileMime:    "application/pdf",
		})
		gt.Error(t, err)
	})

	t.Run("unsupported mime types are ignored", func(t *testing.T) {
		uc := usecase.New(memory.New(), nil)

		notes, err := uc.ResolveNotes(ctx, &model.Visit{
			PatientName: "Alice Smith",
			DateOfVisit: "2026-08-01",
			Notes:       "typed notes",
			FileBase64:  base64.StdEncoding.EncodeToString([]byte("PK")),
			FileMime:    "application/zip",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, notes).Equal("typed notes")
	})
}
