package extract

import (
	"bytes"
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/m-mizutani/goerr/v2"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
)

// PDF extracts embedded page text from PDF documents. Pages are processed in
// document order and joined with newlines; unreadable pages contribute empty
// text rather than failing the request.
type PDF struct{}

var _ interfaces.PDFExtractor = (*PDF)(nil)

// NewPDF creates a PDF text extractor
func NewPDF() *PDF {
	return &PDF{}
}

// ExtractText returns the newline-join of each page's embedded text
func (x *PDF) ExtractText(ctx context.Context, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", goerr.Wrap(err, "failed to open PDF document")
	}

	texts := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		texts = append(texts, pageText(reader, i))
	}
	return strings.Join(texts, "\n"), nil
}

// pageText returns the plain text of one page. The parser panics on some
// malformed content streams, so treat those pages as empty too.
func pageText(reader *pdf.Reader, num int) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return ""
	}
	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}
