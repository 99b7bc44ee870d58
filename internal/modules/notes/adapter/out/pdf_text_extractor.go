package out

import (
	"context"
	"fmt"
	"strings"

	"rsc.io/pdf"

	notesout "aperture/internal/modules/notes/port/out"
)

type PDFTextExtractor struct{}

func NewPDFTextExtractor() notesout.TextExtractor {
	return PDFTextExtractor{}
}

// ExtractText joins the text runs of every page, one page per paragraph.
func (PDFTextExtractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	defer func() {
		// rsc.io/pdf panics on some malformed files.
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf %s: %v", path, r)
		}
	}()
	doc, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	pages := make([]string, 0, doc.NumPage())
	for i := 1; i <= doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		parts := make([]string, 0)
		for _, run := range page.Content().Text {
			if strings.TrimSpace(run.S) == "" {
				continue
			}
			parts = append(parts, run.S)
		}
		if len(parts) > 0 {
			pages = append(pages, strings.Join(parts, " "))
		}
	}
	return strings.Join(pages, "\n\n"), nil
}
