package out_test

import (
	"context"
	"path/filepath"
	"testing"

	notesout "aperture/internal/modules/notes/adapter/out"
)

func TestExtractTextMissingFile(t *testing.T) {
	t.Parallel()
	_, err := notesout.NewPDFTextExtractor().ExtractText(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatalf("expected error for missing pdf")
	}
}
