package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	notesout "aperture/internal/modules/notes/adapter/out"
	"aperture/internal/modules/notes/domain"
)

func TestSearchNotesFoldsNonASCIITitles(t *testing.T) {
	t.Parallel()
	projector, err := notesout.NewSQLiteNoteProjector(filepath.Join(t.TempDir(), "aperture.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	ctx := context.Background()
	updated := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, note := range []domain.Note{
		{ID: "n1", Title: "Été light", Body: "Warm evenings.", Path: "notes/ete-light.md", UpdatedAt: updated},
		{ID: "n2", Title: "Winter light", Body: "Cold mornings.", Path: "notes/winter-light.md", UpdatedAt: updated},
	} {
		if err := projector.UpsertNote(ctx, note); err != nil {
			t.Fatalf("upsert %s: %v", note.ID, err)
		}
	}

	for _, query := range []string{"été", "ÉTÉ", "Été L"} {
		got, err := projector.SearchNotes(ctx, query)
		if err != nil {
			t.Fatalf("search %q: %v", query, err)
		}
		if len(got) != 1 || got[0].ID != "n1" {
			t.Fatalf("search %q: expected n1 only, got %+v", query, got)
		}
	}

	got, err := projector.SearchNotes(ctx, "LIGHT")
	if err != nil {
		t.Fatalf("search light: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both notes for ascii query, got %d", len(got))
	}
}
