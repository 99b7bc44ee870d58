package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	notesout "aperture/internal/modules/notes/adapter/out"
	"aperture/internal/modules/notes/dto"
	notesin "aperture/internal/modules/notes/port/in"
	"aperture/internal/modules/notes/service"
	"aperture/internal/modules/notes/usecase"
	"aperture/internal/platform/clock"
	apperrors "aperture/internal/platform/errors"
)

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("%08d-note", s.n)
}

type fakeExtractor struct {
	text string
	err  error
}

func (f fakeExtractor) ExtractText(context.Context, string) (string, error) {
	return f.text, f.err
}

func newNotesUsecase(t *testing.T, vault string, extractor fakeExtractor) notesin.Usecase {
	t.Helper()
	projector, err := notesout.NewSQLiteNoteProjector(filepath.Join(vault, ".aperture", "aperture.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	clk := clock.Fixed{At: time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)}
	svc := service.NewNoteService(clk, &seqID{}, notesout.NewVaultNoteStore(vault), projector, extractor, 3)
	return usecase.NewInteractor(svc, nil)
}

func TestAddSummarizeAndList(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	uc := newNotesUsecase(t, vault, fakeExtractor{})
	ctx := context.Background()

	added, err := uc.Add(ctx, dto.AddInput{Text: "Golden hour light\nSoft warm light. Long shadows fall across the field. Shoot early."})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.Title != "Golden hour light" {
		t.Fatalf("expected title from first line, got %q", added.Title)
	}
	if !strings.HasPrefix(filepath.Base(added.Path), "golden-hour-light-") {
		t.Fatalf("unexpected note path %s", added.Path)
	}

	summary, err := uc.Summarize(ctx, added.ID)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.Summary != "Golden hour light\nSoft warm light Long shadows fall across the field Shoot early" {
		t.Fatalf("unexpected summary %q", summary.Summary)
	}
	raw, err := os.ReadFile(added.Path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if !strings.Contains(string(raw), "<!-- aperture:summary:start -->") {
		t.Fatalf("summary block missing from note:\n%s", raw)
	}

	got, err := uc.Get(ctx, added.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Summary != summary.Summary {
		t.Fatalf("stored summary mismatch: %q", got.Summary)
	}
	if strings.Contains(got.Body, "aperture:summary") {
		t.Fatalf("body should not carry the summary block: %q", got.Body)
	}

	list, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || !list[0].HasSummary || list[0].WordCount != 14 {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestUpdateClearsSummary(t *testing.T) {
	t.Parallel()
	uc := newNotesUsecase(t, t.TempDir(), fakeExtractor{})
	ctx := context.Background()

	added, err := uc.Add(ctx, dto.AddInput{Title: "ISO", Text: "ISO sets sensor gain. Higher ISO adds noise."})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := uc.Summarize(ctx, added.ID); err != nil {
		t.Fatalf("summarize: %v", err)
	}
	updated, err := uc.Update(ctx, dto.UpdateInput{ID: added.ID, Text: "Base ISO gives the cleanest files."})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Summary != "" || updated.Title != "ISO" {
		t.Fatalf("unexpected updated note: %+v", updated)
	}
	got, err := uc.Get(ctx, added.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Summary != "" || strings.TrimSpace(got.Body) != "Base ISO gives the cleanest files." {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestSearchAndDelete(t *testing.T) {
	t.Parallel()
	uc := newNotesUsecase(t, t.TempDir(), fakeExtractor{})
	ctx := context.Background()

	first, err := uc.Add(ctx, dto.AddInput{Title: "Rule of thirds", Text: "Place the subject on a third."})
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	if _, err := uc.Add(ctx, dto.AddInput{Title: "Leading lines", Text: "Lines guide the eye."}); err != nil {
		t.Fatalf("add second: %v", err)
	}
	found, err := uc.Search(ctx, "THIRDS")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || found[0].ID != first.ID {
		t.Fatalf("unexpected search result: %+v", found)
	}
	if err := uc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(ctx, first.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	list, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one note left, got %d", len(list))
	}
}

func TestAddRequiresText(t *testing.T) {
	t.Parallel()
	uc := newNotesUsecase(t, t.TempDir(), fakeExtractor{})
	_, err := uc.Add(context.Background(), dto.AddInput{Text: "   "})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if err.Error() != "Note text is required." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestSummarizeTextIsPure(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	uc := newNotesUsecase(t, vault, fakeExtractor{})
	out, err := uc.SummarizeText(context.Background(), "A b c. D e. F.")
	if err != nil {
		t.Fatalf("summarize text: %v", err)
	}
	if out.Summary != "A b c D e F" || out.NoteID != "" {
		t.Fatalf("unexpected summary output: %+v", out)
	}
	if _, err := os.Stat(filepath.Join(vault, "notes")); !os.IsNotExist(err) {
		t.Fatalf("summarizing text should not write notes")
	}
}

func TestImportPDF(t *testing.T) {
	t.Parallel()
	uc := newNotesUsecase(t, t.TempDir(), fakeExtractor{text: "Aperture controls depth of field."})
	note, err := uc.ImportPDF(context.Background(), dto.ImportPDFInput{Path: "/tmp/guides/lens-basics.pdf"})
	if err != nil {
		t.Fatalf("import pdf: %v", err)
	}
	if note.Title != "lens-basics" || note.Source != "/tmp/guides/lens-basics.pdf" {
		t.Fatalf("unexpected imported note: %+v", note)
	}

	empty := newNotesUsecase(t, t.TempDir(), fakeExtractor{text: "  "})
	if _, err := empty.ImportPDF(context.Background(), dto.ImportPDFInput{Path: "scan.pdf"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty pdf, got %v", err)
	}
}

func TestReindexRebuildsNoteIndex(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	uc := newNotesUsecase(t, vault, fakeExtractor{})
	ctx := context.Background()
	if _, err := uc.Add(ctx, dto.AddInput{Title: "Fill light", Text: "Fill light lifts shadows."}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := os.Remove(filepath.Join(vault, ".aperture", "aperture.db")); err != nil {
		t.Fatalf("remove db: %v", err)
	}
	fresh := newNotesUsecase(t, vault, fakeExtractor{})
	if err := fresh.Reindex(ctx); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	list, err := fresh.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Fill light" {
		t.Fatalf("unexpected list after reindex: %+v", list)
	}
}
