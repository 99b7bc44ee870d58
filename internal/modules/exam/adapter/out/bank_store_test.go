package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	examout "aperture/internal/modules/exam/adapter/out"
	"aperture/internal/modules/exam/domain"
	apperrors "aperture/internal/platform/errors"
)

func TestBuiltinBanks(t *testing.T) {
	t.Parallel()
	store := examout.NewYAMLBankStore("")
	want := map[domain.Subject]int{
		domain.SubjectCamera:      10,
		domain.SubjectLens:        10,
		domain.SubjectLighting:    13,
		domain.SubjectComposition: 10,
	}
	banks, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list banks: %v", err)
	}
	if len(banks) != len(want) {
		t.Fatalf("expected %d builtin banks, got %d", len(want), len(banks))
	}
	for _, bank := range banks {
		if len(bank.Questions) != want[bank.Subject] {
			t.Fatalf("%s: expected %d questions, got %d", bank.Subject, want[bank.Subject], len(bank.Questions))
		}
		for _, q := range bank.Questions {
			if len(q.Options) != 5 {
				t.Fatalf("%s: question %q has %d options", bank.Subject, q.Text, len(q.Options))
			}
		}
		if len(bank.Feedback.Review) != 3 || bank.Feedback.Congrats == "" {
			t.Fatalf("%s: incomplete feedback table", bank.Subject)
		}
	}
	lighting, err := store.Get(context.Background(), domain.SubjectLighting)
	if err != nil {
		t.Fatalf("get lighting: %v", err)
	}
	if lighting.MaxScore() != 130 {
		t.Fatalf("expected lighting max score 130, got %d", lighting.MaxScore())
	}
}

func TestCustomBankCannotShadowBuiltin(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	dir := filepath.Join(vault, "exams")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	bank := "subject: lens\nquestions:\n  - text: q\n    options: [a, b]\n    correct: 0\n"
	if err := os.WriteFile(filepath.Join(dir, "mine.yaml"), []byte(bank), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	if _, err := examout.NewYAMLBankStore(vault).List(context.Background()); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestGetUnknownBank(t *testing.T) {
	t.Parallel()
	if _, err := examout.NewYAMLBankStore(t.TempDir()).Get(context.Background(), "astro"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestActiveExamStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := examout.NewFileActiveExamStore(t.TempDir())
	ctx := context.Background()
	if _, err := store.LoadActive(ctx); !errors.Is(err, apperrors.ErrNoActiveExam) {
		t.Fatalf("expected no active exam, got %v", err)
	}
	sel := 2
	active := domain.ActiveExam{ExamID: "e1", Subject: domain.SubjectLens, Progress: domain.Progress{Current: 1, Correct: 1, Selected: &sel}}
	if err := store.SaveActive(ctx, active); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.LoadActive(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ExamID != "e1" || loaded.Progress.Selected == nil || *loaded.Progress.Selected != 2 {
		t.Fatalf("unexpected loaded exam: %+v", loaded)
	}
	if err := store.ClearActive(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := store.ClearActive(ctx); err != nil {
		t.Fatalf("second clear should be a no-op: %v", err)
	}
}
