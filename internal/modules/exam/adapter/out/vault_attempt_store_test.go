package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	examout "aperture/internal/modules/exam/adapter/out"
	"aperture/internal/modules/exam/domain"
)

func TestVaultAttemptStoreKeepsAttemptsFinishedInSameSecond(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	store := examout.NewVaultAttemptStore(vault)
	ctx := context.Background()
	finished := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	first := domain.Attempt{
		ID: "a1b2c3d4-0000-4000-8000-000000000001", Subject: "tiny", BankTitle: "Tiny",
		Correct: 1, Score: 10, MaxScore: 10, StartedAt: finished, FinishedAt: finished,
	}
	second := first
	second.ID = "e5f6a7b8-0000-4000-8000-000000000002"
	second.Correct, second.Incorrect, second.Score = 0, 1, 0

	firstPath, err := store.Save(ctx, first)
	if err != nil {
		t.Fatalf("save first: %v", err)
	}
	secondPath, err := store.Save(ctx, second)
	if err != nil {
		t.Fatalf("save second: %v", err)
	}
	if firstPath == secondPath {
		t.Fatalf("attempts share note path %s", firstPath)
	}
	if got := filepath.Base(firstPath); got != "090000-tiny-a1b2c3d4.md" {
		t.Fatalf("unexpected note name %q", got)
	}

	attempts, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts after listing, got %d", len(attempts))
	}
	seen := map[string]int{}
	for _, a := range attempts {
		seen[a.ID] = a.Score
	}
	if seen[first.ID] != 10 || seen[second.ID] != 0 || len(seen) != 2 {
		t.Fatalf("unexpected attempts: %+v", attempts)
	}
}
