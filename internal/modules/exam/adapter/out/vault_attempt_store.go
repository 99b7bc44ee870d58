package out

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"aperture/internal/modules/exam/domain"
	examout "aperture/internal/modules/exam/port/out"
	"aperture/internal/platform/id"
	"aperture/internal/platform/markdown"
	"aperture/internal/platform/slug"
)

type VaultAttemptStore struct {
	vaultPath string
}

func NewVaultAttemptStore(vaultPath string) examout.AttemptStore {
	return &VaultAttemptStore{vaultPath: vaultPath}
}

func (s *VaultAttemptStore) root() string {
	return filepath.Join(s.vaultPath, "exams", "results")
}

func (s *VaultAttemptStore) Save(_ context.Context, attempt domain.Attempt) (string, error) {
	date := attempt.FinishedAt
	dir := filepath.Join(s.root(), date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create attempt dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s-%s.md", date.Format("150405"), slug.Make(string(attempt.Subject)), id.Short(attempt.ID))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"schema_version": domain.SchemaVersion,
		"id":             attempt.ID,
		"subject":        string(attempt.Subject),
		"bank_title":     attempt.BankTitle,
		"correct":        attempt.Correct,
		"incorrect":      attempt.Incorrect,
		"score":          attempt.Score,
		"max_score":      attempt.MaxScore,
		"feedback":       attempt.Feedback,
		"started_at":     attempt.StartedAt.Format(time.RFC3339),
		"finished_at":    attempt.FinishedAt.Format(time.RFC3339),
	}
	var body strings.Builder
	fmt.Fprintf(&body, "# %s exam\n\n", attempt.BankTitle)
	fmt.Fprintf(&body, "Marks: %d/%d\n\n", attempt.Score, attempt.MaxScore)
	fmt.Fprintf(&body, "- Correct answers: %d\n- Incorrect answers: %d\n\n", attempt.Correct, attempt.Incorrect)
	body.WriteString("## Feedback\n\n")
	for _, line := range attempt.Feedback {
		fmt.Fprintf(&body, "- %s\n", line)
	}
	rendered, err := markdown.RenderFrontmatter(meta, body.String())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write attempt note: %w", err)
	}
	return path, nil
}

func (s *VaultAttemptStore) List(_ context.Context) ([]domain.Attempt, error) {
	var paths []string
	err := filepath.WalkDir(s.root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == s.root() {
				return fs.SkipDir
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk attempt notes: %w", err)
	}
	sort.Strings(paths)

	out := make([]domain.Attempt, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		meta, _, err := markdown.SplitFrontmatter(string(content))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		attempt := domain.Attempt{
			ID:         markdown.AsString(meta["id"]),
			Subject:    domain.Subject(markdown.AsString(meta["subject"])),
			BankTitle:  markdown.AsString(meta["bank_title"]),
			Correct:    markdown.AsInt(meta["correct"]),
			Incorrect:  markdown.AsInt(meta["incorrect"]),
			Score:      markdown.AsInt(meta["score"]),
			MaxScore:   markdown.AsInt(meta["max_score"]),
			Feedback:   markdown.AsStringSlice(meta["feedback"]),
			StartedAt:  markdown.AsTime(meta["started_at"]),
			FinishedAt: markdown.AsTime(meta["finished_at"]),
			NotePath:   path,
		}
		if attempt.ID == "" {
			return nil, fmt.Errorf("attempt note %s has no id", path)
		}
		out = append(out, attempt)
	}
	return out, nil
}
