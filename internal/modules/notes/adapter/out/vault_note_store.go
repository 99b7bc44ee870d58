package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"aperture/internal/modules/notes/domain"
	notesout "aperture/internal/modules/notes/port/out"
	apperrors "aperture/internal/platform/errors"
	"aperture/internal/platform/markdown"
)

type VaultNoteStore struct {
	vaultPath string
}

func NewVaultNoteStore(vaultPath string) notesout.NoteStore {
	return &VaultNoteStore{vaultPath: vaultPath}
}

func (s *VaultNoteStore) dir() string {
	return filepath.Join(s.vaultPath, "notes")
}

func (s *VaultNoteStore) Save(_ context.Context, note domain.Note) (string, error) {
	if strings.TrimSpace(note.Slug) == "" {
		return "", fmt.Errorf("note %s has no slug: %w", note.ID, apperrors.ErrInvalidInput)
	}
	notePath := filepath.Join(s.dir(), note.Slug+".md")
	if err := os.MkdirAll(filepath.Dir(notePath), 0o755); err != nil {
		return "", fmt.Errorf("create notes directory: %w", err)
	}

	body := strings.TrimRight(note.Body, "\n") + "\n"
	if note.Summary != "" {
		body = markdown.ReplaceManagedBlock(body, domain.SummaryStart, domain.SummaryEnd, note.Summary)
	}
	rendered, err := markdown.RenderFrontmatter(toFrontmatter(note), body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(notePath, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write note markdown: %w", err)
	}
	return notePath, nil
}

func (s *VaultNoteStore) FindByID(ctx context.Context, id string) (domain.Note, error) {
	notes, err := s.List(ctx)
	if err != nil {
		return domain.Note{}, err
	}
	for _, note := range notes {
		if note.ID == id {
			return note, nil
		}
	}
	return domain.Note{}, fmt.Errorf("note %q: %w", id, apperrors.ErrNotFound)
}

func (s *VaultNoteStore) List(_ context.Context) ([]domain.Note, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir(), "*.md"))
	if err != nil {
		return nil, fmt.Errorf("glob notes: %w", err)
	}
	sort.Strings(matches)

	out := make([]domain.Note, 0, len(matches))
	for _, path := range matches {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", path, readErr)
		}
		meta, body, splitErr := markdown.SplitFrontmatter(string(content))
		if splitErr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, splitErr)
		}
		note, convErr := fromFrontmatter(meta, body, path)
		if convErr != nil {
			return nil, fmt.Errorf("decode note %s: %w", path, convErr)
		}
		out = append(out, note)
	}
	return out, nil
}

func (s *VaultNoteStore) Delete(ctx context.Context, id string) error {
	note, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := os.Remove(note.Path); err != nil {
		return fmt.Errorf("remove note %s: %w", note.Path, err)
	}
	return nil
}

func toFrontmatter(note domain.Note) map[string]any {
	meta := map[string]any{
		"schema_version": domain.SchemaVersion,
		"id":             note.ID,
		"title":          note.Title,
		"created_at":     note.CreatedAt.Format(time.RFC3339),
		"updated_at":     note.UpdatedAt.Format(time.RFC3339),
	}
	if note.Source != "" {
		meta["source"] = note.Source
	}
	return meta
}

func fromFrontmatter(meta map[string]any, body, notePath string) (domain.Note, error) {
	summary, _ := markdown.ExtractManagedBlock(body, domain.SummaryStart, domain.SummaryEnd)
	note := domain.Note{
		ID:        markdown.AsString(meta["id"]),
		Title:     markdown.AsString(meta["title"]),
		Source:    markdown.AsString(meta["source"]),
		Body:      markdown.RemoveManagedBlock(body, domain.SummaryStart, domain.SummaryEnd),
		Summary:   summary,
		Path:      notePath,
		Slug:      strings.TrimSuffix(filepath.Base(notePath), filepath.Ext(notePath)),
		CreatedAt: markdown.AsTime(meta["created_at"]),
		UpdatedAt: markdown.AsTime(meta["updated_at"]),
	}
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}
