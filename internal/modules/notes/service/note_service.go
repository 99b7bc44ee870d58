package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"aperture/internal/modules/notes/domain"
	notesout "aperture/internal/modules/notes/port/out"
	"aperture/internal/platform/clock"
	apperrors "aperture/internal/platform/errors"
	"aperture/internal/platform/id"
	"aperture/internal/platform/slug"
)

type NoteService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     notesout.NoteStore
	projector notesout.NoteIndexProjector
	extractor notesout.TextExtractor
	sentences int
}

func NewNoteService(clock clock.Clock, idGen id.Generator, store notesout.NoteStore, projector notesout.NoteIndexProjector, extractor notesout.TextExtractor, sentences int) *NoteService {
	if sentences <= 0 {
		sentences = domain.DefaultSummarySentences
	}
	return &NoteService{clock: clock, idGen: idGen, store: store, projector: projector, extractor: extractor, sentences: sentences}
}

func (s *NoteService) Create(ctx context.Context, title, body, source string) (domain.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = domain.TitleFromBody(body)
	}
	now := s.clock.Now()
	noteID := s.idGen.New()
	note := domain.Note{
		ID:        noteID,
		Title:     title,
		Body:      body,
		Source:    source,
		Slug:      slug.Make(title) + "-" + id.Short(noteID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}
	return s.persist(ctx, note)
}

// Update replaces the body. A summary of the old body no longer applies.
func (s *NoteService) Update(ctx context.Context, noteID, body string) (domain.Note, error) {
	note, err := s.store.FindByID(ctx, noteID)
	if err != nil {
		return domain.Note{}, err
	}
	note.Body = body
	note.Summary = ""
	note.UpdatedAt = s.clock.Now()
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}
	return s.persist(ctx, note)
}

func (s *NoteService) Delete(ctx context.Context, noteID string) error {
	if err := s.store.Delete(ctx, noteID); err != nil {
		return err
	}
	return s.projector.DeleteNote(ctx, noteID)
}

func (s *NoteService) Get(ctx context.Context, noteID string) (domain.Note, error) {
	return s.store.FindByID(ctx, noteID)
}

func (s *NoteService) List(ctx context.Context) ([]domain.IndexEntry, error) {
	return s.projector.ListNotes(ctx)
}

func (s *NoteService) Search(ctx context.Context, query string) ([]domain.IndexEntry, error) {
	return s.projector.SearchNotes(ctx, strings.TrimSpace(query))
}

func (s *NoteService) SummarizeText(text string) string {
	return domain.Summarize(text, s.sentences)
}

// Summarize stores a fresh summary of the note body.
func (s *NoteService) Summarize(ctx context.Context, noteID string) (domain.Note, error) {
	note, err := s.store.FindByID(ctx, noteID)
	if err != nil {
		return domain.Note{}, err
	}
	note.Summary = domain.Summarize(note.Body, s.sentences)
	note.UpdatedAt = s.clock.Now()
	return s.persist(ctx, note)
}

func (s *NoteService) ImportPDF(ctx context.Context, path, title string) (domain.Note, error) {
	if s.extractor == nil {
		return domain.Note{}, fmt.Errorf("pdf import is not configured: %w", apperrors.ErrInvalidState)
	}
	text, err := s.extractor.ExtractText(ctx, path)
	if err != nil {
		return domain.Note{}, err
	}
	if strings.TrimSpace(text) == "" {
		return domain.Note{}, fmt.Errorf("pdf %s has no extractable text: %w", path, apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(title) == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s.Create(ctx, title, text, path)
}

func (s *NoteService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	notes, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	for _, note := range notes {
		if err := s.projector.UpsertNote(ctx, note); err != nil {
			return err
		}
	}
	return nil
}

func (s *NoteService) persist(ctx context.Context, note domain.Note) (domain.Note, error) {
	path, err := s.store.Save(ctx, note)
	if err != nil {
		return domain.Note{}, err
	}
	note.Path = path
	if err := s.projector.UpsertNote(ctx, note); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}
