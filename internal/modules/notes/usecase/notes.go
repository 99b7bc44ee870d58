package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"aperture/internal/modules/notes/domain"
	"aperture/internal/modules/notes/dto"
	notesin "aperture/internal/modules/notes/port/in"
	"aperture/internal/modules/notes/service"
	apperrors "aperture/internal/platform/errors"
	"aperture/internal/platform/logging"
	"aperture/internal/platform/validate"
)

var noteMessages = validate.Messages{
	"text.notblank": "Note text is required.",
	"id.notblank":   "Note id is required.",
	"path.notblank": "PDF path is required.",
	"title.max":     "Title must be at most 120 characters.",
}

type Interactor struct {
	svc *service.NoteService
	log *zap.Logger
}

func NewInteractor(svc *service.NoteService, logger *zap.Logger) notesin.Usecase {
	return &Interactor{svc: svc, log: logging.OrNop(logger)}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.NoteDetailOutput, error) {
	if err := validate.Struct(input, noteMessages); err != nil {
		return dto.NoteDetailOutput{}, err
	}
	note, err := i.svc.Create(ctx, input.Title, input.Text, "")
	if err != nil {
		return dto.NoteDetailOutput{}, err
	}
	i.log.Info("note added", zap.String("note_id", note.ID), zap.Int("words", note.WordCount()))
	return toDetail(note), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.NoteDetailOutput, error) {
	if err := validate.Struct(input, noteMessages); err != nil {
		return dto.NoteDetailOutput{}, err
	}
	note, err := i.svc.Update(ctx, strings.TrimSpace(input.ID), input.Text)
	if err != nil {
		return dto.NoteDetailOutput{}, err
	}
	i.log.Info("note updated", zap.String("note_id", note.ID))
	return toDetail(note), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperrors.NewValidationError("id", noteMessages["id.notblank"])
	}
	if err := i.svc.Delete(ctx, id); err != nil {
		return err
	}
	i.log.Info("note deleted", zap.String("note_id", id))
	return nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.NoteOutput, error) {
	notes, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(notes), nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.NoteDetailOutput, error) {
	note, err := i.svc.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return dto.NoteDetailOutput{}, err
	}
	return toDetail(note), nil
}

func (i *Interactor) Search(ctx context.Context, query string) ([]dto.NoteOutput, error) {
	notes, err := i.svc.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return toOutputs(notes), nil
}

func (i *Interactor) SummarizeText(_ context.Context, text string) (dto.SummaryOutput, error) {
	return dto.SummaryOutput{Summary: i.svc.SummarizeText(text)}, nil
}

func (i *Interactor) Summarize(ctx context.Context, id string) (dto.SummaryOutput, error) {
	note, err := i.svc.Summarize(ctx, strings.TrimSpace(id))
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	i.log.Debug("note summarized", zap.String("note_id", note.ID), zap.Int("summary_len", len(note.Summary)))
	return dto.SummaryOutput{NoteID: note.ID, Summary: note.Summary}, nil
}

func (i *Interactor) ImportPDF(ctx context.Context, input dto.ImportPDFInput) (dto.NoteDetailOutput, error) {
	if err := validate.Struct(input, noteMessages); err != nil {
		return dto.NoteDetailOutput{}, err
	}
	note, err := i.svc.ImportPDF(ctx, input.Path, input.Title)
	if err != nil {
		i.log.Warn("pdf import failed", zap.String("path", input.Path), zap.Error(err))
		return dto.NoteDetailOutput{}, fmt.Errorf("import %s: %w", input.Path, err)
	}
	i.log.Info("pdf imported", zap.String("note_id", note.ID), zap.String("path", input.Path), zap.Int("words", note.WordCount()))
	return toDetail(note), nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func toOutputs(entries []domain.IndexEntry) []dto.NoteOutput {
	out := make([]dto.NoteOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.NoteOutput{
			ID:         entry.ID,
			Title:      entry.Title,
			Path:       entry.Path,
			WordCount:  entry.WordCount,
			HasSummary: entry.HasSummary,
			UpdatedAt:  entry.UpdatedAt,
		})
	}
	return out
}

func toDetail(note domain.Note) dto.NoteDetailOutput {
	return dto.NoteDetailOutput{
		ID:        note.ID,
		Title:     note.Title,
		Body:      note.Body,
		Summary:   note.Summary,
		Source:    note.Source,
		Path:      note.Path,
		WordCount: note.WordCount(),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
