package in

import (
	"context"

	"aperture/internal/modules/notes/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.NoteDetailOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.NoteDetailOutput, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]dto.NoteOutput, error)
	Get(ctx context.Context, id string) (dto.NoteDetailOutput, error)
	Search(ctx context.Context, query string) ([]dto.NoteOutput, error)
	SummarizeText(ctx context.Context, text string) (dto.SummaryOutput, error)
	Summarize(ctx context.Context, id string) (dto.SummaryOutput, error)
	ImportPDF(ctx context.Context, input dto.ImportPDFInput) (dto.NoteDetailOutput, error)
	Reindex(ctx context.Context) error
}
