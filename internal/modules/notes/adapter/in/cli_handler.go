package in

import (
	"context"

	notesdto "aperture/internal/modules/notes/dto"
	notesin "aperture/internal/modules/notes/port/in"
)

type CLIHandler struct {
	usecase notesin.Usecase
}

func NewCLIHandler(usecase notesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, title, text string) (notesdto.NoteDetailOutput, error) {
	return h.usecase.Add(ctx, notesdto.AddInput{Title: title, Text: text})
}

func (h CLIHandler) Edit(ctx context.Context, id, text string) (notesdto.NoteDetailOutput, error) {
	return h.usecase.Update(ctx, notesdto.UpdateInput{ID: id, Text: text})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) List(ctx context.Context) ([]notesdto.NoteOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Show(ctx context.Context, id string) (notesdto.NoteDetailOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Search(ctx context.Context, query string) ([]notesdto.NoteOutput, error) {
	return h.usecase.Search(ctx, query)
}

func (h CLIHandler) SummarizeText(ctx context.Context, text string) (notesdto.SummaryOutput, error) {
	return h.usecase.SummarizeText(ctx, text)
}

func (h CLIHandler) SummarizeNote(ctx context.Context, id string) (notesdto.SummaryOutput, error) {
	return h.usecase.Summarize(ctx, id)
}

func (h CLIHandler) ImportPDF(ctx context.Context, path, title string) (notesdto.NoteDetailOutput, error) {
	return h.usecase.ImportPDF(ctx, notesdto.ImportPDFInput{Path: path, Title: title})
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
