package in

import (
	"context"

	learndto "aperture/internal/modules/learn/dto"
	learnin "aperture/internal/modules/learn/port/in"
)

type CLIHandler struct {
	usecase learnin.Usecase
}

func NewCLIHandler(usecase learnin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Subjects(ctx context.Context) ([]learndto.SubjectOutput, error) {
	return h.usecase.Subjects(ctx)
}

func (h CLIHandler) Topics(ctx context.Context, subject string) ([]learndto.TopicOutput, error) {
	return h.usecase.Topics(ctx, subject)
}

func (h CLIHandler) Show(ctx context.Context, subject, topic string) (learndto.TopicDetailOutput, error) {
	return h.usecase.Topic(ctx, subject, topic)
}

func (h CLIHandler) Search(ctx context.Context, query string) ([]learndto.SearchResult, error) {
	return h.usecase.Search(ctx, query)
}

func (h CLIHandler) Export(ctx context.Context, subject, outDir string) (learndto.ExportOutput, error) {
	return h.usecase.Export(ctx, learndto.ExportInput{Subject: subject, OutDir: outDir})
}
