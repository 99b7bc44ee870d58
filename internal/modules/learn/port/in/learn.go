package in

import (
	"context"

	"aperture/internal/modules/learn/dto"
)

type Usecase interface {
	Subjects(ctx context.Context) ([]dto.SubjectOutput, error)
	Topics(ctx context.Context, subject string) ([]dto.TopicOutput, error)
	Topic(ctx context.Context, subject, name string) (dto.TopicDetailOutput, error)
	Search(ctx context.Context, query string) ([]dto.SearchResult, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
