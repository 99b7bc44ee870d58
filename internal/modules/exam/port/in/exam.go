package in

import (
	"context"

	"aperture/internal/modules/exam/dto"
)

type Usecase interface {
	ListBanks(ctx context.Context) ([]dto.BankOutput, error)
	Start(ctx context.Context, input dto.StartInput) (dto.ExamView, error)
	Current(ctx context.Context) (dto.ExamView, error)
	Select(ctx context.Context, index int) (dto.ExamView, error)
	Submit(ctx context.Context) (dto.SubmitOutput, error)
	Answer(ctx context.Context, index int) (dto.SubmitOutput, error)
	Restart(ctx context.Context) (dto.ExamView, error)
	Quit(ctx context.Context) error
	History(ctx context.Context, input dto.HistoryInput) ([]dto.AttemptOutput, error)
	Reindex(ctx context.Context) error
}
