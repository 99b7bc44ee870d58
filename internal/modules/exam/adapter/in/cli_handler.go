package in

import (
	"context"

	examdto "aperture/internal/modules/exam/dto"
	examin "aperture/internal/modules/exam/port/in"
)

type CLIHandler struct {
	usecase examin.Usecase
}

func NewCLIHandler(usecase examin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Banks(ctx context.Context) ([]examdto.BankOutput, error) {
	return h.usecase.ListBanks(ctx)
}

func (h CLIHandler) Start(ctx context.Context, subject string) (examdto.ExamView, error) {
	return h.usecase.Start(ctx, examdto.StartInput{Subject: subject})
}

func (h CLIHandler) Current(ctx context.Context) (examdto.ExamView, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Select(ctx context.Context, index int) (examdto.ExamView, error) {
	return h.usecase.Select(ctx, index)
}

func (h CLIHandler) Submit(ctx context.Context) (examdto.SubmitOutput, error) {
	return h.usecase.Submit(ctx)
}

func (h CLIHandler) Answer(ctx context.Context, index int) (examdto.SubmitOutput, error) {
	return h.usecase.Answer(ctx, index)
}

func (h CLIHandler) Restart(ctx context.Context) (examdto.ExamView, error) {
	return h.usecase.Restart(ctx)
}

func (h CLIHandler) Quit(ctx context.Context) error {
	return h.usecase.Quit(ctx)
}

func (h CLIHandler) History(ctx context.Context, subject string, limit int) ([]examdto.AttemptOutput, error) {
	return h.usecase.History(ctx, examdto.HistoryInput{Subject: subject, Limit: limit})
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
