package in

import (
	"context"

	newsdto "aperture/internal/modules/news/dto"
	newsin "aperture/internal/modules/news/port/in"
)

type CLIHandler struct {
	usecase newsin.Usecase
}

func NewCLIHandler(usecase newsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]newsdto.ItemOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Show(ctx context.Context, number int) (newsdto.ItemOutput, error) {
	return h.usecase.Get(ctx, number)
}

func (h CLIHandler) Current(ctx context.Context) (newsdto.SlideOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Next(ctx context.Context) (newsdto.SlideOutput, error) {
	return h.usecase.Next(ctx)
}

func (h CLIHandler) Prev(ctx context.Context) (newsdto.SlideOutput, error) {
	return h.usecase.Prev(ctx)
}

func (h CLIHandler) Open(ctx context.Context, number int) (newsdto.OpenOutput, error) {
	return h.usecase.Open(ctx, number)
}
