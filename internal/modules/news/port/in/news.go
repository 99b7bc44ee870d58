package in

import (
	"context"

	"aperture/internal/modules/news/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.ItemOutput, error)
	// Get takes a 1-based item number.
	Get(ctx context.Context, number int) (dto.ItemOutput, error)
	Open(ctx context.Context, number int) (dto.OpenOutput, error)

	// Current, Next and Prev drive the home carousel. Next and Prev wrap.
	Current(ctx context.Context) (dto.SlideOutput, error)
	Next(ctx context.Context) (dto.SlideOutput, error)
	Prev(ctx context.Context) (dto.SlideOutput, error)
}
