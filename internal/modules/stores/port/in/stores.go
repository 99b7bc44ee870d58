package in

import (
	"context"

	"aperture/internal/modules/stores/dto"
)

type Usecase interface {
	List(ctx context.Context, kind string) ([]dto.StoreOutput, error)
	Nearest(ctx context.Context, input dto.NearestInput) ([]dto.StoreOutput, error)
	DefaultCenter(ctx context.Context) (dto.CenterOutput, error)
}
