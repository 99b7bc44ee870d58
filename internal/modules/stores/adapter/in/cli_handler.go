package in

import (
	"context"

	storesdto "aperture/internal/modules/stores/dto"
	storesin "aperture/internal/modules/stores/port/in"
)

type CLIHandler struct {
	usecase storesin.Usecase
}

func NewCLIHandler(usecase storesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, kind string) ([]storesdto.StoreOutput, error) {
	return h.usecase.List(ctx, kind)
}

func (h CLIHandler) Nearest(ctx context.Context, lat, lon float64, limit int) ([]storesdto.StoreOutput, error) {
	return h.usecase.Nearest(ctx, storesdto.NearestInput{Lat: lat, Lon: lon, Limit: limit})
}

func (h CLIHandler) DefaultCenter(ctx context.Context) (storesdto.CenterOutput, error) {
	return h.usecase.DefaultCenter(ctx)
}
