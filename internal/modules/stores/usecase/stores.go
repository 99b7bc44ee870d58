package usecase

import (
	"context"

	"aperture/internal/modules/stores/domain"
	"aperture/internal/modules/stores/dto"
	storesin "aperture/internal/modules/stores/port/in"
	storesout "aperture/internal/modules/stores/port/out"
)

type Interactor struct {
	directory storesout.Directory
}

func NewInteractor(directory storesout.Directory) storesin.Usecase {
	return &Interactor{directory: directory}
}

func (i *Interactor) List(ctx context.Context, kind string) ([]dto.StoreOutput, error) {
	k, err := domain.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	stores, err := i.directory.Stores(ctx)
	if err != nil {
		return nil, err
	}
	filtered := domain.Filter(stores, k)
	out := make([]dto.StoreOutput, 0, len(filtered))
	for _, s := range filtered {
		out = append(out, dto.StoreOutput{Name: s.Name, Kind: string(s.Kind), Lat: s.Lat, Lon: s.Lon})
	}
	return out, nil
}

func (i *Interactor) Nearest(ctx context.Context, input dto.NearestInput) ([]dto.StoreOutput, error) {
	origin := domain.Location{Lat: input.Lat, Lon: input.Lon}
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	stores, err := i.directory.Stores(ctx)
	if err != nil {
		return nil, err
	}
	ranked := domain.Nearest(stores, origin, input.Limit)
	out := make([]dto.StoreOutput, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, dto.StoreOutput{Name: r.Name, Kind: string(r.Kind), Lat: r.Lat, Lon: r.Lon, DistanceKm: r.DistanceKm})
	}
	return out, nil
}

func (i *Interactor) DefaultCenter(ctx context.Context) (dto.CenterOutput, error) {
	stores, err := i.directory.Stores(ctx)
	if err != nil {
		return dto.CenterOutput{}, err
	}
	center, err := domain.DefaultCenter(stores)
	if err != nil {
		return dto.CenterOutput{}, err
	}
	return dto.CenterOutput{Lat: center.Lat, Lon: center.Lon}, nil
}
