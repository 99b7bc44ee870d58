package usecase_test

import (
	"context"
	"errors"
	"testing"

	storesout "aperture/internal/modules/stores/adapter/out"
	"aperture/internal/modules/stores/dto"
	"aperture/internal/modules/stores/usecase"
	apperrors "aperture/internal/platform/errors"
)

func TestListByKind(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(storesout.NewEmbeddedDirectory())
	all, err := uc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("expected 6 stores, got %d", len(all))
	}
	online, err := uc.List(context.Background(), "online")
	if err != nil {
		t.Fatalf("list online: %v", err)
	}
	if len(online) != 1 || online[0].Name != "Amazon" {
		t.Fatalf("unexpected online stores: %+v", online)
	}
	local, err := uc.List(context.Background(), "local")
	if err != nil {
		t.Fatalf("list local: %v", err)
	}
	if len(local) != 5 {
		t.Fatalf("expected 5 local stores, got %d", len(local))
	}
}

func TestNearestFromNewYork(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(storesout.NewEmbeddedDirectory())
	near, err := uc.Nearest(context.Background(), dto.NearestInput{Lat: 40.7128, Lon: -74.0060, Limit: 2})
	if err != nil {
		t.Fatalf("nearest: %v", err)
	}
	if len(near) != 2 || near[0].Name != "B&H Photo Video" || near[1].Name != "Adorama" {
		t.Fatalf("unexpected nearest stores: %+v", near)
	}
	if near[0].DistanceKm != 0 {
		t.Fatalf("expected zero distance to B&H, got %f", near[0].DistanceKm)
	}
	if _, err := uc.Nearest(context.Background(), dto.NearestInput{Lat: 91}); !errors.Is(err, apperrors.ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
}

func TestDefaultCenterIsFirstStore(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(storesout.NewEmbeddedDirectory())
	center, err := uc.DefaultCenter(context.Background())
	if err != nil {
		t.Fatalf("center: %v", err)
	}
	if center.Lat != 6.9271 || center.Lon != 79.86 {
		t.Fatalf("unexpected center: %+v", center)
	}
}
