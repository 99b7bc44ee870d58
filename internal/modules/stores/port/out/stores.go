package out

import (
	"context"

	"aperture/internal/modules/stores/domain"
)

type Directory interface {
	Stores(ctx context.Context) ([]domain.Store, error)
}
