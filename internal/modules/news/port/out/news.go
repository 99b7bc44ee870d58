package out

import (
	"context"

	"aperture/internal/modules/news/domain"
)

type Feed interface {
	Items(ctx context.Context) ([]domain.Item, error)
}

type ExternalLauncher interface {
	Open(ctx context.Context, target string) error
}
