package out

import (
	"context"

	"aperture/internal/modules/learn/domain"
)

type Catalog interface {
	Subjects(ctx context.Context) ([]domain.Subject, error)
}

// PageWriter writes a rendered topic page and returns its path.
type PageWriter interface {
	WritePage(ctx context.Context, dir, name, title, markdown string) (string, error)
}
