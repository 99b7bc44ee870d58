package out

import (
	"context"

	"aperture/internal/modules/auth/domain"
)

type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (domain.Account, error)
	Create(ctx context.Context, account domain.Account) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
