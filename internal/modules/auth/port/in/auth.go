package in

import (
	"context"

	"aperture/internal/modules/auth/dto"
)

// Authenticator is the login collaborator the front ends depend on.
type Authenticator interface {
	Signup(ctx context.Context, input dto.SignupInput) (dto.AccountOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (dto.AccountOutput, error)
}
