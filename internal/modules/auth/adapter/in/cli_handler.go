package in

import (
	"context"

	authdto "aperture/internal/modules/auth/dto"
	authin "aperture/internal/modules/auth/port/in"
)

type CLIHandler struct {
	auth authin.Authenticator
}

func NewCLIHandler(auth authin.Authenticator) CLIHandler {
	return CLIHandler{auth: auth}
}

func (h CLIHandler) Signup(ctx context.Context, name, email, password, confirm string) (authdto.AccountOutput, error) {
	return h.auth.Signup(ctx, authdto.SignupInput{Name: name, Email: email, Password: password, Confirm: confirm})
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (authdto.AccountOutput, error) {
	return h.auth.Login(ctx, authdto.LoginInput{Email: email, Password: password})
}
