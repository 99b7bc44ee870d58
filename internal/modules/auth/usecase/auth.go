package usecase

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"aperture/internal/modules/auth/domain"
	"aperture/internal/modules/auth/dto"
	authin "aperture/internal/modules/auth/port/in"
	"aperture/internal/modules/auth/service"
	"aperture/internal/platform/logging"
	"aperture/internal/platform/validate"
)

var signupMessages = validate.Messages{
	"name.notblank":     "Name is required.",
	"email.notblank":    "Email is required.",
	"email.email":       "Email is invalid.",
	"password.notblank": "Password is required.",
	"password.maxbytes": "Password must be at most 72 bytes.",
	"confirm.eqfield":   "Passwords do not match.",
}

var loginMessages = validate.Messages{
	"email.notblank":    "Email is required.",
	"password.notblank": "Password is required.",
}

// DemoCredentials seed an account on first use when both are set.
type DemoCredentials struct {
	Email    string
	Password string
}

type Interactor struct {
	mu       sync.Mutex
	svc      *service.AuthService
	demo     DemoCredentials
	demoOnce sync.Once
	demoErr  error
	log      *zap.Logger
}

func NewInteractor(svc *service.AuthService, demo DemoCredentials, logger *zap.Logger) authin.Authenticator {
	return &Interactor{svc: svc, demo: demo, log: logging.OrNop(logger)}
}

func (i *Interactor) Signup(ctx context.Context, input dto.SignupInput) (dto.AccountOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := validate.Struct(input, signupMessages); err != nil {
		return dto.AccountOutput{}, err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.seedDemo(ctx); err != nil {
		return dto.AccountOutput{}, err
	}
	account, err := i.svc.Register(ctx, input.Name, input.Email, input.Password, false)
	if err != nil {
		return dto.AccountOutput{}, err
	}
	i.log.Info("account created", zap.String("account_id", account.ID))
	return toOutput(account), nil
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.AccountOutput, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validate.Struct(input, loginMessages); err != nil {
		return dto.AccountOutput{}, err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.seedDemo(ctx); err != nil {
		return dto.AccountOutput{}, err
	}
	account, err := i.svc.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		i.log.Info("login rejected", zap.Error(err))
		return dto.AccountOutput{}, err
	}
	i.log.Info("login succeeded", zap.String("account_id", account.ID), zap.Bool("demo", account.Demo))
	return toOutput(account), nil
}

func (i *Interactor) seedDemo(ctx context.Context) error {
	i.demoOnce.Do(func() {
		created, err := i.svc.EnsureDemo(ctx, i.demo.Email, i.demo.Password)
		if err != nil {
			i.demoErr = err
			return
		}
		if created {
			i.log.Info("demo account seeded", zap.String("email", domain.NormalizeEmail(i.demo.Email)))
		}
	})
	return i.demoErr
}

func toOutput(account domain.Account) dto.AccountOutput {
	return dto.AccountOutput{ID: account.ID, Name: account.Name, Email: account.Email, Demo: account.Demo, CreatedAt: account.CreatedAt}
}
