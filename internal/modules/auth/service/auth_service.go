package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aperture/internal/modules/auth/domain"
	authout "aperture/internal/modules/auth/port/out"
	"aperture/internal/platform/clock"
	apperrors "aperture/internal/platform/errors"
	"aperture/internal/platform/id"
)

type AuthService struct {
	clock  clock.Clock
	idGen  id.Generator
	store  authout.AccountStore
	hasher authout.PasswordHasher
}

func NewAuthService(clock clock.Clock, idGen id.Generator, store authout.AccountStore, hasher authout.PasswordHasher) *AuthService {
	return &AuthService{clock: clock, idGen: idGen, store: store, hasher: hasher}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string, demo bool) (domain.Account, error) {
	email = domain.NormalizeEmail(email)
	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return domain.Account{}, apperrors.ErrAccountExists
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.Account{}, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash password: %w", err)
	}
	account := domain.Account{
		ID:           s.idGen.New(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Demo:         demo,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.store.Create(ctx, account); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

// Authenticate hides whether the email or the password was wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (domain.Account, error) {
	account, err := s.store.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Account{}, apperrors.ErrInvalidCredentials
		}
		return domain.Account{}, err
	}
	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		return domain.Account{}, apperrors.ErrInvalidCredentials
	}
	return account, nil
}

// EnsureDemo creates the configured demo account when it is missing.
func (s *AuthService) EnsureDemo(ctx context.Context, email, password string) (bool, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return false, nil
	}
	_, err := s.Register(ctx, "Demo", email, password, true)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperrors.ErrAccountExists):
		return false, nil
	default:
		return false, err
	}
}
