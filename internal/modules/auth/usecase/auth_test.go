package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	authout "aperture/internal/modules/auth/adapter/out"
	"aperture/internal/modules/auth/dto"
	authin "aperture/internal/modules/auth/port/in"
	"aperture/internal/modules/auth/service"
	"aperture/internal/modules/auth/usecase"
	"aperture/internal/platform/clock"
	apperrors "aperture/internal/platform/errors"
)

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("acct-%d", s.n)
}

func newAuth(vault string, demo usecase.DemoCredentials) authin.Authenticator {
	svc := service.NewAuthService(
		clock.Fixed{At: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)},
		&seqID{},
		authout.NewFileAccountStore(vault),
		authout.NewBcryptHasher(bcrypt.MinCost),
	)
	return usecase.NewInteractor(svc, demo, nil)
}

func TestSignupValidationOrder(t *testing.T) {
	t.Parallel()
	auth := newAuth(t.TempDir(), usecase.DemoCredentials{})
	cases := []struct {
		input dto.SignupInput
		want  string
	}{
		{dto.SignupInput{}, "Name is required."},
		{dto.SignupInput{Name: "Ana"}, "Email is required."},
		{dto.SignupInput{Name: "Ana", Email: "not-an-email"}, "Email is invalid."},
		{dto.SignupInput{Name: "Ana", Email: "ana@example.com"}, "Password is required."},
		{dto.SignupInput{Name: "Ana", Email: "ana@example.com", Password: strings.Repeat("p", 80), Confirm: strings.Repeat("p", 80)}, "Password must be at most 72 bytes."},
		{dto.SignupInput{Name: "Ana", Email: "ana@example.com", Password: strings.Repeat("é", 40), Confirm: strings.Repeat("é", 40)}, "Password must be at most 72 bytes."},
		{dto.SignupInput{Name: "Ana", Email: "ana@example.com", Password: "pw1"}, "Passwords do not match."},
		{dto.SignupInput{Name: "Ana", Email: "ana@example.com", Password: "pw1", Confirm: "pw2"}, "Passwords do not match."},
	}
	for _, tc := range cases {
		_, err := auth.Signup(context.Background(), tc.input)
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%+v: expected invalid input, got %v", tc.input, err)
		}
		if err.Error() != tc.want {
			t.Fatalf("%+v: expected %q, got %q", tc.input, tc.want, err.Error())
		}
	}
}

func TestSignupThenLogin(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	auth := newAuth(vault, usecase.DemoCredentials{})
	ctx := context.Background()

	account, err := auth.Signup(ctx, dto.SignupInput{Name: " Ana ", Email: " Ana@Example.COM ", Password: "secret", Confirm: "secret"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if account.Email != "ana@example.com" || account.Name != "Ana" {
		t.Fatalf("unexpected account: %+v", account)
	}
	raw, err := os.ReadFile(filepath.Join(vault, ".aperture", "accounts.json"))
	if err != nil {
		t.Fatalf("read accounts: %v", err)
	}
	if strings.Contains(string(raw), "secret") {
		t.Fatalf("password stored in clear text")
	}

	if _, err := auth.Signup(ctx, dto.SignupInput{Name: "Other", Email: "ana@example.com", Password: "x", Confirm: "x"}); !errors.Is(err, apperrors.ErrAccountExists) {
		t.Fatalf("expected duplicate account error, got %v", err)
	}
	logged, err := auth.Login(ctx, dto.LoginInput{Email: "ANA@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != account.ID {
		t.Fatalf("logged in as %s, want %s", logged.ID, account.ID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	auth := newAuth(t.TempDir(), usecase.DemoCredentials{})
	ctx := context.Background()
	if _, err := auth.Signup(ctx, dto.SignupInput{Name: "Ana", Email: "ana@example.com", Password: "secret", Confirm: "secret"}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	for _, input := range []dto.LoginInput{
		{Email: "ana@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "secret"},
	} {
		_, err := auth.Login(ctx, input)
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	}
	if _, err := auth.Login(ctx, dto.LoginInput{Email: "ana@example.com"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty password, got %v", err)
	}
}

func TestDemoAccountSeeded(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	demo := usecase.DemoCredentials{Email: "demo@aperture.local", Password: "shutter"}
	account, err := newAuth(vault, demo).Login(context.Background(), dto.LoginInput{Email: "demo@aperture.local", Password: "shutter"})
	if err != nil {
		t.Fatalf("demo login: %v", err)
	}
	if !account.Demo {
		t.Fatalf("expected demo account, got %+v", account)
	}
	if _, err := newAuth(vault, demo).Login(context.Background(), dto.LoginInput{Email: "demo@aperture.local", Password: "shutter"}); err != nil {
		t.Fatalf("second process demo login: %v", err)
	}
	if _, err := newAuth(t.TempDir(), usecase.DemoCredentials{}).Login(context.Background(), dto.LoginInput{Email: "demo@aperture.local", Password: "shutter"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("without demo config login should fail, got %v", err)
	}
}
