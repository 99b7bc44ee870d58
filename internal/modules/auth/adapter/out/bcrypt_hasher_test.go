package out_test

import (
	"errors"
	"strings"
	"testing"

	authout "aperture/internal/modules/auth/adapter/out"
	apperrors "aperture/internal/platform/errors"
)

func TestBcryptHasherRejectsLongPasswords(t *testing.T) {
	t.Parallel()
	hasher := authout.NewBcryptHasher(4)
	if _, err := hasher.Hash(strings.Repeat("p", 80)); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for 80 byte password, got %v", err)
	}
	hash, err := hasher.Hash(strings.Repeat("p", 72))
	if err != nil {
		t.Fatalf("hash 72 bytes: %v", err)
	}
	if err := hasher.Compare(hash, strings.Repeat("p", 72)); err != nil {
		t.Fatalf("compare: %v", err)
	}
}
