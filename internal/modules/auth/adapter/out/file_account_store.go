package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"aperture/internal/modules/auth/domain"
	authout "aperture/internal/modules/auth/port/out"
	"aperture/internal/platform/config"
	apperrors "aperture/internal/platform/errors"
)

// FileAccountStore keeps accounts in <vault>/.aperture/accounts.json.
type FileAccountStore struct {
	path string
}

func NewFileAccountStore(vaultPath string) authout.AccountStore {
	return &FileAccountStore{path: filepath.Join(config.StateDir(vaultPath), "accounts.json")}
}

type accountsFile struct {
	Accounts []domain.Account `json:"accounts"`
}

func (s *FileAccountStore) FindByEmail(_ context.Context, email string) (domain.Account, error) {
	file, err := s.load()
	if err != nil {
		return domain.Account{}, err
	}
	email = domain.NormalizeEmail(email)
	for _, account := range file.Accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return domain.Account{}, apperrors.ErrNotFound
}

func (s *FileAccountStore) Create(_ context.Context, account domain.Account) error {
	file, err := s.load()
	if err != nil {
		return err
	}
	for _, existing := range file.Accounts {
		if existing.Email == account.Email {
			return apperrors.ErrAccountExists
		}
	}
	file.Accounts = append(file.Accounts, account)
	return s.save(file)
}

func (s *FileAccountStore) load() (accountsFile, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return accountsFile{}, nil
		}
		return accountsFile{}, fmt.Errorf("read accounts: %w", err)
	}
	file := accountsFile{}
	if err := json.Unmarshal(payload, &file); err != nil {
		return accountsFile{}, fmt.Errorf("decode accounts: %w", err)
	}
	return file, nil
}

func (s *FileAccountStore) save(file accountsFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create accounts dir: %w", err)
	}
	payload, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal accounts: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write accounts: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace accounts: %w", err)
	}
	return nil
}
