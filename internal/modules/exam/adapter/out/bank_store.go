package out

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"aperture/internal/modules/exam/domain"
	examout "aperture/internal/modules/exam/port/out"
	apperrors "aperture/internal/platform/errors"
)

//go:embed banks/*.yaml
var builtinBanks embed.FS

// YAMLBankStore serves the embedded banks plus any custom banks found in
// <vault>/exams/*.yaml.
type YAMLBankStore struct {
	vaultPath string
}

func NewYAMLBankStore(vaultPath string) examout.BankStore {
	return &YAMLBankStore{vaultPath: vaultPath}
}

func (s *YAMLBankStore) List(_ context.Context) ([]domain.Bank, error) {
	banks, err := loadBuiltinBanks()
	if err != nil {
		return nil, err
	}
	custom, err := s.loadCustomBanks()
	if err != nil {
		return nil, err
	}
	return append(banks, custom...), nil
}

func (s *YAMLBankStore) Get(ctx context.Context, subject domain.Subject) (domain.Bank, error) {
	banks, err := s.List(ctx)
	if err != nil {
		return domain.Bank{}, err
	}
	for _, bank := range banks {
		if bank.Subject == subject {
			return bank, nil
		}
	}
	return domain.Bank{}, fmt.Errorf("bank %q: %w", subject, apperrors.ErrNotFound)
}

func loadBuiltinBanks() ([]domain.Bank, error) {
	out := make([]domain.Bank, 0, len(domain.BuiltinSubjects()))
	for _, subject := range domain.BuiltinSubjects() {
		raw, err := builtinBanks.ReadFile("banks/" + string(subject) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read builtin bank %s: %w", subject, err)
		}
		bank, err := decodeBank(raw)
		if err != nil {
			return nil, fmt.Errorf("builtin bank %s: %w", subject, err)
		}
		out = append(out, bank)
	}
	return out, nil
}

func (s *YAMLBankStore) loadCustomBanks() ([]domain.Bank, error) {
	if s.vaultPath == "" {
		return nil, nil
	}
	matches, err := filepath.Glob(filepath.Join(s.vaultPath, "exams", "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob custom banks: %w", err)
	}
	sort.Strings(matches)

	out := make([]domain.Bank, 0, len(matches))
	seen := map[domain.Subject]string{}
	for _, path := range matches {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		bank, err := decodeBank(raw)
		if err != nil {
			return nil, fmt.Errorf("custom bank %s: %w", path, err)
		}
		if bank.Subject.IsBuiltin() {
			return nil, fmt.Errorf("custom bank %s shadows builtin subject %s: %w", path, bank.Subject, apperrors.ErrInvalidInput)
		}
		if prev, ok := seen[bank.Subject]; ok {
			return nil, fmt.Errorf("custom banks %s and %s share subject %s: %w", prev, path, bank.Subject, apperrors.ErrInvalidInput)
		}
		seen[bank.Subject] = path
		bank.Custom = true
		out = append(out, bank)
	}
	return out, nil
}

func decodeBank(raw []byte) (domain.Bank, error) {
	bank := domain.Bank{}
	if err := yaml.Unmarshal(raw, &bank); err != nil {
		return domain.Bank{}, fmt.Errorf("decode bank: %w", err)
	}
	bank.Subject = domain.Subject(strings.ToLower(strings.TrimSpace(string(bank.Subject))))
	if strings.TrimSpace(bank.Title) == "" {
		bank.Title = string(bank.Subject)
	}
	if err := bank.Validate(); err != nil {
		return domain.Bank{}, err
	}
	return bank, nil
}
