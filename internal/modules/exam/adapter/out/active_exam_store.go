package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"aperture/internal/modules/exam/domain"
	examout "aperture/internal/modules/exam/port/out"
	"aperture/internal/platform/config"
	apperrors "aperture/internal/platform/errors"
)

type FileActiveExamStore struct {
	path string
}

func NewFileActiveExamStore(vaultPath string) examout.ActiveExamStore {
	return &FileActiveExamStore{path: filepath.Join(config.StateDir(vaultPath), "active-exam.json")}
}

func (s *FileActiveExamStore) SaveActive(_ context.Context, exam domain.ActiveExam) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create active exam dir: %w", err)
	}
	payload, err := json.MarshalIndent(exam, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active exam: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write active exam: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace active exam: %w", err)
	}
	return nil
}

func (s *FileActiveExamStore) LoadActive(_ context.Context) (domain.ActiveExam, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ActiveExam{}, apperrors.ErrNoActiveExam
		}
		return domain.ActiveExam{}, fmt.Errorf("read active exam: %w", err)
	}
	exam := domain.ActiveExam{}
	if err := json.Unmarshal(payload, &exam); err != nil {
		return domain.ActiveExam{}, fmt.Errorf("decode active exam: %w", err)
	}
	if exam.ExamID == "" {
		return domain.ActiveExam{}, apperrors.ErrNoActiveExam
	}
	return exam, nil
}

func (s *FileActiveExamStore) ClearActive(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear active exam: %w", err)
	}
	return nil
}
