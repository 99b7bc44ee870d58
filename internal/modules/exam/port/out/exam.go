package out

import (
	"context"

	"aperture/internal/modules/exam/domain"
)

type BankStore interface {
	List(ctx context.Context) ([]domain.Bank, error)
	Get(ctx context.Context, subject domain.Subject) (domain.Bank, error)
}

type ActiveExamStore interface {
	SaveActive(ctx context.Context, exam domain.ActiveExam) error
	LoadActive(ctx context.Context) (domain.ActiveExam, error)
	ClearActive(ctx context.Context) error
}

type AttemptStore interface {
	Save(ctx context.Context, attempt domain.Attempt) (string, error)
	List(ctx context.Context) ([]domain.Attempt, error)
}

type AttemptProjector interface {
	Reset(ctx context.Context) error
	UpsertAttempt(ctx context.Context, attempt domain.Attempt) error
	ListAttempts(ctx context.Context, subject domain.Subject, limit int) ([]domain.Attempt, error)
}
