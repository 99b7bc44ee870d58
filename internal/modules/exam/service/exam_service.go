package service

import (
	"context"
	"fmt"

	"aperture/internal/modules/exam/domain"
	examout "aperture/internal/modules/exam/port/out"
	"aperture/internal/platform/clock"
	"aperture/internal/platform/id"
)

type ExamService struct {
	clock     clock.Clock
	idGen     id.Generator
	banks     examout.BankStore
	attempts  examout.AttemptStore
	projector examout.AttemptProjector
}

func NewExamService(clock clock.Clock, idGen id.Generator, banks examout.BankStore, attempts examout.AttemptStore, projector examout.AttemptProjector) *ExamService {
	return &ExamService{clock: clock, idGen: idGen, banks: banks, attempts: attempts, projector: projector}
}

func (s *ExamService) Banks(ctx context.Context) ([]domain.Bank, error) {
	return s.banks.List(ctx)
}

// Begin creates a fresh quiz for the subject.
func (s *ExamService) Begin(ctx context.Context, subject domain.Subject) (domain.ActiveExam, *domain.Quiz, error) {
	bank, err := s.banks.Get(ctx, subject)
	if err != nil {
		return domain.ActiveExam{}, nil, err
	}
	quiz, err := domain.NewQuiz(bank)
	if err != nil {
		return domain.ActiveExam{}, nil, err
	}
	active := domain.ActiveExam{
		ExamID:    s.idGen.New(),
		Subject:   bank.Subject,
		StartedAt: s.clock.Now(),
		Progress:  quiz.Snapshot(),
	}
	return active, quiz, nil
}

// Resume rebuilds the quiz an active exam points at.
func (s *ExamService) Resume(ctx context.Context, active domain.ActiveExam) (*domain.Quiz, error) {
	bank, err := s.banks.Get(ctx, active.Subject)
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", active.Subject, err)
	}
	return domain.RestoreQuiz(bank, active.Progress)
}

// Restart resets the quiz and opens a new attempt on the same bank.
func (s *ExamService) Restart(active domain.ActiveExam, quiz *domain.Quiz) domain.ActiveExam {
	quiz.Restart()
	active.ExamID = s.idGen.New()
	active.StartedAt = s.clock.Now()
	active.Recorded = false
	active.Progress = quiz.Snapshot()
	return active
}

// Record persists a completed quiz as an attempt note and index row.
func (s *ExamService) Record(ctx context.Context, active domain.ActiveExam, quiz *domain.Quiz) (domain.Attempt, error) {
	if quiz.State() != domain.StateResults {
		return domain.Attempt{}, fmt.Errorf("record unfinished exam %s", active.ExamID)
	}
	correct, incorrect := quiz.Counts()
	attempt := domain.Attempt{
		ID:         active.ExamID,
		Subject:    active.Subject,
		BankTitle:  quiz.Bank().Title,
		Correct:    correct,
		Incorrect:  incorrect,
		Score:      quiz.Score(),
		MaxScore:   quiz.MaxScore(),
		Feedback:   quiz.Feedback(),
		StartedAt:  active.StartedAt,
		FinishedAt: s.clock.Now(),
	}
	path, err := s.attempts.Save(ctx, attempt)
	if err != nil {
		return domain.Attempt{}, err
	}
	attempt.NotePath = path
	if err := s.projector.UpsertAttempt(ctx, attempt); err != nil {
		return domain.Attempt{}, err
	}
	return attempt, nil
}

func (s *ExamService) History(ctx context.Context, subject domain.Subject, limit int) ([]domain.Attempt, error) {
	return s.projector.ListAttempts(ctx, subject, limit)
}

func (s *ExamService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	attempts, err := s.attempts.List(ctx)
	if err != nil {
		return err
	}
	for _, attempt := range attempts {
		if err := s.projector.UpsertAttempt(ctx, attempt); err != nil {
			return err
		}
	}
	return nil
}
