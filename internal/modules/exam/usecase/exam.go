package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"aperture/internal/modules/exam/domain"
	"aperture/internal/modules/exam/dto"
	examin "aperture/internal/modules/exam/port/in"
	examout "aperture/internal/modules/exam/port/out"
	"aperture/internal/modules/exam/service"
	apperrors "aperture/internal/platform/errors"
	"aperture/internal/platform/logging"
)

type Interactor struct {
	mu          sync.Mutex
	svc         *service.ExamService
	activeStore examout.ActiveExamStore
	log         *zap.Logger
}

func NewInteractor(svc *service.ExamService, activeStore examout.ActiveExamStore, logger *zap.Logger) examin.Usecase {
	return &Interactor{svc: svc, activeStore: activeStore, log: logging.OrNop(logger)}
}

func (i *Interactor) ListBanks(ctx context.Context) ([]dto.BankOutput, error) {
	banks, err := i.svc.Banks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BankOutput, 0, len(banks))
	for _, bank := range banks {
		out = append(out, dto.BankOutput{
			Subject:   string(bank.Subject),
			Title:     bank.Title,
			Questions: len(bank.Questions),
			MaxScore:  bank.MaxScore(),
			Custom:    bank.Custom,
		})
	}
	return out, nil
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.ExamView, error) {
	subject := strings.ToLower(strings.TrimSpace(input.Subject))
	if subject == "" {
		return dto.ExamView{}, fmt.Errorf("subject is required: %w", apperrors.ErrInvalidInput)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	_, err := i.activeStore.LoadActive(ctx)
	if err == nil {
		return dto.ExamView{}, apperrors.ErrActiveExamExists
	}
	if !errors.Is(err, apperrors.ErrNoActiveExam) {
		return dto.ExamView{}, err
	}

	active, quiz, err := i.svc.Begin(ctx, domain.Subject(subject))
	if err != nil {
		return dto.ExamView{}, err
	}
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return dto.ExamView{}, err
	}
	i.log.Info("exam started", zap.String("exam_id", active.ExamID), zap.String("subject", subject))
	return toView(active, quiz), nil
}

func (i *Interactor) Current(ctx context.Context) (dto.ExamView, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	active, quiz, err := i.load(ctx)
	if err != nil {
		return dto.ExamView{}, err
	}
	return toView(active, quiz), nil
}

func (i *Interactor) Select(ctx context.Context, index int) (dto.ExamView, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	active, quiz, err := i.load(ctx)
	if err != nil {
		return dto.ExamView{}, err
	}
	if err := quiz.SelectAnswer(index); err != nil {
		return dto.ExamView{}, err
	}
	active.Progress = quiz.Snapshot()
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return dto.ExamView{}, err
	}
	return toView(active, quiz), nil
}

func (i *Interactor) Submit(ctx context.Context) (dto.SubmitOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	active, quiz, err := i.load(ctx)
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	return i.submit(ctx, active, quiz)
}

func (i *Interactor) Answer(ctx context.Context, index int) (dto.SubmitOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	active, quiz, err := i.load(ctx)
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	if err := quiz.SelectAnswer(index); err != nil {
		return dto.SubmitOutput{}, err
	}
	return i.submit(ctx, active, quiz)
}

func (i *Interactor) submit(ctx context.Context, active domain.ActiveExam, quiz *domain.Quiz) (dto.SubmitOutput, error) {
	outcome, err := quiz.SubmitAnswer()
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	active.Progress = quiz.Snapshot()

	out := dto.SubmitOutput{Correct: outcome.Correct, CorrectIndex: outcome.CorrectIndex, Completed: outcome.Completed}
	if outcome.Completed && !active.Recorded {
		attempt, err := i.svc.Record(ctx, active, quiz)
		if err != nil {
			return dto.SubmitOutput{}, err
		}
		active.Recorded = true
		out.AttemptID = attempt.ID
		out.NotePath = attempt.NotePath
		i.log.Info("exam completed",
			zap.String("exam_id", attempt.ID),
			zap.String("subject", string(attempt.Subject)),
			zap.Int("score", attempt.Score),
			zap.Int("max_score", attempt.MaxScore),
		)
	}
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return dto.SubmitOutput{}, err
	}
	out.View = toView(active, quiz)
	return out, nil
}

func (i *Interactor) Restart(ctx context.Context) (dto.ExamView, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	active, quiz, err := i.load(ctx)
	if err != nil {
		return dto.ExamView{}, err
	}
	active = i.svc.Restart(active, quiz)
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return dto.ExamView{}, err
	}
	i.log.Info("exam restarted", zap.String("exam_id", active.ExamID), zap.String("subject", string(active.Subject)))
	return toView(active, quiz), nil
}

func (i *Interactor) Quit(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return err
	}
	i.log.Info("exam closed", zap.String("exam_id", active.ExamID), zap.Bool("recorded", active.Recorded))
	return nil
}

func (i *Interactor) History(ctx context.Context, input dto.HistoryInput) ([]dto.AttemptOutput, error) {
	attempts, err := i.svc.History(ctx, domain.Subject(strings.ToLower(strings.TrimSpace(input.Subject))), input.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttemptOutput, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, dto.AttemptOutput{
			ID:         a.ID,
			Subject:    string(a.Subject),
			BankTitle:  a.BankTitle,
			Correct:    a.Correct,
			Incorrect:  a.Incorrect,
			Score:      a.Score,
			MaxScore:   a.MaxScore,
			FinishedAt: a.FinishedAt,
			NotePath:   a.NotePath,
		})
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func (i *Interactor) load(ctx context.Context) (domain.ActiveExam, *domain.Quiz, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return domain.ActiveExam{}, nil, err
	}
	quiz, err := i.svc.Resume(ctx, active)
	if err != nil {
		return domain.ActiveExam{}, nil, err
	}
	return active, quiz, nil
}

func toView(active domain.ActiveExam, quiz *domain.Quiz) dto.ExamView {
	index, total := quiz.Position()
	question := quiz.Current()
	correct, incorrect := quiz.Counts()
	selected, hasSelection := quiz.Selected()
	return dto.ExamView{
		ExamID:       active.ExamID,
		Subject:      string(active.Subject),
		Title:        quiz.Bank().Title,
		State:        string(quiz.State()),
		Index:        index,
		Total:        total,
		Question:     question.Text,
		Options:      append([]string(nil), question.Options...),
		Selected:     selected,
		HasSelection: hasSelection,
		Correct:      correct,
		Incorrect:    incorrect,
		Score:        quiz.Score(),
		MaxScore:     quiz.MaxScore(),
		Feedback:     quiz.Feedback(),
		StartedAt:    active.StartedAt,
	}
}
