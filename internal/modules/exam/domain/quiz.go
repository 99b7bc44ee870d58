package domain

import (
	"fmt"

	apperrors "aperture/internal/platform/errors"
)

type State string

const (
	StateInProgress State = "in_progress"
	StateResults    State = "results"
)

const noSelection = -1

// Outcome describes one processed answer.
type Outcome struct {
	Correct      bool
	CorrectIndex int
	Completed    bool
}

// Progress is the serialisable form of a quiz.
type Progress struct {
	Current   int      `json:"current"`
	Selected  *int     `json:"selected,omitempty"`
	Correct   int      `json:"correct"`
	Incorrect int      `json:"incorrect"`
	Complete  bool     `json:"complete"`
	Feedback  []string `json:"feedback,omitempty"`
}

// Quiz runs one attempt over a bank. It is not safe for concurrent use.
type Quiz struct {
	bank      Bank
	current   int
	selected  int
	correct   int
	incorrect int
	complete  bool
	feedback  []string
}

func NewQuiz(bank Bank) (*Quiz, error) {
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	return &Quiz{bank: bank, selected: noSelection}, nil
}

// RestoreQuiz rebuilds a quiz from a snapshot taken with Snapshot.
func RestoreQuiz(bank Bank, p Progress) (*Quiz, error) {
	q, err := NewQuiz(bank)
	if err != nil {
		return nil, err
	}
	total := len(bank.Questions)
	if p.Current < 0 || p.Current >= total || p.Correct < 0 || p.Incorrect < 0 || p.Correct+p.Incorrect > total {
		return nil, fmt.Errorf("restore quiz progress: %w", apperrors.ErrInvalidState)
	}
	if p.Complete && (p.Correct+p.Incorrect != total || p.Current != total-1) {
		return nil, fmt.Errorf("restore completed quiz: %w", apperrors.ErrInvalidState)
	}
	if !p.Complete && p.Correct+p.Incorrect != p.Current {
		return nil, fmt.Errorf("restore quiz position: %w", apperrors.ErrInvalidState)
	}
	q.current = p.Current
	q.correct = p.Correct
	q.incorrect = p.Incorrect
	q.complete = p.Complete
	if p.Selected != nil && !p.Complete {
		if err := q.SelectAnswer(*p.Selected); err != nil {
			return nil, err
		}
	}
	if q.complete {
		q.feedback = bank.Feedback.Messages(q.incorrect > 0)
	}
	return q, nil
}

func (q *Quiz) Bank() Bank { return q.bank }

func (q *Quiz) State() State {
	if q.complete {
		return StateResults
	}
	return StateInProgress
}

// Current returns the question being asked, or the last one once complete.
func (q *Quiz) Current() Question {
	return q.bank.Questions[q.current]
}

// Position is the zero-based index of the current question and the total.
func (q *Quiz) Position() (int, int) {
	return q.current, len(q.bank.Questions)
}

// Selected reports the pending selection for the current question.
func (q *Quiz) Selected() (int, bool) {
	if q.selected == noSelection {
		return 0, false
	}
	return q.selected, true
}

func (q *Quiz) Counts() (correct, incorrect int) {
	return q.correct, q.incorrect
}

// SelectAnswer overwrites any previous selection for the current question.
func (q *Quiz) SelectAnswer(index int) error {
	if q.complete {
		return fmt.Errorf("select answer after completion: %w", apperrors.ErrInvalidState)
	}
	if index < 0 || index >= len(q.Current().Options) {
		return fmt.Errorf("option %d of %d: %w", index, len(q.Current().Options), apperrors.ErrOutOfRange)
	}
	q.selected = index
	return nil
}

func (q *Quiz) SubmitAnswer() (Outcome, error) {
	if q.complete {
		return Outcome{}, fmt.Errorf("submit after completion: %w", apperrors.ErrInvalidState)
	}
	if q.selected == noSelection {
		return Outcome{}, fmt.Errorf("submit without a selection: %w", apperrors.ErrInvalidState)
	}
	question := q.Current()
	out := Outcome{Correct: q.selected == question.Correct, CorrectIndex: question.Correct}
	if out.Correct {
		q.correct++
	} else {
		q.incorrect++
	}

	if q.current == len(q.bank.Questions)-1 {
		q.complete = true
		q.feedback = q.bank.Feedback.Messages(q.incorrect > 0)
		out.Completed = true
	} else {
		q.current++
	}
	q.selected = noSelection
	return out, nil
}

func (q *Quiz) Restart() {
	q.current = 0
	q.correct = 0
	q.incorrect = 0
	q.selected = noSelection
	q.complete = false
	q.feedback = nil
}

func (q *Quiz) Score() int {
	return q.correct * PointsPerQuestion
}

func (q *Quiz) MaxScore() int {
	return q.bank.MaxScore()
}

// Feedback is empty until the quiz reaches the results state.
func (q *Quiz) Feedback() []string {
	return append([]string(nil), q.feedback...)
}

func (q *Quiz) Snapshot() Progress {
	p := Progress{
		Current:   q.current,
		Correct:   q.correct,
		Incorrect: q.incorrect,
		Complete:  q.complete,
		Feedback:  q.Feedback(),
	}
	if sel, ok := q.Selected(); ok {
		p.Selected = &sel
	}
	return p
}
