package domain_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"aperture/internal/modules/exam/domain"
	apperrors "aperture/internal/platform/errors"
)

var feedback = domain.FeedbackTable{
	Review:   []string{"review one", "review two", "review three"},
	Congrats: "Great job! Keep practicing to maintain your knowledge!",
}

func makeBank(n int) domain.Bank {
	questions := make([]domain.Question, n)
	for i := range questions {
		questions[i] = domain.Question{
			Text:    fmt.Sprintf("question %d", i+1),
			Options: []string{"a", "b", "c", "d", "e"},
			Correct: i % 5,
		}
	}
	return domain.Bank{Subject: "test", Title: "Test", Questions: questions, Feedback: feedback}
}

func answer(t *testing.T, q *domain.Quiz, index int) domain.Outcome {
	t.Helper()
	if err := q.SelectAnswer(index); err != nil {
		t.Fatalf("select %d: %v", index, err)
	}
	out, err := q.SubmitAnswer()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return out
}

func TestAllCorrectScoresFullMarksWithCongrats(t *testing.T) {
	t.Parallel()
	bank := makeBank(10)
	q, err := domain.NewQuiz(bank)
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}
	for i, question := range bank.Questions {
		out := answer(t, q, question.Correct)
		if !out.Correct {
			t.Fatalf("question %d should be correct", i+1)
		}
		if out.Completed != (i == len(bank.Questions)-1) {
			t.Fatalf("unexpected completion flag at %d", i+1)
		}
	}
	if q.State() != domain.StateResults {
		t.Fatalf("expected results state, got %s", q.State())
	}
	if q.Score() != 100 || q.MaxScore() != 100 {
		t.Fatalf("expected 100/100, got %d/%d", q.Score(), q.MaxScore())
	}
	if got := q.Feedback(); !reflect.DeepEqual(got, []string{feedback.Congrats}) {
		t.Fatalf("expected congrats feedback, got %v", got)
	}
}

func TestFirstWrongRestRightGivesReviewList(t *testing.T) {
	t.Parallel()
	bank := makeBank(10)
	q, _ := domain.NewQuiz(bank)
	for i, question := range bank.Questions {
		choice := question.Correct
		if i == 0 {
			choice = (question.Correct + 1) % len(question.Options)
		}
		answer(t, q, choice)
	}
	correct, incorrect := q.Counts()
	if correct != 9 || incorrect != 1 {
		t.Fatalf("expected 9/1, got %d/%d", correct, incorrect)
	}
	if q.Score() != 90 {
		t.Fatalf("expected score 90, got %d", q.Score())
	}
	if got := q.Feedback(); !reflect.DeepEqual(got, feedback.Review) {
		t.Fatalf("expected review list, got %v", got)
	}
}

func TestCountsTrackSubmissionsAndScoreStaysBounded(t *testing.T) {
	t.Parallel()
	bank := makeBank(13)
	q, _ := domain.NewQuiz(bank)
	for i := range bank.Questions {
		answer(t, q, (i*3)%5)
		correct, incorrect := q.Counts()
		if correct+incorrect != i+1 {
			t.Fatalf("expected %d submissions counted, got %d", i+1, correct+incorrect)
		}
		if q.Score()%domain.PointsPerQuestion != 0 || q.Score() > q.MaxScore() {
			t.Fatalf("score %d out of bounds (max %d)", q.Score(), q.MaxScore())
		}
	}
	if q.MaxScore() != 130 {
		t.Fatalf("expected generalised max score 130, got %d", q.MaxScore())
	}
	if _, err := q.SubmitAnswer(); !errors.Is(err, apperrors.ErrInvalidState) {
		t.Fatalf("submit after results must fail with invalid state, got %v", err)
	}
	correct, incorrect := q.Counts()
	if correct+incorrect != len(bank.Questions) {
		t.Fatalf("counts exceeded question count: %d", correct+incorrect)
	}
}

func TestFeedbackIsCongratsOnlyWithoutMistakes(t *testing.T) {
	t.Parallel()
	bank := makeBank(3)
	for wrongAt := -1; wrongAt < 3; wrongAt++ {
		q, _ := domain.NewQuiz(bank)
		for i, question := range bank.Questions {
			choice := question.Correct
			if i == wrongAt {
				choice = (choice + 2) % 5
			}
			answer(t, q, choice)
		}
		_, incorrect := q.Counts()
		isCongrats := reflect.DeepEqual(q.Feedback(), []string{feedback.Congrats})
		if isCongrats != (incorrect == 0) {
			t.Fatalf("wrongAt=%d: congrats=%t incorrect=%d", wrongAt, isCongrats, incorrect)
		}
	}
}

func TestRestartResetsFromAnyState(t *testing.T) {
	t.Parallel()
	bank := makeBank(4)
	q, _ := domain.NewQuiz(bank)
	answer(t, q, 1)
	_ = q.SelectAnswer(2)
	q.Restart()
	assertFresh(t, q)

	for _, question := range bank.Questions {
		answer(t, q, question.Correct)
	}
	q.Restart()
	assertFresh(t, q)
}

func assertFresh(t *testing.T, q *domain.Quiz) {
	t.Helper()
	current, _ := q.Position()
	correct, incorrect := q.Counts()
	if current != 0 || correct != 0 || incorrect != 0 || q.State() != domain.StateInProgress {
		t.Fatalf("restart did not reset: current=%d counts=%d/%d state=%s", current, correct, incorrect, q.State())
	}
	if _, ok := q.Selected(); ok {
		t.Fatalf("restart must clear the selection")
	}
	if len(q.Feedback()) != 0 {
		t.Fatalf("restart must clear feedback")
	}
}

func TestPreconditionErrors(t *testing.T) {
	t.Parallel()
	q, _ := domain.NewQuiz(makeBank(2))
	if _, err := q.SubmitAnswer(); !errors.Is(err, apperrors.ErrInvalidState) {
		t.Fatalf("expected invalid state without selection, got %v", err)
	}
	for _, idx := range []int{-1, 5} {
		if err := q.SelectAnswer(idx); !errors.Is(err, apperrors.ErrOutOfRange) {
			t.Fatalf("expected out of range for %d, got %v", idx, err)
		}
	}
	_ = q.SelectAnswer(0)
	_ = q.SelectAnswer(3)
	if sel, ok := q.Selected(); !ok || sel != 3 {
		t.Fatalf("latest selection should win, got %d %t", sel, ok)
	}
	out, _ := q.SubmitAnswer()
	if out.Correct || out.CorrectIndex != 0 {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if _, ok := q.Selected(); ok {
		t.Fatalf("selection must reset after a transition")
	}
}

func TestNewQuizRejectsInvalidBanks(t *testing.T) {
	t.Parallel()
	empty := makeBank(0)
	if _, err := domain.NewQuiz(empty); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty bank, got %v", err)
	}
	bad := makeBank(1)
	bad.Questions[0].Correct = 7
	if _, err := domain.NewQuiz(bad); !errors.Is(err, apperrors.ErrOutOfRange) {
		t.Fatalf("expected out of range correct index, got %v", err)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	t.Parallel()
	bank := makeBank(5)
	q, _ := domain.NewQuiz(bank)
	answer(t, q, bank.Questions[0].Correct)
	answer(t, q, 4)
	_ = q.SelectAnswer(1)

	restored, err := domain.RestoreQuiz(bank, q.Snapshot())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !reflect.DeepEqual(restored.Snapshot(), q.Snapshot()) {
		t.Fatalf("snapshot mismatch: %+v vs %+v", restored.Snapshot(), q.Snapshot())
	}

	broken := q.Snapshot()
	broken.Current = 4
	if _, err := domain.RestoreQuiz(bank, broken); !errors.Is(err, apperrors.ErrInvalidState) {
		t.Fatalf("expected inconsistent snapshot to fail, got %v", err)
	}
}
