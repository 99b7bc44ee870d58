package domain

import "time"

// ActiveExam is the persisted state of the exam in progress.
type ActiveExam struct {
	ExamID    string    `json:"exam_id"`
	Subject   Subject   `json:"subject"`
	StartedAt time.Time `json:"started_at"`
	Progress  Progress  `json:"progress"`
	Recorded  bool      `json:"recorded"`
}

// Attempt is a finished quiz.
type Attempt struct {
	ID         string
	Subject    Subject
	BankTitle  string
	Correct    int
	Incorrect  int
	Score      int
	MaxScore   int
	Feedback   []string
	StartedAt  time.Time
	FinishedAt time.Time
	NotePath   string
}

func (a Attempt) Percent() float64 {
	if a.MaxScore == 0 {
		return 0
	}
	return float64(a.Score) * 100 / float64(a.MaxScore)
}
