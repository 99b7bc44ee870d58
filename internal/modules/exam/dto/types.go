package dto

import "time"

type BankOutput struct {
	Subject   string
	Title     string
	Questions int
	MaxScore  int
	Custom    bool
}

type StartInput struct {
	Subject string
}

// ExamView is everything a front end needs to render the exam in progress.
type ExamView struct {
	ExamID       string
	Subject      string
	Title        string
	State        string
	Index        int
	Total        int
	Question     string
	Options      []string
	Selected     int
	HasSelection bool
	Correct      int
	Incorrect    int
	Score        int
	MaxScore     int
	Feedback     []string
	StartedAt    time.Time
}

type SubmitOutput struct {
	Correct      bool
	CorrectIndex int
	Completed    bool
	AttemptID    string
	NotePath     string
	View         ExamView
}

type HistoryInput struct {
	Subject string
	Limit   int
}

type AttemptOutput struct {
	ID         string
	Subject    string
	BankTitle  string
	Correct    int
	Incorrect  int
	Score      int
	MaxScore   int
	FinishedAt time.Time
	NotePath   string
}
