package dto

import "time"

type AddInput struct {
	Title string `json:"title" validate:"max=120"`
	Text  string `json:"text" validate:"notblank"`
}

type UpdateInput struct {
	ID   string `json:"id" validate:"notblank"`
	Text string `json:"text" validate:"notblank"`
}

type ImportPDFInput struct {
	Path  string `json:"path" validate:"notblank"`
	Title string `json:"title" validate:"max=120"`
}

type NoteOutput struct {
	ID         string
	Title      string
	Path       string
	WordCount  int
	HasSummary bool
	UpdatedAt  time.Time
}

type NoteDetailOutput struct {
	ID        string
	Title     string
	Body      string
	Summary   string
	Source    string
	Path      string
	WordCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SummaryOutput struct {
	NoteID  string
	Summary string
}
