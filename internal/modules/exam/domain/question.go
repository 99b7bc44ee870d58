package domain

import (
	"fmt"
	"strings"

	apperrors "aperture/internal/platform/errors"
)

const (
	SchemaVersion = 1
	// PointsPerQuestion is what one correct answer is worth.
	PointsPerQuestion = 10
)

type Question struct {
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options" yaml:"options"`
	Correct int      `json:"correct" yaml:"correct"`
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question text is required: %w", apperrors.ErrInvalidInput)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %q needs at least two options: %w", q.Text, apperrors.ErrInvalidInput)
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("question %q correct index %d: %w", q.Text, q.Correct, apperrors.ErrOutOfRange)
	}
	return nil
}

// FeedbackTable holds the subject-specific result messages.
type FeedbackTable struct {
	Review   []string `json:"review" yaml:"review"`
	Congrats string   `json:"congrats" yaml:"congrats"`
}

// Messages depends only on whether any answer was wrong.
func (f FeedbackTable) Messages(hasIncorrect bool) []string {
	if hasIncorrect {
		return append([]string(nil), f.Review...)
	}
	return []string{f.Congrats}
}

type Subject string

const (
	SubjectCamera      Subject = "camera"
	SubjectLens        Subject = "lens"
	SubjectLighting    Subject = "lighting"
	SubjectComposition Subject = "composition"
)

func BuiltinSubjects() []Subject {
	return []Subject{SubjectCamera, SubjectLens, SubjectLighting, SubjectComposition}
}

func (s Subject) IsBuiltin() bool {
	for _, b := range BuiltinSubjects() {
		if b == s {
			return true
		}
	}
	return false
}

// Bank is one subject's ordered question set.
type Bank struct {
	Subject   Subject       `json:"subject" yaml:"subject"`
	Title     string        `json:"title" yaml:"title"`
	Questions []Question    `json:"questions" yaml:"questions"`
	Feedback  FeedbackTable `json:"feedback" yaml:"feedback"`
	Custom    bool          `json:"-" yaml:"-"`
}

func (b Bank) Validate() error {
	if strings.TrimSpace(string(b.Subject)) == "" {
		return fmt.Errorf("bank subject is required: %w", apperrors.ErrInvalidInput)
	}
	if len(b.Questions) == 0 {
		return fmt.Errorf("bank %s has no questions: %w", b.Subject, apperrors.ErrInvalidInput)
	}
	for i, q := range b.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("bank %s question %d: %w", b.Subject, i+1, err)
		}
	}
	if len(b.Feedback.Review) == 0 || strings.TrimSpace(b.Feedback.Congrats) == "" {
		return fmt.Errorf("bank %s feedback is incomplete: %w", b.Subject, apperrors.ErrInvalidInput)
	}
	return nil
}

func (b Bank) MaxScore() int {
	return len(b.Questions) * PointsPerQuestion
}
