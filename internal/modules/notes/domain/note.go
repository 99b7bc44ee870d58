package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "aperture/internal/platform/errors"
)

const (
	SchemaVersion = 1

	SummaryStart = "<!-- aperture:summary:start -->"
	SummaryEnd   = "<!-- aperture:summary:end -->"

	maxTitleRunes = 60
)

type Note struct {
	ID        string
	Title     string
	Body      string
	Summary   string
	Source    string
	Slug      string
	Path      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n Note) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return fmt.Errorf("note id is required: %w", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(n.Body) == "" {
		return fmt.Errorf("note body is required: %w", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("note title is required: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

func (n Note) WordCount() int {
	return len(strings.Fields(n.Body))
}

// TitleFromBody returns the first non-blank line, cut to 60 runes.
func TitleFromBody(body string) string {
	for _, line := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) > maxTitleRunes {
			line = strings.TrimSpace(string([]rune(line)[:maxTitleRunes]))
		}
		return line
	}
	return ""
}

// IndexEntry is the projected row used for listing and search.
type IndexEntry struct {
	ID         string
	Title      string
	Path       string
	WordCount  int
	HasSummary bool
	UpdatedAt  time.Time
}

func (n Note) Entry() IndexEntry {
	return IndexEntry{
		ID:         n.ID,
		Title:      n.Title,
		Path:       n.Path,
		WordCount:  n.WordCount(),
		HasSummary: n.Summary != "",
		UpdatedAt:  n.UpdatedAt,
	}
}
