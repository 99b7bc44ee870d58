package domain

import (
	"fmt"
	"strings"

	apperrors "aperture/internal/platform/errors"
	"aperture/internal/platform/slug"
)

type Topic struct {
	Name       string `yaml:"name"`
	Icon       string `yaml:"icon"`
	Notes      string `yaml:"notes"`
	References string `yaml:"references"`
}

func (t Topic) Slug() string {
	return slug.Make(t.Name)
}

// Subject is one learn page. Its key matches the exam subject of the same name.
type Subject struct {
	Key                string  `yaml:"subject"`
	Title              string  `yaml:"title"`
	Fallback           string  `yaml:"fallback"`
	ReferencesFallback string  `yaml:"references_fallback"`
	Topics             []Topic `yaml:"topics"`
}

func (s Subject) Validate() error {
	if strings.TrimSpace(s.Key) == "" {
		return fmt.Errorf("subject key is required: %w", apperrors.ErrInvalidInput)
	}
	if len(s.Topics) == 0 {
		return fmt.Errorf("subject %s has no topics: %w", s.Key, apperrors.ErrInvalidInput)
	}
	seen := map[string]bool{}
	for _, topic := range s.Topics {
		if strings.TrimSpace(topic.Name) == "" {
			return fmt.Errorf("subject %s has a topic without a name: %w", s.Key, apperrors.ErrInvalidInput)
		}
		if seen[topic.Slug()] {
			return fmt.Errorf("subject %s repeats topic %q: %w", s.Key, topic.Name, apperrors.ErrInvalidInput)
		}
		seen[topic.Slug()] = true
	}
	return nil
}

// Topic finds a topic by name or slug, ignoring case.
func (s Subject) Topic(name string) (Topic, error) {
	needle := strings.TrimSpace(name)
	for _, topic := range s.Topics {
		if strings.EqualFold(topic.Name, needle) || topic.Slug() == strings.ToLower(needle) {
			return topic, nil
		}
	}
	return Topic{}, fmt.Errorf("topic %q in %s: %w", name, s.Key, apperrors.ErrNotFound)
}

// NotesFor returns the topic notes or the subject fallback.
func (s Subject) NotesFor(t Topic) string {
	if strings.TrimSpace(t.Notes) == "" {
		return s.Fallback
	}
	return t.Notes
}

func (s Subject) ReferencesFor(t Topic) string {
	if strings.TrimSpace(t.References) == "" {
		return s.ReferencesFallback
	}
	return t.References
}

// Page renders a topic as a markdown document.
func (s Subject) Page(t Topic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Name)
	fmt.Fprintf(&b, "_%s_\n\n", s.Title)
	b.WriteString("## Notes\n\n")
	b.WriteString(strings.TrimSpace(s.NotesFor(t)))
	b.WriteString("\n\n## References\n\n")
	b.WriteString(strings.TrimSpace(s.ReferencesFor(t)))
	b.WriteString("\n")
	return b.String()
}

// Match is one search hit.
type Match struct {
	Subject string
	Topic   string
	InName  bool
}
