package domain_test

import (
	"errors"
	"strings"
	"testing"

	"aperture/internal/modules/learn/domain"
	apperrors "aperture/internal/platform/errors"
)

func sampleSubject() domain.Subject {
	return domain.Subject{
		Key:                "lens",
		Title:              "Lenses",
		Fallback:           "No notes available for this topic.",
		ReferencesFallback: "No references available.",
		Topics: []domain.Topic{
			{Name: "Prime Lens", Notes: "Fixed focal length.", References: "- Lens guide"},
			{Name: "Wide-Angle Lens"},
		},
	}
}

func TestTopicLookupByNameOrSlug(t *testing.T) {
	t.Parallel()
	s := sampleSubject()
	for _, name := range []string{"prime lens", "PRIME LENS", "prime-lens", " Prime Lens "} {
		topic, err := s.Topic(name)
		if err != nil {
			t.Fatalf("lookup %q: %v", name, err)
		}
		if topic.Name != "Prime Lens" {
			t.Fatalf("lookup %q returned %q", name, topic.Name)
		}
	}
	if _, err := s.Topic("tilt shift"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPageUsesFallbacks(t *testing.T) {
	t.Parallel()
	s := sampleSubject()
	topic, err := s.Topic("wide-angle-lens")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	page := s.Page(topic)
	if !strings.Contains(page, "No notes available for this topic.") || !strings.Contains(page, "No references available.") {
		t.Fatalf("fallbacks missing from page:\n%s", page)
	}
	if !strings.HasPrefix(page, "# Wide-Angle Lens\n") {
		t.Fatalf("unexpected page heading:\n%s", page)
	}
}

func TestValidateRejectsDuplicateTopics(t *testing.T) {
	t.Parallel()
	s := sampleSubject()
	s.Topics = append(s.Topics, domain.Topic{Name: "prime lens"})
	if err := s.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
