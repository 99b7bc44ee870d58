package domain_test

import (
	"errors"
	"testing"

	"aperture/internal/modules/news/domain"
	apperrors "aperture/internal/platform/errors"
)

func TestCarouselWraps(t *testing.T) {
	t.Parallel()
	c := domain.NewCarousel([]domain.Item{{Title: "a"}, {Title: "b"}, {Title: "c"}})
	seen := []string{}
	for range 4 {
		item, err := c.Current()
		if err != nil {
			t.Fatalf("current: %v", err)
		}
		seen = append(seen, item.Title)
		c.Next()
	}
	if got := seen[0] + seen[1] + seen[2] + seen[3]; got != "abca" {
		t.Fatalf("unexpected order %q", got)
	}
	c.Prev()
	c.Prev()
	if c.Index() != 2 {
		t.Fatalf("prev should wrap back to 2, got %d", c.Index())
	}
}

func TestEmptyCarousel(t *testing.T) {
	t.Parallel()
	c := domain.NewCarousel(nil)
	c.Next()
	if _, err := c.Current(); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := c.At(0); !errors.Is(err, apperrors.ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
}
