package domain

import (
	"fmt"

	apperrors "aperture/internal/platform/errors"
)

type Item struct {
	Title   string `yaml:"title"`
	Image   string `yaml:"image"`
	Link    string `yaml:"link"`
	Content string `yaml:"content"`
}

// Carousel cycles through news items. The zero value is an empty carousel.
type Carousel struct {
	items []Item
	index int
}

func NewCarousel(items []Item) *Carousel {
	return &Carousel{items: append([]Item(nil), items...)}
}

func (c *Carousel) Len() int { return len(c.items) }

func (c *Carousel) Index() int { return c.index }

func (c *Carousel) Current() (Item, error) {
	if len(c.items) == 0 {
		return Item{}, fmt.Errorf("news carousel is empty: %w", apperrors.ErrNotFound)
	}
	return c.items[c.index], nil
}

// Next advances and wraps to the first item after the last.
func (c *Carousel) Next() {
	if len(c.items) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.items)
}

func (c *Carousel) Prev() {
	if len(c.items) == 0 {
		return
	}
	c.index = (c.index - 1 + len(c.items)) % len(c.items)
}

// At returns the item at a zero-based position.
func (c *Carousel) At(i int) (Item, error) {
	if i < 0 || i >= len(c.items) {
		return Item{}, fmt.Errorf("news item %d of %d: %w", i+1, len(c.items), apperrors.ErrOutOfRange)
	}
	return c.items[i], nil
}
