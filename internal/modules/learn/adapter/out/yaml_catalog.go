package out

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"aperture/internal/modules/learn/domain"
	learnout "aperture/internal/modules/learn/port/out"
)

//go:embed content/*.yaml
var content embed.FS

var subjectOrder = []string{"camera", "lens", "lighting", "composition"}

// EmbeddedCatalog decodes the bundled content once and serves copies of it.
type EmbeddedCatalog struct {
	once     sync.Once
	subjects []domain.Subject
	err      error
}

func NewEmbeddedCatalog() learnout.Catalog {
	return &EmbeddedCatalog{}
}

func (c *EmbeddedCatalog) Subjects(_ context.Context) ([]domain.Subject, error) {
	c.once.Do(func() {
		c.subjects, c.err = loadSubjects()
	})
	if c.err != nil {
		return nil, c.err
	}
	return append([]domain.Subject(nil), c.subjects...), nil
}

func loadSubjects() ([]domain.Subject, error) {
	out := make([]domain.Subject, 0, len(subjectOrder))
	for _, key := range subjectOrder {
		raw, err := content.ReadFile("content/" + key + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read learn content %s: %w", key, err)
		}
		subject := domain.Subject{}
		if err := yaml.Unmarshal(raw, &subject); err != nil {
			return nil, fmt.Errorf("decode learn content %s: %w", key, err)
		}
		if err := subject.Validate(); err != nil {
			return nil, err
		}
		out = append(out, subject)
	}
	return out, nil
}
