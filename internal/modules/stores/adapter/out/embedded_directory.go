package out

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"aperture/internal/modules/stores/domain"
	storesout "aperture/internal/modules/stores/port/out"
)

//go:embed stores.yaml
var storesYAML []byte

type EmbeddedDirectory struct{}

func NewEmbeddedDirectory() storesout.Directory {
	return EmbeddedDirectory{}
}

func (EmbeddedDirectory) Stores(_ context.Context) ([]domain.Store, error) {
	var doc struct {
		Stores []domain.Store `yaml:"stores"`
	}
	if err := yaml.Unmarshal(storesYAML, &doc); err != nil {
		return nil, fmt.Errorf("decode store directory: %w", err)
	}
	for _, s := range doc.Stores {
		if _, err := domain.ParseKind(string(s.Kind)); err != nil || s.Kind == "" {
			return nil, fmt.Errorf("store %q has kind %q", s.Name, s.Kind)
		}
		if err := s.Location.Validate(); err != nil {
			return nil, fmt.Errorf("store %q: %w", s.Name, err)
		}
	}
	return doc.Stores, nil
}
