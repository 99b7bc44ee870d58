package out

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"aperture/internal/modules/news/domain"
	newsout "aperture/internal/modules/news/port/out"
)

//go:embed feed.yaml
var feedYAML []byte

type EmbeddedFeed struct{}

func NewEmbeddedFeed() newsout.Feed {
	return EmbeddedFeed{}
}

func (EmbeddedFeed) Items(_ context.Context) ([]domain.Item, error) {
	var doc struct {
		Items []domain.Item `yaml:"items"`
	}
	if err := yaml.Unmarshal(feedYAML, &doc); err != nil {
		return nil, fmt.Errorf("decode news feed: %w", err)
	}
	return doc.Items, nil
}
