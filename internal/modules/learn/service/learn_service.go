package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"aperture/internal/modules/learn/domain"
	learnout "aperture/internal/modules/learn/port/out"
	apperrors "aperture/internal/platform/errors"
)

type LearnService struct {
	catalog learnout.Catalog
	writer  learnout.PageWriter
}

func NewLearnService(catalog learnout.Catalog, writer learnout.PageWriter) *LearnService {
	return &LearnService{catalog: catalog, writer: writer}
}

func (s *LearnService) Subjects(ctx context.Context) ([]domain.Subject, error) {
	return s.catalog.Subjects(ctx)
}

func (s *LearnService) Subject(ctx context.Context, key string) (domain.Subject, error) {
	subjects, err := s.catalog.Subjects(ctx)
	if err != nil {
		return domain.Subject{}, err
	}
	key = strings.TrimSpace(key)
	for _, subject := range subjects {
		if strings.EqualFold(subject.Key, key) {
			return subject, nil
		}
	}
	return domain.Subject{}, fmt.Errorf("subject %q: %w", key, apperrors.ErrNotFound)
}

// Search matches topic names and notes, ignoring case. Blank queries match nothing.
func (s *LearnService) Search(ctx context.Context, query string) ([]domain.Match, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, nil
	}
	subjects, err := s.catalog.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Match
	for _, subject := range subjects {
		for _, topic := range subject.Topics {
			inName := strings.Contains(strings.ToLower(topic.Name), needle)
			if inName || strings.Contains(strings.ToLower(topic.Notes), needle) {
				out = append(out, domain.Match{Subject: subject.Key, Topic: topic.Name, InName: inName})
			}
		}
	}
	return out, nil
}

// Export writes one page per topic under dir/<subject>.
func (s *LearnService) Export(ctx context.Context, key, dir string) (domain.Subject, []string, error) {
	if strings.TrimSpace(dir) == "" {
		return domain.Subject{}, nil, fmt.Errorf("output directory is required: %w", apperrors.ErrInvalidInput)
	}
	subject, err := s.Subject(ctx, key)
	if err != nil {
		return domain.Subject{}, nil, err
	}
	target := filepath.Join(dir, subject.Key)
	paths := make([]string, 0, len(subject.Topics))
	for _, topic := range subject.Topics {
		path, err := s.writer.WritePage(ctx, target, topic.Slug(), topic.Name, subject.Page(topic))
		if err != nil {
			return domain.Subject{}, nil, err
		}
		paths = append(paths, path)
	}
	return subject, paths, nil
}
