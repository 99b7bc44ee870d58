package usecase

import (
	"context"

	"go.uber.org/zap"

	"aperture/internal/modules/learn/dto"
	learnin "aperture/internal/modules/learn/port/in"
	"aperture/internal/modules/learn/service"
	"aperture/internal/platform/logging"
)

type Interactor struct {
	svc *service.LearnService
	log *zap.Logger
}

func NewInteractor(svc *service.LearnService, logger *zap.Logger) learnin.Usecase {
	return &Interactor{svc: svc, log: logging.OrNop(logger)}
}

func (i *Interactor) Subjects(ctx context.Context) ([]dto.SubjectOutput, error) {
	subjects, err := i.svc.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubjectOutput, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, dto.SubjectOutput{Key: s.Key, Title: s.Title, Topics: len(s.Topics)})
	}
	return out, nil
}

func (i *Interactor) Topics(ctx context.Context, subject string) ([]dto.TopicOutput, error) {
	s, err := i.svc.Subject(ctx, subject)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopicOutput, 0, len(s.Topics))
	for _, t := range s.Topics {
		out = append(out, dto.TopicOutput{Subject: s.Key, Name: t.Name, Slug: t.Slug(), Icon: t.Icon})
	}
	return out, nil
}

func (i *Interactor) Topic(ctx context.Context, subject, name string) (dto.TopicDetailOutput, error) {
	s, err := i.svc.Subject(ctx, subject)
	if err != nil {
		return dto.TopicDetailOutput{}, err
	}
	t, err := s.Topic(name)
	if err != nil {
		return dto.TopicDetailOutput{}, err
	}
	return dto.TopicDetailOutput{
		Subject:      s.Key,
		SubjectTitle: s.Title,
		Name:         t.Name,
		Slug:         t.Slug(),
		Notes:        s.NotesFor(t),
		References:   s.ReferencesFor(t),
		Markdown:     s.Page(t),
	}, nil
}

func (i *Interactor) Search(ctx context.Context, query string) ([]dto.SearchResult, error) {
	matches, err := i.svc.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SearchResult, 0, len(matches))
	for _, m := range matches {
		out = append(out, dto.SearchResult{Subject: m.Subject, Topic: m.Topic, InName: m.InName})
	}
	return out, nil
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	subject, paths, err := i.svc.Export(ctx, input.Subject, input.OutDir)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	i.log.Info("learn pages exported", zap.String("subject", subject.Key), zap.Int("pages", len(paths)), zap.String("dir", input.OutDir))
	return dto.ExportOutput{Subject: subject.Key, Paths: paths}, nil
}
