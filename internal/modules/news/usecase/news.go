package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"aperture/internal/modules/news/domain"
	"aperture/internal/modules/news/dto"
	newsin "aperture/internal/modules/news/port/in"
	newsout "aperture/internal/modules/news/port/out"
	apperrors "aperture/internal/platform/errors"
	"aperture/internal/platform/logging"
)

type Interactor struct {
	mu       sync.Mutex
	carousel *domain.Carousel
	feed     newsout.Feed
	launcher newsout.ExternalLauncher
	log      *zap.Logger
}

func NewInteractor(feed newsout.Feed, launcher newsout.ExternalLauncher, logger *zap.Logger) newsin.Usecase {
	return &Interactor{feed: feed, launcher: launcher, log: logging.OrNop(logger)}
}

func (i *Interactor) List(ctx context.Context) ([]dto.ItemOutput, error) {
	items, err := i.feed.Items(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemOutput, 0, len(items))
	for n, item := range items {
		out = append(out, toOutput(n+1, item))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, number int) (dto.ItemOutput, error) {
	item, err := i.item(ctx, number)
	if err != nil {
		return dto.ItemOutput{}, err
	}
	return toOutput(number, item), nil
}

func (i *Interactor) Open(ctx context.Context, number int) (dto.OpenOutput, error) {
	item, err := i.item(ctx, number)
	if err != nil {
		return dto.OpenOutput{}, err
	}
	if i.launcher == nil {
		return dto.OpenOutput{}, fmt.Errorf("no external launcher configured: %w", apperrors.ErrInvalidState)
	}
	if err := i.launcher.Open(ctx, item.Link); err != nil {
		i.log.Warn("open news link failed", zap.String("link", item.Link), zap.Error(err))
		return dto.OpenOutput{Number: number, Link: item.Link}, err
	}
	i.log.Info("news link opened", zap.Int("number", number), zap.String("link", item.Link))
	return dto.OpenOutput{Number: number, Link: item.Link, Launched: true}, nil
}

func (i *Interactor) Current(ctx context.Context) (dto.SlideOutput, error) {
	return i.move(ctx, nil)
}

func (i *Interactor) Next(ctx context.Context) (dto.SlideOutput, error) {
	return i.move(ctx, (*domain.Carousel).Next)
}

func (i *Interactor) Prev(ctx context.Context) (dto.SlideOutput, error) {
	return i.move(ctx, (*domain.Carousel).Prev)
}

// move loads the carousel on first use, applies step and reports the slide.
func (i *Interactor) move(ctx context.Context, step func(*domain.Carousel)) (dto.SlideOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.carousel == nil {
		items, err := i.feed.Items(ctx)
		if err != nil {
			return dto.SlideOutput{}, err
		}
		i.carousel = domain.NewCarousel(items)
	}
	if step != nil {
		step(i.carousel)
	}
	item, err := i.carousel.Current()
	if err != nil {
		return dto.SlideOutput{}, err
	}
	index := i.carousel.Index()
	return dto.SlideOutput{Item: toOutput(index+1, item), Index: index, Total: i.carousel.Len()}, nil
}

func (i *Interactor) item(ctx context.Context, number int) (domain.Item, error) {
	items, err := i.feed.Items(ctx)
	if err != nil {
		return domain.Item{}, err
	}
	return domain.NewCarousel(items).At(number - 1)
}

func toOutput(number int, item domain.Item) dto.ItemOutput {
	return dto.ItemOutput{Number: number, Title: item.Title, Image: item.Image, Link: item.Link, Content: item.Content}
}
