package usecase_test

import (
	"context"
	"errors"
	"testing"

	newsout "aperture/internal/modules/news/adapter/out"
	"aperture/internal/modules/news/domain"
	"aperture/internal/modules/news/usecase"
	apperrors "aperture/internal/platform/errors"
)

type recordingLauncher struct {
	opened []string
	err    error
}

func (r *recordingLauncher) Open(_ context.Context, target string) error {
	if r.err != nil {
		return r.err
	}
	r.opened = append(r.opened, target)
	return nil
}

func TestListEmbeddedFeed(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(newsout.NewEmbeddedFeed(), &recordingLauncher{}, nil)
	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 news items, got %d", len(items))
	}
	if items[0].Number != 1 || items[0].Title != "New Photography Techniques Released!" || items[0].Image != "N1" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	for _, item := range items {
		if item.Link == "" || item.Content == "" {
			t.Fatalf("item %d is incomplete", item.Number)
		}
	}
}

func TestOpenLaunchesLink(t *testing.T) {
	t.Parallel()
	launcher := &recordingLauncher{}
	uc := usecase.NewInteractor(newsout.NewEmbeddedFeed(), launcher, nil)
	out, err := uc.Open(context.Background(), 1)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !out.Launched || len(launcher.opened) != 1 || launcher.opened[0] != "https://www.example.com/photography-techniques" {
		t.Fatalf("unexpected open result %+v %v", out, launcher.opened)
	}
	if _, err := uc.Open(context.Background(), 6); !errors.Is(err, apperrors.ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
	if _, err := uc.Get(context.Background(), 0); !errors.Is(err, apperrors.ErrOutOfRange) {
		t.Fatalf("expected out of range for item 0, got %v", err)
	}
}

func TestOpenReportsLauncherFailure(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(newsout.NewEmbeddedFeed(), &recordingLauncher{err: errors.New("no browser")}, nil)
	out, err := uc.Open(context.Background(), 2)
	if err == nil || out.Launched {
		t.Fatalf("expected launcher failure, got %+v %v", out, err)
	}
}

type staticFeed struct{ items []domain.Item }

func (f staticFeed) Items(context.Context) ([]domain.Item, error) { return f.items, nil }

func TestCarouselAdvancesAndWraps(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(newsout.NewEmbeddedFeed(), &recordingLauncher{}, nil)
	ctx := context.Background()

	slide, err := uc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if slide.Index != 0 || slide.Total != 5 || slide.Item.Number != 1 {
		t.Fatalf("unexpected first slide: %+v", slide)
	}
	for range 4 {
		if slide, err = uc.Next(ctx); err != nil {
			t.Fatalf("next: %v", err)
		}
	}
	if slide.Index != 4 || slide.Item.Number != 5 {
		t.Fatalf("expected last slide, got %+v", slide)
	}
	if slide, err = uc.Next(ctx); err != nil || slide.Index != 0 {
		t.Fatalf("next should wrap to the first slide, got %+v %v", slide, err)
	}
	if slide, err = uc.Prev(ctx); err != nil || slide.Index != 4 {
		t.Fatalf("prev should wrap to the last slide, got %+v %v", slide, err)
	}
	if again, err := uc.Current(ctx); err != nil || again.Index != 4 {
		t.Fatalf("current should not move, got %+v %v", again, err)
	}
}

func TestCarouselEmptyFeed(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(staticFeed{}, &recordingLauncher{}, nil)
	if _, err := uc.Next(context.Background()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found for empty feed, got %v", err)
	}
}
