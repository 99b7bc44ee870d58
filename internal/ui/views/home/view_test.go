package home_test

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	newsdto "aperture/internal/modules/news/dto"
	apperrors "aperture/internal/platform/errors"
	"aperture/internal/ui/views/home"
)

type fakePort struct {
	titles []string
	index  int
	calls  []string
}

func (f *fakePort) slide() newsdto.SlideOutput {
	return newsdto.SlideOutput{
		Item:  newsdto.ItemOutput{Number: f.index + 1, Title: f.titles[f.index]},
		Index: f.index,
		Total: len(f.titles),
	}
}

func (f *fakePort) Current(context.Context) (newsdto.SlideOutput, error) {
	f.calls = append(f.calls, "current")
	return f.slide(), nil
}

func (f *fakePort) Next(context.Context) (newsdto.SlideOutput, error) {
	f.calls = append(f.calls, "next")
	f.index = (f.index + 1) % len(f.titles)
	return f.slide(), nil
}

func (f *fakePort) Prev(context.Context) (newsdto.SlideOutput, error) {
	f.calls = append(f.calls, "prev")
	f.index = (f.index - 1 + len(f.titles)) % len(f.titles)
	return f.slide(), nil
}

func (f *fakePort) Open(context.Context, int) (newsdto.OpenOutput, error) {
	return newsdto.OpenOutput{}, nil
}

// drain runs cmd and feeds every resulting message back into m.
func drain(m home.Model, cmd tea.Cmd) home.Model {
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = drain(m, c)
		}
		return m
	}
	if msg == nil {
		return m
	}
	m, next := m.Update(msg)
	return drain(m, next)
}

func TestHomeDrivesCarouselThroughPort(t *testing.T) {
	t.Parallel()
	port := &fakePort{titles: []string{"First story", "Second story"}}
	m := home.New(port, 0)
	m = drain(m, m.Init())
	if item, ok := m.Current(); !ok || item.Title != "First story" {
		t.Fatalf("expected first story after init, got %+v %v", item, ok)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = drain(m, cmd)
	if item, _ := m.Current(); item.Title != "Second story" {
		t.Fatalf("expected second story after right, got %+v", item)
	}
	if !strings.Contains(m.View(), "Second story") {
		t.Fatalf("view should show the current story")
	}

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = drain(m, cmd)
	if item, _ := m.Current(); item.Title != "First story" {
		t.Fatalf("expected first story after left, got %+v", item)
	}
	if got := strings.Join(port.calls, ","); got != "current,next,prev" {
		t.Fatalf("unexpected port calls %q", got)
	}
}

func TestHomeEmptyFeed(t *testing.T) {
	t.Parallel()
	m := home.New(&fakePort{titles: []string{"only"}}, 0)
	m, _ = m.Update(home.SlideMsg{Err: apperrors.ErrNotFound})
	if _, ok := m.Current(); ok {
		t.Fatalf("expected no current item for an empty feed")
	}
	if !strings.Contains(m.View(), "No news yet.") {
		t.Fatalf("unexpected view %q", m.View())
	}
}
