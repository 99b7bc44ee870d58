package home

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	newsdto "aperture/internal/modules/news/dto"
	apperrors "aperture/internal/platform/errors"
	"aperture/internal/ui/components"
	"aperture/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Current(ctx context.Context) (newsdto.SlideOutput, error)
	Next(ctx context.Context) (newsdto.SlideOutput, error)
	Prev(ctx context.Context) (newsdto.SlideOutput, error)
	Open(ctx context.Context, number int) (newsdto.OpenOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// SlideMsg carries the carousel position after a load or a move.
type SlideMsg struct {
	Slide newsdto.SlideOutput
	Err   error
}

// OpenedMsg reports the result of launching an item's link.
type OpenedMsg struct {
	Out newsdto.OpenOutput
	Err error
}

// advanceMsg carries the tick generation so stale timers are ignored.
type advanceMsg struct{ gen int }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the Home tab: a self-advancing news carousel with an article view.
type Model struct {
	port     Port
	interval time.Duration
	slide    newsdto.SlideOutput
	loaded   bool
	gen      int
	reading  bool
	article  viewport.Model
	renderer *glamour.TermRenderer
	user     string
	err      string
	width    int
	height   int
}

func New(port Port, interval time.Duration) Model {
	r, _ := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(0))
	return Model{
		port:     port,
		interval: interval,
		article:  viewport.New(0, 0),
		renderer: r,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.slideCmd(m.port.Current), m.tickCmd())
}

// SetUser sets the name shown in the greeting.
func (m *Model) SetUser(name string) { m.user = name }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case SlideMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, apperrors.ErrNotFound) {
				m.loaded = false
				return m, nil
			}
			m.err = components.UserMessage(msg.Err)
			return m, nil
		}
		m.err = ""
		m.slide = msg.Slide
		m.loaded = true
		return m, nil

	case advanceMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if m.reading {
			return m, m.tickCmd()
		}
		return m, tea.Batch(m.slideCmd(m.port.Next), m.tickCmd())

	case tea.KeyMsg:
		if m.reading {
			switch msg.String() {
			case "esc", "backspace":
				m.reading = false
				return m, nil
			case "o":
				return m, m.openCmd()
			}
			var cmd tea.Cmd
			m.article, cmd = m.article.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "right", "l":
			cmd := m.Next()
			return m, cmd
		case "left", "h":
			tick := m.restartTimer()
			return m, tea.Batch(m.slideCmd(m.port.Prev), tick)
		case "enter":
			if m.loaded {
				m.reading = true
				m.article.SetContent(m.renderArticle())
				m.article.GotoTop()
			}
			return m, nil
		case "o":
			return m, m.openCmd()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != "" {
		return theme.Bad.Render(m.err)
	}
	if !m.loaded {
		return theme.Muted.Render("No news yet.")
	}
	if m.reading {
		header := theme.Title.Render("News") + theme.Muted.Render("  esc: back  o: open link  ↑/↓: scroll")
		return lipgloss.JoinVertical(lipgloss.Left, header, m.article.View())
	}

	greeting := "Welcome back"
	if m.user != "" {
		greeting += ", " + m.user
	}
	item := m.slide.Item
	card := theme.PaneActive.Width(m.cardWidth()).Render(
		theme.Hot.Render(item.Title) + "\n\n" +
			theme.Muted.Render(item.Image) + "\n\n" +
			excerpt(item.Content, 240) + "\n\n" +
			theme.Muted.Render(item.Link),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(greeting),
		"",
		theme.Muted.Render("Photography news"),
		card,
		m.dots(),
		theme.Muted.Render("←/→: browse  enter: read  o: open in browser"),
	)
}

// Current returns the item on screen, if any.
func (m Model) Current() (newsdto.ItemOutput, bool) {
	if !m.loaded {
		return newsdto.ItemOutput{}, false
	}
	return m.slide.Item, true
}

// Next advances the carousel by one item.
func (m *Model) Next() tea.Cmd {
	tick := m.restartTimer()
	return tea.Batch(m.slideCmd(m.port.Next), tick)
}

// Resume restarts the auto-advance timer, dropping any pending tick.
func (m *Model) Resume() tea.Cmd { return m.restartTimer() }

// Open launches the current item's link.
func (m Model) Open() tea.Cmd { return m.openCmd() }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) restartTimer() tea.Cmd {
	m.gen++
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return advanceMsg{gen: gen} })
}

func (m *Model) resize() {
	m.article.Width = m.width
	m.article.Height = m.height - 2
	if m.article.Height < 1 {
		m.article.Height = 1
	}
	if r, err := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(m.width)); err == nil {
		m.renderer = r
	}
	if m.reading {
		m.article.SetContent(m.renderArticle())
	}
}

func (m Model) cardWidth() int {
	w := m.width - 4
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) dots() string {
	parts := make([]string, m.slide.Total)
	for i := range parts {
		if i == m.slide.Index {
			parts[i] = theme.Hot.Render("●")
		} else {
			parts[i] = theme.Muted.Render("○")
		}
	}
	return " " + strings.Join(parts, " ")
}

func (m Model) renderArticle() string {
	item := m.slide.Item
	md := fmt.Sprintf("# %s\n\n%s\n\n[Read more](%s)\n", item.Title, item.Content, item.Link)
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			return out
		}
	}
	return md
}

func (m Model) slideCmd(move func(context.Context) (newsdto.SlideOutput, error)) tea.Cmd {
	return func() tea.Msg {
		slide, err := move(context.Background())
		return SlideMsg{Slide: slide, Err: err}
	}
}

func (m Model) openCmd() tea.Cmd {
	item, ok := m.Current()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		out, err := m.port.Open(context.Background(), item.Number)
		return OpenedMsg{Out: out, Err: err}
	}
}

func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
