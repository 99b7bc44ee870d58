package learn

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	learndto "aperture/internal/modules/learn/dto"
	"aperture/internal/ui/components"
	"aperture/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Subjects(ctx context.Context) ([]learndto.SubjectOutput, error)
	Topics(ctx context.Context, subject string) ([]learndto.TopicOutput, error)
	Show(ctx context.Context, subject, topic string) (learndto.TopicDetailOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type topicsLoadedMsg struct {
	Topics []topicItem
	Err    error
}

type PageLoadedMsg struct {
	Detail learndto.TopicDetailOutput
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type topicItem struct {
	subjectTitle string
	topic        learndto.TopicOutput
}

func (i topicItem) Title() string       { return i.topic.Name }
func (i topicItem) Description() string { return i.subjectTitle }
func (i topicItem) FilterValue() string { return i.subjectTitle + " " + i.topic.Name }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the Learn tab: every topic of every subject plus a rendered page.
type Model struct {
	port     Port
	list     list.Model
	page     viewport.Model
	renderer *glamour.TermRenderer
	spinner  spinner.Model
	detail   learndto.TopicDetailOutput
	reading  bool
	loading  bool
	err      string
	width    int
	height   int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Learn"
	l.Styles.Title = theme.Title
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	r, _ := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(0))

	return Model{
		port:     port,
		list:     l,
		page:     viewport.New(0, 0),
		renderer: r,
		spinner:  sp,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTopicsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case topicsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = components.UserMessage(msg.Err)
			return m, nil
		}
		items := make([]list.Item, len(msg.Topics))
		for i, t := range msg.Topics {
			items[i] = t
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Topics) > 0 {
			cmds = append(cmds, m.loadPageCmd(msg.Topics[0].topic))
		}
		return m, tea.Batch(cmds...)

	case PageLoadedMsg:
		if msg.Err != nil {
			m.page.SetContent(theme.Bad.Render(components.UserMessage(msg.Err)))
			return m, nil
		}
		m.detail = msg.Detail
		m.page.SetContent(m.render())
		m.page.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		if m.reading {
			if msg.String() == "esc" {
				m.reading = false
				return m, nil
			}
			var cmd tea.Cmd
			m.page, cmd = m.page.Update(msg)
			return m, cmd
		}
		if msg.String() == "enter" && !m.Filtering() {
			m.reading = true
			return m, nil
		}
		prev := m.list.Index()
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
		if m.list.Index() != prev {
			if item, ok := m.list.SelectedItem().(topicItem); ok {
				cmds = append(cmds, m.loadPageCmd(item.topic))
			}
		}
		return m, tea.Batch(cmds...)
	}

	if !m.loading {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.spinner.View()+" Loading topics…")
	}
	if m.err != "" {
		return theme.Bad.Render(m.err)
	}

	listW := m.width * 3 / 10
	pageW := m.width - listW
	border := theme.Surface1
	if m.reading {
		border = theme.Lavender
	}
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	pagePane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(pageW - 2).
		Height(m.height - 2).
		Render(m.page.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, pagePane)
}

// Filtering reports whether the list's search filter is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reading reports whether keys go to the page viewport.
func (m Model) Reading() bool { return m.reading }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 3 / 10
	pageW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.page.Width = pageW - 4
	m.page.Height = m.height - 2
	if r, err := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(pageW-6)); err == nil {
		m.renderer = r
	}
	if m.detail.Name != "" {
		m.page.SetContent(m.render())
	}
}

func (m Model) render() string {
	if m.renderer != nil {
		if out, err := m.renderer.Render(m.detail.Markdown); err == nil {
			return out
		}
	}
	return m.detail.Markdown
}

func (m Model) loadTopicsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		subjects, err := m.port.Subjects(ctx)
		if err != nil {
			return topicsLoadedMsg{Err: err}
		}
		var items []topicItem
		for _, s := range subjects {
			topics, err := m.port.Topics(ctx, s.Key)
			if err != nil {
				return topicsLoadedMsg{Err: fmt.Errorf("topics of %s: %w", s.Key, err)}
			}
			for _, t := range topics {
				items = append(items, topicItem{subjectTitle: s.Title, topic: t})
			}
		}
		return topicsLoadedMsg{Topics: items}
	}
}

func (m Model) loadPageCmd(topic learndto.TopicOutput) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.Show(context.Background(), topic.Subject, topic.Slug)
		return PageLoadedMsg{Detail: detail, Err: err}
	}
}
