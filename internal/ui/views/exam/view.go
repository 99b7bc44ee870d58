package exam

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	examdto "aperture/internal/modules/exam/dto"
	apperrors "aperture/internal/platform/errors"
	"aperture/internal/ui/components"
	"aperture/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Banks(ctx context.Context) ([]examdto.BankOutput, error)
	Start(ctx context.Context, subject string) (examdto.ExamView, error)
	Current(ctx context.Context) (examdto.ExamView, error)
	Answer(ctx context.Context, index int) (examdto.SubmitOutput, error)
	Restart(ctx context.Context) (examdto.ExamView, error)
	Quit(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type BanksLoadedMsg struct {
	Banks []examdto.BankOutput
	Err   error
}

// ExamMsg carries the exam state after start, resume or restart.
type ExamMsg struct {
	View examdto.ExamView
	Err  error
}

type AnsweredMsg struct {
	Out examdto.SubmitOutput
	Err error
}

type QuitMsg struct{ Err error }

// ─── list item ───────────────────────────────────────────────────────────────

type bankItem struct{ bank examdto.BankOutput }

func (i bankItem) Title() string { return i.bank.Title }
func (i bankItem) Description() string {
	return fmt.Sprintf("%d questions · %d marks", i.bank.Questions, i.bank.MaxScore)
}
func (i bankItem) FilterValue() string { return i.bank.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type phase int

const (
	phasePick phase = iota
	phaseQuestion
	phaseResults
)

// Model is the Exam tab: subject picker, question screen and results.
type Model struct {
	port   Port
	banks  list.Model
	phase  phase
	exam   examdto.ExamView
	cursor int
	busy   bool
	flash  string
	width  int
	height int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Choose an exam"
	l.Styles.Title = theme.Title
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return Model{port: port, banks: l}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadBanksCmd(), m.resumeCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.banks.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case BanksLoadedMsg:
		if msg.Err != nil {
			m.flash = theme.Bad.Render(components.UserMessage(msg.Err))
			return m, nil
		}
		items := make([]list.Item, len(msg.Banks))
		for i, b := range msg.Banks {
			items[i] = bankItem{bank: b}
		}
		cmd := m.banks.SetItems(items)
		return m, cmd

	case ExamMsg:
		m.busy = false
		if msg.Err != nil {
			if !errors.Is(msg.Err, apperrors.ErrNoActiveExam) {
				m.flash = theme.Bad.Render(components.UserMessage(msg.Err))
			}
			return m, nil
		}
		m.show(msg.View)
		return m, nil

	case AnsweredMsg:
		m.busy = false
		if msg.Err != nil {
			m.flash = theme.Bad.Render(components.UserMessage(msg.Err))
			return m, nil
		}
		if msg.Out.Correct {
			m.flash = theme.Good.Render("Correct!")
		} else {
			answer := ""
			if i := msg.Out.CorrectIndex; i >= 0 && i < len(m.exam.Options) {
				answer = m.exam.Options[i]
			}
			m.flash = theme.Bad.Render("Incorrect. The answer was: " + answer)
		}
		m.show(msg.Out.View)
		return m, nil

	case QuitMsg:
		m.busy = false
		if msg.Err != nil {
			m.flash = theme.Bad.Render(components.UserMessage(msg.Err))
			return m, nil
		}
		m.phase = phasePick
		m.exam = examdto.ExamView{}
		m.flash = ""
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	switch m.phase {
	case phaseQuestion:
		return m.questionView()
	case phaseResults:
		return m.resultsView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.banks.View(), m.flash)
}

// InProgress reports whether an exam is on screen.
func (m Model) InProgress() bool { return m.phase != phasePick }

// Start begins an exam for subject, as if picked from the list.
func (m *Model) Start(subject string) tea.Cmd {
	m.busy = true
	m.flash = ""
	return m.startCmd(subject)
}

// Restart reruns the exam on screen from the first question.
func (m *Model) Restart() tea.Cmd {
	if m.phase == phasePick {
		return nil
	}
	m.busy = true
	m.flash = ""
	return m.restartCmd()
}

// Quit abandons the exam on screen.
func (m *Model) Quit() tea.Cmd {
	if m.phase == phasePick {
		return nil
	}
	m.busy = true
	return m.quitCmd()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.phase {
	case phasePick:
		if msg.String() == "enter" {
			if item, ok := m.banks.SelectedItem().(bankItem); ok {
				cmd := m.Start(item.bank.Subject)
				return m, cmd
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.banks, cmd = m.banks.Update(msg)
		return m, cmd

	case phaseQuestion:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.exam.Options)-1 {
				m.cursor++
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if n := int(msg.String()[0] - '1'); n < len(m.exam.Options) {
				m.cursor = n
			}
		case "enter":
			m.busy = true
			return m, m.answerCmd(m.cursor)
		case "x", "esc":
			cmd := m.Quit()
			return m, cmd
		}
		return m, nil

	case phaseResults:
		switch msg.String() {
		case "r":
			cmd := m.Restart()
			return m, cmd
		case "esc", "enter", "x":
			cmd := m.Quit()
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) show(view examdto.ExamView) {
	m.exam = view
	m.cursor = 0
	if view.HasSelection {
		m.cursor = view.Selected
	}
	if view.State == "results" {
		m.phase = phaseResults
		return
	}
	m.phase = phaseQuestion
}

func (m Model) questionView() string {
	e := m.exam
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(e.Title+" exam") + theme.Muted.Render(fmt.Sprintf("   question %d of %d   score %d", e.Index+1, e.Total, e.Score)) + "\n\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Width(m.paneWidth()).Render(e.Question) + "\n\n")
	for i, option := range e.Options {
		line := fmt.Sprintf("  %d. %s", i+1, option)
		if i == m.cursor {
			line = theme.Hot.Render(fmt.Sprintf("› %d. %s", i+1, option))
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n" + m.flash + "\n\n")
	sb.WriteString(theme.Muted.Render("↑/↓ or 1-9: choose  enter: submit  x: quit exam"))
	return theme.Pane.Width(m.paneWidth()).Render(sb.String())
}

func (m Model) resultsView() string {
	e := m.exam
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(e.Title+" exam results") + "\n\n")
	sb.WriteString(theme.Hot.Render(fmt.Sprintf("Marks: %d/%d", e.Score, e.MaxScore)) + "\n")
	sb.WriteString(fmt.Sprintf("%s %d   %s %d\n\n", theme.Good.Render("correct"), e.Correct, theme.Bad.Render("incorrect"), e.Incorrect))
	if len(e.Feedback) > 0 {
		sb.WriteString(theme.Title.Render("Feedback") + "\n")
		for _, line := range e.Feedback {
			sb.WriteString(lipgloss.NewStyle().Width(m.paneWidth()).Render("• "+line) + "\n")
		}
	}
	if m.flash != "" {
		sb.WriteString("\n" + m.flash + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("r: restart  enter: back to exams"))
	return theme.Pane.Width(m.paneWidth()).Render(sb.String())
}

func (m Model) paneWidth() int {
	w := m.width - 4
	if w > 90 {
		w = 90
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) loadBanksCmd() tea.Cmd {
	return func() tea.Msg {
		banks, err := m.port.Banks(context.Background())
		return BanksLoadedMsg{Banks: banks, Err: err}
	}
}

func (m Model) resumeCmd() tea.Cmd {
	return func() tea.Msg {
		view, err := m.port.Current(context.Background())
		return ExamMsg{View: view, Err: err}
	}
}

func (m Model) startCmd(subject string) tea.Cmd {
	return func() tea.Msg {
		view, err := m.port.Start(context.Background(), subject)
		return ExamMsg{View: view, Err: err}
	}
}

func (m Model) restartCmd() tea.Cmd {
	return func() tea.Msg {
		view, err := m.port.Restart(context.Background())
		return ExamMsg{View: view, Err: err}
	}
}

func (m Model) answerCmd(index int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Answer(context.Background(), index)
		return AnsweredMsg{Out: out, Err: err}
	}
}

func (m Model) quitCmd() tea.Cmd {
	return func() tea.Msg {
		return QuitMsg{Err: m.port.Quit(context.Background())}
	}
}
