package auth

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "aperture/internal/modules/auth/dto"
	"aperture/internal/ui/components"
	"aperture/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Signup(ctx context.Context, name, email, password, confirm string) (authdto.AccountOutput, error)
	Login(ctx context.Context, email, password string) (authdto.AccountOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// AuthenticatedMsg is emitted once a login or signup succeeds.
type AuthenticatedMsg struct {
	Account  authdto.AccountOutput
	SignedUp bool
}

type failedMsg struct{ err error }

// ─── model ───────────────────────────────────────────────────────────────────

type mode int

const (
	modeLogin mode = iota
	modeSignup
)

// Model holds the login and signup forms. Only one is shown at a time.
type Model struct {
	port    Port
	mode    mode
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	busy    bool
	err     string
	width   int
	height  int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	m := Model{port: port, spinner: sp}
	m.setMode(modeLogin)
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case failedMsg:
		m.busy = false
		m.err = components.UserMessage(msg.err)
		return m, nil

	case AuthenticatedMsg:
		m.busy = false
		m.err = ""
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+t":
			if m.mode == modeLogin {
				m.setMode(modeSignup)
			} else {
				m.setMode(modeLogin)
			}
			return m, textinput.Blink
		case "tab", "down":
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.moveFocus(1)
				return m, nil
			}
			m.busy = true
			m.err = ""
			return m, tea.Batch(m.submitCmd(), m.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	title := "Log in"
	toggle := "ctrl+t: create an account"
	if m.mode == modeSignup {
		title = "Sign up"
		toggle = "ctrl+t: back to login"
	}
	sb.WriteString(theme.Title.Render("aperture · "+title) + "\n\n")
	for _, in := range m.inputs {
		sb.WriteString(in.View() + "\n")
	}
	sb.WriteString("\n")
	switch {
	case m.busy:
		sb.WriteString(m.spinner.View() + " checking…\n")
	case m.err != "":
		sb.WriteString(theme.Bad.Render(m.err) + "\n")
	default:
		sb.WriteString("\n")
	}
	sb.WriteString(theme.Muted.Render("enter: next/submit  tab: next field  " + toggle))

	form := theme.PaneActive.Width(48).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

// Signup reports whether the signup form is showing.
func (m Model) Signup() bool { return m.mode == modeSignup }

// Reset clears the form and returns to the login screen.
func (m *Model) Reset() {
	m.busy = false
	m.err = ""
	m.setMode(modeLogin)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) setMode(md mode) {
	m.mode = md
	m.err = ""
	labels := []string{"Email", "Password"}
	if md == modeSignup {
		labels = []string{"Name", "Email", "Password", "Confirm password"}
	}
	m.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Prompt = lipgloss.NewStyle().Width(18).Render(label + ":")
		in.CharLimit = 128
		if strings.Contains(strings.ToLower(label), "password") {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		m.inputs[i] = in
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *Model) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m Model) value(i int) string { return m.inputs[i].Value() }

func (m Model) submitCmd() tea.Cmd {
	if m.mode == modeSignup {
		name, email, password, confirm := m.value(0), m.value(1), m.value(2), m.value(3)
		return func() tea.Msg {
			account, err := m.port.Signup(context.Background(), name, email, password, confirm)
			if err != nil {
				return failedMsg{err: err}
			}
			return AuthenticatedMsg{Account: account, SignedUp: true}
		}
	}
	email, password := m.value(0), m.value(1)
	return func() tea.Msg {
		account, err := m.port.Login(context.Background(), email, password)
		if err != nil {
			return failedMsg{err: err}
		}
		return AuthenticatedMsg{Account: account}
	}
}
