package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "aperture/internal/modules/auth/dto"
	examdto "aperture/internal/modules/exam/dto"
	learndto "aperture/internal/modules/learn/dto"
	newsdto "aperture/internal/modules/news/dto"
	notesdto "aperture/internal/modules/notes/dto"
	storesdto "aperture/internal/modules/stores/dto"
	"aperture/internal/ui/components"
	"aperture/internal/ui/theme"
	authview "aperture/internal/ui/views/auth"
	examview "aperture/internal/ui/views/exam"
	homeview "aperture/internal/ui/views/home"
	learnview "aperture/internal/ui/views/learn"
	notesview "aperture/internal/ui/views/notes"
	storesview "aperture/internal/ui/views/stores"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is what the TUI needs from a module's CLI handler. The view
// packages narrow these further through the bridges at the bottom.

type authPort interface {
	Signup(ctx context.Context, name, email, password, confirm string) (authdto.AccountOutput, error)
	Login(ctx context.Context, email, password string) (authdto.AccountOutput, error)
}

type examPort interface {
	Banks(ctx context.Context) ([]examdto.BankOutput, error)
	Start(ctx context.Context, subject string) (examdto.ExamView, error)
	Current(ctx context.Context) (examdto.ExamView, error)
	Answer(ctx context.Context, index int) (examdto.SubmitOutput, error)
	Restart(ctx context.Context) (examdto.ExamView, error)
	Quit(ctx context.Context) error
}

type notesPort interface {
	List(ctx context.Context) ([]notesdto.NoteOutput, error)
	Show(ctx context.Context, id string) (notesdto.NoteDetailOutput, error)
	Add(ctx context.Context, title, text string) (notesdto.NoteDetailOutput, error)
	Edit(ctx context.Context, id, text string) (notesdto.NoteDetailOutput, error)
	Delete(ctx context.Context, id string) error
	SummarizeNote(ctx context.Context, id string) (notesdto.SummaryOutput, error)
}

type learnPort interface {
	Subjects(ctx context.Context) ([]learndto.SubjectOutput, error)
	Topics(ctx context.Context, subject string) ([]learndto.TopicOutput, error)
	Show(ctx context.Context, subject, topic string) (learndto.TopicDetailOutput, error)
}

type newsPort interface {
	Current(ctx context.Context) (newsdto.SlideOutput, error)
	Next(ctx context.Context) (newsdto.SlideOutput, error)
	Prev(ctx context.Context) (newsdto.SlideOutput, error)
	Open(ctx context.Context, number int) (newsdto.OpenOutput, error)
}

type storesPort interface {
	List(ctx context.Context, kind string) ([]storesdto.StoreOutput, error)
	Nearest(ctx context.Context, lat, lon float64, limit int) ([]storesdto.StoreOutput, error)
	DefaultCenter(ctx context.Context) (storesdto.CenterOutput, error)
}

// Ports groups the handlers the TUI drives.
type Ports struct {
	Auth   authPort
	Exam   examPort
	Notes  notesPort
	Learn  learnPort
	News   newsPort
	Stores storesPort
}

// Timings are the screen-transition and carousel delays.
type Timings struct {
	Splash       time.Duration
	Welcome      time.Duration
	SignupNotice time.Duration
	NewsInterval time.Duration
}

// ─── phases and tabs ─────────────────────────────────────────────────────────

type phase int

const (
	phaseSplash phase = iota
	phaseAuth
	phaseSignupNotice
	phaseWelcome
	phaseMain
)

type tabID int

const (
	tabHome tabID = iota
	tabLearn
	tabExam
	tabNotes
	tabStores
	tabCount
)

var tabLabels = [tabCount]string{
	"Home", "Learn", "Exam", "Notes", "Stores",
}

// hints must stay in sync with the switch in executePalette.
var paletteHints = []string{
	"tab <home|learn|exam|notes|stores>",
	"exam:start <subject>",
	"exam:restart",
	"exam:quit",
	"notes:new",
	"notes:summarize",
	"news:next",
	"news:open",
	"logout",
	"quit",
}

// ─── timer messages ──────────────────────────────────────────────────────────

type splashDoneMsg struct{}

type signupNoticeDoneMsg struct{}

type welcomeDoneMsg struct{}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Back    key.Binding
	Enter   key.Binding
	Restart key.Binding
	Open    key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab/shift+tab", "switch tab")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/submit")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart exam")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open news link")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter, k.Back},
		{k.Restart, k.Open},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It runs the splash and login flow, then
// owns tab routing, the help overlay and the command palette. Rendering and
// module calls are delegated to the sub-views.
type Model struct {
	timings Timings
	phase   phase
	account authdto.AccountOutput
	started bool

	authView   authview.Model
	homeView   homeview.Model
	learnView  learnview.Model
	examView   examview.Model
	notesView  notesview.Model
	storesView storesview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(ports Ports, timings Timings) Model {
	return Model{
		timings:    timings,
		phase:      phaseSplash,
		authView:   authview.New(authPortBridge{p: ports.Auth}),
		homeView:   homeview.New(newsPortBridge{p: ports.News}, timings.NewsInterval),
		learnView:  learnview.New(learnPortBridge{p: ports.Learn}),
		examView:   examview.New(examPortBridge{p: ports.Exam}),
		notesView:  notesview.New(notesPortBridge{p: ports.Notes}),
		storesView: storesview.New(storesPortBridge{p: ports.Stores}),
		activeTab:  tabHome,
		keys:       defaultKeys(),
		help:       help.New(),
		palette:    components.NewPalette(paletteHints),
		status:     "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		after(m.timings.Splash, splashDoneMsg{}),
		m.authView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSplash:
		switch msg.(type) {
		case splashDoneMsg, tea.KeyMsg:
			m.phase = phaseAuth
			return m, nil
		}
		var cmd tea.Cmd
		m.authView, cmd = m.authView.Update(msg)
		return m, cmd

	case phaseAuth:
		if msg, ok := msg.(authview.AuthenticatedMsg); ok {
			return m.authenticated(msg)
		}
		var cmd tea.Cmd
		m.authView, cmd = m.authView.Update(msg)
		return m, cmd

	case phaseSignupNotice:
		if _, ok := msg.(signupNoticeDoneMsg); ok {
			m.phase = phaseWelcome
			return m, after(m.timings.Welcome, welcomeDoneMsg{})
		}
		return m, nil

	case phaseWelcome:
		switch msg.(type) {
		case welcomeDoneMsg, tea.KeyMsg:
			return m.enterMain()
		}
		return m, nil
	}

	return m.updateMain(msg)
}

func (m Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all key input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case notesview.ChangedMsg:
		if msg.Err != nil {
			m.status = components.UserMessage(msg.Err)
		} else {
			m.status = msg.Status
		}

	case homeview.OpenedMsg:
		if msg.Err != nil {
			m.status = "open link: " + components.UserMessage(msg.Err)
		} else {
			m.status = "opened " + msg.Out.Link
		}

	case examview.AnsweredMsg:
		if msg.Err == nil && msg.Out.Completed {
			m.status = "result saved to " + msg.Out.NotePath
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the sub-view while it is taking free text.
		if m.subViewCapturing() {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmd := m.palette.Open()
			return m, cmd
		}

		var tabCmd tea.Cmd
		switch m.activeTab {
		case tabHome:
			m.homeView, tabCmd = m.homeView.Update(msg)
		case tabLearn:
			m.learnView, tabCmd = m.learnView.Update(msg)
		case tabExam:
			m.examView, tabCmd = m.examView.Update(msg)
		case tabNotes:
			m.notesView, tabCmd = m.notesView.Update(msg)
		case tabStores:
			m.storesView, tabCmd = m.storesView.Update(msg)
		}
		return m, tabCmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		// Only reached while a sub-view is capturing input.
		var tabCmd tea.Cmd
		switch m.activeTab {
		case tabLearn:
			m.learnView, tabCmd = m.learnView.Update(k)
		case tabNotes:
			m.notesView, tabCmd = m.notesView.Update(k)
		}
		return m, tabCmd
	}

	// Async results and timers belong to whichever view issued them, so
	// everything else is broadcast.
	cmds = append(cmds, m.broadcast(msg)...)
	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	switch m.phase {
	case phaseSplash:
		return m.centered(theme.Banner.Render("aperture\n\n") + "\n" + theme.Muted.Render("learn to see the light"))
	case phaseAuth:
		return m.authView.View()
	case phaseSignupNotice:
		return m.centered(theme.Good.Render("Account created successfully.") + "\n\n" + theme.Muted.Render("Signed up as "+m.account.Email))
	case phaseWelcome:
		return m.centered(theme.Banner.Render(fmt.Sprintf("Welcome, %s!", m.displayName())))
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHome:
		return m.homeView.View()
	case tabLearn:
		return m.learnView.View()
	case tabExam:
		return m.examView.View()
	case tabNotes:
		return m.notesView.View()
	case tabStores:
		return m.storesView.View()
	}
	return ""
}

func (m Model) centered(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "aperture  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := theme.Hot.Render("● "+m.displayName()) + "  " + m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "tab":
		if len(parts) < 2 {
			m.status = "usage: tab <home|learn|exam|notes|stores>"
			return m, nil
		}
		for i, label := range tabLabels {
			if strings.EqualFold(label, parts[1]) {
				m.activeTab = tabID(i)
				return m, nil
			}
		}
		m.status = "unknown tab: " + parts[1]

	case "exam:start":
		if len(parts) < 2 {
			m.status = "usage: exam:start <subject>"
			return m, nil
		}
		m.activeTab = tabExam
		cmd := m.examView.Start(parts[1])
		return m, cmd

	case "exam:restart":
		m.activeTab = tabExam
		cmd := m.examView.Restart()
		return m, cmd

	case "exam:quit":
		m.activeTab = tabExam
		cmd := m.examView.Quit()
		return m, cmd

	case "notes:new":
		m.activeTab = tabNotes
		cmd := m.notesView.OpenEditor()
		return m, cmd

	case "notes:summarize":
		m.activeTab = tabNotes
		return m, m.notesView.Summarize()

	case "news:next":
		m.activeTab = tabHome
		cmd := m.homeView.Next()
		return m, cmd

	case "news:open":
		return m, m.homeView.Open()

	case "logout":
		m.phase = phaseAuth
		m.account = authdto.AccountOutput{}
		m.authView.Reset()
		m.status = "ready"
		return m, nil

	case "quit":
		return m, tea.Quit

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) authenticated(msg authview.AuthenticatedMsg) (tea.Model, tea.Cmd) {
	m.account = msg.Account
	m.homeView.SetUser(m.displayName())
	m.status = "signed in as " + msg.Account.Email
	if msg.SignedUp {
		m.phase = phaseSignupNotice
		return m, after(m.timings.SignupNotice, signupNoticeDoneMsg{})
	}
	m.phase = phaseWelcome
	return m, after(m.timings.Welcome, welcomeDoneMsg{})
}

func (m Model) enterMain() (tea.Model, tea.Cmd) {
	m.phase = phaseMain
	if m.started {
		cmd := m.homeView.Resume()
		return m, cmd
	}
	m.started = true
	return m, tea.Batch(
		m.homeView.Init(),
		m.learnView.Init(),
		m.examView.Init(),
		m.notesView.Init(),
		m.storesView.Init(),
	)
}

func (m Model) displayName() string {
	if m.account.Name != "" {
		return m.account.Name
	}
	return m.account.Email
}

// subViewCapturing reports whether the active tab is taking free text, in
// which case global key bindings must yield.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabLearn:
		return m.learnView.Filtering()
	case tabNotes:
		return m.notesView.Capturing()
	}
	return false
}

func (m *Model) broadcast(msg tea.Msg) []tea.Cmd {
	cmds := make([]tea.Cmd, 5)
	m.homeView, cmds[0] = m.homeView.Update(msg)
	m.learnView, cmds[1] = m.learnView.Update(msg)
	m.examView, cmds[2] = m.examView.Update(msg)
	m.notesView, cmds[3] = m.notesView.Update(msg)
	m.storesView, cmds[4] = m.storesView.Update(msg)
	return cmds
}

func (m *Model) propagateSize() {
	m.authView, _ = m.authView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.homeView, _ = m.homeView.Update(sz)
	m.learnView, _ = m.learnView.Update(sz)
	m.examView, _ = m.examView.Update(sz)
	m.notesView, _ = m.notesView.Update(sz)
	m.storesView, _ = m.storesView.Update(sz)
}

// after delivers msg once d has elapsed; a zero delay delivers it at once.
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a port to the interface of one sub-view.

type authPortBridge struct{ p authPort }

func (b authPortBridge) Signup(ctx context.Context, name, email, password, confirm string) (authdto.AccountOutput, error) {
	return b.p.Signup(ctx, name, email, password, confirm)
}
func (b authPortBridge) Login(ctx context.Context, email, password string) (authdto.AccountOutput, error) {
	return b.p.Login(ctx, email, password)
}

type newsPortBridge struct{ p newsPort }

func (b newsPortBridge) Current(ctx context.Context) (newsdto.SlideOutput, error) {
	return b.p.Current(ctx)
}
func (b newsPortBridge) Next(ctx context.Context) (newsdto.SlideOutput, error) {
	return b.p.Next(ctx)
}
func (b newsPortBridge) Prev(ctx context.Context) (newsdto.SlideOutput, error) {
	return b.p.Prev(ctx)
}
func (b newsPortBridge) Open(ctx context.Context, number int) (newsdto.OpenOutput, error) {
	return b.p.Open(ctx, number)
}

type learnPortBridge struct{ p learnPort }

func (b learnPortBridge) Subjects(ctx context.Context) ([]learndto.SubjectOutput, error) {
	return b.p.Subjects(ctx)
}
func (b learnPortBridge) Topics(ctx context.Context, subject string) ([]learndto.TopicOutput, error) {
	return b.p.Topics(ctx, subject)
}
func (b learnPortBridge) Show(ctx context.Context, subject, topic string) (learndto.TopicDetailOutput, error) {
	return b.p.Show(ctx, subject, topic)
}

type examPortBridge struct{ p examPort }

func (b examPortBridge) Banks(ctx context.Context) ([]examdto.BankOutput, error) {
	return b.p.Banks(ctx)
}
func (b examPortBridge) Start(ctx context.Context, subject string) (examdto.ExamView, error) {
	return b.p.Start(ctx, subject)
}
func (b examPortBridge) Current(ctx context.Context) (examdto.ExamView, error) {
	return b.p.Current(ctx)
}
func (b examPortBridge) Answer(ctx context.Context, index int) (examdto.SubmitOutput, error) {
	return b.p.Answer(ctx, index)
}
func (b examPortBridge) Restart(ctx context.Context) (examdto.ExamView, error) {
	return b.p.Restart(ctx)
}
func (b examPortBridge) Quit(ctx context.Context) error {
	return b.p.Quit(ctx)
}

type notesPortBridge struct{ p notesPort }

func (b notesPortBridge) List(ctx context.Context) ([]notesdto.NoteOutput, error) {
	return b.p.List(ctx)
}
func (b notesPortBridge) Show(ctx context.Context, id string) (notesdto.NoteDetailOutput, error) {
	return b.p.Show(ctx, id)
}
func (b notesPortBridge) Add(ctx context.Context, title, text string) (notesdto.NoteDetailOutput, error) {
	return b.p.Add(ctx, title, text)
}
func (b notesPortBridge) Edit(ctx context.Context, id, text string) (notesdto.NoteDetailOutput, error) {
	return b.p.Edit(ctx, id, text)
}
func (b notesPortBridge) Delete(ctx context.Context, id string) error {
	return b.p.Delete(ctx, id)
}
func (b notesPortBridge) SummarizeNote(ctx context.Context, id string) (notesdto.SummaryOutput, error) {
	return b.p.SummarizeNote(ctx, id)
}

type storesPortBridge struct{ p storesPort }

func (b storesPortBridge) List(ctx context.Context, kind string) ([]storesdto.StoreOutput, error) {
	return b.p.List(ctx, kind)
}
func (b storesPortBridge) Nearest(ctx context.Context, lat, lon float64, limit int) ([]storesdto.StoreOutput, error) {
	return b.p.Nearest(ctx, lat, lon, limit)
}
func (b storesPortBridge) DefaultCenter(ctx context.Context) (storesdto.CenterOutput, error) {
	return b.p.DefaultCenter(ctx)
}
