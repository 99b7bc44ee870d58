package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	notesdto "aperture/internal/modules/notes/dto"
	"aperture/internal/ui/components"
	"aperture/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	List(ctx context.Context) ([]notesdto.NoteOutput, error)
	Show(ctx context.Context, id string) (notesdto.NoteDetailOutput, error)
	Add(ctx context.Context, title, text string) (notesdto.NoteDetailOutput, error)
	Edit(ctx context.Context, id, text string) (notesdto.NoteDetailOutput, error)
	Delete(ctx context.Context, id string) error
	SummarizeNote(ctx context.Context, id string) (notesdto.SummaryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type NotesLoadedMsg struct {
	Notes  []notesdto.NoteOutput
	Select string
	Err    error
}

type DetailLoadedMsg struct {
	Detail notesdto.NoteDetailOutput
	Err    error
}

// ChangedMsg reports a write; Status is shown by the root status bar.
type ChangedMsg struct {
	Status string
	NoteID string
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type noteItem struct{ note notesdto.NoteOutput }

func (i noteItem) Title() string { return i.note.Title }
func (i noteItem) Description() string {
	desc := fmt.Sprintf("%d words · %s", i.note.WordCount, i.note.UpdatedAt.Format("2006-01-02 15:04"))
	if i.note.HasSummary {
		desc += " · summarized"
	}
	return desc
}
func (i noteItem) FilterValue() string { return i.note.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type editMode int

const (
	editNone editMode = iota
	editNew
	editExisting
)

// Model is the Notes tab: list, preview and a textarea editor.
type Model struct {
	port       Port
	list       list.Model
	preview    viewport.Model
	editor     textarea.Model
	detail     notesdto.NoteDetailOutput
	mode       editMode
	confirmDel bool
	err        string
	width      int
	height     int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Notes"
	l.Styles.Title = theme.Title
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ta := textarea.New()
	ta.Placeholder = "Write your note. The first line becomes the title."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	return Model{port: port, list: l, preview: vp, editor: ta}
}

func (m Model) Init() tea.Cmd { return m.loadCmd("") }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case NotesLoadedMsg:
		if msg.Err != nil {
			m.err = components.UserMessage(msg.Err)
			return m, nil
		}
		m.err = ""
		items := make([]list.Item, len(msg.Notes))
		selected := 0
		for i, n := range msg.Notes {
			items[i] = noteItem{note: n}
			if n.ID == msg.Select {
				selected = i
			}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Notes) == 0 {
			m.detail = notesdto.NoteDetailOutput{}
			m.preview.SetContent(m.renderDetail())
			return m, tea.Batch(cmds...)
		}
		m.list.Select(selected)
		cmds = append(cmds, m.detailCmd(msg.Notes[selected].ID))
		return m, tea.Batch(cmds...)

	case DetailLoadedMsg:
		if msg.Err != nil {
			m.err = components.UserMessage(msg.Err)
			return m, nil
		}
		m.detail = msg.Detail
		m.preview.SetContent(m.renderDetail())
		m.preview.GotoTop()
		return m, nil

	case ChangedMsg:
		if msg.Err != nil {
			return m, nil
		}
		return m, m.loadCmd(msg.NoteID)

	case tea.KeyMsg:
		if m.mode != editNone {
			return m.updateEditor(msg)
		}
		if m.confirmDel {
			m.confirmDel = false
			if msg.String() == "y" && m.detail.ID != "" {
				return m, m.deleteCmd(m.detail.ID)
			}
			return m, nil
		}
		if !m.Filtering() {
			switch msg.String() {
			case "a":
				cmd := m.OpenEditor()
				return m, cmd
			case "e":
				if m.detail.ID != "" {
					m.mode = editExisting
					m.editor.SetValue(m.detail.Body)
					cmd := m.editor.Focus()
					return m, cmd
				}
				return m, nil
			case "d":
				if m.detail.ID != "" {
					m.confirmDel = true
				}
				return m, nil
			case "s":
				return m, m.Summarize()
			case "pgdown", "pgup":
				var cmd tea.Cmd
				m.preview, cmd = m.preview.Update(msg)
				return m, cmd
			}
		}
		prev := m.list.Index()
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
		if m.list.Index() != prev {
			if item, ok := m.list.SelectedItem().(noteItem); ok {
				cmds = append(cmds, m.detailCmd(item.note.ID))
			}
		}
		return m, tea.Batch(cmds...)
	}

	if m.mode != editNone {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.mode != editNone {
		title := "New note"
		if m.mode == editExisting {
			title = "Editing " + m.detail.Title
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.Title.Render(title),
			theme.PaneActive.Render(m.editor.View()),
			theme.Muted.Render("ctrl+s: save  esc: cancel"),
		)
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height - 1).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 3).
		Render(m.preview.View())

	footer := theme.Muted.Render("a: add  e: edit  d: delete  s: summarize  /: filter")
	switch {
	case m.confirmDel:
		footer = theme.Warn.Render(fmt.Sprintf("Delete %q? y to confirm", m.detail.Title))
	case m.err != "":
		footer = theme.Bad.Render(m.err)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane), footer)
}

// Capturing reports whether the view needs every key, e.g. while editing.
func (m Model) Capturing() bool {
	return m.mode != editNone || m.confirmDel || m.Filtering()
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// OpenEditor starts a new note.
func (m *Model) OpenEditor() tea.Cmd {
	m.mode = editNew
	m.editor.Reset()
	return m.editor.Focus()
}

// Summarize summarizes the selected note.
func (m Model) Summarize() tea.Cmd {
	if m.detail.ID == "" {
		return nil
	}
	return m.summarizeCmd(m.detail.ID)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) updateEditor(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = editNone
		m.editor.Blur()
		return m, nil
	case "ctrl+s":
		text := m.editor.Value()
		mode := m.mode
		m.mode = editNone
		m.editor.Blur()
		if mode == editExisting {
			return m, m.editCmd(m.detail.ID, text)
		}
		return m, m.addCmd(text)
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height-1)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 5
	m.editor.SetWidth(m.width - 4)
	m.editor.SetHeight(m.height - 6)
	if m.detail.ID != "" {
		m.preview.SetContent(m.renderDetail())
	}
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("No notes yet. Press a to write one.")
	}
	wrap := lipgloss.NewStyle().Width(m.preview.Width - 2)
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Title) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d words · updated %s", d.WordCount, d.UpdatedAt.Format("2006-01-02 15:04"))) + "\n\n")
	if d.Summary != "" {
		sb.WriteString(theme.Hot.Render("Summary") + "\n")
		sb.WriteString(wrap.Render(d.Summary) + "\n\n")
	}
	sb.WriteString(wrap.Render(d.Body))
	return sb.String()
}

func (m Model) loadCmd(selectID string) tea.Cmd {
	return func() tea.Msg {
		notes, err := m.port.List(context.Background())
		return NotesLoadedMsg{Notes: notes, Select: selectID, Err: err}
	}
}

func (m Model) detailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.Show(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}

func (m Model) addCmd(text string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.port.Add(context.Background(), "", text)
		if err != nil {
			return ChangedMsg{Err: err}
		}
		return ChangedMsg{Status: "note added: " + note.Title, NoteID: note.ID}
	}
}

func (m Model) editCmd(id, text string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.port.Edit(context.Background(), id, text)
		if err != nil {
			return ChangedMsg{Err: err}
		}
		return ChangedMsg{Status: "note saved: " + note.Title, NoteID: note.ID}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.port.Delete(context.Background(), id); err != nil {
			return ChangedMsg{Err: err}
		}
		return ChangedMsg{Status: "note deleted"}
	}
}

func (m Model) summarizeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.SummarizeNote(context.Background(), id)
		if err != nil {
			return ChangedMsg{Err: err}
		}
		status := "summary saved"
		if out.Summary == "" {
			status = "nothing to summarize"
		}
		return ChangedMsg{Status: status, NoteID: id}
	}
}
