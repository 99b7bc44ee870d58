package stores

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	storesdto "aperture/internal/modules/stores/dto"
	"aperture/internal/ui/components"
	"aperture/internal/ui/theme"
)

type Port interface {
	List(ctx context.Context, kind string) ([]storesdto.StoreOutput, error)
	Nearest(ctx context.Context, lat, lon float64, limit int) ([]storesdto.StoreOutput, error)
	DefaultCenter(ctx context.Context) (storesdto.CenterOutput, error)
}

type DirectoryLoadedMsg struct {
	Center storesdto.CenterOutput
	Local  []storesdto.StoreOutput
	Online []storesdto.StoreOutput
	Err    error
}

// Model is the Stores tab: local shops by distance and the online stores.
type Model struct {
	port   Port
	local  table.Model
	center storesdto.CenterOutput
	online []storesdto.StoreOutput
	err    string
	width  int
	height int
}

func New(port Port) Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Shop", Width: 24},
			{Title: "Distance", Width: 12},
			{Title: "Location", Width: 22},
		}),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(theme.Sapphire).BorderForeground(theme.Surface1).Bold(true)
	styles.Selected = styles.Selected.Foreground(theme.Base).Background(theme.Lavender)
	t.SetStyles(styles)
	return Model{port: port, local: t}
}

func (m Model) Init() tea.Cmd { return m.loadCmd() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height / 2
		if h < 3 {
			h = 3
		}
		m.local.SetHeight(h)
		return m, nil

	case DirectoryLoadedMsg:
		if msg.Err != nil {
			m.err = components.UserMessage(msg.Err)
			return m, nil
		}
		m.center = msg.Center
		m.online = msg.Online
		rows := make([]table.Row, len(msg.Local))
		for i, s := range msg.Local {
			rows[i] = table.Row{s.Name, fmt.Sprintf("%.2f km", s.DistanceKm), fmt.Sprintf("%.4f, %.4f", s.Lat, s.Lon)}
		}
		m.local.SetRows(rows)
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m.local, cmd = m.local.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != "" {
		return theme.Bad.Render(m.err)
	}
	var online strings.Builder
	for _, s := range m.online {
		online.WriteString("  • " + s.Name + "\n")
	}
	if len(m.online) == 0 {
		online.WriteString(theme.Muted.Render("  none") + "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Local Shops")+theme.Muted.Render(fmt.Sprintf("  from %.4f, %.4f", m.center.Lat, m.center.Lon)),
		m.local.View(),
		"",
		theme.Title.Render("Online Stores"),
		online.String(),
	)
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		center, err := m.port.DefaultCenter(ctx)
		if err != nil {
			return DirectoryLoadedMsg{Err: err}
		}
		local, err := m.port.Nearest(ctx, center.Lat, center.Lon, 0)
		if err != nil {
			return DirectoryLoadedMsg{Err: err}
		}
		online, err := m.port.List(ctx, "online")
		if err != nil {
			return DirectoryLoadedMsg{Err: err}
		}
		return DirectoryLoadedMsg{Center: center, Local: local, Online: online}
	}
}
