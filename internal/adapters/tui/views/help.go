package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"appcatalog/internal/adapters/tui/styles"
	"appcatalog/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToListMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("App Catalog Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("pgup / pgdn", "Previous/next page"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter", "Resolve the settings entry point"))
	b.WriteString(helpLine("c", "Copy the am start command"))
	b.WriteString(helpLine("r", "Refresh the package list"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Sorting"))
	b.WriteString("\n")
	for i, action := range domain.SortActions() {
		b.WriteString(helpLine(fmt.Sprintf("%d", i+1), action.String()))
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press esc, q or ? to close"))

	return styles.App.Render(b.String())
}

func helpLine(keys, desc string) string {
	return fmt.Sprintf("  %s  %s\n", styles.HelpKey.Render(fmt.Sprintf("%-14s", keys)), styles.HelpDesc.Render(desc))
}
