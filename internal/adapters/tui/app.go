package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"appcatalog/internal/adapters/tui/views"
	"appcatalog/internal/application"
)

// ViewState represents the current view
type ViewState int

const (
	ViewList ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state ViewState
	list  *views.AppListModel
	help  *views.HelpModel
}

// NewApp creates a new TUI application
func NewApp(engine *application.Engine) *App {
	return &App{
		state: ViewList,
		list:  views.NewAppListModel(engine),
		help:  views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.list.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToListMsg:
		a.state = ViewList
		return a, nil
	}

	// Keys go to the current view, results of background work to the list
	var cmd tea.Cmd
	if _, ok := msg.(tea.KeyMsg); !ok {
		_, cmd = a.list.Update(msg)
		return a, cmd
	}
	switch a.state {
	case ViewList:
		_, cmd = a.list.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewHelp {
		return a.help.View()
	}
	return a.list.View()
}
