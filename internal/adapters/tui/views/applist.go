package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"appcatalog/internal/adapters/tui/styles"
	"appcatalog/internal/application"
	"appcatalog/internal/application/commands"
	"appcatalog/internal/domain"
)

// AppListKeyMap defines key bindings for the app list view
type AppListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Open     key.Binding
	Copy     key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var AppListKeys = AppListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+f"),
		key.WithHelp("pgdn", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup", "ctrl+b"),
		key.WithHelp("pgup", "prev page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "settings"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy am start"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// sortKeys maps the digit keys to sort actions, in mode order
var sortKeys = map[string]domain.SortAction{
	"1": domain.SortActionByName,
	"2": domain.SortActionByNameReverse,
	"3": domain.SortActionByPackageName,
	"4": domain.SortActionByPackageNameReverse,
	"5": domain.SortActionByInstallTime,
	"6": domain.SortActionByInstallTimeReverse,
	"7": domain.SortActionByUpdateTime,
	"8": domain.SortActionByUpdateTimeReverse,
}

// SortActionForKey returns the sort action bound to k
func SortActionForKey(k string) domain.SortAction {
	if a, ok := sortKeys[k]; ok {
		return a
	}
	return domain.SortActionUnknown
}

// AppListModel lists the catalog and resolves settings entry points
type AppListModel struct {
	ViewState
	engine    *application.Engine
	apps      []domain.AppRecord
	mode      domain.SortMode
	paginator *Paginator
	spinner   spinner.Model
	loading   bool
	intent    *domain.Intent
	intentFor domain.AppRecord
	copy      func(string) error
}

// NewAppListModel creates a new app list model
func NewAppListModel(engine *application.Engine) *AppListModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner
	return &AppListModel{
		engine:    engine,
		paginator: NewPaginator(15),
		spinner:   s,
		loading:   true,
		copy:      clipboard.WriteAll,
	}
}

// Init starts the first catalog load
func (m *AppListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load(false))
}

// Reload reloads the list without forcing a fetch
func (m *AppListModel) Reload() tea.Cmd {
	return m.load(false)
}

func (m *AppListModel) load(refresh bool) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewListAppsCommand(m.engine)
		cmd.Refresh = refresh
		res, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return appsLoadedMsg{apps: res.Apps, mode: res.Mode, fetchErr: res.FetchErr}
	}
}

func (m *AppListModel) setSort(action domain.SortAction) tea.Cmd {
	return func() tea.Msg {
		res, err := commands.NewSetSortCommand(m.engine, action).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{res.Message}
	}
}

func (m *AppListModel) resolve(app domain.AppRecord) tea.Cmd {
	return func() tea.Msg {
		intent, _ := m.engine.Resolver.ResolveSettingsEntryPoint(context.Background(), app.PackageName, app.UserID)
		return intentResolvedMsg{app: app, intent: intent}
	}
}

// SetSize updates the view dimensions and page size
func (m *AppListModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// Title, subtitle, intent panel and status bar
	m.paginator.SetPageSize(height - 12)
}

// Update handles messages for the app list
func (m *AppListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case appsLoadedMsg:
		m.loading = false
		m.apps = msg.apps
		m.mode = msg.mode
		m.paginator.SetTotal(len(m.apps))
		if msg.fetchErr != nil {
			m.SetMessage(fmt.Sprintf("Platform unavailable: %v", msg.fetchErr), true)
		}
		return m, nil

	case intentResolvedMsg:
		m.intentFor = msg.app
		m.intent = msg.intent
		if msg.intent == nil {
			m.SetMessage(fmt.Sprintf("%s has no settings or launcher activity", msg.app.PackageName), true)
		}
		return m, nil

	case errMsg:
		m.loading = false
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.Reload()

	case tea.KeyMsg:
		m.ClearMessage()

		if action := SortActionForKey(msg.String()); action != domain.SortActionUnknown {
			return m, m.setSort(action)
		}

		switch {
		case key.Matches(msg, AppListKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, AppListKeys.Up):
			m.paginator.CursorUp()

		case key.Matches(msg, AppListKeys.Down):
			m.paginator.CursorDown()

		case key.Matches(msg, AppListKeys.NextPage):
			m.paginator.NextPage()

		case key.Matches(msg, AppListKeys.PrevPage):
			m.paginator.PrevPage()

		case key.Matches(msg, AppListKeys.Open):
			if app, ok := m.selected(); ok {
				return m, m.resolve(app)
			}

		case key.Matches(msg, AppListKeys.Copy):
			m.copyIntent()

		case key.Matches(msg, AppListKeys.Refresh):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.load(true))

		case key.Matches(msg, AppListKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *AppListModel) copyIntent() {
	if m.intent == nil {
		m.SetMessage("Press enter on an app first", true)
		return
	}
	line := "am " + strings.Join(m.intent.AmStartArgs(m.intentFor.UserID), " ")
	if err := m.copy(line); err != nil {
		m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.SetMessage("Copied "+m.intent.Component(), false)
}

func (m *AppListModel) selected() (domain.AppRecord, bool) {
	i := m.paginator.Cursor()
	if i < 0 || i >= len(m.apps) {
		return domain.AppRecord{}, false
	}
	return m.apps[i], true
}

// View renders the app list
func (m *AppListModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("App Catalog"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d apps • sorted by %s", len(m.apps), m.mode)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading packages...\n")
		return styles.App.Render(b.String())
	}

	if len(m.apps) == 0 {
		b.WriteString(styles.MutedText.Render("No configurable apps yet."))
		b.WriteString("\n")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.apps[i], i == m.paginator.Cursor()))
		b.WriteString("\n")
	}
	if m.paginator.TotalPages() > 1 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages())))
		b.WriteString("\n")
	}

	if m.intent != nil {
		b.WriteString("\n")
		b.WriteString(styles.InputLabel.Render("Settings entry point"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s (user %d)\n", m.intent.Component(), m.intentFor.UserID))
		b.WriteString(styles.MutedText.Render(m.intent.Category))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return styles.App.Render(b.String())
}

func (m *AppListModel) renderRow(app domain.AppRecord, selected bool) string {
	label := app.Label
	if label == "" {
		label = app.PackageName
	}
	updated := time.UnixMilli(app.LastUpdateTime).Format("2006-01-02")
	row := fmt.Sprintf("%-28s %-40s u%-3d %s", truncate(label, 28), truncate(app.PackageName, 40), app.UserID, updated)

	switch {
	case selected:
		return styles.RowSelected.Render(row)
	case app.Uninstalled:
		return styles.RowUninstalled.Render(row)
	default:
		return styles.Row.Render(row)
	}
}

func (m *AppListModel) renderStatusBar() string {
	keys := []key.Binding{AppListKeys.Open, AppListKeys.Copy, AppListKeys.Refresh, AppListKeys.Help, AppListKeys.Quit}
	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		parts = append(parts, styles.StatusKey.Render(k.Help().Key)+styles.StatusText.Render(k.Help().Desc))
	}
	parts = append(parts, styles.StatusKey.Render("1-8")+styles.StatusText.Render("sort"))
	return styles.StatusBar.Render(strings.Join(parts, " "))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
