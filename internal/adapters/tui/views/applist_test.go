package views

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"appcatalog/internal/application"
	"appcatalog/internal/domain"
)

type stubPlatform struct {
	apps []domain.AppRecord
}

func (s *stubPlatform) ListInstalledPackages(_ context.Context, _ domain.PackageFlags, _ bool) ([]domain.AppRecord, error) {
	return s.apps, nil
}

func (s *stubPlatform) QueryActivities(_ context.Context, filter domain.IntentFilter, _ int) ([]domain.ActivityMatch, error) {
	if filter.Package == "a.app" && filter.Category == domain.CategoryLauncher {
		return []domain.ActivityMatch{{PackageName: "a.app", ActivityName: "a.app.Main"}}, nil
	}
	return nil, nil
}

type stubPrefs map[string]int

func (s stubPrefs) GetInt(_ context.Context, key string, def int) (int, error) {
	if v, ok := s[key]; ok {
		return v, nil
	}
	return def, nil
}

func (s stubPrefs) SetInt(_ context.Context, key string, value int) error {
	s[key] = value
	return nil
}

func newTestModel() (*AppListModel, stubPrefs) {
	platform := &stubPlatform{apps: []domain.AppRecord{
		{PackageName: "b.app", Label: "Beta", FirstInstallTime: 100, LastUpdateTime: 300},
		{PackageName: "a.app", Label: "Alpha", FirstInstallTime: 200, LastUpdateTime: 200},
	}}
	prefs := stubPrefs{}
	m := NewAppListModel(application.NewEngine(platform, nil, prefs, nil))
	m.SetSize(100, 40)
	return m, prefs
}

// run executes cmd and feeds its message back into the model
func run(m *AppListModel, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	m.Update(cmd())
}

func TestAppListModel_LoadAndSort(t *testing.T) {
	m, prefs := newTestModel()
	run(m, m.Reload())

	if m.loading {
		t.Fatal("expected loading to finish")
	}
	if len(m.apps) != 2 || m.apps[0].PackageName != "a.app" {
		t.Fatalf("expected name order, got %+v", m.apps)
	}

	// "5" selects install time ascending
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	run(m, cmd) // successMsg triggers a reload
	if prefs[domain.PreferenceKeySort] != 4 {
		t.Errorf("expected mode 4 persisted, got %d", prefs[domain.PreferenceKeySort])
	}
	if !strings.Contains(m.Message, "install_time") {
		t.Errorf("unexpected message %q", m.Message)
	}

	_, cmd = m.Update(successMsg{"again"})
	run(m, cmd)
	if m.mode != 4 || m.apps[0].PackageName != "b.app" {
		t.Errorf("expected install time order, got mode %d %+v", m.mode, m.apps)
	}
}

func TestAppListModel_ResolveAndCopy(t *testing.T) {
	m, _ := newTestModel()
	run(m, m.Reload())

	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(m, cmd)
	if m.intent == nil || m.intent.Component() != "a.app/a.app.Main" {
		t.Fatalf("expected launcher intent for a.app, got %+v", m.intent)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if !strings.HasPrefix(copied, "am start --user 0") || !strings.HasSuffix(copied, "-n a.app/a.app.Main") {
		t.Errorf("unexpected copied command %q", copied)
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if !m.MessageErr {
		t.Error("expected copy failure to be reported")
	}
}

func TestAppListModel_NoEntryPoint(t *testing.T) {
	m, _ := newTestModel()
	run(m, m.Reload())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(m, cmd)

	if m.intent != nil {
		t.Errorf("expected no intent for b.app, got %+v", m.intent)
	}
	if !m.MessageErr || !strings.Contains(m.Message, "b.app") {
		t.Errorf("unexpected message %q", m.Message)
	}
}

func TestSortActionForKey(t *testing.T) {
	for i, action := range domain.SortActions() {
		k := string(rune('1' + i))
		if got := SortActionForKey(k); got != action {
			t.Errorf("key %s: got %v, want %v", k, got, action)
		}
	}
	if SortActionForKey("9") != domain.SortActionUnknown {
		t.Error("expected 9 to be unbound")
	}
}
