package commands

import (
	"context"
	"strings"

	"appcatalog/internal/application"
	"appcatalog/internal/domain"
)

// fakePlatform serves a fixed package list and launcher/settings activities
type fakePlatform struct {
	apps     []domain.AppRecord
	settings map[domain.AppKey]string
	launcher map[domain.AppKey]string
	fetches  int
}

func (f *fakePlatform) ListInstalledPackages(_ context.Context, _ domain.PackageFlags, _ bool) ([]domain.AppRecord, error) {
	f.fetches++
	return f.apps, nil
}

func (f *fakePlatform) QueryActivities(_ context.Context, filter domain.IntentFilter, userID int) ([]domain.ActivityMatch, error) {
	key := domain.AppKey{PackageName: filter.Package, UserID: userID}
	var table map[domain.AppKey]string
	switch filter.Category {
	case domain.CategoryModuleSettings:
		table = f.settings
	case domain.CategoryLauncher:
		table = f.launcher
	}
	if name, ok := table[key]; ok {
		return []domain.ActivityMatch{{PackageName: filter.Package, ActivityName: name}}, nil
	}
	return nil, nil
}

type memoryStore map[string]int

func (s memoryStore) GetInt(_ context.Context, key string, def int) (int, error) {
	if v, ok := s[key]; ok {
		return v, nil
	}
	return def, nil
}

func (s memoryStore) SetInt(_ context.Context, key string, value int) error {
	s[key] = value
	return nil
}

func newTestEngine() (*application.Engine, *fakePlatform, memoryStore) {
	platform := &fakePlatform{
		apps: []domain.AppRecord{
			{PackageName: "b.app", Label: "Beta", UserID: 0, FirstInstallTime: 100, LastUpdateTime: 300},
			{PackageName: "a.app", Label: "Alpha", UserID: 0, FirstInstallTime: 200, LastUpdateTime: 200},
			{PackageName: "w.app", Label: "Work", UserID: 10, FirstInstallTime: 50, LastUpdateTime: 60},
			{PackageName: "gone.app", Label: "Gone", UserID: 0, FirstInstallTime: 10, LastUpdateTime: 20, Uninstalled: true},
		},
		settings: map[domain.AppKey]string{
			{PackageName: "a.app", UserID: 0}: "a.app.SettingsActivity",
		},
		launcher: map[domain.AppKey]string{
			{PackageName: "a.app", UserID: 0}: "a.app.MainActivity",
			{PackageName: "b.app", UserID: 0}: "b.app.MainActivity",
		},
	}
	store := memoryStore{}
	return application.NewEngine(platform, nil, store, nil), platform, store
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
