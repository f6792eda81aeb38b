package sqlite

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"appcatalog/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "registry.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})
	return db
}

func seedRegistry(t *testing.T, r *Registry) {
	t.Helper()
	apps := []domain.AppRecord{
		{UserID: 0, PackageName: "a.app", Label: "Alpha", FirstInstallTime: 200, LastUpdateTime: 200},
		{UserID: 0, PackageName: "b.app", Label: "Beta", FirstInstallTime: 100, LastUpdateTime: 300},
		{UserID: 0, PackageName: "gone.app", Label: "Gone", FirstInstallTime: 1, LastUpdateTime: 2, Uninstalled: true},
		{UserID: 10, PackageName: "a.app", Label: "Alpha", FirstInstallTime: 500, LastUpdateTime: 600},
	}
	activities := []domain.ActivityRecord{
		{UserID: 0, PackageName: "a.app", ActivityName: "a.app.Main", Action: domain.ActionMain, Category: domain.CategoryLauncher},
		{UserID: 0, PackageName: "a.app", ActivityName: "a.app.Settings", Action: domain.ActionMain, Category: domain.CategoryModuleSettings},
		{UserID: 0, PackageName: "a.app", ActivityName: "a.app.Preferred", Action: domain.ActionMain, Category: domain.CategoryModuleSettings, Priority: 5},
		{UserID: 0, PackageName: "gone.app", ActivityName: "gone.app.Main", Action: domain.ActionMain, Category: domain.CategoryLauncher},
		{UserID: 10, PackageName: "a.app", ActivityName: "a.app.Main", Action: domain.ActionMain, Category: domain.CategoryLauncher},
	}
	if err := r.Import(context.Background(), apps, activities, true); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
}

func TestRegistry_QueryActivities(t *testing.T) {
	r := NewRegistry(openTestDB(t))
	seedRegistry(t, r)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter domain.IntentFilter
		userID int
		want   []string
	}{
		{
			name:   "priority first",
			filter: domain.NewCategoryFilter("a.app", domain.CategoryModuleSettings),
			want:   []string{"a.app.Preferred", "a.app.Settings"},
		},
		{
			name:   "launcher",
			filter: domain.NewCategoryFilter("a.app", domain.CategoryLauncher),
			want:   []string{"a.app.Main"},
		},
		{
			name:   "scoped to user",
			filter: domain.NewCategoryFilter("a.app", domain.CategoryModuleSettings),
			userID: 10,
			want:   nil,
		},
		{
			name:   "uninstalled package has no entry points",
			filter: domain.NewCategoryFilter("gone.app", domain.CategoryLauncher),
			want:   nil,
		},
		{
			name:   "unknown package",
			filter: domain.NewCategoryFilter("no.such.app", domain.CategoryLauncher),
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := r.QueryActivities(ctx, tt.filter, tt.userID)
			if err != nil {
				t.Fatalf("QueryActivities failed: %v", err)
			}
			var got []string
			for _, m := range matches {
				got = append(got, m.ActivityName)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry_ListInstalledPackages(t *testing.T) {
	r := NewRegistry(openTestDB(t))
	seedRegistry(t, r)
	ctx := context.Background()

	all, err := r.ListInstalledPackages(ctx, domain.CatalogFlags, true)
	if err != nil {
		t.Fatalf("ListInstalledPackages failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 packages across users, got %d", len(all))
	}

	var gone *domain.AppRecord
	for i := range all {
		if all[i].PackageName == "gone.app" {
			gone = &all[i]
		}
	}
	if gone == nil || !gone.Uninstalled || gone.Label != "Gone" {
		t.Errorf("expected retained uninstalled package with data, got %+v", gone)
	}

	installed, err := r.ListInstalledPackages(ctx, domain.GetMetaData, false)
	if err != nil {
		t.Fatalf("ListInstalledPackages failed: %v", err)
	}
	want := []domain.AppRecord{
		{UserID: 0, PackageName: "a.app", Label: "Alpha", FirstInstallTime: 200, LastUpdateTime: 200},
		{UserID: 0, PackageName: "b.app", Label: "Beta", FirstInstallTime: 100, LastUpdateTime: 300},
	}
	if !slices.Equal(installed, want) {
		t.Errorf("got %+v, want %+v", installed, want)
	}
}

func TestRegistry_ImportReplace(t *testing.T) {
	r := NewRegistry(openTestDB(t))
	seedRegistry(t, r)
	ctx := context.Background()

	err := r.Import(ctx, []domain.AppRecord{{PackageName: "c.app", FirstInstallTime: 1, LastUpdateTime: 1}}, nil, false)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	apps, _ := r.ListInstalledPackages(ctx, domain.CatalogFlags, true)
	if len(apps) != 5 {
		t.Errorf("expected merge to keep existing packages, got %d", len(apps))
	}

	err = r.Import(ctx, []domain.AppRecord{{PackageName: "c.app", FirstInstallTime: 1, LastUpdateTime: 1}}, nil, true)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	apps, _ = r.ListInstalledPackages(ctx, domain.CatalogFlags, true)
	if len(apps) != 1 || apps[0].PackageName != "c.app" {
		t.Errorf("expected replaced registry, got %+v", apps)
	}
	matches, _ := r.QueryActivities(ctx, domain.NewCategoryFilter("a.app", domain.CategoryLauncher), 0)
	if len(matches) != 0 {
		t.Errorf("expected activities cleared, got %v", matches)
	}
}
