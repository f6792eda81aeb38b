package application

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"appcatalog/internal/domain"
)

var errBinderDied = errors.New("binder died")

// fakeActivities answers activity queries from a map keyed by package/category/user
type fakeActivities struct {
	matches map[string][]domain.ActivityMatch
	err     error
	queries []domain.IntentFilter
}

func activityKey(pkg, category string, userID int) string {
	return strings.Join([]string{pkg, category, strconv.Itoa(userID)}, "|")
}

func (f *fakeActivities) add(pkg, category string, userID int, activities ...string) {
	if f.matches == nil {
		f.matches = make(map[string][]domain.ActivityMatch)
	}
	for _, a := range activities {
		k := activityKey(pkg, category, userID)
		f.matches[k] = append(f.matches[k], domain.ActivityMatch{PackageName: pkg, ActivityName: a})
	}
}

func (f *fakeActivities) QueryActivities(_ context.Context, filter domain.IntentFilter, userID int) ([]domain.ActivityMatch, error) {
	f.queries = append(f.queries, filter)
	if f.err != nil {
		return nil, f.err
	}
	if filter.Action != domain.ActionMain {
		return nil, nil
	}
	return f.matches[activityKey(filter.Package, filter.Category, userID)], nil
}

// fakePackages returns a fixed list and counts calls
type fakePackages struct {
	mu       sync.Mutex
	apps     []domain.AppRecord
	err      error
	calls    int
	flags    domain.PackageFlags
	allUsers bool
}

func (f *fakePackages) ListInstalledPackages(_ context.Context, flags domain.PackageFlags, allUsers bool) ([]domain.AppRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.flags = flags
	f.allUsers = allUsers
	if f.err != nil {
		return nil, f.err
	}
	return f.apps, nil
}

func (f *fakePackages) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// memoryStore is an in-memory PreferenceStore
type memoryStore struct {
	values map[string]int
	getErr error
	setErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string]int)}
}

func (s *memoryStore) GetInt(_ context.Context, key string, def int) (int, error) {
	if s.getErr != nil {
		return 0, s.getErr
	}
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (s *memoryStore) SetInt(_ context.Context, key string, value int) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

// foldLabels compares labels case-insensitively, standing in for a collator
type foldLabels struct{}

func (foldLabels) CompareLabels(a, b domain.AppRecord) int {
	return strings.Compare(strings.ToLower(a.Label), strings.ToLower(b.Label))
}
