package application

import (
	"slices"
	"testing"

	"appcatalog/internal/domain"
)

func packageNames(apps []domain.AppRecord) []string {
	names := make([]string, len(apps))
	for i, a := range apps {
		names[i] = a.PackageName
	}
	return names
}

func TestOrdering_Scenario(t *testing.T) {
	o := NewOrdering(foldLabels{})
	apps := sampleApps()

	tests := []struct {
		mode int
		want []string
	}{
		{0, []string{"a.app", "b.app"}}, // Alpha, Beta
		{1, []string{"b.app", "a.app"}},
		{2, []string{"a.app", "b.app"}},
		{3, []string{"b.app", "a.app"}},
		{4, []string{"b.app", "a.app"}}, // install 100, 200
		{5, []string{"a.app", "b.app"}},
		{6, []string{"a.app", "b.app"}}, // update 200, 300
		{7, []string{"b.app", "a.app"}},
	}

	for _, tt := range tests {
		got := packageNames(o.Sort(apps, tt.mode))
		if !slices.Equal(got, tt.want) {
			t.Errorf("mode %d: got %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestOrdering_ReverseModesAreExactReversal(t *testing.T) {
	o := NewOrdering(foldLabels{})
	apps := []domain.AppRecord{
		{PackageName: "c.app", Label: "charlie", FirstInstallTime: 5, LastUpdateTime: 50},
		{PackageName: "a.app", Label: "Bravo", FirstInstallTime: 9, LastUpdateTime: 10},
		{PackageName: "d.app", Label: "alpha", FirstInstallTime: 1, LastUpdateTime: 70},
		{PackageName: "b.app", Label: "Delta", FirstInstallTime: 3, LastUpdateTime: 20},
	}

	for m := 0; m < 8; m += 2 {
		forward := packageNames(o.Sort(apps, m))
		reverse := packageNames(o.Sort(apps, m+1))
		slices.Reverse(reverse)
		if !slices.Equal(forward, reverse) {
			t.Errorf("mode %d and %d are not reversed: %v vs %v", m, m+1, forward, reverse)
		}
	}
}

func TestOrdering_InvalidModeBehavesAsDefault(t *testing.T) {
	o := NewOrdering(foldLabels{})
	apps := []domain.AppRecord{
		{PackageName: "z.app", Label: "alpha", FirstInstallTime: 3},
		{PackageName: "a.app", Label: "Zulu", FirstInstallTime: 1},
		{PackageName: "m.app", Label: "mike", FirstInstallTime: 2},
	}

	want := packageNames(o.Sort(apps, 0))
	for _, mode := range []int{-1, 8, 99, -42} {
		if got := packageNames(o.Sort(apps, mode)); !slices.Equal(got, want) {
			t.Errorf("mode %d: got %v, want %v", mode, got, want)
		}
	}
}

func TestOrdering_UsesLabelComparator(t *testing.T) {
	apps := []domain.AppRecord{
		{PackageName: "a.app", Label: "Beta"},
		{PackageName: "b.app", Label: "alpha"},
	}

	got := packageNames(NewOrdering(foldLabels{}).Sort(apps, 0))
	if want := []string{"b.app", "a.app"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Byte-wise fallback puts upper case first.
	got = packageNames(NewOrdering(nil).Sort(apps, 0))
	if want := []string{"a.app", "b.app"}; !slices.Equal(got, want) {
		t.Errorf("fallback: got %v, want %v", got, want)
	}
}

func TestOrdering_FallbackUsesPackageNameWithoutLabel(t *testing.T) {
	apps := []domain.AppRecord{
		{PackageName: "z.app", Label: "Aardvark"},
		{PackageName: "b.app"},
	}
	got := packageNames(NewOrdering(nil).Sort(apps, 0))
	if want := []string{"z.app", "b.app"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrdering_SortDoesNotMutateInput(t *testing.T) {
	apps := sampleApps()
	before := packageNames(apps)

	NewOrdering(nil).Sort(apps, 2)

	if got := packageNames(apps); !slices.Equal(got, before) {
		t.Errorf("input mutated: %v", got)
	}
}

func TestOrdering_TiesKeepInputOrder(t *testing.T) {
	apps := []domain.AppRecord{
		{PackageName: "first", FirstInstallTime: 7},
		{PackageName: "second", FirstInstallTime: 7},
		{PackageName: "early", FirstInstallTime: 1},
	}
	got := packageNames(NewOrdering(nil).Sort(apps, 4))
	if want := []string{"early", "first", "second"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
