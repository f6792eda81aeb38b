package application

import (
	"cmp"
	"slices"

	"appcatalog/internal/domain"
	"appcatalog/internal/ports"
)

// CompareFunc is a total order over app records
type CompareFunc func(a, b domain.AppRecord) int

// Ordering maps persisted sort modes to comparators
type Ordering struct {
	byCriterion [4]CompareFunc
}

// NewOrdering creates an ordering whose display-name criterion delegates to
// labels. A nil labels compares the label hint, or the package name when the
// hint is empty, byte-wise.
func NewOrdering(labels ports.LabelComparator) *Ordering {
	byName := compareLabelHints
	if labels != nil {
		byName = labels.CompareLabels
	}

	return &Ordering{
		byCriterion: [...]CompareFunc{
			domain.CriterionDisplayName: byName,
			domain.CriterionPackageName: func(a, b domain.AppRecord) int {
				return cmp.Compare(a.PackageName, b.PackageName)
			},
			domain.CriterionInstallTime: func(a, b domain.AppRecord) int {
				return cmp.Compare(a.FirstInstallTime, b.FirstInstallTime)
			},
			domain.CriterionUpdateTime: func(a, b domain.AppRecord) int {
				return cmp.Compare(a.LastUpdateTime, b.LastUpdateTime)
			},
		},
	}
}

// ComparatorFor returns the comparator for mode. Unknown modes get the
// ascending display-name order. Ties are left to the caller's sort stability.
func (o *Ordering) ComparatorFor(mode int) CompareFunc {
	m := domain.NormalizeSortMode(mode)
	base := o.byCriterion[m.Criterion()]
	if m.Reversed() {
		return func(a, b domain.AppRecord) int {
			return base(b, a)
		}
	}
	return base
}

// Sort returns a stably sorted copy of apps; the input is left untouched
func (o *Ordering) Sort(apps []domain.AppRecord, mode int) []domain.AppRecord {
	sorted := slices.Clone(apps)
	slices.SortStableFunc(sorted, o.ComparatorFor(mode))
	return sorted
}

func compareLabelHints(a, b domain.AppRecord) int {
	return cmp.Compare(labelOrPackage(a), labelOrPackage(b))
}

func labelOrPackage(a domain.AppRecord) string {
	if a.Label != "" {
		return a.Label
	}
	return a.PackageName
}
