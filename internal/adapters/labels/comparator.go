// Package labels compares app display names with locale-aware collation
package labels

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"appcatalog/internal/domain"
	"appcatalog/internal/ports"
)

// RecordLabels derives display names from the record's label hint,
// falling back to the package name like the platform does for unlabeled apps
type RecordLabels struct{}

// Label returns the display name of app
func (RecordLabels) Label(app domain.AppRecord) string {
	if app.Label != "" {
		return app.Label
	}
	return app.PackageName
}

// Comparator implements ports.LabelComparator
type Comparator struct {
	labels ports.LabelSource

	// collate.Collator keeps internal buffers and is not safe for concurrent use
	mu   sync.Mutex
	coll *collate.Collator
}

// Ensure Comparator implements LabelComparator
var _ ports.LabelComparator = (*Comparator)(nil)

// NewComparator creates a comparator for the BCP 47 locale tag.
// A nil labels uses RecordLabels.
func NewComparator(locale string, labels ports.LabelSource) (*Comparator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	if labels == nil {
		labels = RecordLabels{}
	}
	return &Comparator{
		labels: labels,
		coll:   collate.New(tag),
	}, nil
}

// CompareLabels compares the display names of a and b
func (c *Comparator) CompareLabels(a, b domain.AppRecord) int {
	la, lb := c.labels.Label(a), c.labels.Label(b)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coll.CompareString(la, lb)
}
