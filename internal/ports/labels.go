package ports

import "appcatalog/internal/domain"

// LabelSource derives the display name of an app
type LabelSource interface {
	Label(app domain.AppRecord) string
}

// LabelComparator compares apps by display label using locale rules.
// It returns a negative number, zero, or a positive number.
type LabelComparator interface {
	CompareLabels(a, b domain.AppRecord) int
}
