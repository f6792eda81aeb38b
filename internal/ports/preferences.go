package ports

import "context"

// PreferenceStore is a key-value store for integer user preferences.
// A value written with SetInt must be visible to the next GetInt in the same
// process once SetInt returns.
type PreferenceStore interface {
	GetInt(ctx context.Context, key string, def int) (int, error)
	SetInt(ctx context.Context, key string, value int) error
}
