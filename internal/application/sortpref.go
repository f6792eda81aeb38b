package application

import (
	"context"
	"fmt"

	"appcatalog/internal/domain"
	"appcatalog/internal/logger"
	"appcatalog/internal/ports"
)

// SortPreference persists the user's chosen sort mode
type SortPreference struct {
	store ports.PreferenceStore
	log   *logger.Logger
}

// NewSortPreference creates a SortPreference over store
func NewSortPreference(store ports.PreferenceStore, log *logger.Logger) *SortPreference {
	if log == nil {
		log = logger.Nop()
	}
	return &SortPreference{store: store, log: log}
}

// Apply stores the mode selected by action. handled is false when action is
// not one of the eight sort selections, so callers can keep dispatching it.
func (p *SortPreference) Apply(ctx context.Context, action domain.SortAction) (handled bool, err error) {
	mode, ok := action.Mode()
	if !ok {
		return false, nil
	}
	if err := p.store.SetInt(ctx, domain.PreferenceKeySort, int(mode)); err != nil {
		return true, fmt.Errorf("failed to persist sort mode %s: %w", mode, err)
	}
	return true, nil
}

// Current returns the persisted sort mode. Missing, invalid or unreadable
// values yield the default mode.
func (p *SortPreference) Current(ctx context.Context) domain.SortMode {
	v, err := p.store.GetInt(ctx, domain.PreferenceKeySort, int(domain.DefaultSortMode))
	if err != nil {
		p.log.Warn().Err(err).Msg("failed to read sort preference, using default")
		return domain.DefaultSortMode
	}
	return domain.NormalizeSortMode(v)
}
