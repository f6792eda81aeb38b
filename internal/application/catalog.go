package application

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"appcatalog/internal/domain"
	"appcatalog/internal/logger"
	"appcatalog/internal/ports"
)

// Catalog holds the last fetched list of installed packages across all users.
//
// It starts empty and is populated on the first Get. Every refresh replaces the
// whole list; readers see either the old or the new list, never a mix. Fetches
// are serialized. Returned slices are shared and must be treated as read-only.
type Catalog struct {
	source ports.PackageSource
	log    *logger.Logger
	now    func() time.Time

	mu      sync.Mutex
	snap    atomic.Pointer[catalogSnapshot]
	lastErr atomic.Pointer[fetchError]
}

type catalogSnapshot struct {
	apps      []domain.AppRecord
	fetchedAt time.Time
}

type fetchError struct {
	err error
}

// NewCatalog creates an empty catalog backed by source
func NewCatalog(source ports.PackageSource, log *logger.Logger) *Catalog {
	if log == nil {
		log = logger.Nop()
	}
	return &Catalog{source: source, log: log, now: time.Now}
}

// Get returns the cached list, fetching it first when the catalog is empty or
// force is set. A failed fetch keeps the previous list; if there never was one
// the result is empty.
func (c *Catalog) Get(ctx context.Context, force bool) []domain.AppRecord {
	if !force {
		if s := c.snap.Load(); s != nil {
			return s.apps
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have populated it while we waited.
	if !force {
		if s := c.snap.Load(); s != nil {
			return s.apps
		}
	}

	apps, err := c.fetch(ctx)
	if err != nil {
		c.lastErr.Store(&fetchError{err: err})
		c.log.Warn().Err(err).Msg("catalog fetch failed, keeping previous state")
		if s := c.snap.Load(); s != nil {
			return s.apps
		}
		return []domain.AppRecord{}
	}

	c.lastErr.Store(nil)
	c.snap.Store(&catalogSnapshot{apps: apps, fetchedAt: c.now()})
	c.log.Debug().Int("apps", len(apps)).Msg("catalog refreshed")
	return apps
}

func (c *Catalog) fetch(ctx context.Context) ([]domain.AppRecord, error) {
	if c.source == nil {
		return nil, &UnavailableError{Op: "list installed packages", Err: ErrUnavailable}
	}
	apps, err := c.source.ListInstalledPackages(ctx, domain.CatalogFlags, true)
	if err != nil {
		return nil, &UnavailableError{Op: "list installed packages", Err: err}
	}
	// Own the backing array so later changes in the source cannot leak in.
	if apps == nil {
		return []domain.AppRecord{}, nil
	}
	return slices.Clone(apps), nil
}

// Populated reports whether a fetch has ever succeeded
func (c *Catalog) Populated() bool {
	return c.snap.Load() != nil
}

// FetchedAt returns when the current list was fetched, zero when empty
func (c *Catalog) FetchedAt() time.Time {
	if s := c.snap.Load(); s != nil {
		return s.fetchedAt
	}
	return time.Time{}
}

// Err returns the error of the most recent fetch, nil if it succeeded.
// It is meant for diagnostics; Get never fails.
func (c *Catalog) Err() error {
	if e := c.lastErr.Load(); e != nil {
		return e.err
	}
	return nil
}
