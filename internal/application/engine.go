package application

import (
	"appcatalog/internal/logger"
	"appcatalog/internal/ports"
)

// Engine bundles the components a presentation layer needs. One Engine
// should be shared per process so the catalog cache is shared too.
type Engine struct {
	Resolver *IntentResolver
	Catalog  *Catalog
	Ordering *Ordering
	Sort     *SortPreference
}

// NewEngine wires the engine components to their platform capabilities
func NewEngine(platform ports.Platform, labels ports.LabelComparator, prefs ports.PreferenceStore, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{
		Resolver: NewIntentResolver(platform, withComponent(log, "resolver")),
		Catalog:  NewCatalog(platform, withComponent(log, "catalog")),
		Ordering: NewOrdering(labels),
		Sort:     NewSortPreference(prefs, withComponent(log, "sort")),
	}
}

func withComponent(log *logger.Logger, name string) *logger.Logger {
	l := log.With().Str("component", name).Logger()
	return &l
}
