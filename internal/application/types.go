package application

import "appcatalog/internal/domain"

// Re-export domain types for use by adapters
type (
	AppRecord  = domain.AppRecord
	Intent     = domain.Intent
	SortMode   = domain.SortMode
	SortAction = domain.SortAction
)

// ParseSortAction maps a sort name such as "update_time_desc" to its action
func ParseSortAction(s string) SortAction {
	return domain.ParseSortAction(s)
}
