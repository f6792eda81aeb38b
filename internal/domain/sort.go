package domain

import "strings"

// PreferenceKeySort is the preference key holding the persisted sort mode
const PreferenceKeySort = "list_sort"

// Criterion is the attribute an app list is ordered by
type Criterion int

const (
	CriterionDisplayName Criterion = iota
	CriterionPackageName
	CriterionInstallTime
	CriterionUpdateTime
)

var criterionNames = [...]string{"name", "package_name", "install_time", "update_time"}

func (c Criterion) String() string {
	if c < 0 || int(c) >= len(criterionNames) {
		return "unknown"
	}
	return criterionNames[c]
}

// SortMode encodes a criterion and a direction as 2*criterion + reverse
type SortMode int

const (
	SortModeMin     SortMode = 0
	SortModeMax     SortMode = 7
	DefaultSortMode SortMode = SortModeMin
)

// NewSortMode builds the mode for criterion c, reversed when reverse is true
func NewSortMode(c Criterion, reverse bool) SortMode {
	m := SortMode(c) * 2
	if reverse {
		m++
	}
	return m
}

// NormalizeSortMode maps any integer onto a valid mode.
// Values outside 0..7 fall back to ascending display name.
func NormalizeSortMode(v int) SortMode {
	m := SortMode(v)
	if !m.Valid() {
		return DefaultSortMode
	}
	return m
}

// Valid reports whether m is one of the eight known modes
func (m SortMode) Valid() bool {
	return m >= SortModeMin && m <= SortModeMax
}

// Criterion returns the attribute this mode orders by
func (m SortMode) Criterion() Criterion {
	return Criterion(NormalizeSortMode(int(m)) / 2)
}

// Reversed reports whether this mode is the descending variant
func (m SortMode) Reversed() bool {
	return NormalizeSortMode(int(m))%2 == 1
}

// String returns e.g. "install_time" or "install_time_desc"
func (m SortMode) String() string {
	s := m.Criterion().String()
	if m.Reversed() {
		s += "_desc"
	}
	return s
}

// ParseSortMode parses the String form of a sort mode
func ParseSortMode(s string) (SortMode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m := SortModeMin; m <= SortModeMax; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return DefaultSortMode, false
}

// SortAction is a user-initiated sort selection
type SortAction int

const (
	SortActionUnknown SortAction = iota
	SortActionByName
	SortActionByNameReverse
	SortActionByPackageName
	SortActionByPackageNameReverse
	SortActionByInstallTime
	SortActionByInstallTimeReverse
	SortActionByUpdateTime
	SortActionByUpdateTimeReverse
)

type sortTarget struct {
	criterion Criterion
	reverse   bool
}

var sortActions = map[SortAction]sortTarget{
	SortActionByName:               {CriterionDisplayName, false},
	SortActionByNameReverse:        {CriterionDisplayName, true},
	SortActionByPackageName:        {CriterionPackageName, false},
	SortActionByPackageNameReverse: {CriterionPackageName, true},
	SortActionByInstallTime:        {CriterionInstallTime, false},
	SortActionByInstallTimeReverse: {CriterionInstallTime, true},
	SortActionByUpdateTime:         {CriterionUpdateTime, false},
	SortActionByUpdateTimeReverse:  {CriterionUpdateTime, true},
}

// SortActions returns the eight recognized actions in mode order
func SortActions() []SortAction {
	return []SortAction{
		SortActionByName,
		SortActionByNameReverse,
		SortActionByPackageName,
		SortActionByPackageNameReverse,
		SortActionByInstallTime,
		SortActionByInstallTimeReverse,
		SortActionByUpdateTime,
		SortActionByUpdateTimeReverse,
	}
}

// Mode returns the sort mode selected by the action.
// ok is false for actions that are not sort selections.
func (a SortAction) Mode() (SortMode, bool) {
	t, ok := sortActions[a]
	if !ok {
		return DefaultSortMode, false
	}
	return NewSortMode(t.criterion, t.reverse), true
}

func (a SortAction) String() string {
	m, ok := a.Mode()
	if !ok {
		return "unknown"
	}
	return m.String()
}

// ParseSortAction maps the String form back to an action
func ParseSortAction(s string) SortAction {
	m, ok := ParseSortMode(s)
	if !ok {
		return SortActionUnknown
	}
	for _, a := range SortActions() {
		if am, _ := a.Mode(); am == m {
			return a
		}
	}
	return SortActionUnknown
}
