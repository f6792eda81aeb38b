package domain

import (
	"fmt"
	"strconv"
)

const (
	// ActionMain is the entry point action
	ActionMain = "android.intent.action.MAIN"

	// CategoryModuleSettings marks a module's dedicated settings activity
	CategoryModuleSettings = "de.robv.android.xposed.category.MODULE_SETTINGS"
	// CategoryLauncher marks an activity shown in the launcher
	CategoryLauncher = "android.intent.category.LAUNCHER"

	// FlagActivityNewTask starts the activity in a new task
	FlagActivityNewTask = 0x10000000
)

// IntentFilter is a query for activities matching an action and category
// within a single package
type IntentFilter struct {
	Action   string
	Category string
	Package  string
}

// NewCategoryFilter builds a MAIN filter for category restricted to packageName
func NewCategoryFilter(packageName, category string) IntentFilter {
	return IntentFilter{
		Action:   ActionMain,
		Category: category,
		Package:  packageName,
	}
}

// ActivityMatch is one activity returned by the platform for a filter
type ActivityMatch struct {
	PackageName  string
	ActivityName string // Fully qualified class name
}

// Intent is a resolved launch request for an activity component.
// It is built per resolution call and never stored.
type Intent struct {
	Action    string
	Category  string
	Package   string
	ClassName string
	Flags     int
}

// NewLaunchIntent builds a new-task intent targeting the matched activity
func NewLaunchIntent(filter IntentFilter, match ActivityMatch) *Intent {
	return &Intent{
		Action:    filter.Action,
		Category:  filter.Category,
		Package:   match.PackageName,
		ClassName: match.ActivityName,
		Flags:     FlagActivityNewTask,
	}
}

// Component returns the flattened component name (package/class)
func (i *Intent) Component() string {
	return i.Package + "/" + i.ClassName
}

// AmStartArgs returns the `am start` arguments that launch this intent as userID
func (i *Intent) AmStartArgs(userID int) []string {
	return []string{
		"start",
		"--user", strconv.Itoa(userID),
		"-a", i.Action,
		"-c", i.Category,
		"-f", fmt.Sprintf("0x%08x", i.Flags),
		"-n", i.Component(),
	}
}

// ActivityRecord is a registry entry declaring that an activity handles
// action/category. Higher Priority sorts first within a query.
type ActivityRecord struct {
	UserID       int
	PackageName  string
	ActivityName string
	Action       string
	Category     string
	Priority     int
}
