package views

import "appcatalog/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages
type (
	SwitchToHelpMsg struct{}
	SwitchToListMsg struct{}
)

// appsLoadedMsg carries a freshly ordered app list
type appsLoadedMsg struct {
	apps     []domain.AppRecord
	mode     domain.SortMode
	fetchErr error
}

// intentResolvedMsg carries the result of resolving the selected app
type intentResolvedMsg struct {
	app    domain.AppRecord
	intent *domain.Intent
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}
