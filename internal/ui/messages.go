package ui

import (
	"github.com/dori/ckanban/internal/model"
)

// View represents the current active view
type View int

const (
	ViewBoard View = iota
	ViewReview
	ViewBookmarks
)

// String returns the display name for a view
func (v View) String() string {
	switch v {
	case ViewBoard:
		return "Board"
	case ViewReview:
		return "Review"
	case ViewBookmarks:
		return "Bookmarks"
	default:
		return "Unknown"
	}
}

// Messages for inter-component communication

// BoardChangedMsg carries a freshly committed board snapshot from the
// store's subscription bus into the bubbletea loop
type BoardChangedMsg struct {
	Board *model.Board
}

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}

// ThemeChangedMsg indicates the theme was changed
type ThemeChangedMsg struct {
	ThemeName string
}
