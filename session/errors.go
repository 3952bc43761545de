package session

import "errors"

// Session errors.
var (
	// ErrBusy indicates a gesture or refresh was requested while the session
	// was not idle.
	ErrBusy = errors.New("session busy")

	// ErrNotDragging indicates a drag step arrived with no drag in progress.
	ErrNotDragging = errors.New("no drag in progress")

	// ErrUnknownEditable indicates an editable ID that is not registered.
	ErrUnknownEditable = errors.New("unknown editable")

	// ErrEditablesDisabled indicates a drag was requested while editables
	// are turned off.
	ErrEditablesDisabled = errors.New("editables disabled")
)
