package dialog

import "errors"

// Sentinel errors for dialogs.
var (
	// ErrCanceled is returned when the user dismisses a dialog with Esc.
	ErrCanceled = errors.New("dialog canceled")

	// ErrScreenClosed is returned when the screen is finalized while a
	// dialog is waiting for input.
	ErrScreenClosed = errors.New("screen closed")
)
