// Package dialog provides modal terminal dialogs built on tcell: message
// boxes, yes/no confirmations, line prompts, and a login dialog.
//
// Dialogs are synchronous: each call draws a centered box, runs its own
// event loop on the calling goroutine, and returns when the user submits or
// cancels. Esc cancels any dialog and yields ErrCanceled. Results are
// reported through value wrappers so callers can attach change listeners
// before showing follow-up dialogs.
//
//	screen, err := dialog.NewScreen()
//	if err != nil {
//	    return err
//	}
//	if err := screen.Init(); err != nil {
//	    return err
//	}
//	defer screen.Fini()
//
//	ok, err := dialog.Confirm(screen, "Quit", "Discard unsaved changes?")
//	if err == nil && ok.IsTrue() {
//	    ...
//	}
//
// Dialogs own the screen while they run; do not draw to the screen from
// another goroutine until the dialog returns.
package dialog
