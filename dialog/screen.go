package dialog

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/valuekit/logging"
)

// Screen wraps a tcell screen for dialog rendering. The mutex serializes
// dialogs, not screen access: Fini may be called from another goroutine to
// unblock a waiting dialog.
type Screen struct {
	mu  sync.Mutex // held for the duration of each dialog
	ts  tcell.Screen
	log *logging.Logger
}

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithLogger sets the screen's logger. Defaults to the package-wide logger.
func WithLogger(l *logging.Logger) ScreenOption {
	return func(s *Screen) {
		if l != nil {
			s.log = l
		}
	}
}

// NewScreen creates a Screen backed by the process terminal.
func NewScreen(opts ...ScreenOption) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFor(ts, opts...), nil
}

// NewScreenFor wraps an existing tcell screen. Useful with tcell's
// simulation screen in tests.
func NewScreenFor(ts tcell.Screen, opts ...ScreenOption) *Screen {
	s := &Screen{
		ts:  ts,
		log: logging.Default().WithComponent("dialog"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init initializes the underlying screen.
func (s *Screen) Init() error {
	if err := s.ts.Init(); err != nil {
		return err
	}
	s.ts.HideCursor()
	return nil
}

// Fini releases the underlying screen and restores the terminal. Calling
// Fini while a dialog is waiting for input makes that dialog return
// ErrScreenClosed.
func (s *Screen) Fini() {
	s.ts.Fini()
}

// Size returns the screen dimensions.
func (s *Screen) Size() (int, int) {
	return s.ts.Size()
}

// pollKey blocks until a key or resize event arrives. On resize it calls
// redraw and keeps waiting. A nil event means the screen was finalized.
func (s *Screen) pollKey(redraw func()) (*tcell.EventKey, error) {
	for {
		ev := s.ts.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil, ErrScreenClosed
		case *tcell.EventKey:
			return ev, nil
		case *tcell.EventResize:
			s.ts.Sync()
			if redraw != nil {
				redraw()
			}
		}
	}
}
