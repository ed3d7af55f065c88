package dialog

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/valuekit/value"
)

// Prompt shows a modal single-line input and returns the entered text as a
// Str wrapper. Esc cancels and returns ErrCanceled.
func Prompt(s *Screen, title, label string) (value.Str, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithField("session", uuid.NewString())
	log.Debug("prompt: %s", title)

	var input []rune
	redraw := func() {
		cx, cy, cw := frame(s.ts, title, "Enter: OK  Esc: Cancel", 1, 2)
		drawText(s.ts, cx, cy, styleBox, label)
		drawInput(s.ts, cx, cy+2, cw, input, false, true)
		s.ts.Show()
	}
	redraw()

	for {
		ev, err := s.pollKey(redraw)
		if err != nil {
			log.Warn("prompt interrupted: %v", err)
			return value.Str{}, err
		}
		switch ev.Key() {
		case tcell.KeyEnter:
			log.Debug("prompt submitted (%d runes)", len(input))
			s.ts.HideCursor()
			return value.NewStr(string(input)), nil
		case tcell.KeyEscape:
			log.Debug("prompt canceled")
			s.ts.HideCursor()
			return value.Str{}, ErrCanceled
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(input) > 0 {
				input = input[:len(input)-1]
				redraw()
			}
		case tcell.KeyCtrlU:
			input = input[:0]
			redraw()
		case tcell.KeyRune:
			input = append(input, ev.Rune())
			redraw()
		}
	}
}

// drawInput renders a single-line input field of width w. Masked fields show
// one asterisk per rune. Long input scrolls so the tail stays visible, with
// room left for the cursor cell.
func drawInput(ts tcell.Screen, x, y, w int, input []rune, masked, active bool) {
	style := styleField
	if active {
		style = styleActive
	}
	for col := 0; col < w; col++ {
		ts.SetContent(x+col, y, ' ', nil, style)
	}

	shown := input
	if len(shown) > w-1 {
		shown = shown[len(shown)-(w-1):]
	}
	for i, r := range shown {
		if masked {
			r = '*'
		}
		ts.SetContent(x+i, y, r, nil, style)
	}
	if active {
		ts.ShowCursor(x+len(shown), y)
	}
}
