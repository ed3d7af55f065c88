package dialog

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/valuekit/value"
)

// Confirm shows a modal yes/no question and returns the answer as a Bool
// wrapper. Y, N, and Enter on the highlighted button all answer; Esc cancels
// and returns ErrCanceled.
func Confirm(s *Screen, title, question string) (*value.Bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithField("session", uuid.NewString())
	log.Debug("confirm: %s", title)

	yes := true
	redraw := func() {
		lines := wrapText(question, frameWidth(s.ts)-4)
		cx, cy, cw := frame(s.ts, title, "Y/N  Enter: Select  Esc: Cancel", len(lines), 2)
		for i, line := range lines {
			drawText(s.ts, cx, cy+i, styleBox, line)
		}

		yesStyle, noStyle := styleActive, styleField
		if !yes {
			yesStyle, noStyle = styleField, styleActive
		}
		by := cy + len(lines) + 1
		bx := cx + (cw-16)/2
		if bx < cx {
			bx = cx
		}
		drawText(s.ts, bx, by, yesStyle, "  Yes  ")
		drawText(s.ts, bx+9, by, noStyle, "  No  ")
		s.ts.Show()
	}
	redraw()

	for {
		ev, err := s.pollKey(redraw)
		if err != nil {
			log.Warn("confirm interrupted: %v", err)
			return nil, err
		}
		switch ev.Key() {
		case tcell.KeyEnter:
			log.Debug("confirm answered: %v", yes)
			return value.NewBool(yes), nil
		case tcell.KeyEscape:
			log.Debug("confirm canceled")
			return nil, ErrCanceled
		case tcell.KeyLeft, tcell.KeyRight, tcell.KeyTab:
			yes = !yes
			redraw()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'y', 'Y':
				log.Debug("confirm answered: true")
				return value.NewBool(true), nil
			case 'n', 'N':
				log.Debug("confirm answered: false")
				return value.NewBool(false), nil
			}
		}
	}
}
