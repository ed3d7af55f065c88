package dialog

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// MessageBox shows a modal message and waits for Enter. Esc cancels and
// returns ErrCanceled.
func MessageBox(s *Screen, title, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithField("session", uuid.NewString())
	log.Debug("message box: %s", title)

	redraw := func() {
		lines := wrapText(message, frameWidth(s.ts)-4)
		cx, cy, _ := frame(s.ts, title, "Enter: OK  Esc: Cancel", len(lines), 0)
		for i, line := range lines {
			drawText(s.ts, cx, cy+i, styleBox, line)
		}
		s.ts.Show()
	}
	redraw()

	for {
		ev, err := s.pollKey(redraw)
		if err != nil {
			log.Warn("message box interrupted: %v", err)
			return err
		}
		switch ev.Key() {
		case tcell.KeyEnter:
			return nil
		case tcell.KeyEscape:
			log.Debug("message box canceled")
			return ErrCanceled
		}
	}
}
