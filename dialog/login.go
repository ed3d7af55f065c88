package dialog

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/valuekit/value"
)

// Credentials holds the result of a Login dialog.
type Credentials struct {
	User     value.Str
	Password value.Str
}

// Login shows a modal two-field login dialog with a masked password. Tab and
// the arrow keys move between fields, Enter submits, Esc cancels and returns
// ErrCanceled. The password is never logged.
func Login(s *Screen, title string) (*Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithField("session", uuid.NewString())
	log.Debug("login: %s", title)

	var user, pass []rune
	active := 0 // 0 = user, 1 = password

	redraw := func() {
		cx, cy, cw := frame(s.ts, title, "Tab: Next  Enter: OK  Esc: Cancel", 1, 4)
		drawText(s.ts, cx, cy, styleBox, "User")
		drawInput(s.ts, cx, cy+1, cw, user, false, active == 0)
		drawText(s.ts, cx, cy+3, styleBox, "Password")
		drawInput(s.ts, cx, cy+4, cw, pass, true, active == 1)
		s.ts.Show()
	}
	redraw()

	field := func() *[]rune {
		if active == 0 {
			return &user
		}
		return &pass
	}

	for {
		ev, err := s.pollKey(redraw)
		if err != nil {
			log.Warn("login interrupted: %v", err)
			return nil, err
		}
		switch ev.Key() {
		case tcell.KeyEnter:
			log.Debug("login submitted: user=%q", string(user))
			s.ts.HideCursor()
			return &Credentials{
				User:     value.NewStr(string(user)),
				Password: value.NewStr(string(pass)),
			}, nil
		case tcell.KeyEscape:
			log.Debug("login canceled")
			s.ts.HideCursor()
			return nil, ErrCanceled
		case tcell.KeyTab, tcell.KeyDown, tcell.KeyUp, tcell.KeyBacktab:
			active = 1 - active
			redraw()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			f := field()
			if len(*f) > 0 {
				*f = (*f)[:len(*f)-1]
				redraw()
			}
		case tcell.KeyCtrlU:
			f := field()
			*f = (*f)[:0]
			redraw()
		case tcell.KeyRune:
			f := field()
			*f = append(*f, ev.Rune())
			redraw()
		}
	}
}
