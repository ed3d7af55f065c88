package dialog

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Default dialog styles.
var (
	styleBox    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorNavy).Bold(true)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleField  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleActive = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// wrapText word-wraps text to the given width. Words longer than the width
// are split. A non-positive width yields the text as a single line.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line string
		for _, word := range words {
			for len(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				lines = append(lines, word[:width])
				word = word[width:]
			}
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// centered returns the top-left corner that centers a w-by-h box on a
// sw-by-sh screen, clamped to the origin.
func centered(sw, sh, w, h int) (int, int) {
	x := (sw - w) / 2
	y := (sh - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// drawText writes text starting at x,y, clipped to the screen.
func drawText(ts tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		ts.SetContent(col, y, r, nil, style)
		col++
	}
}

// drawBox fills a bordered box with the given style.
func drawBox(ts tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			ts.SetContent(col, row, ' ', nil, style)
		}
	}

	for col := x; col < x+w; col++ {
		ts.SetContent(col, y, tcell.RuneHLine, nil, style)
		ts.SetContent(col, y+h-1, tcell.RuneHLine, nil, style)
	}
	for row := y; row < y+h; row++ {
		ts.SetContent(x, row, tcell.RuneVLine, nil, style)
		ts.SetContent(x+w-1, row, tcell.RuneVLine, nil, style)
	}
	ts.SetContent(x, y, tcell.RuneULCorner, nil, style)
	ts.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	ts.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	ts.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

// frameWidth returns the dialog box width for the current screen size.
func frameWidth(ts tcell.Screen) int {
	sw, _ := ts.Size()
	w := sw * 2 / 3
	if w < 20 {
		w = sw
	}
	if w > 72 {
		w = 72
	}
	return w
}

// frame draws a dialog frame with a centered title and bottom hint, and
// returns the content origin and width.
func frame(ts tcell.Screen, title, hint string, contentLines, extraRows int) (cx, cy, cw int) {
	sw, sh := ts.Size()
	w := frameWidth(ts)
	h := contentLines + extraRows + 4 // border rows, title, hint
	if h > sh {
		h = sh
	}

	x, y := centered(sw, sh, w, h)
	drawBox(ts, x, y, w, h, styleBox)

	if title != "" {
		label := " " + title + " "
		tx := x + (w-len(label))/2
		if tx < x+1 {
			tx = x + 1
		}
		drawText(ts, tx, y, styleTitle, label)
	}
	if hint != "" {
		drawText(ts, x+2, y+h-1, styleHint, " "+hint+" ")
	}

	return x + 2, y + 2, w - 4
}
