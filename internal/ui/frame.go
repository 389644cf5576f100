package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Fallback dimensions when the terminal reports a useless size.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Frame is one full-screen render request: chrome text plus the lock
// progress and status shown in the bottom bar. Frames are built fresh for
// every draw and hold no state of their own.
type Frame struct {
	Title     string
	Body      []string
	Footer    string
	LockIdx   int
	LockTotal int
	Status    string
}

// Renderer composes frames onto a tcell screen. The clock is a field so
// tests can pin the elapsed-time display.
type Renderer struct {
	screen  tcell.Screen
	started time.Time
	now     func() time.Time
}

// NewRenderer returns a renderer whose status bar counts elapsed time from
// started.
func NewRenderer(s tcell.Screen, started time.Time) *Renderer {
	return &Renderer{screen: s, started: started, now: time.Now}
}

// Draw clears the screen, composes the frame and flushes it in a single
// Show. Title is bold and centered on row 1, body lines are centered from
// row 4 down, the footer sits dim near the bottom, and the last row is the
// status bar.
func (r *Renderer) Draw(f Frame) {
	r.compose(f)
	r.screen.Show()
}

// compose queues the frame without flushing, so the cutscene can overlay
// its glyphs before Show.
func (r *Renderer) compose(f Frame) {
	w, h := r.size()
	r.screen.Clear()

	drawText(r.screen, centerX(w, f.Title), 1, f.Title, tcell.StyleDefault.Bold(true))

	for i, line := range f.Body {
		drawText(r.screen, centerX(w, line), 4+i, line, tcell.StyleDefault)
	}

	drawText(r.screen, 1, h-3, f.Footer, tcell.StyleDefault.Dim(true))

	r.drawStatusBar(w, h, f)
}

func (r *Renderer) size() (int, int) {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

// centerX returns the column at which text starts when centered in width,
// clamped to 0 when the text is wider than the terminal. Over-width text is
// left to clip; no wrapping policy is applied.
func centerX(width int, text string) int {
	return max(0, (width-len([]rune(text)))/2)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, style)
	}
}
