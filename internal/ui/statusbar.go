package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// statusRightMargin is the fixed reservation for the right-aligned status
// segment, on top of the status text itself ("STATUS: " plus one trailing
// column).
const statusRightMargin = 9

// drawStatusBar paints the last row as a filled bar with three independent
// segments: lock progress at column 1, elapsed time centered, and the
// status label right-aligned. On very narrow terminals the segments
// overwrite each other in that order.
func (r *Renderer) drawStatusBar(w, h int, f Frame) {
	y := h - 1
	bar := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorDarkGray)
	seg := bar.Bold(true)

	drawText(r.screen, 0, y, strings.Repeat(" ", w), bar)

	drawText(r.screen, 1, y, fmt.Sprintf("LOCK %d/%d", f.LockIdx, f.LockTotal), seg)

	clock := formatElapsed(r.now().Sub(r.started))
	drawText(r.screen, centerX(w, clock), y, clock, seg)

	status := "STATUS: " + f.Status
	drawText(r.screen, max(0, w-(len(f.Status)+statusRightMargin)), y, status, seg)
}

// formatElapsed renders a duration as mm:ss. Minutes grow without bound;
// there is deliberately no hour field.
func formatElapsed(d time.Duration) string {
	secs := max(0, int(d.Seconds()))
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
