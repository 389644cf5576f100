package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"heartlock/internal/trail"
)

// DefaultTick is the cutscene frame delay.
const DefaultTick = 18 * time.Millisecond

// The jet glyph, drawn across two rows at mid-height.
var jetGlyph = [2]string{
	"    __|__",
	"--o--(_)--o--",
}

// Exhaust glyphs ranked by trail heat, hottest last.
var exhaustRamp = []rune{' ', '.', '.', ':', ':', '~', '~', '=', '=', '-'}

// Cutscene sweeps the jet from the left edge to the right edge, one column
// per tick, redrawing the chrome frame underneath each tick. It runs to
// completion; there is no input path into it.
type Cutscene struct {
	renderer *Renderer
	tick     time.Duration

	// Sleep is called once per tick. Tests replace it to run the sweep
	// instantly.
	Sleep func(time.Duration)
}

// NewCutscene returns a player over r. A non-positive tick selects
// DefaultTick.
func NewCutscene(r *Renderer, tick time.Duration) *Cutscene {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Cutscene{renderer: r, tick: tick, Sleep: time.Sleep}
}

// Play runs one full sweep under the given chrome frame. The glyph starts
// at column 0 and ends flush with the right edge, inclusive; a fresh call
// starts over from the left.
func (c *Cutscene) Play(chrome Frame) {
	w, h := c.renderer.size()
	glyphW := len(jetGlyph[1])
	y := h / 2
	exhaust := trail.New(w)

	dim := tcell.StyleDefault.Dim(true)
	for x := 0; x <= w-glyphW; x++ {
		c.renderer.compose(chrome)

		exhaust.Stamp(x)
		for col := 0; col < x; col++ {
			if heat := exhaust.Heat(col); heat > 0 {
				c.renderer.screen.SetContent(col, y+1, exhaustRamp[heat], nil, dim)
			}
		}

		drawText(c.renderer.screen, x, y, jetGlyph[0], tcell.StyleDefault)
		drawText(c.renderer.screen, x, y+1, jetGlyph[1], tcell.StyleDefault)

		c.renderer.screen.Show()
		c.Sleep(c.tick)
		exhaust.Cool()
	}
}
