package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Guard holds exclusive full-screen control of the terminal for its
// lifetime. Acquire switches to the alternate screen buffer, enters raw
// input mode and hides the cursor; Release restores the terminal and is
// safe to call more than once, so callers can defer it unconditionally.
type Guard struct {
	screen tcell.Screen
	once   sync.Once
}

// Acquire takes over the terminal. On failure the terminal is left
// untouched and the error describes which setup step broke.
func Acquire() (*Guard, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return acquireScreen(s)
}

func acquireScreen(s tcell.Screen) (*Guard, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	// Cosmetic host-console prep (maximize on Windows). Best-effort.
	prepareConsole()
	s.HideCursor()
	s.Clear()
	return &Guard{screen: s}, nil
}

// Screen returns the screen held by the guard.
func (g *Guard) Screen() tcell.Screen {
	return g.screen
}

// Release restores the terminal. It runs at most once per guard and never
// reports errors: cleanup must not mask whatever caused the unwind.
func (g *Guard) Release() {
	g.once.Do(func() {
		g.screen.Fini()
	})
}
