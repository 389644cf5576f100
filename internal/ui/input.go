package ui

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// ErrScreenClosed reports that the terminal event stream ended while a
// read was blocked, which only happens once the screen is finalized.
var ErrScreenClosed = errors.New("terminal event stream closed")

// Reader provides the blocking, filtered key reads the card runs on.
// Non-matching events (arrows, function keys, resizes, stray letters) are
// consumed and dropped, never buffered. There is no timeout: a read ends
// with a matching key or not at all.
type Reader struct {
	screen tcell.Screen
}

func NewReader(s tcell.Screen) *Reader {
	return &Reader{screen: s}
}

// WaitAny blocks until any key is pressed, discarding the key.
func (rd *Reader) WaitAny() error {
	for {
		ev := rd.screen.PollEvent()
		if ev == nil {
			return ErrScreenClosed
		}
		if _, ok := ev.(*tcell.EventKey); ok {
			return nil
		}
	}
}

// ReadOption blocks until one of A/B/C/D is pressed (either case) and
// returns it uppercased.
func (rd *Reader) ReadOption() (rune, error) {
	return rd.readRune("ABCD")
}

// ReadYesNo blocks until Y or N is pressed (either case) and returns it
// uppercased.
func (rd *Reader) ReadYesNo() (rune, error) {
	return rd.readRune("YN")
}

func (rd *Reader) readRune(accept string) (rune, error) {
	for {
		ev := rd.screen.PollEvent()
		if ev == nil {
			return 0, ErrScreenClosed
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok || key.Key() != tcell.KeyRune {
			continue
		}
		c := unicode.ToUpper(key.Rune())
		if strings.ContainsRune(accept, c) {
			return c, nil
		}
	}
}
