package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptionSkipsNonMatchingEvents(t *testing.T) {
	sim := newTestScreen(t, 80, 24)
	rd := NewReader(sim)

	// Arrow keys, a function key and stray letters must all be discarded;
	// only the matching key is returned, uppercased.
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyF1, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, '1', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'b', tcell.ModNone)

	got, err := rd.ReadOption()
	require.NoError(t, err)
	assert.Equal(t, 'B', got)
}

func TestReadOptionUppercasesMatch(t *testing.T) {
	sim := newTestScreen(t, 80, 24)
	rd := NewReader(sim)

	sim.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)

	got, err := rd.ReadOption()
	require.NoError(t, err)
	assert.Equal(t, 'D', got)
}

func TestReadYesNoFiltersToYN(t *testing.T) {
	sim := newTestScreen(t, 80, 24)
	rd := NewReader(sim)

	// A/B/C/D are not an answer here.
	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)

	got, err := rd.ReadYesNo()
	require.NoError(t, err)
	assert.Equal(t, 'Y', got)
}

func TestWaitAnyAcceptsAnyKeyButNotResize(t *testing.T) {
	sim := newTestScreen(t, 80, 24)
	rd := NewReader(sim)

	// Queue a resize ahead of the key; WaitAny must swallow it and return
	// on the key event.
	sim.SetSize(100, 30)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	require.NoError(t, rd.WaitAny())
}

func TestReadsFailOnceScreenIsClosed(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.Fini()

	rd := NewReader(sim)

	assert.ErrorIs(t, rd.WaitAny(), ErrScreenClosed)

	_, err := rd.ReadOption()
	assert.ErrorIs(t, err, ErrScreenClosed)
}
