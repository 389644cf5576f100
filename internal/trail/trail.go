// Package trail tracks the fading exhaust left behind the cutscene jet:
// per-column heat that is stamped as the jet passes and cools a step each
// frame.
package trail

const (
	// MaxHeat is the intensity of a freshly stamped column.
	MaxHeat = 9

	// CoolRate is the heat shed per frame by every column.
	CoolRate = 1
)

// State holds the per-column heat of one cutscene run.
type State struct {
	heat []int
}

// New returns a cold trail spanning width columns.
func New(width int) *State {
	return &State{heat: make([]int, max(0, width))}
}

// Width returns the number of tracked columns.
func (s *State) Width() int {
	return len(s.heat)
}

// Stamp marks col at full heat. Out-of-range columns are ignored.
func (s *State) Stamp(col int) {
	if col >= 0 && col < len(s.heat) {
		s.heat[col] = MaxHeat
	}
}

// Cool sheds one frame's worth of heat from every column, flooring at 0.
func (s *State) Cool() {
	for i, h := range s.heat {
		s.heat[i] = max(0, h-CoolRate)
	}
}

// Heat returns the current heat of col, 0 when out of range.
func (s *State) Heat(col int) int {
	if col < 0 || col >= len(s.heat) {
		return 0
	}
	return s.heat[col]
}
