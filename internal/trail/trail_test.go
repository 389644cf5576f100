package trail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStampAndCool(t *testing.T) {
	s := New(10)

	s.Stamp(3)
	assert.Equal(t, MaxHeat, s.Heat(3))

	// Heat decays monotonically and floors at zero.
	prev := s.Heat(3)
	for i := 0; i < MaxHeat+2; i++ {
		s.Cool()
		h := s.Heat(3)
		assert.LessOrEqual(t, h, prev)
		assert.GreaterOrEqual(t, h, 0)
		prev = h
	}
	assert.Equal(t, 0, s.Heat(3))
}

func TestStampOutOfRangeIsIgnored(t *testing.T) {
	s := New(5)

	s.Stamp(-1)
	s.Stamp(5)
	s.Stamp(100)

	for col := 0; col < s.Width(); col++ {
		assert.Equal(t, 0, s.Heat(col))
	}
	assert.Equal(t, 0, s.Heat(-1))
	assert.Equal(t, 0, s.Heat(100))
}

func TestRestampReheatsColumn(t *testing.T) {
	s := New(5)

	s.Stamp(2)
	s.Cool()
	s.Cool()
	assert.Equal(t, MaxHeat-2*CoolRate, s.Heat(2))

	s.Stamp(2)
	assert.Equal(t, MaxHeat, s.Heat(2))
}

func TestZeroWidthTrail(t *testing.T) {
	s := New(0)
	assert.Equal(t, 0, s.Width())
	s.Stamp(0)
	s.Cool()
	assert.Equal(t, 0, s.Heat(0))
}
