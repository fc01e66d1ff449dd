package progression

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type LevelSuite struct {
	suite.Suite
}

func TestLevelSuite(t *testing.T) {
	suite.Run(t, new(LevelSuite))
}

func (s *LevelSuite) TestLinearLevels() {
	s.Equal(uint32(1), Level(0, false))
	s.Equal(uint32(1), Level(4999, false))
	s.Equal(uint32(2), Level(5000, false))
	s.Equal(uint32(201), Level(1_000_000, false))
}

func (s *LevelSuite) TestExponentialLevels() {
	s.Equal(uint32(1), Level(0, true))
	s.Equal(uint32(3), Level(4999, true))
	s.Equal(uint32(3), Level(5000, true))
	s.Equal(uint32(110), Level(1_000_000, true))

	// The exponential curve grows monotonically.
	prev := uint32(0)
	for _, xp := range []uint32{0, 1000, 10_000, 100_000, 1_000_000} {
		level := Level(xp, true)
		s.GreaterOrEqual(level, prev)
		prev = level
	}

	// Exponential trails linear over the mid range.
	s.Less(Level(1_000_000, true), Level(1_000_000, false))
}
