package model

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PlayerSuite struct {
	suite.Suite
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerSuite))
}

func (s *PlayerSuite) TestIDName() {
	p := Player{ID: "abc-123", Name: "Steve"}
	s.Equal("abc-123/Steve", p.IDName())
}

func (s *PlayerSuite) TestSanitizedStripsPrivateFields() {
	session := "session-1"
	p := Player{
		ID:            "abc-123",
		Name:          "Steve",
		IPs:           []string{"10.0.0.1"},
		Notes:         []StaffNote{{ID: 1, Content: "note"}},
		LastSessionID: &session,
		Stats:         PlayerStats{Kills: 5},
	}

	clean := p.Sanitized()
	s.Nil(clean.IPs)
	s.Nil(clean.Notes)
	s.Nil(clean.LastSessionID)
	s.Equal("Steve", clean.Name)
	s.Equal(uint32(5), clean.Stats.Kills)

	// The original is untouched.
	s.NotNil(p.IPs)
	s.NotNil(p.Notes)
	s.NotNil(p.LastSessionID)
}

func (s *PlayerSuite) TestModifyGamemodeStats() {
	p := Player{ID: "abc-123"}
	m := &Match{Level: Level{Gamemodes: []string{"ctw", "dtc"}}}

	p.ModifyGamemodeStats(m, func(stats *PlayerStats) {
		stats.Kills++
	})

	s.Equal(uint32(1), p.GamemodeStats["ctw"].Kills)
	s.Equal(uint32(1), p.GamemodeStats["dtc"].Kills)
}

func (s *PlayerSuite) TestModifyGamemodeStatsUntrackedMatch() {
	p := Player{ID: "abc-123"}
	m := &Match{}

	p.ModifyGamemodeStats(m, func(stats *PlayerStats) {
		stats.Wins++
	})

	s.Equal(uint32(1), p.GamemodeStats[GamemodeArcade].Wins)
	s.Len(p.GamemodeStats, 1)
}

func (s *PlayerSuite) TestPlaceholderNameShape() {
	re := regexp.MustCompile(`^>WZPlayer(\d+)$`)
	for i := 0; i < 200; i++ {
		name := PlaceholderName()
		matches := re.FindStringSubmatch(name)
		s.Require().NotNil(matches, "unexpected placeholder %q", name)

		n, err := strconv.Atoi(matches[1])
		s.Require().NoError(err)
		s.LessOrEqual(n, 1000)
		s.GreaterOrEqual(n, 0)
	}
}
