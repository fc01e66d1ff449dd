package progression

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/warzonemc/mars/internal/model"
	"github.com/warzonemc/mars/internal/testutil"
)

type recordedIncrement struct {
	score  model.ScoreType
	member string
	amount uint32
}

type fakeLeaderboard struct {
	increments []recordedIncrement
}

func (f *fakeLeaderboard) Increment(_ context.Context, score model.ScoreType, member string, amount uint32) {
	f.increments = append(f.increments, recordedIncrement{score: score, member: member, amount: amount})
}

type ServiceSuite struct {
	suite.Suite
	leaderboard *fakeLeaderboard
	events      []XPGainEvent
	server      *StaticContext
	service     *Service
	ctx         context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.leaderboard = &fakeLeaderboard{}
	s.events = nil
	s.server = NewStaticContext(true)
	s.service = s.newService(nil)
	s.ctx = context.Background()
}

func (s *ServiceSuite) newService(curve GainCurve) *Service {
	dispatcher := DispatcherFunc(func(_ context.Context, event XPGainEvent) {
		s.events = append(s.events, event)
	})
	return New(s.leaderboard, dispatcher, curve, testutil.NopLogger())
}

func (s *ServiceSuite) TestPlainGain() {
	player := &model.Player{ID: "p1", Name: "Steve"}

	gain := s.service.AddXP(s.ctx, s.server, player, 100, "kill", true, false)

	s.Equal(uint32(100), gain)
	s.Equal(uint32(100), player.Stats.XP)

	s.Require().Len(s.events, 1)
	event := s.events[0]
	s.Equal("p1", event.PlayerID)
	s.Equal(uint32(100), event.Gain)
	s.Equal("kill", event.Reason)
	s.True(event.Notify)

	// The multiplied term won, so the resolved multiplier rides along even
	// though none was configured.
	s.Require().NotNil(event.Multiplier)
	s.Equal(1.0, *event.Multiplier)

	s.Require().Len(s.leaderboard.increments, 1)
	inc := s.leaderboard.increments[0]
	s.Equal(model.ScoreXP, inc.score)
	s.Equal("p1/Steve", inc.member)
	s.Equal(uint32(100), inc.amount)
}

func (s *ServiceSuite) TestMultiplierApplies() {
	s.server.SetMultiplier(2.5)
	player := &model.Player{ID: "p1", Name: "Steve"}

	gain := s.service.AddXP(s.ctx, s.server, player, 100, "win", false, true)

	s.Equal(uint32(250), gain)
	s.Equal(uint32(250), player.Stats.XP)

	s.Require().Len(s.events, 1)
	s.Require().NotNil(s.events[0].Multiplier)
	s.Equal(2.5, *s.events[0].Multiplier)
}

func (s *ServiceSuite) TestMultiplierRounds() {
	s.server.SetMultiplier(1.5)
	player := &model.Player{ID: "p1", Name: "Steve"}

	gain := s.service.AddXP(s.ctx, s.server, player, 3, "kill", false, true)

	// 3 * 1.5 rounds to 5 (round half away from zero).
	s.Equal(uint32(5), gain)
}

func (s *ServiceSuite) TestCurveWinsOverMultiplier() {
	s.service = s.newService(func(rawXP, level uint32) uint32 {
		return rawXP * 10
	})
	s.server.SetMultiplier(1.5)
	player := &model.Player{ID: "p1", Name: "Steve"}

	gain := s.service.AddXP(s.ctx, s.server, player, 100, "objective", false, false)

	s.Equal(uint32(1000), gain)
	s.Require().Len(s.events, 1)
	// The curve-adjusted amount won, so no multiplier is reported.
	s.Nil(s.events[0].Multiplier)
}

func (s *ServiceSuite) TestRawOnlyIgnoresCurve() {
	s.service = s.newService(func(rawXP, level uint32) uint32 {
		return rawXP * 10
	})
	player := &model.Player{ID: "p1", Name: "Steve"}

	gain := s.service.AddXP(s.ctx, s.server, player, 100, "objective", false, true)

	s.Equal(uint32(100), gain)
}

func (s *ServiceSuite) TestCurveSeesPreGainLevel() {
	var seenLevel uint32
	s.service = s.newService(func(rawXP, level uint32) uint32 {
		seenLevel = level
		return rawXP
	})
	player := &model.Player{ID: "p1", Name: "Steve"}
	player.Stats.XP = 10_000

	s.service.AddXP(s.ctx, s.server, player, 100, "kill", false, false)

	s.Equal(Level(10_000, true), seenLevel)
}

func (s *ServiceSuite) TestOutOfRangeMultiplierFallsBack() {
	s.server.SetMultiplier(math.Inf(1))
	player := &model.Player{ID: "p1", Name: "Steve"}

	gain := s.service.AddXP(s.ctx, s.server, player, 100, "kill", false, true)

	s.Equal(uint32(100), gain)
}

func (s *ServiceSuite) TestClearedMultiplier() {
	s.server.SetMultiplier(2.0)
	s.server.ClearMultiplier()
	player := &model.Player{ID: "p1", Name: "Steve"}

	gain := s.service.AddXP(s.ctx, s.server, player, 100, "kill", false, true)

	s.Equal(uint32(100), gain)
	s.Require().Len(s.events, 1)
	s.Require().NotNil(s.events[0].Multiplier)
	s.Equal(1.0, *s.events[0].Multiplier)
}

func (s *ServiceSuite) TestRawOnlyReportsDefaultMultiplier() {
	player := &model.Player{ID: "p1", Name: "Steve"}

	gain := s.service.AddXP(s.ctx, s.server, player, 100, "kill", false, true)

	s.Equal(uint32(100), gain)
	s.Require().Len(s.events, 1)
	s.Require().NotNil(s.events[0].Multiplier)
	s.Equal(1.0, *s.events[0].Multiplier)
}
