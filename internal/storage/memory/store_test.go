package memory

import (
	"context"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/warzonemc/mars/internal/model"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *StoreSuite) TestSaveAndFindByID() {
	player := &model.Player{ID: "p1", Name: "Steve", NameLower: "steve"}
	player.Stats.Kills = 12
	s.store.SavePlayer(s.ctx, player)

	got := s.store.FindPlayer(s.ctx, "p1")
	s.Require().NotNil(got)
	s.Equal(*player, *got)
}

func (s *StoreSuite) TestFindByNameCaseInsensitive() {
	player := &model.Player{ID: "p1", Name: "Steve", NameLower: "steve"}
	s.store.SavePlayer(s.ctx, player)

	got := s.store.FindPlayer(s.ctx, "STEVE")
	s.Require().NotNil(got)
	s.Equal("p1", got.ID)
}

func (s *StoreSuite) TestFindMissingPlayer() {
	s.Nil(s.store.FindPlayer(s.ctx, "nobody"))
}

func (s *StoreSuite) TestSaveOverwrites() {
	player := &model.Player{ID: "p1", Name: "Steve", NameLower: "steve"}
	s.store.SavePlayer(s.ctx, player)

	player.Stats.Kills = 5
	s.store.SavePlayer(s.ctx, player)

	got := s.store.FindPlayer(s.ctx, "p1")
	s.Require().NotNil(got)
	s.Equal(uint32(5), got.Stats.Kills)
}

func (s *StoreSuite) TestDeletePlayer() {
	player := &model.Player{ID: "p1", Name: "Steve", NameLower: "steve"}
	s.store.SavePlayer(s.ctx, player)

	deleted, ok := s.store.DeletePlayer(s.ctx, "p1")
	s.True(ok)
	s.Equal(int64(1), deleted)
	s.Nil(s.store.FindPlayer(s.ctx, "p1"))

	deleted, ok = s.store.DeletePlayer(s.ctx, "p1")
	s.True(ok)
	s.Equal(int64(0), deleted)
}

func (s *StoreSuite) TestEnsurePlayerNameUniqueness() {
	keeper := &model.Player{ID: "new", Name: "Steve", NameLower: "steve"}
	squatter := &model.Player{ID: "old", Name: "Steve", NameLower: "steve"}
	bystander := &model.Player{ID: "other", Name: "Alex", NameLower: "alex"}
	s.store.SavePlayer(s.ctx, keeper)
	s.store.SavePlayer(s.ctx, squatter)
	s.store.SavePlayer(s.ctx, bystander)

	s.store.EnsurePlayerNameUniqueness(s.ctx, "Steve", "new")

	kept := s.store.FindPlayer(s.ctx, "new")
	s.Require().NotNil(kept)
	s.Equal("Steve", kept.Name)

	displaced := s.store.FindPlayer(s.ctx, "old")
	s.Require().NotNil(displaced)
	re := regexp.MustCompile(`^>WZPlayer(\d+)$`)
	matches := re.FindStringSubmatch(displaced.Name)
	s.Require().NotNil(matches, "displaced player got name %q", displaced.Name)
	n, err := strconv.Atoi(matches[1])
	s.Require().NoError(err)
	s.LessOrEqual(n, 1000)

	untouched := s.store.FindPlayer(s.ctx, "other")
	s.Require().NotNil(untouched)
	s.Equal("Alex", untouched.Name)
}

func (s *StoreSuite) TestActiveSession() {
	player := &model.Player{ID: "p1", Name: "Steve", NameLower: "steve"}

	ended := model.NewSession(player.Simple(), "10.0.0.1")
	ended.End(time.Now())
	s.store.InsertSession(s.ctx, ended)

	s.Nil(s.store.ActiveSession(s.ctx, player))

	live := model.NewSession(player.Simple(), "10.0.0.1")
	s.store.InsertSession(s.ctx, live)

	got := s.store.ActiveSession(s.ctx, player)
	s.Require().NotNil(got)
	s.Equal(live.ID, got.ID)
}

func (s *StoreSuite) TestPunishmentsSortedByIssueTime() {
	player := &model.Player{ID: "p1", Name: "Steve", NameLower: "steve"}

	second := model.NewPunishment(player.Simple(), nil, "later", time.Hour)
	second.IssuedAt = 2000
	first := model.NewPunishment(player.Simple(), nil, "earlier", time.Hour)
	first.IssuedAt = 1000
	s.store.InsertPunishment(s.ctx, second)
	s.store.InsertPunishment(s.ctx, first)

	got := s.store.PunishmentsFor(s.ctx, player)
	s.Require().Len(got, 2)
	s.Equal("earlier", got[0].Reason)
	s.Equal("later", got[1].Reason)
}

func (s *StoreSuite) TestActivePunishmentsFiltersExpired() {
	player := &model.Player{ID: "p1", Name: "Steve", NameLower: "steve"}

	expired := model.NewPunishment(player.Simple(), nil, "old", time.Millisecond)
	expired.IssuedAt = 0
	expired.ExpiresAt = 1
	live := model.NewPunishment(player.Simple(), nil, "current", time.Hour)
	s.store.InsertPunishment(s.ctx, expired)
	s.store.InsertPunishment(s.ctx, live)

	got := s.store.ActivePunishmentsFor(s.ctx, player)
	s.Require().Len(got, 1)
	s.Equal("current", got[0].Reason)
}

func (s *StoreSuite) TestIPIdentityRoundTrip() {
	a := &model.Player{ID: "a", Name: "A", NameLower: "a"}
	b := &model.Player{ID: "b", Name: "B", NameLower: "b"}
	s.store.SavePlayer(s.ctx, a)
	s.store.SavePlayer(s.ctx, b)

	s.store.RecordIPIdentity(s.ctx, "a", "1.1.1.1")
	s.store.RecordIPIdentity(s.ctx, "b", "1.1.1.1")
	s.store.RecordIPIdentity(s.ctx, "a", "1.1.1.1")

	got, err := s.store.PlayersForIP(s.ctx, "1.1.1.1")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("a", got[0].ID)
	s.Equal("b", got[1].ID)
}

func (s *StoreSuite) TestPlayersForUnknownIP() {
	got, err := s.store.PlayersForIP(s.ctx, "9.9.9.9")
	s.Require().NoError(err)
	s.Empty(got)
}
