package model

import (
	"time"

	"github.com/google/uuid"
)

// Session records a single connection window for a player. EndedAt is absent
// while the session is live; at most one session per player is live at a time.
type Session struct {
	ID        string       `bson:"_id" json:"_id"`
	Player    SimplePlayer `bson:"player" json:"player"`
	IP        string       `bson:"ip" json:"-"`
	CreatedAt float64      `bson:"createdAt" json:"createdAt"`
	EndedAt   *float64     `bson:"endedAt" json:"endedAt"`
}

func (s Session) DocumentID() string { return s.ID }

func (Session) CollectionName() string { return "session" }

// NewSession starts a live session for the player.
func NewSession(player SimplePlayer, ip string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Player:    player,
		IP:        ip,
		CreatedAt: TimeMillis(time.Now()),
	}
}

// IsActive reports whether the session has not ended yet.
func (s *Session) IsActive() bool { return s.EndedAt == nil }

// End closes the session at the given time. Ending an ended session is a
// no-op.
func (s *Session) End(at time.Time) {
	if s.EndedAt != nil {
		return
	}
	millis := TimeMillis(at)
	s.EndedAt = &millis
}

// Length is the session duration in milliseconds; live sessions are measured
// against now.
func (s *Session) Length(now time.Time) float64 {
	if s.EndedAt != nil {
		return *s.EndedAt - s.CreatedAt
	}
	return TimeMillis(now) - s.CreatedAt
}

// TimeMillis converts a time to the millisecond epoch representation used by
// on-disk timestamps.
func TimeMillis(t time.Time) float64 {
	return float64(t.UnixMilli())
}
