package model

import (
	"time"

	"github.com/google/uuid"
)

// Punishment is a moderation action issued against a player. Whether it is
// active is derived from its time window and reversion state, never stored.
type Punishment struct {
	ID        string                `bson:"_id" json:"_id"`
	Reason    string                `bson:"reason" json:"reason"`
	IssuedAt  float64               `bson:"issuedAt" json:"issuedAt"`
	ExpiresAt float64               `bson:"expiresAt" json:"expiresAt"`
	Punisher  *SimplePlayer         `bson:"punisher" json:"punisher"`
	Target    SimplePlayer          `bson:"target" json:"target"`
	TargetIPs []string              `bson:"targetIps" json:"-"`
	Silent    bool                  `bson:"silent" json:"silent"`
	Reversion *PunishmentReversion  `bson:"reversion" json:"reversion"`
}

// PermanentExpiry marks a punishment with no expiry window.
const PermanentExpiry = float64(-1)

func (p Punishment) DocumentID() string { return p.ID }

func (Punishment) CollectionName() string { return "punishment" }

// NewPunishment issues a punishment against target lasting for the given
// duration; a non-positive duration makes it permanent.
func NewPunishment(target SimplePlayer, punisher *SimplePlayer, reason string, length time.Duration) *Punishment {
	now := time.Now()
	expiresAt := PermanentExpiry
	if length > 0 {
		expiresAt = TimeMillis(now.Add(length))
	}
	return &Punishment{
		ID:        uuid.NewString(),
		Reason:    reason,
		IssuedAt:  TimeMillis(now),
		ExpiresAt: expiresAt,
		Punisher:  punisher,
		Target:    target,
	}
}

// IsActive reports whether the punishment is in effect right now.
func (p *Punishment) IsActive() bool {
	return p.IsActiveAt(time.Now())
}

// IsActiveAt reports whether the punishment is in effect at the given time:
// not reversed, and at falls inside the issued/expiry window.
func (p *Punishment) IsActiveAt(at time.Time) bool {
	if p.Reversion != nil {
		return false
	}
	if p.ExpiresAt == PermanentExpiry {
		return true
	}
	millis := TimeMillis(at)
	return millis >= p.IssuedAt && millis < p.ExpiresAt
}

// PunishmentReversion records that a punishment was reversed by staff.
type PunishmentReversion struct {
	ReversedAt float64      `bson:"reversedAt" json:"reversedAt"`
	Reverter   SimplePlayer `bson:"reverter" json:"reverter"`
	Reason     string       `bson:"reason" json:"reason"`
}
