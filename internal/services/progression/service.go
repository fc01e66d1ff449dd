// Package progression awards experience, applies server-event multipliers,
// and keeps the xp leaderboard in step with the player document.
package progression

import (
	"context"
	"log/slog"
	"math"

	"github.com/warzonemc/mars/internal/model"
)

// ServerContext is the capability game servers supply with each call: the
// configured leveling formula and the active match/event multiplier, if any.
// Both are read fresh on every call, never cached on the player.
type ServerContext interface {
	UseExponentialXP() bool
	XPMultiplier() (float64, bool)
}

// Dispatcher is the sink progression events are pushed into.
type Dispatcher interface {
	Dispatch(ctx context.Context, event XPGainEvent)
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(ctx context.Context, event XPGainEvent)

func (f DispatcherFunc) Dispatch(ctx context.Context, event XPGainEvent) { f(ctx, event) }

// XPGainEvent is the progression event dispatched on every xp award. The
// multiplier is present whenever the multiplied term won the award, 1.0 when
// no multiplier is configured; its absence signals that the curve-adjusted
// gain won instead.
type XPGainEvent struct {
	PlayerID   string   `json:"playerId"`
	Gain       uint32   `json:"gain"`
	Reason     string   `json:"reason"`
	Notify     bool     `json:"notify"`
	Multiplier *float64 `json:"multiplier,omitempty"`
}

// Leaderboard is the external increment-based counter the engine feeds.
type Leaderboard interface {
	Increment(ctx context.Context, score model.ScoreType, member string, amount uint32)
}

// GainCurve adjusts a raw gain by the player's pre-gain level; it is policy
// owned by the caller, expected to be monotone and to taper gains at higher
// levels.
type GainCurve func(rawXP, level uint32) uint32

// IdentityCurve is the default gain curve: the raw gain unchanged.
func IdentityCurve(rawXP, _ uint32) uint32 { return rawXP }

// Service is the progression engine.
type Service struct {
	leaderboard Leaderboard
	dispatcher  Dispatcher
	curve       GainCurve
	logger      *slog.Logger
}

// New creates the engine. A nil curve falls back to IdentityCurve.
func New(leaderboard Leaderboard, dispatcher Dispatcher, curve GainCurve, logger *slog.Logger) *Service {
	if curve == nil {
		curve = IdentityCurve
	}
	return &Service{
		leaderboard: leaderboard,
		dispatcher:  dispatcher,
		curve:       curve,
		logger:      logger,
	}
}

// AddXP awards xp to the player and returns the awarded amount. The award
// is round(rawXP * multiplier) when rawOnly is set, otherwise the larger of
// that and the curve-adjusted gain at the player's pre-gain level. The
// player's xp counter only ever increases. A progression event is
// dispatched and the xp leaderboard entry incremented by the award, keyed
// by the player's id/name string.
func (s *Service) AddXP(
	ctx context.Context,
	server ServerContext,
	player *model.Player,
	rawXP uint32,
	reason string,
	notify bool,
	rawOnly bool,
) uint32 {
	level := Level(player.Stats.XP, server.UseExponentialXP())

	multiplier := 1.0
	if m, ok := server.XPMultiplier(); ok {
		multiplier = m
	}
	multiplied := applyMultiplier(rawXP, multiplier)

	gain := multiplied
	if !rawOnly {
		if adjusted := s.curve(rawXP, level); adjusted > gain {
			gain = adjusted
		}
	}

	player.Stats.XP += gain
	usedMultiplier := gain == multiplied

	event := XPGainEvent{
		PlayerID: player.ID,
		Gain:     gain,
		Reason:   reason,
		Notify:   notify,
	}
	if usedMultiplier {
		m := multiplier
		event.Multiplier = &m
	}
	s.dispatcher.Dispatch(ctx, event)

	s.leaderboard.Increment(ctx, model.ScoreXP, player.IDName(), gain)

	s.logger.Debug("awarded xp",
		slog.String("player", player.ID),
		slog.Uint64("gain", uint64(gain)),
		slog.String("reason", reason))

	return gain
}

// applyMultiplier rounds rawXP * multiplier to an unsigned integer, clamping
// back to rawXP when the product is NaN or out of range.
func applyMultiplier(rawXP uint32, multiplier float64) uint32 {
	product := math.Round(float64(rawXP) * multiplier)
	if math.IsNaN(product) || product < 0 || product > math.MaxUint32 {
		return rawXP
	}
	return uint32(product)
}
