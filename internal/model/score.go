package model

import (
	"math"
	"strconv"
)

// ScoreType selects which statistic a leaderboard or query is ranked by. The
// string values double as leaderboard key segments and API path parameters.
type ScoreType string

const (
	ScoreKills                    ScoreType = "kills"
	ScoreDeaths                   ScoreType = "deaths"
	ScoreFirstBloods              ScoreType = "firstBloods"
	ScoreWins                     ScoreType = "wins"
	ScoreLosses                   ScoreType = "losses"
	ScoreTies                     ScoreType = "ties"
	ScoreXP                       ScoreType = "xp"
	ScoreMessagesSent             ScoreType = "messagesSent"
	ScoreMatchesPlayed            ScoreType = "matchesPlayed"
	ScoreServerPlaytime           ScoreType = "serverPlaytime"
	ScoreGamePlaytime             ScoreType = "gamePlaytime"
	ScoreCoreLeaks                ScoreType = "coreLeaks"
	ScoreCoreBlockDestroys        ScoreType = "coreBlockDestroys"
	ScoreDestroyableDestroys      ScoreType = "destroyableDestroys"
	ScoreDestroyableBlockDestroys ScoreType = "destroyableBlockDestroys"
	ScoreFlagCaptures             ScoreType = "flagCaptures"
	ScoreFlagDrops                ScoreType = "flagDrops"
	ScoreFlagPickups              ScoreType = "flagPickups"
	ScoreFlagDefends              ScoreType = "flagDefends"
	ScoreFlagHoldTime             ScoreType = "flagHoldTime"
	ScoreWoolCaptures             ScoreType = "woolCaptures"
	ScoreWoolDrops                ScoreType = "woolDrops"
	ScoreWoolPickups              ScoreType = "woolPickups"
	ScoreWoolDefends              ScoreType = "woolDefends"
	ScoreControlPointCaptures     ScoreType = "controlPointCaptures"
	ScoreHighestKillstreak        ScoreType = "highestKillstreak"
)

// ScoreTypes lists every score type, in leaderboard seeding order.
var ScoreTypes = []ScoreType{
	ScoreKills, ScoreDeaths, ScoreFirstBloods, ScoreWins, ScoreLosses,
	ScoreTies, ScoreXP, ScoreMessagesSent, ScoreMatchesPlayed,
	ScoreServerPlaytime, ScoreGamePlaytime, ScoreCoreLeaks,
	ScoreCoreBlockDestroys, ScoreDestroyableDestroys,
	ScoreDestroyableBlockDestroys, ScoreFlagCaptures, ScoreFlagDrops,
	ScoreFlagPickups, ScoreFlagDefends, ScoreFlagHoldTime,
	ScoreWoolCaptures, ScoreWoolDrops, ScoreWoolPickups, ScoreWoolDefends,
	ScoreControlPointCaptures, ScoreHighestKillstreak,
}

// ParseScoreType resolves a score type from its string form.
func ParseScoreType(s string) (ScoreType, bool) {
	for _, t := range ScoreTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Score extracts the statistic selected by t. It is a pure function over the
// stats value; playtime fields are stored wider than 32 bits and saturate to
// MaxUint32 instead of wrapping.
func (s *PlayerStats) Score(t ScoreType) uint32 {
	switch t {
	case ScoreKills:
		return s.Kills
	case ScoreDeaths:
		return s.Deaths
	case ScoreFirstBloods:
		return s.FirstBloods
	case ScoreWins:
		return s.Wins
	case ScoreLosses:
		return s.Losses
	case ScoreTies:
		return s.Ties
	case ScoreXP:
		return s.XP
	case ScoreMessagesSent:
		return s.Messages.Total()
	case ScoreMatchesPlayed:
		return s.Matches
	case ScoreServerPlaytime:
		return satUint32FromInt64(s.ServerPlaytime)
	case ScoreGamePlaytime:
		return satUint32FromUint64(s.GamePlaytime)
	case ScoreCoreLeaks:
		return s.Objectives.CoreLeaks
	case ScoreCoreBlockDestroys:
		return s.Objectives.CoreBlockDestroys
	case ScoreDestroyableDestroys:
		return s.Objectives.DestroyableDestroys
	case ScoreDestroyableBlockDestroys:
		return s.Objectives.DestroyableBlockDestroys
	case ScoreFlagCaptures:
		return s.Objectives.FlagCaptures
	case ScoreFlagDrops:
		return s.Objectives.FlagDrops
	case ScoreFlagPickups:
		return s.Objectives.FlagPickups
	case ScoreFlagDefends:
		return s.Objectives.FlagDefends
	case ScoreFlagHoldTime:
		return satUint32FromUint64(s.Objectives.TotalFlagHoldTime)
	case ScoreWoolCaptures:
		return s.Objectives.WoolCaptures
	case ScoreWoolDrops:
		return s.Objectives.WoolDrops
	case ScoreWoolPickups:
		return s.Objectives.WoolPickups
	case ScoreWoolDefends:
		return s.Objectives.WoolDefends
	case ScoreControlPointCaptures:
		return s.Objectives.ControlPointCaptures
	case ScoreHighestKillstreak:
		return s.highestKillstreak()
	default:
		return 0
	}
}

// highestKillstreak resolves the best killstreak via the historical two-step
// lookup: the numerically largest map key (unparsable keys count as 0, an
// empty map yields key 100) is looked back up in its string form, with 0 for
// an absent entry. Leaderboard seeding depends on this exact shape.
func (s *PlayerStats) highestKillstreak() uint32 {
	key := uint32(100)
	if len(s.Killstreaks) > 0 {
		key = 0
		for raw := range s.Killstreaks {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				parsed = 0
			}
			if uint32(parsed) > key {
				key = uint32(parsed)
			}
		}
	}
	return s.Killstreaks[strconv.FormatUint(uint64(key), 10)]
}

func satUint32FromInt64(v int64) uint32 {
	if v < 0 || v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func satUint32FromUint64(v uint64) uint32 {
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
