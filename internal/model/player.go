package model

import (
	"fmt"
	"math/rand"
)

// Player is the primary persisted record for a network member. It embeds the
// player's aggregate statistics and a per-gamemode copy of the same shape.
// Players are never deleted except by explicit admin action.
type Player struct {
	ID                string                 `bson:"_id" json:"_id"`
	Name              string                 `bson:"name" json:"name"`
	NameLower         string                 `bson:"nameLower" json:"nameLower"`
	LastSessionID     *string                `bson:"lastSessionId" json:"lastSessionId"`
	FirstJoinedAt     float64                `bson:"firstJoinedAt" json:"firstJoinedAt"`
	LastJoinedAt      float64                `bson:"lastJoinedAt" json:"lastJoinedAt"`
	IPs               []string               `bson:"ips" json:"ips"`
	Notes             []StaffNote            `bson:"notes" json:"notes"`
	RankIDs           []string               `bson:"rankIds" json:"rankIds"`
	TagIDs            []string               `bson:"tagIds" json:"tagIds"`
	ActiveTagID       *string                `bson:"activeTagId" json:"activeTagId"`
	Stats             PlayerStats            `bson:"stats" json:"stats"`
	GamemodeStats     map[string]PlayerStats `bson:"gamemodeStats" json:"gamemodeStats"`
	ActiveJoinSoundID *string                `bson:"activeJoinSoundId" json:"activeJoinSoundId"`
}

func (p Player) DocumentID() string { return p.ID }

func (Player) CollectionName() string { return "player" }

func (p Player) NormalizedName() string { return p.NameLower }

// Simple returns the id+name projection embedded in other records.
func (p *Player) Simple() SimplePlayer {
	return SimplePlayer{ID: p.ID, Name: p.Name}
}

// IDName is the composite identity string used as a leaderboard member key.
func (p *Player) IDName() string {
	return fmt.Sprintf("%s/%s", p.ID, p.Name)
}

// Sanitized returns a copy safe to expose over the API: IP history, staff
// notes and the session reference are stripped.
func (p *Player) Sanitized() *Player {
	clone := *p
	clone.IPs = nil
	clone.Notes = nil
	clone.LastSessionID = nil
	return &clone
}

// ModifyGamemodeStats applies modify to the stats bucket of every gamemode
// the match's level is played under. Matches that do not track stats count
// toward the arcade bucket instead.
func (p *Player) ModifyGamemodeStats(m *Match, modify func(*PlayerStats)) {
	gamemodes := m.Level.Gamemodes
	if !m.IsTrackingStats() {
		gamemodes = []string{GamemodeArcade}
	}
	if p.GamemodeStats == nil {
		p.GamemodeStats = make(map[string]PlayerStats, len(gamemodes))
	}
	for _, gamemode := range gamemodes {
		stats := p.GamemodeStats[gamemode]
		modify(&stats)
		p.GamemodeStats[gamemode] = stats
	}
}

// SimplePlayer references a player by id and name without the full document.
type SimplePlayer struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// MiniIconURL returns the avatar URL shown next to the player in listings.
func (p SimplePlayer) MiniIconURL() string {
	return fmt.Sprintf("https://crafatar.com/avatars/%s?helm&size=50", p.ID)
}

// StaffNote is a moderation note attached to a player.
type StaffNote struct {
	ID        uint32       `bson:"id" json:"id"`
	Author    SimplePlayer `bson:"author" json:"author"`
	Content   string       `bson:"content" json:"content"`
	CreatedAt float64      `bson:"createdAt" json:"createdAt"`
}

// PlaceholderName generates the temporary name assigned to players displaced
// by a name-uniqueness sweep. Placeholder collisions are possible and get
// resolved on the displaced player's next login.
func PlaceholderName() string {
	return fmt.Sprintf(">WZPlayer%d", rand.Intn(1001))
}
