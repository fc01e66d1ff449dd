package model

// GamemodeArcade is the stats bucket used by matches that do not track
// gamemode stats.
const GamemodeArcade = "arcade"

// Match is a reference record for a single played match.
type Match struct {
	ID        string   `bson:"_id" json:"_id"`
	LoadedAt  float64  `bson:"loadedAt" json:"loadedAt"`
	StartedAt *float64 `bson:"startedAt" json:"startedAt"`
	EndedAt   *float64 `bson:"endedAt" json:"endedAt"`
	Level     Level    `bson:"level" json:"level"`
}

func (m Match) DocumentID() string { return m.ID }

func (Match) CollectionName() string { return "match" }

// IsTrackingStats reports whether stat gains in this match count toward the
// level's gamemode buckets rather than the arcade bucket.
func (m *Match) IsTrackingStats() bool {
	return len(m.Level.Gamemodes) > 0
}

// Level is the map/level a match is played on.
type Level struct {
	ID        string   `bson:"_id" json:"_id"`
	Name      string   `bson:"name" json:"name"`
	NameLower string   `bson:"nameLower" json:"nameLower"`
	Gamemodes []string `bson:"gamemodes" json:"gamemodes"`
}

func (l Level) DocumentID() string { return l.ID }

func (Level) CollectionName() string { return "level" }

func (l Level) NormalizedName() string { return l.NameLower }
