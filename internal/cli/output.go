package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AltsResult:
		o.printAlts(v)
	case PunishmentsResult:
		o.printPunishments(v)
	case LeaderboardResult:
		o.printLeaderboard(v)
	case DeleteResult:
		fmt.Printf("Deleted: %d\n", v.Deleted)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID            string      `json:"_id"`
	Name          string      `json:"name"`
	FirstJoinedAt float64     `json:"firstJoinedAt"`
	LastJoinedAt  float64     `json:"lastJoinedAt"`
	RankIDs       []string    `json:"rankIds"`
	Stats         PlayerStats `json:"stats"`
}

// PlayerStats holds the subset of stats the CLI renders
type PlayerStats struct {
	XP             uint32 `json:"xp"`
	Kills          uint32 `json:"kills"`
	Deaths         uint32 `json:"deaths"`
	Wins           uint32 `json:"wins"`
	Losses         uint32 `json:"losses"`
	ServerPlaytime int64  `json:"serverPlaytime"`
}

// AltsResult response type
type AltsResult struct {
	Alts []Player `json:"alts"`
}

// Punishment response type
type Punishment struct {
	ID        string  `json:"_id"`
	Reason    string  `json:"reason"`
	IssuedAt  float64 `json:"issuedAt"`
	ExpiresAt float64 `json:"expiresAt"`
	Silent    bool    `json:"silent"`
}

// PunishmentsResult response type
type PunishmentsResult struct {
	Punishments []Punishment `json:"punishments"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score uint64 `json:"score"`
}

// LeaderboardResult response type
type LeaderboardResult struct {
	Score   string             `json:"score"`
	Entries []LeaderboardEntry `json:"entries"`
}

// DeleteResult response type
type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("XP: %d\n", p.Stats.XP)
	fmt.Printf("Kills: %d  Deaths: %d\n", p.Stats.Kills, p.Stats.Deaths)
	fmt.Printf("Wins: %d  Losses: %d\n", p.Stats.Wins, p.Stats.Losses)
	if len(p.RankIDs) > 0 {
		fmt.Printf("Ranks: %d\n", len(p.RankIDs))
	}
}

func (o *Output) printAlts(a AltsResult) {
	fmt.Printf("Alts (%d):\n", len(a.Alts))
	for _, p := range a.Alts {
		fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
	}
}

func (o *Output) printPunishments(p PunishmentsResult) {
	fmt.Printf("Punishments (%d):\n", len(p.Punishments))
	for _, pun := range p.Punishments {
		fmt.Printf("  - %s: %s\n", pun.ID, pun.Reason)
	}
}

func (o *Output) printLeaderboard(l LeaderboardResult) {
	fmt.Printf("Leaderboard: %s\n", l.Score)
	for i, e := range l.Entries {
		fmt.Printf("  %d. %s - %d\n", i+1, e.Name, e.Score)
	}
}
