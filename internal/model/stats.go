package model

// PlayerStats holds the aggregate counters tracked for a player. The same
// shape is reused for the per-gamemode buckets on Player. Every counter is
// monotonically non-decreasing outside of explicit administrative resets,
// and xp is never negative.
type PlayerStats struct {
	XP                  uint32                     `bson:"xp" json:"xp"`
	ServerPlaytime      int64                      `bson:"serverPlaytime" json:"serverPlaytime"`
	GamePlaytime        uint64                     `bson:"gamePlaytime" json:"gamePlaytime"`
	Kills               uint32                     `bson:"kills" json:"kills"`
	Deaths              uint32                     `bson:"deaths" json:"deaths"`
	VoidKills           uint32                     `bson:"voidKills" json:"voidKills"`
	VoidDeaths          uint32                     `bson:"voidDeaths" json:"voidDeaths"`
	FirstBloods         uint32                     `bson:"firstBloods" json:"firstBloods"`
	FirstBloodsSuffered uint32                     `bson:"firstBloodsSuffered" json:"firstBloodsSuffered"`
	Objectives          PlayerObjectiveStats       `bson:"objectives" json:"objectives"`
	BowShotsTaken       uint32                     `bson:"bowShotsTaken" json:"bowShotsTaken"`
	BowShotsHit         uint32                     `bson:"bowShotsHit" json:"bowShotsHit"`
	BlocksPlaced        map[string]uint32          `bson:"blocksPlaced" json:"blocksPlaced"`
	BlocksBroken        map[string]uint32          `bson:"blocksBroken" json:"blocksBroken"`
	DamageTaken         float64                    `bson:"damageTaken" json:"damageTaken"`
	DamageGiven         float64                    `bson:"damageGiven" json:"damageGiven"`
	DamageGivenBow      float64                    `bson:"damageGivenBow" json:"damageGivenBow"`
	Messages            PlayerMessages             `bson:"messages" json:"messages"`
	Wins                uint32                     `bson:"wins" json:"wins"`
	Losses              uint32                     `bson:"losses" json:"losses"`
	Ties                uint32                     `bson:"ties" json:"ties"`
	Matches             uint32                     `bson:"matches" json:"matches"`
	MatchesPresentStart uint32                     `bson:"matchesPresentStart" json:"matchesPresentStart"`
	MatchesPresentFull  uint32                     `bson:"matchesPresentFull" json:"matchesPresentFull"`
	MatchesPresentEnd   uint32                     `bson:"matchesPresentEnd" json:"matchesPresentEnd"`
	Records             PlayerRecords              `bson:"records" json:"records"`
	WeaponKills         map[string]uint32          `bson:"weaponKills" json:"weaponKills"`
	WeaponDeaths        map[string]uint32          `bson:"weaponDeaths" json:"weaponDeaths"`
	Killstreaks         map[string]uint32          `bson:"killstreaks" json:"killstreaks"`
	KillstreaksEnded    map[string]uint32          `bson:"killstreaksEnded" json:"killstreaksEnded"`
	Achievements        map[string]AchievementData `bson:"achievements" json:"achievements"`
}

// PlayerObjectiveStats counts objective-related actions across gamemodes.
type PlayerObjectiveStats struct {
	CoreLeaks                uint32 `bson:"coreLeaks" json:"coreLeaks"`
	CoreBlockDestroys        uint32 `bson:"coreBlockDestroys" json:"coreBlockDestroys"`
	DestroyableDestroys      uint32 `bson:"destroyableDestroys" json:"destroyableDestroys"`
	DestroyableBlockDestroys uint32 `bson:"destroyableBlockDestroys" json:"destroyableBlockDestroys"`
	FlagCaptures             uint32 `bson:"flagCaptures" json:"flagCaptures"`
	FlagPickups              uint32 `bson:"flagPickups" json:"flagPickups"`
	FlagDrops                uint32 `bson:"flagDrops" json:"flagDrops"`
	FlagDefends              uint32 `bson:"flagDefends" json:"flagDefends"`
	TotalFlagHoldTime        uint64 `bson:"totalFlagHoldTime" json:"totalFlagHoldTime"`
	WoolCaptures             uint32 `bson:"woolCaptures" json:"woolCaptures"`
	WoolDrops                uint32 `bson:"woolDrops" json:"woolDrops"`
	WoolDefends              uint32 `bson:"woolDefends" json:"woolDefends"`
	WoolPickups              uint32 `bson:"woolPickups" json:"woolPickups"`
	ControlPointCaptures     uint32 `bson:"controlPointCaptures" json:"controlPointCaptures"`
}

// PlayerMessages counts chat messages by channel.
type PlayerMessages struct {
	Staff  uint32 `bson:"staff" json:"staff"`
	Global uint32 `bson:"global" json:"global"`
	Team   uint32 `bson:"team" json:"team"`
}

// Total is the message count across all channels.
func (m PlayerMessages) Total() uint32 {
	return m.Staff + m.Global + m.Team
}

// PlayerRecords holds the player's personal bests.
type PlayerRecords struct {
	LongestSession        *SessionRecord         `bson:"longestSession" json:"longestSession"`
	LongestProjectileKill *ProjectileRecord      `bson:"longestProjectileKill" json:"longestProjectileKill"`
	FastestWoolCapture    *PlayerRecord[uint64]  `bson:"fastestWoolCapture" json:"fastestWoolCapture"`
	FastestFlagCapture    *PlayerRecord[uint64]  `bson:"fastestFlagCapture" json:"fastestFlagCapture"`
	FastestFirstBlood     *FirstBloodRecord      `bson:"fastestFirstBlood" json:"fastestFirstBlood"`
	KillsInMatch          *PlayerRecord[uint32]  `bson:"killsInMatch" json:"killsInMatch"`
	DeathsInMatch         *PlayerRecord[uint32]  `bson:"deathsInMatch" json:"deathsInMatch"`
}

// PlayerRecord is a personal best of value V set in a particular match.
type PlayerRecord[V uint32 | uint64] struct {
	MatchID string       `bson:"matchId" json:"matchId"`
	Player  SimplePlayer `bson:"player" json:"player"`
	Value   V            `bson:"value" json:"value"`
}

// SessionRecord is the longest session a player has held.
type SessionRecord struct {
	SessionID string `bson:"sessionId" json:"sessionId"`
	Length    uint64 `bson:"length" json:"length"`
}

// ProjectileRecord is the longest projectile kill a player has landed.
type ProjectileRecord struct {
	MatchID  string       `bson:"matchId" json:"matchId"`
	Player   SimplePlayer `bson:"player" json:"player"`
	Distance uint32       `bson:"distance" json:"distance"`
}

// FirstBloodRecord is the fastest first blood a player has drawn.
type FirstBloodRecord struct {
	MatchID  string       `bson:"matchId" json:"matchId"`
	Attacker SimplePlayer `bson:"attacker" json:"attacker"`
	Victim   SimplePlayer `bson:"victim" json:"victim"`
	Time     uint64       `bson:"time" json:"time"`
}

// AchievementData marks an achievement as completed at a point in time.
type AchievementData struct {
	CompletionTime uint64 `bson:"completionTime" json:"completionTime"`
}
