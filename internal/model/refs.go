package model

// Rank is a permission/display group assignable to players.
type Rank struct {
	ID          string   `bson:"_id" json:"_id"`
	Name        string   `bson:"name" json:"name"`
	NameLower   string   `bson:"nameLower" json:"nameLower"`
	Priority    int32    `bson:"priority" json:"priority"`
	Prefix      *string  `bson:"prefix" json:"prefix"`
	Staff       bool     `bson:"staff" json:"staff"`
	ApplyOnJoin bool     `bson:"applyOnJoin" json:"applyOnJoin"`
	Permissions []string `bson:"permissions" json:"permissions"`
}

func (r Rank) DocumentID() string { return r.ID }

func (Rank) CollectionName() string { return "rank" }

func (r Rank) NormalizedName() string { return r.NameLower }

// Tag is a cosmetic chat tag.
type Tag struct {
	ID        string `bson:"_id" json:"_id"`
	Name      string `bson:"name" json:"name"`
	NameLower string `bson:"nameLower" json:"nameLower"`
	Display   string `bson:"display" json:"display"`
}

func (t Tag) DocumentID() string { return t.ID }

func (Tag) CollectionName() string { return "tag" }

func (t Tag) NormalizedName() string { return t.NameLower }

// Achievement is the definition of an unlockable achievement. Completion is
// recorded per player in PlayerStats.Achievements.
type Achievement struct {
	ID          string `bson:"_id" json:"_id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Category    string `bson:"category" json:"category"`
}

func (a Achievement) DocumentID() string { return a.ID }

func (Achievement) CollectionName() string { return "achievement" }

// IPIdentity is the derived join table from an IP address to every player id
// observed joining from it. It is extended on each login and is never the
// source of truth for player identity.
type IPIdentity struct {
	IP        string   `bson:"_id" json:"_id"`
	PlayerIDs []string `bson:"players" json:"players"`
}

func (i IPIdentity) DocumentID() string { return i.IP }

func (IPIdentity) CollectionName() string { return "ipidentity" }
