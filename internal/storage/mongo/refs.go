package mongo

import (
	"context"

	"github.com/warzonemc/mars/internal/model"
)

// Players returns every player document. Spine of the leaderboard seeding
// pass; on a large network prefer the targeted lookups.
func (d *Database) Players(ctx context.Context) []model.Player {
	return GetAll[model.Player](ctx, d)
}

// FindRank resolves a rank by id or name.
func (d *Database) FindRank(ctx context.Context, target string) *model.Rank {
	return FindByIDOrName[model.Rank](ctx, d, target)
}

// FindTag resolves a tag by name.
func (d *Database) FindTag(ctx context.Context, name string) *model.Tag {
	return FindByName[model.Tag](ctx, d, name)
}

// FindLevel resolves a level by id or name.
func (d *Database) FindLevel(ctx context.Context, target string) *model.Level {
	return FindByIDOrName[model.Level](ctx, d, target)
}

// FindMatch resolves a match by id.
func (d *Database) FindMatch(ctx context.Context, id string) *model.Match {
	return FindByID[model.Match](ctx, d, d.Matches, id)
}

// FindAchievement resolves an achievement definition by id.
func (d *Database) FindAchievement(ctx context.Context, id string) *model.Achievement {
	return FindByID[model.Achievement](ctx, d, d.Achievements, id)
}
