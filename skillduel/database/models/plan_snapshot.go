package models

import (
	"time"

	"github.com/skillduel/skillduel/skillduel/planstore"
	"github.com/uptrace/bun"
)

// PlanSnapshot is the durable copy of one skill's plan, so local-only
// progress survives a restart. One row per (user, skill).
type PlanSnapshot struct {
	bun.BaseModel `bun:"table:plan_snapshots"`

	ID        int64           `bun:"id,pk,autoincrement"`
	UserID    string          `bun:"user_id,notnull"`
	SkillName string          `bun:"skill_name,notnull"`
	Plan      *planstore.Plan `bun:"plan,type:jsonb,notnull"`
	UpdatedAt time.Time       `bun:"updated_at,notnull,default:current_timestamp"`
}
