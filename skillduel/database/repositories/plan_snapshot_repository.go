package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/skillduel/skillduel/skillduel/database/models"
	"github.com/uptrace/bun"
)

type PlanSnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *models.PlanSnapshot) error
	GetAllByUserID(ctx context.Context, userID string) ([]*models.PlanSnapshot, error)
	Delete(ctx context.Context, userID, skillName string) error
	DeleteAllByUserID(ctx context.Context, userID string) error
}

type planSnapshotRepository struct {
	db *bun.DB
}

func NewPlanSnapshotRepository(db *bun.DB) PlanSnapshotRepository {
	return &planSnapshotRepository{db: db}
}

func (r *planSnapshotRepository) Upsert(ctx context.Context, snapshot *models.PlanSnapshot) error {
	snapshot.UpdatedAt = time.Now().UTC()
	_, err := r.db.NewInsert().
		Model(snapshot).
		On("CONFLICT (user_id, skill_name) DO UPDATE").
		Set("plan = EXCLUDED.plan").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert plan snapshot: %w", err)
	}
	return nil
}

func (r *planSnapshotRepository) GetAllByUserID(ctx context.Context, userID string) ([]*models.PlanSnapshot, error) {
	var snapshots []*models.PlanSnapshot
	err := r.db.NewSelect().
		Model(&snapshots).
		Where("user_id = ?", userID).
		Order("skill_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan snapshots: %w", err)
	}
	return snapshots, nil
}

func (r *planSnapshotRepository) Delete(ctx context.Context, userID, skillName string) error {
	_, err := r.db.NewDelete().
		Model((*models.PlanSnapshot)(nil)).
		Where("user_id = ?", userID).
		Where("skill_name = ?", skillName).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete plan snapshot: %w", err)
	}
	return nil
}

func (r *planSnapshotRepository) DeleteAllByUserID(ctx context.Context, userID string) error {
	_, err := r.db.NewDelete().
		Model((*models.PlanSnapshot)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete plan snapshots: %w", err)
	}
	return nil
}
