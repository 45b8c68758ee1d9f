// Package adapters はgoalsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wealth_backend/internal/feature/goals/domain/entity"
	"wealth_backend/internal/feature/goals/usecase"
)

// goalGorm はGoalRepositoryインターフェースのGORM実装です。
type goalGorm struct {
	db *gorm.DB
}

var _ usecase.GoalRepository = (*goalGorm)(nil)

// NewGoalGorm は指定されたgorm.DB接続でgoalGormの新しいインスタンスを生成します。
func NewGoalGorm(db *gorm.DB) *goalGorm {
	return &goalGorm{db: db}
}

// Create は目標を追加します。
func (r *goalGorm) Create(ctx context.Context, g *entity.Goal) error {
	if g == nil {
		return errors.New("nil goal")
	}
	return r.db.WithContext(ctx).Create(g).Error
}

// ListByUser は所有者の目標を新しい順に返します。
func (r *goalGorm) ListByUser(ctx context.Context, userID string, limit int) ([]entity.Goal, error) {
	var goals []entity.Goal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// Update は id と user_id の両方が一致する行だけを更新し、更新後の行を読み直します。
// 更新と再読込は同一トランザクションで行います。
func (r *goalGorm) Update(ctx context.Context, userID, goalID string, patch entity.GoalPatch) (*entity.Goal, error) {
	var out entity.Goal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Goal{}).
			Where("id = ? AND user_id = ?", goalID, userID).
			Updates(patch.Columns())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrGoalNotFound
		}
		return tx.Where("id = ? AND user_id = ?", goalID, userID).First(&out).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrGoalNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Delete は id と user_id の両方が一致する行を削除します。
func (r *goalGorm) Delete(ctx context.Context, userID, goalID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		Delete(&entity.Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrGoalNotFound
	}
	return nil
}
