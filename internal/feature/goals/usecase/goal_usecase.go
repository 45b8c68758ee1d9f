package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wealth_backend/internal/feature/goals/domain/entity"
	"wealth_backend/internal/platform/validation"
)

const maxGoalTypeLength = 100

// GoalRepository は目標の永続化層を抽象化します。
// すべての操作は所有者IDで絞り込まれ、他ユーザーの目標は存在しないものとして扱われます。
type GoalRepository interface {
	// Create は新しい目標を保存します。
	Create(ctx context.Context, goal *entity.Goal) error

	// ListByUser は所有者の目標を作成日時の降順で最大limit件返します。
	ListByUser(ctx context.Context, userID string, limit int) ([]entity.Goal, error)

	// Update は id と user_id が一致する行にだけ patch を適用し、更新後の行を返します。
	// 一致する行がない場合は ErrGoalNotFound を返します。
	Update(ctx context.Context, userID, goalID string, patch entity.GoalPatch) (*entity.Goal, error)

	// Delete は id と user_id が一致する行を削除します。一致しない場合は ErrGoalNotFound を返します。
	Delete(ctx context.Context, userID, goalID string) error
}

// goalUsecase は目標管理のビジネスロジックを実装します。
type goalUsecase struct {
	repo  GoalRepository
	now   func() time.Time
	newID func() string
}

// NewGoalUsecase はgoalUsecaseの新しいインスタンスを生成します。
func NewGoalUsecase(repo GoalRepository) *goalUsecase {
	return &goalUsecase{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Create validates draft, assigns its identity and stores it for ownerID.
// Any ID, UserID or CreatedAt present on draft is ignored.
func (u *goalUsecase) Create(ctx context.Context, ownerID string, draft entity.Goal) (*entity.Goal, error) {
	goal := entity.Goal{
		ID:                u.newID(),
		UserID:            ownerID,
		GoalType:          strings.TrimSpace(draft.GoalType),
		TargetAmount:      draft.TargetAmount,
		CurrentAmount:     draft.CurrentAmount,
		MonthlyInvestment: draft.MonthlyInvestment,
		RiskProfile:       normalizeRiskProfile(draft.RiskProfile),
		CreatedAt:         u.now(),
	}
	if err := validateGoal(goal); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, &goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return &goal, nil
}

// List returns the owner's goals, newest first.
func (u *goalUsecase) List(ctx context.Context, ownerID string) ([]entity.Goal, error) {
	goals, err := u.repo.ListByUser(ctx, ownerID, entity.MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		goals = []entity.Goal{}
	}
	return goals, nil
}

// Update applies patch to the owner's goal and returns the stored record.
func (u *goalUsecase) Update(ctx context.Context, ownerID, goalID string, patch entity.GoalPatch) (*entity.Goal, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}
	patch = normalizePatch(patch)
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	goal, err := u.repo.Update(ctx, ownerID, goalID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

// Delete removes the owner's goal. Deleting an already deleted goal reports ErrGoalNotFound.
func (u *goalUsecase) Delete(ctx context.Context, ownerID, goalID string) error {
	if err := u.repo.Delete(ctx, ownerID, goalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

func normalizeRiskProfile(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizePatch(p entity.GoalPatch) entity.GoalPatch {
	if p.GoalType != nil {
		v := strings.TrimSpace(*p.GoalType)
		p.GoalType = &v
	}
	if p.RiskProfile != nil {
		v := normalizeRiskProfile(*p.RiskProfile)
		p.RiskProfile = &v
	}
	return p
}

func validateGoal(g entity.Goal) error {
	return validatePatch(entity.GoalPatch{
		GoalType:          &g.GoalType,
		TargetAmount:      &g.TargetAmount,
		CurrentAmount:     &g.CurrentAmount,
		MonthlyInvestment: &g.MonthlyInvestment,
		RiskProfile:       &g.RiskProfile,
	})
}

// validatePatch checks only the fields present in p.
func validatePatch(p entity.GoalPatch) error {
	if p.GoalType != nil {
		switch {
		case *p.GoalType == "":
			return invalidGoal("goal_type is required")
		case len(*p.GoalType) > maxGoalTypeLength:
			return invalidGoal(fmt.Sprintf("goal_type must be at most %d characters long", maxGoalTypeLength))
		}
	}
	if p.TargetAmount != nil && *p.TargetAmount <= 0 {
		return invalidGoal("target_amount must be greater than 0")
	}
	if p.CurrentAmount != nil && *p.CurrentAmount < 0 {
		return invalidGoal("current_amount must be greater than or equal to 0")
	}
	if p.MonthlyInvestment != nil && *p.MonthlyInvestment < 0 {
		return invalidGoal("monthly_investment must be greater than or equal to 0")
	}
	if p.RiskProfile != nil && !validation.IsRiskProfile(*p.RiskProfile) {
		return invalidGoal("risk_profile must be one of " + strings.Join(validation.RiskProfiles, ", "))
	}
	return nil
}
