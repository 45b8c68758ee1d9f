// Package dto defines request and response bodies for the goals endpoints.
package dto

import (
	"time"

	"wealth_backend/internal/feature/goals/domain/entity"
)

// CreateGoalReq is the body of POST /goals. Amounts are pointers so that 0 passes "required".
type CreateGoalReq struct {
	GoalType          string   `json:"goal_type" binding:"required,max=100"`
	TargetAmount      *float64 `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount     *float64 `json:"current_amount" binding:"required,gte=0"`
	MonthlyInvestment *float64 `json:"monthly_investment" binding:"required,gte=0"`
	RiskProfile       string   `json:"risk_profile" binding:"required,riskprofile"`
}

// ToEntity converts the request to a goal draft.
func (r CreateGoalReq) ToEntity() entity.Goal {
	return entity.Goal{
		GoalType:          r.GoalType,
		TargetAmount:      *r.TargetAmount,
		CurrentAmount:     *r.CurrentAmount,
		MonthlyInvestment: *r.MonthlyInvestment,
		RiskProfile:       r.RiskProfile,
	}
}

// UpdateGoalReq is the body of PUT /goals/{id}. Absent fields are not changed;
// unknown fields are ignored and never reach the database.
type UpdateGoalReq struct {
	GoalType          *string  `json:"goal_type" binding:"omitempty,max=100"`
	TargetAmount      *float64 `json:"target_amount" binding:"omitempty,gt=0"`
	CurrentAmount     *float64 `json:"current_amount" binding:"omitempty,gte=0"`
	MonthlyInvestment *float64 `json:"monthly_investment" binding:"omitempty,gte=0"`
	RiskProfile       *string  `json:"risk_profile" binding:"omitempty,riskprofile"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateGoalReq) ToPatch() entity.GoalPatch {
	return entity.GoalPatch{
		GoalType:          r.GoalType,
		TargetAmount:      r.TargetAmount,
		CurrentAmount:     r.CurrentAmount,
		MonthlyInvestment: r.MonthlyInvestment,
		RiskProfile:       r.RiskProfile,
	}
}

// GoalResp is the public representation of a goal.
type GoalResp struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	GoalType          string    `json:"goal_type"`
	TargetAmount      float64   `json:"target_amount"`
	CurrentAmount     float64   `json:"current_amount"`
	MonthlyInvestment float64   `json:"monthly_investment"`
	RiskProfile       string    `json:"risk_profile"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToGoalResp converts an entity to its response form.
func ToGoalResp(g entity.Goal) GoalResp {
	return GoalResp(g)
}

// ToGoalResps converts a list, returning an empty (non-nil) slice for no goals.
func ToGoalResps(goals []entity.Goal) []GoalResp {
	out := make([]GoalResp, 0, len(goals))
	for _, g := range goals {
		out = append(out, ToGoalResp(g))
	}
	return out
}
