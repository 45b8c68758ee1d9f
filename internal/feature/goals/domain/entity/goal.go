// Package entity defines the domain entities for the goals feature.
package entity

import "time"

// MaxListSize caps how many goals a single list returns.
const MaxListSize = 1000

// Goal is a savings goal owned by exactly one user.
type Goal struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	UserID            string    `gorm:"index;not null;size:36" json:"user_id"`
	GoalType          string    `gorm:"not null" json:"goal_type"`
	TargetAmount      float64   `gorm:"not null" json:"target_amount"`
	CurrentAmount     float64   `gorm:"not null" json:"current_amount"`
	MonthlyInvestment float64   `gorm:"not null" json:"monthly_investment"`
	RiskProfile       string    `gorm:"not null" json:"risk_profile"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
}

// TableName returns the table name for GORM.
func (Goal) TableName() string {
	return "goals"
}

// GoalPatch is a partial update. nil fields are left untouched.
type GoalPatch struct {
	GoalType          *string
	TargetAmount      *float64
	CurrentAmount     *float64
	MonthlyInvestment *float64
	RiskProfile       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p GoalPatch) IsEmpty() bool {
	return p.GoalType == nil &&
		p.TargetAmount == nil &&
		p.CurrentAmount == nil &&
		p.MonthlyInvestment == nil &&
		p.RiskProfile == nil
}

// Columns returns the column/value pairs to write. Only mutable columns can appear.
func (p GoalPatch) Columns() map[string]any {
	cols := make(map[string]any, 5)
	if p.GoalType != nil {
		cols["goal_type"] = *p.GoalType
	}
	if p.TargetAmount != nil {
		cols["target_amount"] = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		cols["current_amount"] = *p.CurrentAmount
	}
	if p.MonthlyInvestment != nil {
		cols["monthly_investment"] = *p.MonthlyInvestment
	}
	if p.RiskProfile != nil {
		cols["risk_profile"] = *p.RiskProfile
	}
	return cols
}

// Apply copies the patched fields onto g.
func (p GoalPatch) Apply(g *Goal) {
	if p.GoalType != nil {
		g.GoalType = *p.GoalType
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.MonthlyInvestment != nil {
		g.MonthlyInvestment = *p.MonthlyInvestment
	}
	if p.RiskProfile != nil {
		g.RiskProfile = *p.RiskProfile
	}
}
