// Package dto はprojectionフィーチャーのリクエスト/レスポンス形式を定義します。
package dto

import "wealth_backend/internal/feature/projection/domain/entity"

// CalculateReq は/calculateのリクエストボディです。
// 数値はゼロも有効な値のためポインタで必須チェックを行います。
type CalculateReq struct {
	Age               *int     `json:"age" binding:"required,min=0,max=130"`
	MonthlyInvestment *float64 `json:"monthly_investment" binding:"required,gte=0,lte=1000000000"`
	GoalAmount        *float64 `json:"goal_amount" binding:"required"`
	RiskProfile       string   `json:"risk_profile" binding:"max=32"`
}

// ToInput はリクエストをドメイン入力に変換します。
func (r CalculateReq) ToInput() entity.Input {
	return entity.Input{
		Age:               *r.Age,
		MonthlyInvestment: *r.MonthlyInvestment,
		GoalAmount:        *r.GoalAmount,
		RiskProfile:       r.RiskProfile,
	}
}

// SnapshotResp is one year-end row of the projection.
type SnapshotResp struct {
	Year     int     `json:"year"`
	Age      int     `json:"age"`
	Value    float64 `json:"value"`
	Invested float64 `json:"invested"`
}

// CalculateResp は/calculateのレスポンスです。projectionは空でも配列として返します。
type CalculateResp struct {
	Projection     []SnapshotResp `json:"projection"`
	TotalInvested  float64        `json:"total_invested"`
	ProjectedValue float64        `json:"projected_value"`
	YearsToGoal    int            `json:"years_to_goal"`
}

// ToCalculateResp converts a domain projection to its JSON shape.
func ToCalculateResp(p entity.Projection) CalculateResp {
	rows := make([]SnapshotResp, 0, len(p.Snapshots))
	for _, s := range p.Snapshots {
		rows = append(rows, SnapshotResp{Year: s.Year, Age: s.Age, Value: s.Value, Invested: s.Invested})
	}
	return CalculateResp{
		Projection:     rows,
		TotalInvested:  p.TotalInvested,
		ProjectedValue: p.ProjectedValue,
		YearsToGoal:    p.YearsToGoal,
	}
}
