// Package entity defines the domain types of the investment projection feature.
package entity

// Risk profiles and their nominal annual returns.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"

	// RetirementAge bounds the projection horizon.
	RetirementAge = 65
)

// Input is a single projection request.
type Input struct {
	Age               int
	MonthlyInvestment float64
	GoalAmount        float64
	// RiskProfile is matched case-insensitively; unknown values fall back to moderate.
	RiskProfile string
}

// YearSnapshot is the state of the portfolio at the end of a simulated year.
type YearSnapshot struct {
	Year     int
	Age      int
	Value    float64
	Invested float64
}

// Projection is the outcome of a simulation. Money values are rounded to 2 decimals.
type Projection struct {
	Snapshots      []YearSnapshot
	TotalInvested  float64
	ProjectedValue float64
	YearsToGoal    int
}
