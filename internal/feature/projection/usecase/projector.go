// Package usecase implements the monthly compounding simulation behind /calculate.
package usecase

import (
	"math"
	"strings"

	"wealth_backend/internal/feature/projection/domain/entity"
)

const monthsPerYear = 12

var annualRates = map[string]float64{
	entity.RiskConservative: 0.07,
	entity.RiskModerate:     0.10,
	entity.RiskAggressive:   0.13,
}

// AnnualRate returns the nominal annual return for a risk profile.
// Unknown profiles use the moderate rate.
func AnnualRate(profile string) float64 {
	if r, ok := annualRates[strings.ToLower(strings.TrimSpace(profile))]; ok {
		return r
	}
	return annualRates[entity.RiskModerate]
}

// Horizon returns the number of simulated years for the given age, never negative.
func Horizon(age int) int {
	return max(0, entity.RetirementAge-age)
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Project runs the simulation. Contributions are added at the start of each month and the
// balance then grows by annual/12. It stops at the first month the balance reaches the goal.
func Project(in entity.Input) entity.Projection {
	monthlyRate := AnnualRate(in.RiskProfile) / monthsPerYear
	horizon := Horizon(in.Age)

	var (
		balance float64
		months  int
	)
	snapshots := make([]entity.YearSnapshot, 0, horizon)

	result := func(yearsToGoal int) entity.Projection {
		return entity.Projection{
			Snapshots:      snapshots,
			TotalInvested:  round2(float64(months) * in.MonthlyInvestment),
			ProjectedValue: round2(balance),
			YearsToGoal:    yearsToGoal,
		}
	}

	for year := 1; year <= horizon; year++ {
		for month := 1; month <= monthsPerYear; month++ {
			balance = (balance + in.MonthlyInvestment) * (1 + monthlyRate)
			months++

			if month == monthsPerYear {
				snapshots = append(snapshots, entity.YearSnapshot{
					Year:     year,
					Age:      in.Age + year,
					Value:    round2(balance),
					Invested: round2(float64(months) * in.MonthlyInvestment),
				})
			}

			if balance >= in.GoalAmount {
				return result(year)
			}
		}
	}
	return result(horizon)
}

// projectionUsecase exposes Project to the transport layer.
type projectionUsecase struct{}

// NewProjectionUsecase creates a new projectionUsecase.
func NewProjectionUsecase() *projectionUsecase {
	return &projectionUsecase{}
}

// Calculate implements handler.ProjectionUsecase.
func (projectionUsecase) Calculate(in entity.Input) entity.Projection {
	return Project(in)
}
