package calculator

import (
	"math"

	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

type RetirementInput struct {
	CurrentAge          int     `json:"currentAge"`
	RetirementAge       int     `json:"retirementAge"`
	CurrentSavings      float64 `json:"currentSavings"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	ExpectedReturn      float64 `json:"expectedReturn"`
	InflationRate       float64 `json:"inflationRate"`
}

type RetirementYearPoint struct {
	Age     int     `json:"age"`
	Savings float64 `json:"savings"`
}

type RetirementResult struct {
	Inputs RetirementInput `json:"inputs"`

	TotalSavings         float64               `json:"totalSavings"`
	AdjustedForInflation float64               `json:"adjustedForInflation"`
	// MonthlyIncome follows the 4% withdrawal rule.
	MonthlyIncome float64               `json:"monthlyIncome"`
	YearlyData    []RetirementYearPoint `json:"yearlyData"`
}

// CalculateRetirement projects savings to retirement age: each month the
// balance grows by the monthly return, then the contribution lands.
func CalculateRetirement(input RetirementInput) (*RetirementResult, error) {
	if input.CurrentAge <= 0 {
		return nil, appErrors.NewValidationError("currentAge", "must be greater than zero")
	}
	if input.RetirementAge <= input.CurrentAge {
		return nil, appErrors.NewValidationError("retirementAge", "must be greater than current age")
	}
	if input.CurrentSavings < 0 {
		return nil, appErrors.NewValidationError("currentSavings", "must not be negative")
	}
	if input.MonthlyContribution < 0 {
		return nil, appErrors.NewValidationError("monthlyContribution", "must not be negative")
	}
	if input.ExpectedReturn < 0 {
		return nil, appErrors.NewValidationError("expectedReturn", "must not be negative")
	}

	yearsToRetirement := input.RetirementAge - input.CurrentAge
	monthlyReturn := input.ExpectedReturn / 100 / 12
	inflationFactor := math.Pow(1+input.InflationRate/100, float64(yearsToRetirement))

	totalSavings := input.CurrentSavings
	yearlyData := make([]RetirementYearPoint, 0, yearsToRetirement)

	for month := 1; month <= yearsToRetirement*12; month++ {
		totalSavings = totalSavings*(1+monthlyReturn) + input.MonthlyContribution

		if month%12 == 0 {
			yearlyData = append(yearlyData, RetirementYearPoint{
				Age:     input.CurrentAge + month/12,
				Savings: totalSavings,
			})
		}
	}

	return &RetirementResult{
		Inputs:               input,
		TotalSavings:         totalSavings,
		AdjustedForInflation: totalSavings / inflationFactor,
		MonthlyIncome:        totalSavings * 0.04 / 12,
		YearlyData:           yearlyData,
	}, nil
}
