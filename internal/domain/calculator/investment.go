package calculator

import (
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

type CompoundingFrequency string

const (
	CompoundMonthly      CompoundingFrequency = "monthly"
	CompoundQuarterly    CompoundingFrequency = "quarterly"
	CompoundSemiannually CompoundingFrequency = "semiannually"
	CompoundAnnually     CompoundingFrequency = "annually"
)

func (f CompoundingFrequency) PeriodsPerYear() (int, bool) {
	switch f {
	case CompoundMonthly:
		return 12, true
	case CompoundQuarterly:
		return 4, true
	case CompoundSemiannually:
		return 2, true
	case CompoundAnnually:
		return 1, true
	}
	return 0, false
}

type InvestmentInput struct {
	InitialInvestment    float64              `json:"initialInvestment"`
	MonthlyContribution  float64              `json:"monthlyContribution"`
	InvestmentPeriod     int                  `json:"investmentPeriod"`
	ExpectedReturn       float64              `json:"expectedReturn"`
	CompoundingFrequency CompoundingFrequency `json:"compoundingFrequency"`
}

type InvestmentYearPoint struct {
	Year          int     `json:"year"`
	Balance       float64 `json:"balance"`
	Contributions float64 `json:"contributions"`
	Interest      float64 `json:"interest"`
}

type InvestmentResult struct {
	Inputs InvestmentInput `json:"inputs"`

	FinalBalance float64 `json:"finalBalance"`
	// TotalContributions includes the initial investment.
	TotalContributions      float64               `json:"totalContributions"`
	TotalInterest           float64               `json:"totalInterest"`
	InitialInvestmentGrowth float64               `json:"initialInvestmentGrowth"`
	YearlyData              []InvestmentYearPoint `json:"yearlyData"`
}

// CalculateInvestment projects compound growth of an initial amount plus
// recurring contributions. The nominal monthly contribution is normalized to
// the compounding period; each period the contribution lands before interest
// accrues. A seed-only growth track is kept for the breakdown chart.
func CalculateInvestment(input InvestmentInput) (*InvestmentResult, error) {
	if input.InitialInvestment < 0 {
		return nil, appErrors.NewValidationError("initialInvestment", "must not be negative")
	}
	if input.MonthlyContribution < 0 {
		return nil, appErrors.NewValidationError("monthlyContribution", "must not be negative")
	}
	if input.InvestmentPeriod <= 0 {
		return nil, appErrors.NewValidationError("investmentPeriod", "must be greater than zero")
	}
	if input.ExpectedReturn < 0 {
		return nil, appErrors.NewValidationError("expectedReturn", "must not be negative")
	}

	periodsPerYear, ok := input.CompoundingFrequency.PeriodsPerYear()
	if !ok {
		return nil, appErrors.NewValidationError("compoundingFrequency", "must be one of: monthly, quarterly, semiannually, annually")
	}

	ratePerPeriod := input.ExpectedReturn / 100 / float64(periodsPerYear)
	totalPeriods := input.InvestmentPeriod * periodsPerYear
	contributionPerPeriod := input.MonthlyContribution * 12 / float64(periodsPerYear)

	balance := input.InitialInvestment
	seedGrowth := input.InitialInvestment
	contributionsTotal := 0.0
	interestTotal := 0.0
	yearlyData := make([]InvestmentYearPoint, 0, input.InvestmentPeriod)

	for period := 1; period <= totalPeriods; period++ {
		balance += contributionPerPeriod
		contributionsTotal += contributionPerPeriod

		interest := balance * ratePerPeriod
		balance += interest
		interestTotal += interest

		seedGrowth *= 1 + ratePerPeriod

		if period%periodsPerYear == 0 || period == totalPeriods {
			yearlyData = append(yearlyData, InvestmentYearPoint{
				Year:          (period + periodsPerYear - 1) / periodsPerYear,
				Balance:       balance,
				Contributions: contributionsTotal + input.InitialInvestment,
				Interest:      interestTotal,
			})
		}
	}

	return &InvestmentResult{
		Inputs:                  input,
		FinalBalance:            balance,
		TotalContributions:      contributionsTotal + input.InitialInvestment,
		TotalInterest:           interestTotal,
		InitialInvestmentGrowth: seedGrowth,
		YearlyData:              yearlyData,
	}, nil
}
