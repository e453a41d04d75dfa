package calculator

import (
	"math"

	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

// LoanInput carries the loan calculator parameters. LoanType and
// PaymentFrequency are informational: the arithmetic is always a monthly
// amortization regardless of the selected frequency.
type LoanInput struct {
	LoanAmount       float64 `json:"loanAmount"`
	InterestRate     float64 `json:"interestRate"`
	LoanTermYears    int     `json:"loanTermYears"`
	LoanType         string  `json:"loanType"`
	PaymentFrequency string  `json:"paymentFrequency"`
}

type ScheduleRow struct {
	Payment   int     `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type LoanResult struct {
	Inputs           LoanInput     `json:"inputs"`
	MonthlyPayment   float64       `json:"monthlyPayment"`
	TotalPayment     float64       `json:"totalPayment"`
	TotalInterest    float64       `json:"totalInterest"`
	NumberOfPayments int           `json:"numberOfPayments"`
	Schedule         []ScheduleRow `json:"schedule"`
	PieBreakdown     []Point       `json:"pieBreakdown"`
}

// CalculateLoan runs a fixed-rate monthly amortization. The schedule is
// sampled sparsely: the first payment, every 12th, and the final one.
func CalculateLoan(input LoanInput) (*LoanResult, error) {
	if input.LoanAmount <= 0 {
		return nil, appErrors.NewValidationError("loanAmount", "must be greater than zero")
	}
	if input.LoanTermYears <= 0 {
		return nil, appErrors.NewValidationError("loanTermYears", "must be greater than zero")
	}
	if input.InterestRate < 0 {
		return nil, appErrors.NewValidationError("interestRate", "must not be negative")
	}

	monthlyRate := input.InterestRate / 100 / 12
	numberOfPayments := input.LoanTermYears * 12

	var monthlyPayment float64
	if monthlyRate == 0 {
		// The amortization formula divides by (1+r)^n - 1, which is zero here.
		monthlyPayment = input.LoanAmount / float64(numberOfPayments)
	} else {
		power := math.Pow(1+monthlyRate, float64(numberOfPayments))
		monthlyPayment = input.LoanAmount * monthlyRate * power / (power - 1)
	}

	totalPayment := monthlyPayment * float64(numberOfPayments)
	totalInterest := totalPayment - input.LoanAmount

	balance := input.LoanAmount
	schedule := make([]ScheduleRow, 0, input.LoanTermYears+2)

	for i := 1; i <= numberOfPayments; i++ {
		interestPayment := balance * monthlyRate
		principalPayment := monthlyPayment - interestPayment
		balance -= principalPayment

		if i == 1 || i%12 == 0 || i == numberOfPayments {
			row := ScheduleRow{
				Payment:   i,
				Principal: principalPayment,
				Interest:  interestPayment,
				Balance:   balance,
			}
			if row.Balance < 0 {
				row.Balance = 0
			}
			schedule = append(schedule, row)
		}
	}

	return &LoanResult{
		Inputs:           input,
		MonthlyPayment:   monthlyPayment,
		TotalPayment:     totalPayment,
		TotalInterest:    totalInterest,
		NumberOfPayments: numberOfPayments,
		Schedule:         schedule,
		PieBreakdown: []Point{
			{Label: "Principal", Value: input.LoanAmount},
			{Label: "Interest", Value: totalInterest},
		},
	}, nil
}
