package planner

import (
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

// Summary is the read-only projection of a completed questionnaire. Numeric
// aggregation treats empty fields as zero while the display strings show the
// "Not Provided" sentinel; both behaviors are deliberate and pinned by tests.
type Summary struct {
	TotalIncome    float64 `json:"totalIncome"`
	TotalExpenses  float64 `json:"totalExpenses"`
	MonthlySavings float64 `json:"monthlySavings"`
	SavingsRate    int     `json:"savingsRate"`

	Display SummaryDisplay `json:"display"`
}

// SummaryDisplay carries the formatted strings the summary screen renders.
type SummaryDisplay struct {
	FullName         string `json:"fullName"`
	MaritalStatus    string `json:"maritalStatus"`
	PrimaryIncome    string `json:"primaryIncome"`
	AdditionalIncome string `json:"additionalIncome"`
	Rent             string `json:"rent"`
	Utilities        string `json:"utilities"`
	Loans            string `json:"loans"`
	Groceries        string `json:"groceries"`
	Entertainment    string `json:"entertainment"`
	CurrentSavings   string `json:"currentSavings"`
	InvestmentAmount string `json:"investmentAmount"`
	TargetAmount     string `json:"targetAmount"`
	TargetDate       string `json:"targetDate"`
	RiskLevel        string `json:"riskLevel"`
}

// BuildSummary derives the aggregate metrics from a questionnaire snapshot.
func BuildSummary(form FormData) Summary {
	totalIncome := form.PrimaryIncome + pkg.ParseAmount(form.AdditionalIncome)

	totalExpenses := pkg.ParseAmount(form.Rent) +
		pkg.ParseAmount(form.Utilities) +
		pkg.ParseAmount(form.Loans) +
		pkg.ParseAmount(form.Groceries) +
		pkg.ParseAmount(form.Entertainment)

	monthlySavings := totalIncome - totalExpenses

	savingsRate := 0
	if totalIncome > 0 {
		savingsRate = pkg.RoundPercent(monthlySavings / totalIncome * 100)
	}

	return Summary{
		TotalIncome:    totalIncome,
		TotalExpenses:  totalExpenses,
		MonthlySavings: monthlySavings,
		SavingsRate:    savingsRate,
		Display: SummaryDisplay{
			FullName:         orNotProvided(form.FullName),
			MaritalStatus:    orNotProvided(form.MaritalStatus),
			PrimaryIncome:    pkg.Currency(form.PrimaryIncome),
			AdditionalIncome: pkg.CurrencyOrNotProvided(form.AdditionalIncome),
			Rent:             pkg.CurrencyOrNotProvided(form.Rent),
			Utilities:        pkg.CurrencyOrNotProvided(form.Utilities),
			Loans:            pkg.CurrencyOrNotProvided(form.Loans),
			Groceries:        pkg.CurrencyOrNotProvided(form.Groceries),
			Entertainment:    pkg.CurrencyOrNotProvided(form.Entertainment),
			CurrentSavings:   pkg.CurrencyOrNotProvided(form.CurrentSavings),
			InvestmentAmount: pkg.CurrencyOrNotProvided(form.InvestmentAmount),
			TargetAmount:     pkg.CurrencyOrNotProvided(form.TargetAmount),
			TargetDate:       orNotProvided(form.TargetDate),
			RiskLevel:        RiskLevel(form.RiskTolerance),
		},
	}
}

func orNotProvided(s string) string {
	if s == "" {
		return pkg.NotProvided
	}
	return s
}
