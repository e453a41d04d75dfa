package calculator

import (
	"strings"
)

type IncomeItem struct {
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
}

type ExpenseItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type BudgetInput struct {
	IncomeItems  []IncomeItem  `json:"incomeItems"`
	ExpenseItems []ExpenseItem `json:"expenseItems"`
}

type BudgetResult struct {
	Inputs BudgetInput `json:"inputs"`

	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetCashFlow   float64 `json:"netCashFlow"`
	// SavingsRate is a percentage kept as a float for one-decimal display.
	SavingsRate     float64  `json:"savingsRate"`
	IncomeData      []Point  `json:"incomeData"`
	ExpenseData     []Point  `json:"expenseData"`
	Recommendations []string `json:"recommendations"`
}

// CalculateBudget aggregates freeform income and expense rows and derives
// rule-based recommendations. The generic 50/30/20 and emergency-fund guidance
// is always appended.
func CalculateBudget(input BudgetInput) (*BudgetResult, error) {
	totalIncome := 0.0
	incomeData := make([]Point, 0, len(input.IncomeItems))
	for _, item := range input.IncomeItems {
		totalIncome += item.Amount
		incomeData = append(incomeData, Point{Label: item.Source, Value: item.Amount})
	}

	totalExpenses := 0.0
	expenseData := make([]Point, 0, len(input.ExpenseItems))
	for _, item := range input.ExpenseItems {
		totalExpenses += item.Amount
		expenseData = append(expenseData, Point{Label: item.Category, Value: item.Amount})
	}

	netCashFlow := totalIncome - totalExpenses

	savingsRate := 0.0
	if totalIncome > 0 {
		savingsRate = netCashFlow / totalIncome * 100
	}

	var recommendations []string
	if savingsRate < 20 {
		recommendations = append(recommendations, "Aim for a savings rate of at least 20% of your income.")
	}
	if totalIncome > 0 {
		for _, item := range input.ExpenseItems {
			if strings.Contains(strings.ToLower(item.Category), "housing") && item.Amount/totalIncome > 0.3 {
				recommendations = append(recommendations, "Your housing expenses exceed 30% of your income, which is higher than recommended.")
				break
			}
		}
	}
	if netCashFlow <= 0 {
		recommendations = append(recommendations, "You're spending more than you earn. Review your expenses to find areas to cut back.")
	}
	recommendations = append(recommendations,
		"The 50/30/20 rule suggests spending 50% on needs, 30% on wants, and saving 20%.",
		"Consider building an emergency fund of 3-6 months of expenses if you don't already have one.",
	)

	return &BudgetResult{
		Inputs:          input,
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		NetCashFlow:     netCashFlow,
		SavingsRate:     savingsRate,
		IncomeData:      incomeData,
		ExpenseData:     expenseData,
		Recommendations: recommendations,
	}, nil
}
