package calculator_test

import (
	"testing"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/calculator"
)

func containsRecommendation(recommendations []string, want string) bool {
	for _, r := range recommendations {
		if r == want {
			return true
		}
	}
	return false
}

func TestCalculateBudgetAggregates(t *testing.T) {
	t.Parallel()

	result, err := calculator.CalculateBudget(calculator.BudgetInput{
		IncomeItems: []calculator.IncomeItem{
			{Source: "Salary", Amount: 50000},
			{Source: "Freelance", Amount: 10000},
		},
		ExpenseItems: []calculator.ExpenseItem{
			{Category: "Housing", Amount: 15000},
			{Category: "Groceries", Amount: 8000},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !approx(result.TotalIncome, 60000) {
		t.Fatalf("expected income 60000, got %.4f", result.TotalIncome)
	}
	if !approx(result.TotalExpenses, 23000) {
		t.Fatalf("expected expenses 23000, got %.4f", result.TotalExpenses)
	}
	if !approx(result.NetCashFlow, 37000) {
		t.Fatalf("expected net cash flow 37000, got %.4f", result.NetCashFlow)
	}
	if !approx(result.SavingsRate, 37000.0/60000*100) {
		t.Fatalf("unexpected savings rate %.4f", result.SavingsRate)
	}
	if len(result.IncomeData) != 2 || result.IncomeData[0].Label != "Salary" {
		t.Fatalf("unexpected income data: %+v", result.IncomeData)
	}
	if len(result.ExpenseData) != 2 || result.ExpenseData[1].Label != "Groceries" {
		t.Fatalf("unexpected expense data: %+v", result.ExpenseData)
	}
}

func TestCalculateBudgetRecommendations(t *testing.T) {
	t.Parallel()

	lowSavings := "Aim for a savings rate of at least 20% of your income."
	housingHigh := "Your housing expenses exceed 30% of your income, which is higher than recommended."
	overspending := "You're spending more than you earn. Review your expenses to find areas to cut back."
	rule502030 := "The 50/30/20 rule suggests spending 50% on needs, 30% on wants, and saving 20%."
	emergencyFund := "Consider building an emergency fund of 3-6 months of expenses if you don't already have one."

	tests := []struct {
		name        string
		input       calculator.BudgetInput
		want        []string
		wantAbsent  []string
	}{
		{
			name: "healthy budget only gets generic advice",
			input: calculator.BudgetInput{
				IncomeItems:  []calculator.IncomeItem{{Source: "Salary", Amount: 10000}},
				ExpenseItems: []calculator.ExpenseItem{{Category: "Rent", Amount: 2000}},
			},
			want:       []string{rule502030, emergencyFund},
			wantAbsent: []string{lowSavings, housingHigh, overspending},
		},
		{
			name: "housing over thirty percent",
			input: calculator.BudgetInput{
				IncomeItems:  []calculator.IncomeItem{{Source: "Salary", Amount: 10000}},
				ExpenseItems: []calculator.ExpenseItem{{Category: "Housing Rent", Amount: 3500}},
			},
			want:       []string{housingHigh, rule502030, emergencyFund},
			wantAbsent: []string{overspending},
		},
		{
			name: "overspending",
			input: calculator.BudgetInput{
				IncomeItems:  []calculator.IncomeItem{{Source: "Salary", Amount: 1000}},
				ExpenseItems: []calculator.ExpenseItem{{Category: "Everything", Amount: 1500}},
			},
			want: []string{lowSavings, overspending, rule502030, emergencyFund},
		},
		{
			name:  "empty budget",
			input: calculator.BudgetInput{},
			want:  []string{lowSavings, rule502030, emergencyFund},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := calculator.CalculateBudget(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if !containsRecommendation(result.Recommendations, want) {
					t.Fatalf("missing recommendation %q in %v", want, result.Recommendations)
				}
			}
			for _, absent := range tt.wantAbsent {
				if containsRecommendation(result.Recommendations, absent) {
					t.Fatalf("unexpected recommendation %q in %v", absent, result.Recommendations)
				}
			}
		})
	}
}

func TestCalculateBudgetZeroIncome(t *testing.T) {
	t.Parallel()

	result, err := calculator.CalculateBudget(calculator.BudgetInput{
		ExpenseItems: []calculator.ExpenseItem{{Category: "Rent", Amount: 500}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SavingsRate != 0 {
		t.Fatalf("expected savings rate 0 with no income, got %.4f", result.SavingsRate)
	}
	if !approx(result.NetCashFlow, -500) {
		t.Fatalf("expected net cash flow -500, got %.4f", result.NetCashFlow)
	}
}
