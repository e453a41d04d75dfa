package planner_test

import (
	"testing"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/planner"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

func TestBuildSummary(t *testing.T) {
	t.Parallel()

	form := planner.FormData{
		FullName:         "Priya Sharma",
		MaritalStatus:    "married",
		PrimaryIncome:    45000,
		AdditionalIncome: "5000",
		Rent:             "15000",
		Utilities:        "3000",
		Loans:            "8000",
		Groceries:        "6000",
		Entertainment:    "2500",
		RiskTolerance:    5,
	}

	summary := planner.BuildSummary(form)

	if summary.TotalIncome != 50000 {
		t.Fatalf("expected total income 50000, got %.2f", summary.TotalIncome)
	}
	if summary.TotalExpenses != 34500 {
		t.Fatalf("expected total expenses 34500, got %.2f", summary.TotalExpenses)
	}
	if summary.MonthlySavings != 15500 {
		t.Fatalf("expected monthly savings 15500, got %.2f", summary.MonthlySavings)
	}
	if summary.SavingsRate != 31 {
		t.Fatalf("expected savings rate 31, got %d", summary.SavingsRate)
	}
	if summary.Display.RiskLevel != "Medium Risk" {
		t.Fatalf("expected Medium Risk, got %q", summary.Display.RiskLevel)
	}
	if summary.Display.Rent != "₹15,000.00" {
		t.Fatalf("expected formatted rent, got %q", summary.Display.Rent)
	}
}

func TestBuildSummaryEmptyFieldsAggregateAsZeroButDisplayAsNotProvided(t *testing.T) {
	t.Parallel()

	form := planner.FormData{
		PrimaryIncome: 30000,
		Rent:          "10000",
	}

	summary := planner.BuildSummary(form)

	// Empty optional fields contribute zero to the totals.
	if summary.TotalIncome != 30000 {
		t.Fatalf("expected total income 30000, got %.2f", summary.TotalIncome)
	}
	if summary.TotalExpenses != 10000 {
		t.Fatalf("expected total expenses 10000, got %.2f", summary.TotalExpenses)
	}

	// The same fields display as the sentinel, not as ₹0.00.
	if summary.Display.AdditionalIncome != pkg.NotProvided {
		t.Fatalf("expected %q, got %q", pkg.NotProvided, summary.Display.AdditionalIncome)
	}
	if summary.Display.Utilities != pkg.NotProvided {
		t.Fatalf("expected %q, got %q", pkg.NotProvided, summary.Display.Utilities)
	}
	if summary.Display.FullName != pkg.NotProvided {
		t.Fatalf("expected %q, got %q", pkg.NotProvided, summary.Display.FullName)
	}
	if summary.Display.TargetDate != pkg.NotProvided {
		t.Fatalf("expected %q, got %q", pkg.NotProvided, summary.Display.TargetDate)
	}
}

func TestBuildSummaryZeroIncome(t *testing.T) {
	t.Parallel()

	summary := planner.BuildSummary(planner.FormData{
		Rent: "5000",
	})

	if summary.SavingsRate != 0 {
		t.Fatalf("expected savings rate 0 with no income, got %d", summary.SavingsRate)
	}
	if summary.MonthlySavings != -5000 {
		t.Fatalf("expected monthly savings -5000, got %.2f", summary.MonthlySavings)
	}
}

func TestBuildSummaryUnparsableAmountsCountAsZero(t *testing.T) {
	t.Parallel()

	summary := planner.BuildSummary(planner.FormData{
		PrimaryIncome: 20000,
		Rent:          "about 8000",
	})

	if summary.TotalExpenses != 0 {
		t.Fatalf("expected unparsable rent to aggregate as zero, got %.2f", summary.TotalExpenses)
	}
}
