package calculator_test

import (
	"testing"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/calculator"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

func TestCalculateNetWorth(t *testing.T) {
	t.Parallel()

	result, err := calculator.CalculateNetWorth(calculator.NetWorthInput{
		Assets: []calculator.AssetItem{
			{Name: "Savings Account", Value: 50000, Category: calculator.AssetCash},
			{Name: "Mutual Funds", Value: 115000, Category: calculator.AssetInvestment},
			{Name: "Apartment", Value: 200000, Category: calculator.AssetProperty},
		},
		Liabilities: []calculator.LiabilityItem{
			{Name: "Home Loan", Value: 250000, Category: calculator.LiabilityMortgage},
			{Name: "Car Loan", Value: 30000, Category: calculator.LiabilityLoan},
			{Name: "Credit Card", Value: 7000, Category: calculator.LiabilityCredit},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !approx(result.TotalAssets, 365000) {
		t.Fatalf("expected total assets 365000, got %.4f", result.TotalAssets)
	}
	if !approx(result.TotalLiabilities, 287000) {
		t.Fatalf("expected total liabilities 287000, got %.4f", result.TotalLiabilities)
	}
	if !approx(result.NetWorth, 78000) {
		t.Fatalf("expected net worth 78000, got %.4f", result.NetWorth)
	}
}

func TestCalculateNetWorthCategoryBreakdown(t *testing.T) {
	t.Parallel()

	result, err := calculator.CalculateNetWorth(calculator.NetWorthInput{
		Assets: []calculator.AssetItem{
			{Name: "Checking", Value: 2500, Category: calculator.AssetCash},
			{Name: "Savings", Value: 2500, Category: calculator.AssetCash},
			{Name: "Stocks", Value: 5000, Category: calculator.AssetInvestment},
		},
		Liabilities: []calculator.LiabilityItem{
			{Name: "Personal Loan", Value: 1000, Category: calculator.LiabilityLoan},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Breakdown always lists all four categories in a fixed order.
	if len(result.AssetBreakdown) != 4 {
		t.Fatalf("expected 4 asset categories, got %d", len(result.AssetBreakdown))
	}

	byCategory := map[string]calculator.CategoryBreakdown{}
	for _, breakdown := range result.AssetBreakdown {
		byCategory[breakdown.Category] = breakdown
	}

	cash := byCategory["cash"]
	if !approx(cash.Total, 5000) || !approx(cash.Percentage, 50) {
		t.Fatalf("unexpected cash breakdown: %+v", cash)
	}
	investment := byCategory["investment"]
	if !approx(investment.Total, 5000) || !approx(investment.Percentage, 50) {
		t.Fatalf("unexpected investment breakdown: %+v", investment)
	}
	if prop := byCategory["property"]; !approx(prop.Total, 0) || !approx(prop.Percentage, 0) {
		t.Fatalf("unexpected property breakdown: %+v", prop)
	}

	liabilityByCategory := map[string]calculator.CategoryBreakdown{}
	for _, breakdown := range result.LiabilityBreakdown {
		liabilityByCategory[breakdown.Category] = breakdown
	}
	if loan := liabilityByCategory["loan"]; !approx(loan.Percentage, 100) {
		t.Fatalf("unexpected loan breakdown: %+v", loan)
	}
}

func TestCalculateNetWorthEmptyInput(t *testing.T) {
	t.Parallel()

	result, err := calculator.CalculateNetWorth(calculator.NetWorthInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NetWorth != 0 {
		t.Fatalf("expected zero net worth, got %.4f", result.NetWorth)
	}
	for _, breakdown := range result.AssetBreakdown {
		if breakdown.Percentage != 0 {
			t.Fatalf("expected zero percentage with no assets, got %+v", breakdown)
		}
	}
}

func TestCalculateNetWorthInvalidCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input calculator.NetWorthInput
	}{
		{
			name: "unknown asset category",
			input: calculator.NetWorthInput{
				Assets: []calculator.AssetItem{{Name: "Gold", Value: 100, Category: "metal"}},
			},
		},
		{
			name: "unknown liability category",
			input: calculator.NetWorthInput{
				Liabilities: []calculator.LiabilityItem{{Name: "IOU", Value: 100, Category: "informal"}},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := calculator.CalculateNetWorth(tt.input)
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
			}
		})
	}
}
