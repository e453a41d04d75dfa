package planner_test

import (
	"testing"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/planner"
)

func TestRiskLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value int
		want  string
	}{
		{1, "Low Risk"},
		{3, "Low Risk"},
		{4, "Medium Risk"},
		{7, "Medium Risk"},
		{8, "High Risk"},
		{10, "High Risk"},
	}

	for _, tt := range tests {
		if got := planner.RiskLevel(tt.value); got != tt.want {
			t.Fatalf("RiskLevel(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestCalculateRiskProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		form      planner.FormData
		wantLevel string
		wantScore int
	}{
		{
			name: "young aggressive investor",
			form: planner.FormData{
				Age:              25,
				RiskTolerance:    8,
				InvestmentAmount: "15000",
				CurrentSavings:   "1200000",
			},
			// 80 + 20 + 15 + 10
			wantLevel: "Very Aggressive",
			wantScore: 125,
		},
		{
			name: "mid-career moderate",
			form: planner.FormData{
				Age:           45,
				RiskTolerance: 5,
			},
			wantLevel: "Moderate",
			wantScore: 50,
		},
		{
			name: "retiree conservative",
			form: planner.FormData{
				Age:           65,
				RiskTolerance: 2,
			},
			// 20 - 20
			wantLevel: "Conservative",
			wantScore: 0,
		},
		{
			name: "fifties with capacity",
			form: planner.FormData{
				Age:              55,
				RiskTolerance:    6,
				InvestmentAmount: "6000",
				CurrentSavings:   "600000",
			},
			// 60 - 10 + 10 + 5
			wantLevel: "Aggressive",
			wantScore: 65,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			profile := planner.CalculateRiskProfile(tt.form)
			if profile.Level != tt.wantLevel {
				t.Fatalf("expected level %q, got %q (score %d)", tt.wantLevel, profile.Level, profile.Score)
			}
			if profile.Score != tt.wantScore {
				t.Fatalf("expected score %d, got %d", tt.wantScore, profile.Score)
			}
			if profile.StockAllocation+profile.BondAllocation+profile.GoldAllocation != 100 {
				t.Fatalf("allocations must total 100, got %+v", profile)
			}
		})
	}
}
