package planner

import (
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

// RiskLevel maps the 1-10 tolerance slider to its display label.
func RiskLevel(value int) string {
	if value <= 3 {
		return "Low Risk"
	}
	if value <= 7 {
		return "Medium Risk"
	}
	return "High Risk"
}

// RiskProfile is the suggested asset allocation derived from the questionnaire.
type RiskProfile struct {
	Level           string `json:"level"`
	Description     string `json:"description"`
	Score           int    `json:"score"`
	StockAllocation int    `json:"stockAllocation"`
	BondAllocation  int    `json:"bondAllocation"`
	GoldAllocation  int    `json:"goldAllocation"`
}

// CalculateRiskProfile scores the investor from tolerance, age, investment
// capacity, and savings, then maps the score to an allocation band.
func CalculateRiskProfile(form FormData) RiskProfile {
	currentSavings := pkg.ParseAmount(form.CurrentSavings)
	monthlyInvestment := pkg.ParseAmount(form.InvestmentAmount)

	score := form.RiskTolerance * 10

	switch {
	case form.Age < 30:
		score += 20
	case form.Age < 40:
		score += 10
	case form.Age < 50:
		// no adjustment
	case form.Age < 60:
		score -= 10
	default:
		score -= 20
	}

	switch {
	case monthlyInvestment > 10000:
		score += 15
	case monthlyInvestment > 5000:
		score += 10
	case monthlyInvestment > 2000:
		score += 5
	}

	switch {
	case currentSavings > 1000000:
		score += 10
	case currentSavings > 500000:
		score += 5
	}

	switch {
	case score >= 80:
		return RiskProfile{
			Level:           "Very Aggressive",
			Description:     "High growth potential with higher risk. Suitable for young investors with long-term goals.",
			Score:           score,
			StockAllocation: 80,
			BondAllocation:  10,
			GoldAllocation:  10,
		}
	case score >= 60:
		return RiskProfile{
			Level:           "Aggressive",
			Description:     "Growth-oriented portfolio with a tilt toward equities.",
			Score:           score,
			StockAllocation: 70,
			BondAllocation:  20,
			GoldAllocation:  10,
		}
	case score >= 40:
		return RiskProfile{
			Level:           "Moderate",
			Description:     "Balanced mix of growth and stability.",
			Score:           score,
			StockAllocation: 50,
			BondAllocation:  35,
			GoldAllocation:  15,
		}
	default:
		return RiskProfile{
			Level:           "Conservative",
			Description:     "Capital preservation first, with modest growth exposure.",
			Score:           score,
			StockAllocation: 20,
			BondAllocation:  60,
			GoldAllocation:  20,
		}
	}
}
