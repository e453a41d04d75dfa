package calculator

import (
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

type AssetCategory string

const (
	AssetCash       AssetCategory = "cash"
	AssetInvestment AssetCategory = "investment"
	AssetProperty   AssetCategory = "property"
	AssetOther      AssetCategory = "other"
)

func (c AssetCategory) IsValid() bool {
	switch c {
	case AssetCash, AssetInvestment, AssetProperty, AssetOther:
		return true
	}
	return false
}

type LiabilityCategory string

const (
	LiabilityMortgage LiabilityCategory = "mortgage"
	LiabilityLoan     LiabilityCategory = "loan"
	LiabilityCredit   LiabilityCategory = "credit"
	LiabilityOther    LiabilityCategory = "other"
)

func (c LiabilityCategory) IsValid() bool {
	switch c {
	case LiabilityMortgage, LiabilityLoan, LiabilityCredit, LiabilityOther:
		return true
	}
	return false
}

type AssetItem struct {
	Name     string        `json:"name"`
	Value    float64       `json:"value"`
	Category AssetCategory `json:"category"`
}

type LiabilityItem struct {
	Name     string            `json:"name"`
	Value    float64           `json:"value"`
	Category LiabilityCategory `json:"category"`
}

type NetWorthInput struct {
	Assets      []AssetItem     `json:"assets"`
	Liabilities []LiabilityItem `json:"liabilities"`
}

// CategoryBreakdown is a per-category subtotal with its share of the total.
type CategoryBreakdown struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

type NetWorthResult struct {
	Inputs NetWorthInput `json:"inputs"`

	TotalAssets        float64             `json:"totalAssets"`
	TotalLiabilities   float64             `json:"totalLiabilities"`
	NetWorth           float64             `json:"netWorth"`
	AssetData          []Point             `json:"assetData"`
	LiabilityData      []Point             `json:"liabilityData"`
	AssetBreakdown     []CategoryBreakdown `json:"assetBreakdown"`
	LiabilityBreakdown []CategoryBreakdown `json:"liabilityBreakdown"`
}

// CalculateNetWorth totals assets and liabilities and computes per-category
// subtotals with their share of the respective total.
func CalculateNetWorth(input NetWorthInput) (*NetWorthResult, error) {
	for _, asset := range input.Assets {
		if !asset.Category.IsValid() {
			return nil, appErrors.NewValidationError("assets", "invalid asset category: "+string(asset.Category))
		}
	}
	for _, liability := range input.Liabilities {
		if !liability.Category.IsValid() {
			return nil, appErrors.NewValidationError("liabilities", "invalid liability category: "+string(liability.Category))
		}
	}

	totalAssets := 0.0
	assetData := make([]Point, 0, len(input.Assets))
	assetTotals := map[AssetCategory]float64{}
	for _, asset := range input.Assets {
		totalAssets += asset.Value
		assetData = append(assetData, Point{Label: asset.Name, Value: asset.Value})
		assetTotals[asset.Category] += asset.Value
	}

	totalLiabilities := 0.0
	liabilityData := make([]Point, 0, len(input.Liabilities))
	liabilityTotals := map[LiabilityCategory]float64{}
	for _, liability := range input.Liabilities {
		totalLiabilities += liability.Value
		liabilityData = append(liabilityData, Point{Label: liability.Name, Value: liability.Value})
		liabilityTotals[liability.Category] += liability.Value
	}

	assetBreakdown := make([]CategoryBreakdown, 0, 4)
	for _, category := range []AssetCategory{AssetCash, AssetInvestment, AssetProperty, AssetOther} {
		total := assetTotals[category]
		percentage := 0.0
		if totalAssets > 0 {
			percentage = total / totalAssets * 100
		}
		assetBreakdown = append(assetBreakdown, CategoryBreakdown{
			Category:   string(category),
			Total:      total,
			Percentage: percentage,
		})
	}

	liabilityBreakdown := make([]CategoryBreakdown, 0, 4)
	for _, category := range []LiabilityCategory{LiabilityMortgage, LiabilityLoan, LiabilityCredit, LiabilityOther} {
		total := liabilityTotals[category]
		percentage := 0.0
		if totalLiabilities > 0 {
			percentage = total / totalLiabilities * 100
		}
		liabilityBreakdown = append(liabilityBreakdown, CategoryBreakdown{
			Category:   string(category),
			Total:      total,
			Percentage: percentage,
		})
	}

	return &NetWorthResult{
		Inputs:             input,
		TotalAssets:        totalAssets,
		TotalLiabilities:   totalLiabilities,
		NetWorth:           totalAssets - totalLiabilities,
		AssetData:          assetData,
		LiabilityData:      liabilityData,
		AssetBreakdown:     assetBreakdown,
		LiabilityBreakdown: liabilityBreakdown,
	}, nil
}
