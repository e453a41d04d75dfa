package calculator

// Kind identifies one of the standalone calculators. History is kept per user
// per kind.
type Kind string

const (
	KindLoan       Kind = "loan"
	KindInvestment Kind = "investment"
	KindRetirement Kind = "retirement"
	KindBudget     Kind = "budget"
	KindNetWorth   Kind = "networth"
	KindGoalPlan   Kind = "goalplan"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindLoan, KindInvestment, KindRetirement, KindBudget, KindNetWorth, KindGoalPlan:
		return true
	}
	return false
}

// Point is a single labelled value, the input to pie and bar charts.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SeriesData is a labelled series, the input to line charts. Point slices and
// SeriesData are distinct response types chosen explicitly at each call site.
type SeriesData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}
