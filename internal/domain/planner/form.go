package planner

// FormData is the in-progress planner questionnaire. Numeric fields that the
// user types freely are kept string-encoded and coerced to zero at aggregation
// time; slider-backed fields are stored as numbers.
type FormData struct {
	FullName      string `json:"fullName"`
	Age           int    `json:"age"`
	MaritalStatus string `json:"maritalStatus"`

	PrimaryIncome    float64 `json:"primaryIncome"`
	AdditionalIncome string  `json:"additionalIncome"`
	SalaryFrequency  string  `json:"salaryFrequency"`

	Rent          string `json:"rent"`
	Utilities     string `json:"utilities"`
	Loans         string `json:"loans"`
	Groceries     string `json:"groceries"`
	Entertainment string `json:"entertainment"`
	HasDebt       bool   `json:"hasDebt"`
	DebtDetails   string `json:"debtDetails"`

	CurrentSavings     string `json:"currentSavings"`
	CurrentInvestments string `json:"currentInvestments"`
	InvestmentAmount   string `json:"investmentAmount"`
	RiskTolerance      int    `json:"riskTolerance"`

	ShortTermGoals  string `json:"shortTermGoals"`
	MediumTermGoals string `json:"mediumTermGoals"`
	LongTermGoals   string `json:"longTermGoals"`
	TargetAmount    string `json:"targetAmount"`
	TargetDate      string `json:"targetDate"`

	AdditionalComments string `json:"additionalComments"`
}

// DefaultFormData returns a fresh questionnaire with the starting values every
// session begins from.
func DefaultFormData() FormData {
	return FormData{
		Age:           30,
		PrimaryIncome: 3000,
		RiskTolerance: 5,
	}
}

// Wizard step indices. Steps move strictly by one and clamp at the ends.
const (
	StepPersonal = iota
	StepIncome
	StepExpenses
	StepInvestments
	StepGoals
	StepDocuments

	StepCount = 6
)
