package contracts

type LoanCalculationRequest struct {
	LoanAmount       float64 `json:"loanAmount" binding:"required,gt=0"`
	InterestRate     float64 `json:"interestRate" binding:"gte=0"`
	LoanTermYears    int     `json:"loanTermYears" binding:"required,gt=0"`
	LoanType         string  `json:"loanType" binding:"omitempty"`
	PaymentFrequency string  `json:"paymentFrequency" binding:"omitempty"`
}

type InvestmentCalculationRequest struct {
	InitialInvestment    float64 `json:"initialInvestment" binding:"gte=0"`
	MonthlyContribution  float64 `json:"monthlyContribution" binding:"gte=0"`
	InvestmentPeriod     int     `json:"investmentPeriod" binding:"required,gt=0"`
	ExpectedReturn       float64 `json:"expectedReturn" binding:"gte=0"`
	CompoundingFrequency string  `json:"compoundingFrequency" binding:"omitempty,oneof=monthly quarterly semiannually annually"`
}

type RetirementCalculationRequest struct {
	CurrentAge          int     `json:"currentAge" binding:"required,gt=0"`
	RetirementAge       int     `json:"retirementAge" binding:"required,gt=0"`
	CurrentSavings      float64 `json:"currentSavings" binding:"gte=0"`
	MonthlyContribution float64 `json:"monthlyContribution" binding:"gte=0"`
	ExpectedReturn      float64 `json:"expectedReturn" binding:"gte=0"`
	InflationRate       float64 `json:"inflationRate" binding:"gte=0"`
}

type BudgetIncomeItem struct {
	Source string  `json:"source" binding:"required"`
	Amount float64 `json:"amount" binding:"gte=0"`
}

type BudgetExpenseItem struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"gte=0"`
}

type BudgetCalculationRequest struct {
	IncomeItems  []BudgetIncomeItem  `json:"incomeItems" binding:"required,dive"`
	ExpenseItems []BudgetExpenseItem `json:"expenseItems" binding:"required,dive"`
}

type NetWorthAssetItem struct {
	Name     string  `json:"name" binding:"required"`
	Value    float64 `json:"value" binding:"gte=0"`
	Category string  `json:"category" binding:"required,oneof=cash investment property other"`
}

type NetWorthLiabilityItem struct {
	Name     string  `json:"name" binding:"required"`
	Value    float64 `json:"value" binding:"gte=0"`
	Category string  `json:"category" binding:"required,oneof=mortgage loan credit other"`
}

type NetWorthCalculationRequest struct {
	Assets      []NetWorthAssetItem     `json:"assets" binding:"required,dive"`
	Liabilities []NetWorthLiabilityItem `json:"liabilities" binding:"required,dive"`
}

type GoalPlanItem struct {
	Name                string  `json:"name" binding:"required"`
	TargetAmount        float64 `json:"targetAmount" binding:"required,gt=0"`
	CurrentAmount       float64 `json:"currentAmount" binding:"gte=0"`
	TargetDate          string  `json:"targetDate" binding:"required"`
	Priority            string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	MonthlyContribution float64 `json:"monthlyContribution" binding:"gte=0"`
}

type GoalPlanCalculationRequest struct {
	Goals []GoalPlanItem `json:"goals" binding:"required,min=1,dive"`
}
