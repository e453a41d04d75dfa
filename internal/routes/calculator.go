package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/contracts"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/calculator"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

func (h *Handler) CalculateLoan(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.LoanCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	snapshot, err := h.CalculatorService.CalculateLoan(c.Request.Context(), userID, calculator.LoanInput{
		LoanAmount:       req.LoanAmount,
		InterestRate:     req.InterestRate,
		LoanTermYears:    req.LoanTermYears,
		LoanType:         req.LoanType,
		PaymentFrequency: req.PaymentFrequency,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *Handler) CalculateInvestment(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.InvestmentCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	snapshot, err := h.CalculatorService.CalculateInvestment(c.Request.Context(), userID, calculator.InvestmentInput{
		InitialInvestment:    req.InitialInvestment,
		MonthlyContribution:  req.MonthlyContribution,
		InvestmentPeriod:     req.InvestmentPeriod,
		ExpectedReturn:       req.ExpectedReturn,
		CompoundingFrequency: calculator.CompoundingFrequency(req.CompoundingFrequency),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *Handler) CalculateRetirement(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.RetirementCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	snapshot, err := h.CalculatorService.CalculateRetirement(c.Request.Context(), userID, calculator.RetirementInput{
		CurrentAge:          req.CurrentAge,
		RetirementAge:       req.RetirementAge,
		CurrentSavings:      req.CurrentSavings,
		MonthlyContribution: req.MonthlyContribution,
		ExpectedReturn:      req.ExpectedReturn,
		InflationRate:       req.InflationRate,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *Handler) CalculateBudget(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.BudgetCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	input := calculator.BudgetInput{
		IncomeItems:  make([]calculator.IncomeItem, 0, len(req.IncomeItems)),
		ExpenseItems: make([]calculator.ExpenseItem, 0, len(req.ExpenseItems)),
	}
	for _, item := range req.IncomeItems {
		input.IncomeItems = append(input.IncomeItems, calculator.IncomeItem{
			Source: item.Source,
			Amount: item.Amount,
		})
	}
	for _, item := range req.ExpenseItems {
		input.ExpenseItems = append(input.ExpenseItems, calculator.ExpenseItem{
			Category: item.Category,
			Amount:   item.Amount,
		})
	}

	snapshot, err := h.CalculatorService.CalculateBudget(c.Request.Context(), userID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *Handler) CalculateNetWorth(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.NetWorthCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	input := calculator.NetWorthInput{
		Assets:      make([]calculator.AssetItem, 0, len(req.Assets)),
		Liabilities: make([]calculator.LiabilityItem, 0, len(req.Liabilities)),
	}
	for _, item := range req.Assets {
		input.Assets = append(input.Assets, calculator.AssetItem{
			Name:     item.Name,
			Value:    item.Value,
			Category: calculator.AssetCategory(item.Category),
		})
	}
	for _, item := range req.Liabilities {
		input.Liabilities = append(input.Liabilities, calculator.LiabilityItem{
			Name:     item.Name,
			Value:    item.Value,
			Category: calculator.LiabilityCategory(item.Category),
		})
	}

	snapshot, err := h.CalculatorService.CalculateNetWorth(c.Request.Context(), userID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *Handler) CalculateGoalPlan(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.GoalPlanCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	input := calculator.GoalPlanInput{
		Goals: make([]calculator.GoalInput, 0, len(req.Goals)),
	}
	for _, goal := range req.Goals {
		input.Goals = append(input.Goals, calculator.GoalInput{
			Name:                goal.Name,
			TargetAmount:        goal.TargetAmount,
			CurrentAmount:       goal.CurrentAmount,
			TargetDate:          goal.TargetDate,
			Priority:            calculator.GoalPriority(goal.Priority),
			MonthlyContribution: goal.MonthlyContribution,
		})
	}

	snapshot, err := h.CalculatorService.CalculateGoalPlan(c.Request.Context(), userID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *Handler) GetCalculatorResult(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	kind := calculator.Kind(c.Param("kind"))
	if !kind.IsValid() {
		h.respondError(c, appErrors.NewValidationError("kind", "unknown calculator"))
		return
	}

	snapshot, err := h.CalculatorService.GetCurrent(c.Request.Context(), userID, kind)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *Handler) GetCalculatorHistory(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	kind := calculator.Kind(c.Param("kind"))
	if !kind.IsValid() {
		h.respondError(c, appErrors.NewValidationError("kind", "unknown calculator"))
		return
	}

	history, err := h.CalculatorService.GetHistory(c.Request.Context(), userID, kind)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *Handler) SelectCalculatorResult(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	kind := calculator.Kind(c.Param("kind"))
	if !kind.IsValid() {
		h.respondError(c, appErrors.NewValidationError("kind", "unknown calculator"))
		return
	}

	snapshotID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "must be a valid ULID"))
		return
	}

	snapshot, err := h.CalculatorService.SelectFromHistory(c.Request.Context(), userID, kind, snapshotID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
