package calculator

import (
	"math"
	"time"

	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

type GoalPriority string

const (
	PriorityHigh   GoalPriority = "high"
	PriorityMedium GoalPriority = "medium"
	PriorityLow    GoalPriority = "low"
)

func (p GoalPriority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type GoalInput struct {
	Name                string       `json:"name"`
	TargetAmount        float64      `json:"targetAmount"`
	CurrentAmount       float64      `json:"currentAmount"`
	TargetDate          string       `json:"targetDate"`
	Priority            GoalPriority `json:"priority"`
	MonthlyContribution float64      `json:"monthlyContribution"`
}

type GoalPlanInput struct {
	Goals []GoalInput `json:"goals"`
}

// GoalProjection augments one goal with its timeline. A goal with no
// contribution and an unmet target is unreachable: MonthsToGoal is -1,
// Reachable is false, and it is never on track.
type GoalProjection struct {
	GoalInput

	Remaining     float64 `json:"remaining"`
	MonthsToGoal  int     `json:"monthsToGoal"`
	Reachable     bool    `json:"reachable"`
	ProjectedDate string  `json:"projectedDate,omitempty"`
	OnTrack       bool    `json:"onTrack"`
}

type GoalPlanResult struct {
	Goals []GoalProjection `json:"goals"`

	TotalTargetAmount       float64 `json:"totalTargetAmount"`
	TotalCurrentAmount      float64 `json:"totalCurrentAmount"`
	TotalMonthlyContribution float64 `json:"totalMonthlyContribution"`
}

// CalculateGoalPlan projects each goal's completion date from its remaining
// amount and monthly contribution, evaluated against today.
func CalculateGoalPlan(input GoalPlanInput, today time.Time) (*GoalPlanResult, error) {
	projections := make([]GoalProjection, 0, len(input.Goals))
	totalTarget := 0.0
	totalCurrent := 0.0
	totalContribution := 0.0

	for _, goal := range input.Goals {
		if goal.TargetAmount <= 0 {
			return nil, appErrors.NewValidationError("targetAmount", "must be greater than zero")
		}
		if goal.CurrentAmount < 0 {
			return nil, appErrors.NewValidationError("currentAmount", "must not be negative")
		}
		if goal.MonthlyContribution < 0 {
			return nil, appErrors.NewValidationError("monthlyContribution", "must not be negative")
		}
		if !goal.Priority.IsValid() {
			return nil, appErrors.NewValidationError("priority", "must be one of: high, medium, low")
		}

		totalTarget += goal.TargetAmount
		totalCurrent += goal.CurrentAmount
		totalContribution += goal.MonthlyContribution

		projections = append(projections, projectGoal(goal, today))
	}

	return &GoalPlanResult{
		Goals:                    projections,
		TotalTargetAmount:        totalTarget,
		TotalCurrentAmount:       totalCurrent,
		TotalMonthlyContribution: totalContribution,
	}, nil
}

func projectGoal(goal GoalInput, today time.Time) GoalProjection {
	remaining := goal.TargetAmount - goal.CurrentAmount

	projection := GoalProjection{
		GoalInput: goal,
		Remaining: remaining,
	}

	if remaining <= 0 {
		projection.MonthsToGoal = 0
		projection.Reachable = true
		projection.ProjectedDate = today.Format("2006-01-02")
		projection.OnTrack = true
		return projection
	}

	if goal.MonthlyContribution <= 0 {
		projection.MonthsToGoal = -1
		projection.Reachable = false
		projection.OnTrack = false
		return projection
	}

	months := int(math.Ceil(remaining / goal.MonthlyContribution))
	projectedDate := today.AddDate(0, months, 0)

	projection.MonthsToGoal = months
	projection.Reachable = true
	projection.ProjectedDate = projectedDate.Format("2006-01-02")

	if targetDate, err := time.Parse("2006-01-02", goal.TargetDate); err == nil {
		projection.OnTrack = !targetDate.Before(projectedDate)
	}

	return projection
}
