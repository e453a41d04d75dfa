package calculator

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/shared"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

// Service runs the calculator engines and manages the calculator/results/
// history state machine: every calculate appends to history and becomes the
// current result; selecting from history is non-destructive.
type Service struct {
	History     HistoryStore
	UserChecker *shared.UserCheckerService
}

func NewService(history HistoryStore, userChecker *shared.UserCheckerService) *Service {
	return &Service{History: history, UserChecker: userChecker}
}

func (s *Service) CalculateLoan(ctx context.Context, userID ulid.ULID, input LoanInput) (*Snapshot, error) {
	result, err := CalculateLoan(input)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, userID, KindLoan, result)
}

func (s *Service) CalculateInvestment(ctx context.Context, userID ulid.ULID, input InvestmentInput) (*Snapshot, error) {
	result, err := CalculateInvestment(input)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, userID, KindInvestment, result)
}

func (s *Service) CalculateRetirement(ctx context.Context, userID ulid.ULID, input RetirementInput) (*Snapshot, error) {
	result, err := CalculateRetirement(input)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, userID, KindRetirement, result)
}

func (s *Service) CalculateBudget(ctx context.Context, userID ulid.ULID, input BudgetInput) (*Snapshot, error) {
	result, err := CalculateBudget(input)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, userID, KindBudget, result)
}

func (s *Service) CalculateNetWorth(ctx context.Context, userID ulid.ULID, input NetWorthInput) (*Snapshot, error) {
	result, err := CalculateNetWorth(input)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, userID, KindNetWorth, result)
}

func (s *Service) CalculateGoalPlan(ctx context.Context, userID ulid.ULID, input GoalPlanInput) (*Snapshot, error) {
	result, err := CalculateGoalPlan(input, time.Now())
	if err != nil {
		return nil, err
	}
	return s.record(ctx, userID, KindGoalPlan, result)
}

func (s *Service) GetCurrent(ctx context.Context, userID ulid.ULID, kind Kind) (*Snapshot, error) {
	if !kind.IsValid() {
		return nil, appErrors.NewValidationError("kind", "unknown calculator: "+string(kind))
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.History.Current(ctx, userID, kind)
}

func (s *Service) GetHistory(ctx context.Context, userID ulid.ULID, kind Kind) ([]*Snapshot, error) {
	if !kind.IsValid() {
		return nil, appErrors.NewValidationError("kind", "unknown calculator: "+string(kind))
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.History.List(ctx, userID, kind)
}

// SelectFromHistory copies a past snapshot into the current result slot. The
// entry stays in history.
func (s *Service) SelectFromHistory(ctx context.Context, userID ulid.ULID, kind Kind, id ulid.ULID) (*Snapshot, error) {
	if !kind.IsValid() {
		return nil, appErrors.NewValidationError("kind", "unknown calculator: "+string(kind))
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	snapshot, err := s.History.Get(ctx, userID, kind, id)
	if err != nil {
		return nil, err
	}

	if err := s.History.SetCurrent(ctx, userID, kind, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (s *Service) record(ctx context.Context, userID ulid.ULID, kind Kind, result interface{}) (*Snapshot, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Id:        pkg.GenerateULIDObject(),
		UserId:    userID,
		Kind:      kind,
		CreatedAt: time.Now(),
		Result:    result,
	}

	if err := s.History.Append(ctx, snapshot); err != nil {
		return nil, err
	}
	if err := s.History.SetCurrent(ctx, userID, kind, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (s *Service) ensureUser(ctx context.Context, userID ulid.ULID) error {
	if s.UserChecker == nil {
		return nil
	}
	return s.UserChecker.EnsureUserExists(ctx, userID)
}
