package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/shared"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/logger"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

type Service struct {
	Repository  Repository
	UserChecker *shared.UserCheckerService
}

func NewService(repository Repository, userChecker *shared.UserCheckerService) *Service {
	return &Service{Repository: repository, UserChecker: userChecker}
}

// MonthlySummary is the ledger slice of the dashboard: cash flow for one
// calendar month plus standing asset and liability totals.
type MonthlySummary struct {
	Month            string  `json:"month"`
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	NetCashFlow      float64 `json:"netCashFlow"`
	TotalAssets      float64 `json:"totalAssets"`
	TotalLiabilities float64 `json:"totalLiabilities"`
	NetWorth         float64 `json:"netWorth"`
}

func (s *Service) Create(ctx context.Context, entry *Entry) error {
	if err := s.ensureUser(ctx, entry.UserId); err != nil {
		return err
	}
	if err := validateEntry(entry); err != nil {
		return err
	}

	entry.Id = pkg.GenerateULIDObject()
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	if err := s.Repository.Create(ctx, entry); err != nil {
		return err
	}

	logger.Info().
		Str("user_id", entry.UserId.String()).
		Str("entry_id", entry.Id.String()).
		Str("kind", string(entry.Kind)).
		Msg("ledger entry created")

	return nil
}

func (s *Service) Update(ctx context.Context, userID ulid.ULID, entry *Entry) error {
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}

	existing, err := s.Repository.GetByID(ctx, entry.Id)
	if err != nil {
		return err
	}
	if existing.UserId != userID {
		return appErrors.ErrResourceNotOwned
	}
	entry.UserId = userID
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = existing.RecordedAt
	}

	if err := validateEntry(entry); err != nil {
		return err
	}

	return s.Repository.Update(ctx, entry)
}

func (s *Service) Delete(ctx context.Context, userID, entryID ulid.ULID) error {
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}

	existing, err := s.Repository.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if existing.UserId != userID {
		return appErrors.ErrResourceNotOwned
	}

	return s.Repository.Delete(ctx, entryID)
}

func (s *Service) GetByID(ctx context.Context, userID, entryID ulid.ULID) (*Entry, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.Repository.GetByIDAndUser(ctx, entryID, userID)
}

func (s *Service) GetAll(ctx context.Context, userID ulid.ULID, kind *Kind, pagination *pkg.PaginationParams) ([]*Entry, int64, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, 0, err
	}
	if kind != nil && !kind.IsValid() {
		return nil, 0, appErrors.NewValidationError("kind", "must be one of: income, expense, asset, liability")
	}
	return s.Repository.GetAll(ctx, userID, kind, pagination)
}

// GetMonthlySummary aggregates the user's ledger for the month containing ref.
// Assets and liabilities are standing balances, so they are summed across all
// time rather than the month window.
func (s *Service) GetMonthlySummary(ctx context.Context, userID ulid.ULID, ref time.Time) (*MonthlySummary, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	allTime := time.Time{}
	farFuture := time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

	income, err := s.Repository.SumByKind(ctx, userID, KindIncome, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	expenses, err := s.Repository.SumByKind(ctx, userID, KindExpense, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	assets, err := s.Repository.SumByKind(ctx, userID, KindAsset, allTime, farFuture)
	if err != nil {
		return nil, err
	}
	liabilities, err := s.Repository.SumByKind(ctx, userID, KindLiability, allTime, farFuture)
	if err != nil {
		return nil, err
	}

	return &MonthlySummary{
		Month:            monthStart.Format("2006-01"),
		TotalIncome:      income,
		TotalExpenses:    expenses,
		NetCashFlow:      income - expenses,
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		NetWorth:         assets - liabilities,
	}, nil
}

func validateEntry(entry *Entry) error {
	if !entry.Kind.IsValid() {
		return appErrors.NewValidationError("kind", "must be one of: income, expense, asset, liability")
	}
	if strings.TrimSpace(entry.Label) == "" {
		return appErrors.NewValidationError("label", "is required")
	}
	if entry.Amount <= 0 {
		return appErrors.NewValidationError("amount", "must be greater than zero")
	}
	return nil
}

func (s *Service) ensureUser(ctx context.Context, userID ulid.ULID) error {
	if s.UserChecker == nil {
		return nil
	}
	return s.UserChecker.EnsureUserExists(ctx, userID)
}
