package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/ledger"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

type fakeLedgerRepository struct {
	createFn         func(ctx context.Context, entry *ledger.Entry) error
	updateFn         func(ctx context.Context, entry *ledger.Entry) error
	deleteFn         func(ctx context.Context, entryID ulid.ULID) error
	getByIDFn        func(ctx context.Context, entryID ulid.ULID) (*ledger.Entry, error)
	getByIDAndUserFn func(ctx context.Context, entryID, userID ulid.ULID) (*ledger.Entry, error)
	getAllFn         func(ctx context.Context, userID ulid.ULID, kind *ledger.Kind, pagination *pkg.PaginationParams) ([]*ledger.Entry, int64, error)
	sumByKindFn      func(ctx context.Context, userID ulid.ULID, kind ledger.Kind, from, to time.Time) (float64, error)
}

func (f *fakeLedgerRepository) Create(ctx context.Context, entry *ledger.Entry) error {
	if f.createFn != nil {
		return f.createFn(ctx, entry)
	}
	return nil
}

func (f *fakeLedgerRepository) Update(ctx context.Context, entry *ledger.Entry) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, entry)
	}
	return nil
}

func (f *fakeLedgerRepository) Delete(ctx context.Context, entryID ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, entryID)
	}
	return nil
}

func (f *fakeLedgerRepository) GetByID(ctx context.Context, entryID ulid.ULID) (*ledger.Entry, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, entryID)
	}
	return nil, appErrors.ErrEntryNotFound
}

func (f *fakeLedgerRepository) GetByIDAndUser(ctx context.Context, entryID, userID ulid.ULID) (*ledger.Entry, error) {
	if f.getByIDAndUserFn != nil {
		return f.getByIDAndUserFn(ctx, entryID, userID)
	}
	return nil, appErrors.ErrEntryNotFound
}

func (f *fakeLedgerRepository) GetAll(ctx context.Context, userID ulid.ULID, kind *ledger.Kind, pagination *pkg.PaginationParams) ([]*ledger.Entry, int64, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, userID, kind, pagination)
	}
	return nil, 0, nil
}

func (f *fakeLedgerRepository) SumByKind(ctx context.Context, userID ulid.ULID, kind ledger.Kind, from, to time.Time) (float64, error) {
	if f.sumByKindFn != nil {
		return f.sumByKindFn(ctx, userID, kind, from, to)
	}
	return 0, nil
}

func TestCreateEntry(t *testing.T) {
	t.Parallel()

	var created *ledger.Entry
	svc := ledger.NewService(&fakeLedgerRepository{
		createFn: func(_ context.Context, entry *ledger.Entry) error {
			created = entry
			return nil
		},
	}, nil)

	entry := &ledger.Entry{
		UserId: ulid.Make(),
		Kind:   ledger.KindIncome,
		Label:  "Salary",
		Amount: 50000,
	}
	if err := svc.Create(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created != entry {
		t.Fatalf("expected entry handed to the repository")
	}
	if entry.Id == (ulid.ULID{}) {
		t.Fatalf("expected an id to be assigned")
	}
	if entry.RecordedAt.IsZero() {
		t.Fatalf("expected recordedAt to default to now")
	}
}

func TestCreateEntryValidations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry *ledger.Entry
	}{
		{
			name:  "unknown kind",
			entry: &ledger.Entry{Kind: "transfer", Label: "x", Amount: 1},
		},
		{
			name:  "blank label",
			entry: &ledger.Entry{Kind: ledger.KindExpense, Label: "   ", Amount: 1},
		},
		{
			name:  "non-positive amount",
			entry: &ledger.Entry{Kind: ledger.KindExpense, Label: "Rent", Amount: 0},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := ledger.NewService(&fakeLedgerRepository{
				createFn: func(_ context.Context, _ *ledger.Entry) error {
					t.Fatalf("create must not be called for invalid entries")
					return nil
				},
			}, nil)

			tt.entry.UserId = ulid.Make()
			err := svc.Create(context.Background(), tt.entry)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
			}
		})
	}
}

func TestUpdateEntryOwnership(t *testing.T) {
	t.Parallel()

	owner := ulid.Make()
	intruder := ulid.Make()
	entryID := ulid.Make()

	svc := ledger.NewService(&fakeLedgerRepository{
		getByIDFn: func(_ context.Context, _ ulid.ULID) (*ledger.Entry, error) {
			return &ledger.Entry{Id: entryID, UserId: owner, Kind: ledger.KindExpense, Label: "Rent", Amount: 1000}, nil
		},
		updateFn: func(_ context.Context, _ *ledger.Entry) error {
			t.Fatalf("update must not be called for a foreign entry")
			return nil
		},
	}, nil)

	err := svc.Update(context.Background(), intruder, &ledger.Entry{
		Id:     entryID,
		Kind:   ledger.KindExpense,
		Label:  "Rent",
		Amount: 1200,
	})
	if !errors.Is(err, appErrors.ErrResourceNotOwned) {
		t.Fatalf("expected ErrResourceNotOwned, got %v", err)
	}
}

func TestDeleteEntryOwnership(t *testing.T) {
	t.Parallel()

	owner := ulid.Make()
	entryID := ulid.Make()

	svc := ledger.NewService(&fakeLedgerRepository{
		getByIDFn: func(_ context.Context, _ ulid.ULID) (*ledger.Entry, error) {
			return &ledger.Entry{Id: entryID, UserId: owner}, nil
		},
	}, nil)

	if err := svc.Delete(context.Background(), ulid.Make(), entryID); !errors.Is(err, appErrors.ErrResourceNotOwned) {
		t.Fatalf("expected ErrResourceNotOwned, got %v", err)
	}
	if err := svc.Delete(context.Background(), owner, entryID); err != nil {
		t.Fatalf("expected owner delete to succeed, got %v", err)
	}
}

func TestGetAllRejectsUnknownKindFilter(t *testing.T) {
	t.Parallel()

	svc := ledger.NewService(&fakeLedgerRepository{}, nil)
	bad := ledger.Kind("transfer")
	_, _, err := svc.GetAll(context.Background(), ulid.Make(), &bad, nil)
	if err == nil {
		t.Fatalf("expected validation error for unknown kind filter")
	}
}

func TestGetMonthlySummary(t *testing.T) {
	t.Parallel()

	type sumCall struct {
		kind ledger.Kind
		from time.Time
		to   time.Time
	}

	var calls []sumCall
	svc := ledger.NewService(&fakeLedgerRepository{
		sumByKindFn: func(_ context.Context, _ ulid.ULID, kind ledger.Kind, from, to time.Time) (float64, error) {
			calls = append(calls, sumCall{kind: kind, from: from, to: to})
			switch kind {
			case ledger.KindIncome:
				return 50000, nil
			case ledger.KindExpense:
				return 34500, nil
			case ledger.KindAsset:
				return 365000, nil
			case ledger.KindLiability:
				return 287000, nil
			}
			return 0, nil
		},
	}, nil)

	ref := time.Date(2026, time.August, 17, 10, 0, 0, 0, time.UTC)
	summary, err := svc.GetMonthlySummary(context.Background(), ulid.Make(), ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Month != "2026-08" {
		t.Fatalf("expected month 2026-08, got %q", summary.Month)
	}
	if summary.NetCashFlow != 15500 {
		t.Fatalf("expected net cash flow 15500, got %.2f", summary.NetCashFlow)
	}
	if summary.NetWorth != 78000 {
		t.Fatalf("expected net worth 78000, got %.2f", summary.NetWorth)
	}

	if len(calls) != 4 {
		t.Fatalf("expected 4 aggregate queries, got %d", len(calls))
	}

	monthStart := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	for _, call := range calls {
		switch call.kind {
		case ledger.KindIncome, ledger.KindExpense:
			// Cash flow is windowed to the calendar month.
			if !call.from.Equal(monthStart) || !call.to.Equal(monthEnd) {
				t.Fatalf("expected month window for %s, got %v..%v", call.kind, call.from, call.to)
			}
		case ledger.KindAsset, ledger.KindLiability:
			// Standing balances are summed across all time.
			if !call.from.IsZero() {
				t.Fatalf("expected all-time window for %s, got from=%v", call.kind, call.from)
			}
		}
	}
}
