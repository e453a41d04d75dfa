package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/dashboard"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/ledger"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/market"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/news"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

type fakeDataProvider struct {
	fetchFn func(ctx context.Context, symbol string, interval market.Interval, outputSize market.OutputSize) (*market.TimeSeries, error)
}

func (f *fakeDataProvider) FetchTimeSeries(ctx context.Context, symbol string, interval market.Interval, outputSize market.OutputSize) (*market.TimeSeries, error) {
	if f.fetchFn != nil {
		return f.fetchFn(ctx, symbol, interval, outputSize)
	}
	return &market.TimeSeries{Metadata: market.Metadata{Symbol: symbol}}, nil
}

type fakeWatchlistRepository struct {
	listByUserFn func(ctx context.Context, userID ulid.ULID) ([]*market.WatchlistItem, error)
}

func (f *fakeWatchlistRepository) Add(ctx context.Context, item *market.WatchlistItem) error {
	return nil
}

func (f *fakeWatchlistRepository) Remove(ctx context.Context, userID ulid.ULID, symbol string) error {
	return nil
}

func (f *fakeWatchlistRepository) ListByUser(ctx context.Context, userID ulid.ULID) ([]*market.WatchlistItem, error) {
	if f.listByUserFn != nil {
		return f.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeWatchlistRepository) CountByUser(ctx context.Context, userID ulid.ULID) (int64, error) {
	return 0, nil
}

func (f *fakeWatchlistRepository) ListSymbols(ctx context.Context) ([]string, error) {
	return nil, nil
}

type fakeArticleProvider struct {
	fetchFn func(ctx context.Context, section news.Section) ([]news.Article, error)
}

func (f *fakeArticleProvider) FetchArticles(ctx context.Context, section news.Section) ([]news.Article, error) {
	if f.fetchFn != nil {
		return f.fetchFn(ctx, section)
	}
	return nil, nil
}

type fakeLedgerRepository struct {
	sumByKindFn func(ctx context.Context, userID ulid.ULID, kind ledger.Kind, from, to time.Time) (float64, error)
}

func (f *fakeLedgerRepository) Create(ctx context.Context, entry *ledger.Entry) error { return nil }
func (f *fakeLedgerRepository) Update(ctx context.Context, entry *ledger.Entry) error { return nil }
func (f *fakeLedgerRepository) Delete(ctx context.Context, entryID ulid.ULID) error   { return nil }
func (f *fakeLedgerRepository) GetByID(ctx context.Context, entryID ulid.ULID) (*ledger.Entry, error) {
	return nil, appErrors.ErrEntryNotFound
}
func (f *fakeLedgerRepository) GetByIDAndUser(ctx context.Context, entryID, userID ulid.ULID) (*ledger.Entry, error) {
	return nil, appErrors.ErrEntryNotFound
}
func (f *fakeLedgerRepository) GetAll(ctx context.Context, userID ulid.ULID, kind *ledger.Kind, pagination *pkg.PaginationParams) ([]*ledger.Entry, int64, error) {
	return nil, 0, nil
}
func (f *fakeLedgerRepository) SumByKind(ctx context.Context, userID ulid.ULID, kind ledger.Kind, from, to time.Time) (float64, error) {
	if f.sumByKindFn != nil {
		return f.sumByKindFn(ctx, userID, kind, from, to)
	}
	return 0, nil
}

func newDashboardService(provider *fakeDataProvider, watchlist *fakeWatchlistRepository, articles *fakeArticleProvider, entries *fakeLedgerRepository) *dashboard.Service {
	return dashboard.NewService(
		market.NewService(provider, watchlist, nil),
		news.NewService(articles),
		ledger.NewService(entries, nil),
	)
}

func TestGetDashboardDefaultsToCurrentMonth(t *testing.T) {
	t.Parallel()

	svc := newDashboardService(&fakeDataProvider{}, &fakeWatchlistRepository{}, &fakeArticleProvider{}, &fakeLedgerRepository{})

	response, err := svc.GetDashboard(context.Background(), ulid.Make(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := time.Now().Format("2006-01"); response.Summary.Month != want {
		t.Fatalf("expected summary for %s, got %s", want, response.Summary.Month)
	}
}

func TestGetDashboardExplicitMonth(t *testing.T) {
	t.Parallel()

	svc := newDashboardService(&fakeDataProvider{}, &fakeWatchlistRepository{}, &fakeArticleProvider{}, &fakeLedgerRepository{
		sumByKindFn: func(_ context.Context, _ ulid.ULID, kind ledger.Kind, _, _ time.Time) (float64, error) {
			if kind == ledger.KindIncome {
				return 50000, nil
			}
			return 0, nil
		},
	})

	response, err := svc.GetDashboard(context.Background(), ulid.Make(), 3, 2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if response.Summary.Month != "2026-03" {
		t.Fatalf("expected summary for 2026-03, got %s", response.Summary.Month)
	}
	if response.Summary.TotalIncome != 50000 {
		t.Fatalf("expected income 50000, got %.2f", response.Summary.TotalIncome)
	}
}

func TestGetDashboardServesQuotesFromCache(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	fetches := 0
	provider := &fakeDataProvider{
		fetchFn: func(_ context.Context, symbol string, _ market.Interval, _ market.OutputSize) (*market.TimeSeries, error) {
			fetches++
			return &market.TimeSeries{
				Metadata:      market.Metadata{Symbol: symbol, Name: symbol},
				Data:          []market.PricePoint{{Date: "2026-08-28", Value: 95}, {Date: "2026-08-31", Value: 100}},
				ChangePercent: 5.26,
			}, nil
		},
	}
	watchlist := &fakeWatchlistRepository{
		listByUserFn: func(_ context.Context, _ ulid.ULID) ([]*market.WatchlistItem, error) {
			return []*market.WatchlistItem{
				{Id: ulid.Make(), UserId: userID, Symbol: "TCS", Name: "Tata Consultancy Services"},
			}, nil
		},
	}

	marketSvc := market.NewService(provider, watchlist, nil)
	svc := dashboard.NewService(marketSvc, news.NewService(&fakeArticleProvider{}), ledger.NewService(&fakeLedgerRepository{}, nil))

	// Warm the cache the way the scheduled refresh would.
	if _, err := marketSvc.GetTimeSeries(context.Background(), "TCS", market.IntervalDaily, market.OutputCompact); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetches != 1 {
		t.Fatalf("expected 1 warm-up fetch, got %d", fetches)
	}

	response, err := svc.GetDashboard(context.Background(), userID, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetches != 1 {
		t.Fatalf("expected the dashboard to reuse the cache, provider fetched %d times", fetches)
	}
	if len(response.Watchlist) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(response.Watchlist))
	}
	quote := response.Watchlist[0]
	if quote.Symbol != "TCS" || quote.Name != "Tata Consultancy Services" {
		t.Fatalf("unexpected quote identity: %+v", quote)
	}
	if quote.LastPrice != 100 {
		t.Fatalf("expected last price 100, got %.2f", quote.LastPrice)
	}
	if quote.ChangePercent != 5.26 {
		t.Fatalf("expected change 5.26, got %.2f", quote.ChangePercent)
	}
}

func TestGetDashboardFetchesUncachedSymbols(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	fetched := map[string]int{}
	provider := &fakeDataProvider{
		fetchFn: func(_ context.Context, symbol string, _ market.Interval, _ market.OutputSize) (*market.TimeSeries, error) {
			fetched[symbol]++
			return &market.TimeSeries{
				Metadata: market.Metadata{Symbol: symbol},
				Data:     []market.PricePoint{{Date: "2026-08-31", Value: 42}},
			}, nil
		},
	}
	watchlist := &fakeWatchlistRepository{
		listByUserFn: func(_ context.Context, _ ulid.ULID) ([]*market.WatchlistItem, error) {
			return []*market.WatchlistItem{
				{Id: ulid.Make(), UserId: userID, Symbol: "INFY", Name: "Infosys"},
			}, nil
		},
	}

	svc := newDashboardService(provider, watchlist, &fakeArticleProvider{}, &fakeLedgerRepository{})

	response, err := svc.GetDashboard(context.Background(), userID, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetched["INFY"] != 1 {
		t.Fatalf("expected one fetch for the uncached symbol, got %d", fetched["INFY"])
	}
	if len(response.Watchlist) != 1 || response.Watchlist[0].LastPrice != 42 {
		t.Fatalf("unexpected watchlist: %+v", response.Watchlist)
	}
}

func TestGetDashboardHeadlinesFinancialFirstCappedAtFive(t *testing.T) {
	t.Parallel()

	articles := &fakeArticleProvider{
		fetchFn: func(_ context.Context, section news.Section) ([]news.Article, error) {
			if section == news.SectionFinancial {
				return []news.Article{{Id: "f1"}, {Id: "f2"}, {Id: "f3"}}, nil
			}
			return []news.Article{{Id: "g1"}, {Id: "g2"}, {Id: "g3"}}, nil
		},
	}

	svc := newDashboardService(&fakeDataProvider{}, &fakeWatchlistRepository{}, articles, &fakeLedgerRepository{})

	response, err := svc.GetDashboard(context.Background(), ulid.Make(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(response.Headlines) != 5 {
		t.Fatalf("expected 5 headlines, got %d", len(response.Headlines))
	}
	wantOrder := []string{"f1", "f2", "f3", "g1", "g2"}
	for i, want := range wantOrder {
		if response.Headlines[i].Id != want {
			t.Fatalf("headline %d: expected %s, got %s", i, want, response.Headlines[i].Id)
		}
	}
}

func TestGetDashboardPropagatesLedgerErrors(t *testing.T) {
	t.Parallel()

	svc := newDashboardService(&fakeDataProvider{}, &fakeWatchlistRepository{}, &fakeArticleProvider{}, &fakeLedgerRepository{
		sumByKindFn: func(_ context.Context, _ ulid.ULID, _ ledger.Kind, _, _ time.Time) (float64, error) {
			return 0, errors.New("db down")
		},
	})

	if _, err := svc.GetDashboard(context.Background(), ulid.Make(), 0, 0); err == nil {
		t.Fatalf("expected error")
	}
}
