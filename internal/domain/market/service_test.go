package market_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/market"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

type fakeDataProvider struct {
	fetchFn func(ctx context.Context, symbol string, interval market.Interval, outputSize market.OutputSize) (*market.TimeSeries, error)
}

func (f *fakeDataProvider) FetchTimeSeries(ctx context.Context, symbol string, interval market.Interval, outputSize market.OutputSize) (*market.TimeSeries, error) {
	if f.fetchFn != nil {
		return f.fetchFn(ctx, symbol, interval, outputSize)
	}
	return &market.TimeSeries{
		Metadata: market.Metadata{Symbol: symbol},
		Data:     []market.PricePoint{{Date: "2026-08-31", Value: 100}},
	}, nil
}

type fakeWatchlistRepository struct {
	addFn         func(ctx context.Context, item *market.WatchlistItem) error
	removeFn      func(ctx context.Context, userID ulid.ULID, symbol string) error
	listByUserFn  func(ctx context.Context, userID ulid.ULID) ([]*market.WatchlistItem, error)
	countByUserFn func(ctx context.Context, userID ulid.ULID) (int64, error)
	listSymbolsFn func(ctx context.Context) ([]string, error)
}

func (f *fakeWatchlistRepository) Add(ctx context.Context, item *market.WatchlistItem) error {
	if f.addFn != nil {
		return f.addFn(ctx, item)
	}
	return nil
}

func (f *fakeWatchlistRepository) Remove(ctx context.Context, userID ulid.ULID, symbol string) error {
	if f.removeFn != nil {
		return f.removeFn(ctx, userID, symbol)
	}
	return nil
}

func (f *fakeWatchlistRepository) ListByUser(ctx context.Context, userID ulid.ULID) ([]*market.WatchlistItem, error) {
	if f.listByUserFn != nil {
		return f.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeWatchlistRepository) CountByUser(ctx context.Context, userID ulid.ULID) (int64, error) {
	if f.countByUserFn != nil {
		return f.countByUserFn(ctx, userID)
	}
	return 0, nil
}

func (f *fakeWatchlistRepository) ListSymbols(ctx context.Context) ([]string, error) {
	if f.listSymbolsFn != nil {
		return f.listSymbolsFn(ctx)
	}
	return nil, nil
}

func TestGetTimeSeriesNormalizesAndCaches(t *testing.T) {
	t.Parallel()

	var fetchedSymbol string
	var fetchedInterval market.Interval
	svc := market.NewService(&fakeDataProvider{
		fetchFn: func(_ context.Context, symbol string, interval market.Interval, _ market.OutputSize) (*market.TimeSeries, error) {
			fetchedSymbol = symbol
			fetchedInterval = interval
			return &market.TimeSeries{Metadata: market.Metadata{Symbol: symbol}}, nil
		},
	}, &fakeWatchlistRepository{}, nil)

	series, err := svc.GetTimeSeries(context.Background(), "  tcs ", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetchedSymbol != "TCS" {
		t.Fatalf("expected symbol normalized to TCS, got %q", fetchedSymbol)
	}
	if fetchedInterval != market.IntervalDaily {
		t.Fatalf("expected default interval daily, got %q", fetchedInterval)
	}
	if series.Fallback {
		t.Fatalf("expected live series, got fallback")
	}

	cached, ok := svc.CachedSeries("TCS", market.IntervalDaily)
	if !ok || cached != series {
		t.Fatalf("expected the series to be cached")
	}
}

func TestGetTimeSeriesValidation(t *testing.T) {
	t.Parallel()

	svc := market.NewService(&fakeDataProvider{}, &fakeWatchlistRepository{}, nil)
	ctx := context.Background()

	if _, err := svc.GetTimeSeries(ctx, "   ", market.IntervalDaily, market.OutputCompact); err == nil {
		t.Fatalf("expected error for blank symbol")
	}
	if _, err := svc.GetTimeSeries(ctx, "TCS", "hourly", market.OutputCompact); err == nil {
		t.Fatalf("expected error for unknown interval")
	}
}

func TestGetTimeSeriesFallbackOnProviderFailure(t *testing.T) {
	t.Parallel()

	svc := market.NewService(&fakeDataProvider{
		fetchFn: func(_ context.Context, _ string, _ market.Interval, _ market.OutputSize) (*market.TimeSeries, error) {
			return nil, errors.New("upstream down")
		},
	}, &fakeWatchlistRepository{}, nil)

	series, err := svc.GetTimeSeries(context.Background(), "INFY", market.IntervalDaily, market.OutputCompact)
	if err != nil {
		t.Fatalf("expected fallback instead of error, got %v", err)
	}
	if !series.Fallback {
		t.Fatalf("expected fallback series")
	}
	if series.Metadata.Symbol != "INFY" {
		t.Fatalf("expected symbol INFY, got %q", series.Metadata.Symbol)
	}
	if len(series.Data) == 0 {
		t.Fatalf("expected synthesized data points")
	}
	for _, point := range series.Data {
		if point.Value <= 0 {
			t.Fatalf("synthesized prices must stay positive, got %v", point.Value)
		}
	}

	// The synthesized curve is deterministic per symbol.
	again, err := svc.GetTimeSeries(context.Background(), "INFY", market.IntervalDaily, market.OutputCompact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again.Data) != len(series.Data) {
		t.Fatalf("expected identical series length, got %d vs %d", len(again.Data), len(series.Data))
	}
	for i := range series.Data {
		if again.Data[i].Value != series.Data[i].Value {
			t.Fatalf("point %d differs between runs: %v vs %v", i, again.Data[i].Value, series.Data[i].Value)
		}
	}
}

func TestGetTimeSeriesSupersededBySameSymbol(t *testing.T) {
	t.Parallel()

	firstInFlight := make(chan struct{})
	svc := market.NewService(&fakeDataProvider{
		fetchFn: func(ctx context.Context, _ string, _ market.Interval, _ market.OutputSize) (*market.TimeSeries, error) {
			select {
			case <-firstInFlight:
				// Second call: respond immediately.
				return &market.TimeSeries{Metadata: market.Metadata{Symbol: "TCS"}}, nil
			default:
			}
			close(firstInFlight)
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}, &fakeWatchlistRepository{}, nil)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.GetTimeSeries(context.Background(), "TCS", market.IntervalDaily, market.OutputCompact)
		errCh <- err
	}()

	<-firstInFlight
	if _, err := svc.GetTimeSeries(context.Background(), "TCS", market.IntervalDaily, market.OutputCompact); err != nil {
		t.Fatalf("unexpected error on the superseding fetch: %v", err)
	}

	err := <-errCh
	if err == nil {
		t.Fatalf("expected the first fetch to be superseded")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != "REQUEST_SUPERSEDED" {
		t.Fatalf("expected REQUEST_SUPERSEDED, got %s", appErr.Code)
	}
	if appErr.StatusCode != 409 {
		t.Fatalf("expected status 409, got %d", appErr.StatusCode)
	}
}

func TestAddToWatchlist(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	var added *market.WatchlistItem
	svc := market.NewService(&fakeDataProvider{}, &fakeWatchlistRepository{
		addFn: func(_ context.Context, item *market.WatchlistItem) error {
			added = item
			return nil
		},
	}, nil)

	item, err := svc.AddToWatchlist(context.Background(), userID, " tcs ", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != item {
		t.Fatalf("expected item handed to the repository")
	}
	if item.Symbol != "TCS" {
		t.Fatalf("expected normalized symbol TCS, got %q", item.Symbol)
	}
	if item.Name != "TCS" {
		t.Fatalf("expected name to default to the symbol, got %q", item.Name)
	}
	if item.UserId != userID {
		t.Fatalf("expected owner %s, got %s", userID, item.UserId)
	}
}

func TestAddToWatchlistLimit(t *testing.T) {
	t.Parallel()

	svc := market.NewService(&fakeDataProvider{}, &fakeWatchlistRepository{
		countByUserFn: func(_ context.Context, _ ulid.ULID) (int64, error) {
			return 20, nil
		},
		addFn: func(_ context.Context, _ *market.WatchlistItem) error {
			t.Fatalf("add must not be called once the limit is reached")
			return nil
		},
	}, nil)

	_, err := svc.AddToWatchlist(context.Background(), ulid.Make(), "TCS", "")
	if err == nil {
		t.Fatalf("expected limit error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
}

func TestRemoveFromWatchlistPropagatesNotWatched(t *testing.T) {
	t.Parallel()

	svc := market.NewService(&fakeDataProvider{}, &fakeWatchlistRepository{
		removeFn: func(_ context.Context, _ ulid.ULID, _ string) error {
			return appErrors.ErrSymbolNotWatched
		},
	}, nil)

	err := svc.RemoveFromWatchlist(context.Background(), ulid.Make(), "TCS")
	if !errors.Is(err, appErrors.ErrSymbolNotWatched) {
		t.Fatalf("expected ErrSymbolNotWatched, got %v", err)
	}
}
