package market

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/shared"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/logger"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

const maxWatchlistSize = 20

type Service struct {
	Provider    DataProvider
	Watchlist   WatchlistRepository
	UserChecker *shared.UserCheckerService

	cacheMu sync.RWMutex
	cache   map[string]*TimeSeries

	inflightMu sync.Mutex
	inflight   map[string]*inflightFetch
}

type inflightFetch struct {
	cancel context.CancelFunc
}

func NewService(provider DataProvider, watchlist WatchlistRepository, userChecker *shared.UserCheckerService) *Service {
	return &Service{
		Provider:    provider,
		Watchlist:   watchlist,
		UserChecker: userChecker,
		cache:       make(map[string]*TimeSeries),
		inflight:    make(map[string]*inflightFetch),
	}
}

// GetTimeSeries fetches price history for a symbol. A new request for a symbol
// cancels any fetch still in flight for that same symbol, so rapid symbol
// switching never lets a stale response land on top of a newer one. Provider
// failures degrade to a synthesized series instead of an error.
func (s *Service) GetTimeSeries(ctx context.Context, symbol string, interval Interval, outputSize OutputSize) (*TimeSeries, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, appErrors.NewValidationError("symbol", "is required")
	}
	if interval == "" {
		interval = IntervalDaily
	}
	if !interval.IsValid() {
		return nil, appErrors.NewValidationError("interval", "must be one of: daily, weekly, monthly")
	}
	if outputSize == "" {
		outputSize = OutputCompact
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	fetch := &inflightFetch{cancel: cancel}
	s.trackInflight(symbol, fetch)
	defer s.clearInflight(symbol, fetch)

	series, err := s.Provider.FetchTimeSeries(fetchCtx, symbol, interval, outputSize)
	if err != nil {
		if fetchCtx.Err() == context.Canceled && ctx.Err() == nil {
			// Superseded by a newer request for the same symbol.
			return nil, appErrors.NewAppError("REQUEST_SUPERSEDED", "Request superseded by a newer fetch", 409)
		}
		logger.Warn().
			Str("symbol", symbol).
			Err(err).
			Msg("market data fetch failed, serving fallback series")
		series = synthesizeSeries(symbol, interval, time.Now())
	}

	s.cacheMu.Lock()
	s.cache[cacheKey(symbol, interval)] = series
	s.cacheMu.Unlock()

	return series, nil
}

// CachedSeries returns the last series fetched for a symbol, if any.
func (s *Service) CachedSeries(symbol string, interval Interval) (*TimeSeries, bool) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	series, ok := s.cache[cacheKey(strings.ToUpper(strings.TrimSpace(symbol)), interval)]
	return series, ok
}

func (s *Service) trackInflight(symbol string, fetch *inflightFetch) {
	s.inflightMu.Lock()
	if prev, ok := s.inflight[symbol]; ok {
		prev.cancel()
	}
	s.inflight[symbol] = fetch
	s.inflightMu.Unlock()
}

func (s *Service) clearInflight(symbol string, fetch *inflightFetch) {
	s.inflightMu.Lock()
	if current, ok := s.inflight[symbol]; ok && current == fetch {
		delete(s.inflight, symbol)
	}
	s.inflightMu.Unlock()
	fetch.cancel()
}

func (s *Service) AddToWatchlist(ctx context.Context, userID ulid.ULID, symbol, name string) (*WatchlistItem, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, appErrors.NewValidationError("symbol", "is required")
	}

	count, err := s.Watchlist.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= maxWatchlistSize {
		return nil, appErrors.NewValidationError("symbol", "watchlist limit reached").WithDetails(map[string]interface{}{
			"limit": maxWatchlistSize,
		})
	}

	item := &WatchlistItem{
		Id:     pkg.GenerateULIDObject(),
		UserId: userID,
		Symbol: symbol,
		Name:   name,
	}
	if item.Name == "" {
		item.Name = symbol
	}
	if err := s.Watchlist.Add(ctx, item); err != nil {
		return nil, err
	}

	logger.Info().
		Str("user_id", userID.String()).
		Str("symbol", symbol).
		Msg("symbol added to watchlist")

	return item, nil
}

func (s *Service) RemoveFromWatchlist(ctx context.Context, userID ulid.ULID, symbol string) error {
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return appErrors.NewValidationError("symbol", "is required")
	}
	return s.Watchlist.Remove(ctx, userID, symbol)
}

func (s *Service) GetWatchlist(ctx context.Context, userID ulid.ULID) ([]*WatchlistItem, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.Watchlist.ListByUser(ctx, userID)
}

// RefreshWatched re-fetches every symbol currently on any user's watchlist
// into the cache. It is driven by the background scheduler.
func (s *Service) RefreshWatched(ctx context.Context) {
	symbols, err := s.Watchlist.ListSymbols(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list watched symbols for refresh")
		return
	}
	for _, symbol := range symbols {
		if _, err := s.GetTimeSeries(ctx, symbol, IntervalDaily, OutputCompact); err != nil {
			logger.Warn().Str("symbol", symbol).Err(err).Msg("scheduled refresh skipped symbol")
		}
	}
	logger.Debug().Int("symbols", len(symbols)).Msg("watchlist quote cache refreshed")
}

func (s *Service) ensureUser(ctx context.Context, userID ulid.ULID) error {
	if s.UserChecker == nil {
		return nil
	}
	return s.UserChecker.EnsureUserExists(ctx, userID)
}

func cacheKey(symbol string, interval Interval) string {
	return symbol + ":" + string(interval)
}
