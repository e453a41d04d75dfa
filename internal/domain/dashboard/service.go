package dashboard

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/ledger"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/market"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/news"
)

const headlineCount = 5

// Service composes the dashboard from the market, news and ledger domains.
type Service struct {
	Market *market.Service
	News   *news.Service
	Ledger *ledger.Service
}

func NewService(marketSvc *market.Service, newsSvc *news.Service, ledgerSvc *ledger.Service) *Service {
	return &Service{Market: marketSvc, News: newsSvc, Ledger: ledgerSvc}
}

type WatchlistQuote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	LastPrice     float64 `json:"lastPrice"`
	ChangePercent float64 `json:"changePercent"`
	Fallback      bool    `json:"fallback"`
}

type DashboardResponse struct {
	Summary   *ledger.MonthlySummary `json:"summary"`
	Watchlist []*WatchlistQuote      `json:"watchlist"`
	Headlines []news.Article         `json:"headlines"`
}

func (s *Service) GetDashboard(ctx context.Context, userID ulid.ULID, month, year int) (*DashboardResponse, error) {
	now := time.Now()
	if month <= 0 || month > 12 {
		month = int(now.Month())
	}
	if year <= 0 {
		year = now.Year()
	}
	ref := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())

	summary, err := s.Ledger.GetMonthlySummary(ctx, userID, ref)
	if err != nil {
		return nil, err
	}

	quotes, err := s.watchlistQuotes(ctx, userID)
	if err != nil {
		return nil, err
	}

	headlines := s.headlines(ctx)

	return &DashboardResponse{
		Summary:   summary,
		Watchlist: quotes,
		Headlines: headlines,
	}, nil
}

// watchlistQuotes serves from the market cache where possible and fetches the
// rest, so a dashboard load never fans out to the provider for symbols the
// scheduled refresh already covered.
func (s *Service) watchlistQuotes(ctx context.Context, userID ulid.ULID) ([]*WatchlistQuote, error) {
	items, err := s.Market.GetWatchlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	quotes := make([]*WatchlistQuote, 0, len(items))
	for _, item := range items {
		series, ok := s.Market.CachedSeries(item.Symbol, market.IntervalDaily)
		if !ok {
			series, err = s.Market.GetTimeSeries(ctx, item.Symbol, market.IntervalDaily, market.OutputCompact)
			if err != nil {
				return nil, err
			}
		}

		quote := &WatchlistQuote{
			Symbol:        item.Symbol,
			Name:          item.Name,
			ChangePercent: series.ChangePercent,
			Fallback:      series.Fallback,
		}
		if n := len(series.Data); n > 0 {
			quote.LastPrice = series.Data[n-1].Value
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

func (s *Service) headlines(ctx context.Context) []news.Article {
	digest, err := s.News.GetDigest(ctx)
	if err != nil || digest == nil {
		return nil
	}
	headlines := make([]news.Article, 0, headlineCount)
	for _, article := range append(digest.Financial, digest.Global...) {
		headlines = append(headlines, article)
		if len(headlines) == headlineCount {
			break
		}
	}
	return headlines
}
