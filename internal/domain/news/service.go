package news

import (
	"context"
	"sync"
	"time"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/logger"
)

type Service struct {
	Provider ArticleProvider
}

func NewService(provider ArticleProvider) *Service {
	return &Service{Provider: provider}
}

// GetDigest aggregates both news sections plus the trending-stock and sector
// snapshots. Each section degrades to the demo dataset independently when the
// upstream feed fails.
func (s *Service) GetDigest(ctx context.Context) (*Digest, error) {
	var wg sync.WaitGroup
	var global, financial []Article
	var globalFellBack, financialFellBack bool

	wg.Add(2)
	go func() {
		defer wg.Done()
		global, globalFellBack = s.fetchSection(ctx, SectionGlobal)
	}()
	go func() {
		defer wg.Done()
		financial, financialFellBack = s.fetchSection(ctx, SectionFinancial)
	}()
	wg.Wait()

	return &Digest{
		Global:         global,
		Financial:      financial,
		TrendingStocks: mockTrendingStocks(),
		Sectors:        mockSectors(),
		Fallback:       globalFellBack || financialFellBack,
	}, nil
}

// GetSection returns a single section's articles.
func (s *Service) GetSection(ctx context.Context, section Section) ([]Article, bool) {
	return s.fetchSection(ctx, section)
}

func (s *Service) fetchSection(ctx context.Context, section Section) ([]Article, bool) {
	articles, err := s.Provider.FetchArticles(ctx, section)
	if err != nil {
		logger.Warn().
			Str("section", string(section)).
			Err(err).
			Msg("news fetch failed, serving demo articles")
		return mockArticles(section, time.Now()), true
	}
	return articles, false
}
