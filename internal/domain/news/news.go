package news

import "context"

// Section identifies which upstream feed an article set comes from.
type Section string

const (
	SectionGlobal    Section = "global"
	SectionFinancial Section = "financial"
)

func (s Section) IsValid() bool {
	switch s {
	case SectionGlobal, SectionFinancial:
		return true
	}
	return false
}

type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentBearish Sentiment = "bearish"
	SentimentNeutral Sentiment = "neutral"
)

type Article struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	Source    string    `json:"source"`
	ImageURL  string    `json:"imageUrl"`
	URL       string    `json:"url"`
	Sentiment Sentiment `json:"sentiment"`
	Tickers   []string  `json:"tickers,omitempty"`
}

type StockRef struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Change float64 `json:"change"`
}

type TrendingStock struct {
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Change    float64   `json:"change"`
	Sentiment Sentiment `json:"sentiment"`
	Headlines []string  `json:"headlines"`
}

type Sector struct {
	Name      string     `json:"name"`
	Change    float64    `json:"change"`
	Sentiment Sentiment  `json:"sentiment"`
	TopStocks []StockRef `json:"topStocks"`
}

// Digest is the aggregated news payload served to the dashboard.
type Digest struct {
	Global         []Article       `json:"global"`
	Financial      []Article       `json:"financial"`
	TrendingStocks []TrendingStock `json:"trendingStocks"`
	Sectors        []Sector        `json:"sectors"`
	Fallback       bool            `json:"fallback"`
}

// ArticleProvider is the outbound news collaborator.
type ArticleProvider interface {
	FetchArticles(ctx context.Context, section Section) ([]Article, error)
}
