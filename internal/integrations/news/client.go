package news

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/config"
	newsdomain "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/news"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/logger"
)

const (
	serviceName        = "news provider"
	maxArticlesPerFeed = 10
)

// Client fetches market news from a Finnhub compatible API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.News.BaseURL,
		apiKey:  cfg.News.APIKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type apiArticle struct {
	ID       int64  `json:"id"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Datetime int64  `json:"datetime"`
	Source   string `json:"source"`
	Image    string `json:"image"`
	URL      string `json:"url"`
}

func (c *Client) FetchArticles(ctx context.Context, section newsdomain.Section) ([]newsdomain.Article, error) {
	endpoint, err := c.buildURL(section)
	if err != nil {
		return nil, appErrors.NewExternalServiceError(serviceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, appErrors.NewExternalServiceError(serviceName, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, appErrors.NewExternalServiceError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, appErrors.NewExternalServiceError(serviceName, fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.NewExternalServiceError(serviceName, err)
	}

	var raw []apiArticle
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, appErrors.NewExternalServiceError(serviceName, fmt.Errorf("failed to decode response: %w", err))
	}

	articles := processArticles(raw, section)
	logger.Debug().
		Str("section", string(section)).
		Int("articles", len(articles)).
		Msg("news fetched")

	return articles, nil
}

func (c *Client) buildURL(section newsdomain.Section) (string, error) {
	// Finnhub exposes general market news and a forex feed; the financial
	// section is backed by the latter.
	feed := "general"
	if section == newsdomain.SectionFinancial {
		feed = "forex"
	}

	u, err := url.Parse(c.baseURL + "/news")
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("category", feed)
	q.Set("token", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func processArticles(raw []apiArticle, section newsdomain.Section) []newsdomain.Article {
	category := "Global Economy"
	if section == newsdomain.SectionFinancial {
		category = "Financial Markets"
	}

	if len(raw) > maxArticlesPerFeed {
		raw = raw[:maxArticlesPerFeed]
	}

	articles := make([]newsdomain.Article, 0, len(raw))
	for i, item := range raw {
		article := newsdomain.Article{
			Id:        strconv.FormatInt(item.ID, 10),
			Title:     item.Headline,
			Excerpt:   item.Summary,
			Category:  category,
			Date:      time.Unix(item.Datetime, 0).Format("Jan 2, 2006"),
			Source:    item.Source,
			ImageURL:  item.Image,
			URL:       item.URL,
			Sentiment: sentimentFor(item.Headline),
			Tickers:   newsdomain.ExtractTickers(item.Headline),
		}
		if item.ID == 0 {
			article.Id = fmt.Sprintf("finnhub-%s-%d", section, i)
		}
		if article.Title == "" {
			article.Title = "No headline available"
		}
		if article.Excerpt == "" {
			article.Excerpt = "No description available."
		}
		if article.Source == "" {
			article.Source = "Finnhub"
		}
		if article.ImageURL == "" {
			article.ImageURL = "/og-image.png"
		}
		if article.URL == "" {
			article.URL = "#"
		}
		articles = append(articles, article)
	}
	return articles
}

// sentimentFor tags a headline with a stable pseudo-sentiment. Real scoring
// is out of scope; stability matters so repeated fetches agree.
func sentimentFor(headline string) newsdomain.Sentiment {
	h := fnv.New32a()
	h.Write([]byte(headline))
	switch h.Sum32() % 3 {
	case 0:
		return newsdomain.SentimentBullish
	case 1:
		return newsdomain.SentimentBearish
	default:
		return newsdomain.SentimentNeutral
	}
}
