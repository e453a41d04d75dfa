package news

import "time"

// Demo dataset served when the upstream feed is unreachable. Mirrors the
// Indian-market focus of the rest of the platform.

func mockArticles(section Section, now time.Time) []Article {
	date := now.Format("Jan 2, 2006")
	if section == SectionFinancial {
		return []Article{
			{
				Id:        "mock-financial-1",
				Title:     "Sensex Hits New All-Time High Above 73,000",
				Excerpt:   "BSE Sensex reaches record levels driven by strong earnings and positive global sentiment.",
				Category:  "Stock Market",
				Date:      date,
				Source:    "CNBC TV18",
				ImageURL:  "/og-image.png",
				URL:       "#",
				Sentiment: SentimentBullish,
				Tickers:   []string{"SENSEX", "TCS", "RELIANCE"},
			},
			{
				Id:        "mock-financial-2",
				Title:     "TCS Announces ₹18,000 Crore Share Buyback",
				Excerpt:   "India's largest IT services company announces significant shareholder return program.",
				Category:  "Corporate Action",
				Date:      date,
				Source:    "Financial Express",
				ImageURL:  "/og-image.png",
				URL:       "#",
				Sentiment: SentimentBullish,
				Tickers:   []string{"TCS"},
			},
			{
				Id:        "mock-financial-3",
				Title:     "HDFC Bank-HDFC Merger Creates Banking Giant",
				Excerpt:   "Successful merger creates India's largest private sector bank with enhanced market position.",
				Category:  "Banking",
				Date:      date,
				Source:    "Money Control",
				ImageURL:  "/og-image.png",
				URL:       "#",
				Sentiment: SentimentBullish,
				Tickers:   []string{"HDFCBANK"},
			},
			{
				Id:        "mock-financial-4",
				Title:     "Reliance New Energy Ventures Gets ₹50,000 Crore Investment",
				Excerpt:   "Major funding round for renewable energy initiatives as India pushes green transition.",
				Category:  "Energy",
				Date:      date,
				Source:    "Bloomberg Quint",
				ImageURL:  "/og-image.png",
				URL:       "#",
				Sentiment: SentimentBullish,
				Tickers:   []string{"RELIANCE"},
			},
		}
	}
	return []Article{
		{
			Id:        "mock-global-1",
			Title:     "RBI Keeps Repo Rate Unchanged at 6.5%",
			Excerpt:   "Reserve Bank of India maintains accommodative stance amid inflation concerns and global economic uncertainty.",
			Category:  "Economy",
			Date:      date,
			Source:    "Economic Times",
			ImageURL:  "/og-image.png",
			URL:       "#",
			Sentiment: SentimentNeutral,
			Tickers:   []string{"RBI"},
		},
		{
			Id:        "mock-global-2",
			Title:     "India GDP Growth Expected at 6.3% for FY24",
			Excerpt:   "Government economic survey projects steady growth driven by domestic consumption and investment recovery.",
			Category:  "Economy",
			Date:      date,
			Source:    "Business Standard",
			ImageURL:  "/og-image.png",
			URL:       "#",
			Sentiment: SentimentBullish,
		},
		{
			Id:        "mock-global-3",
			Title:     "Monsoon Forecast Positive for Agricultural Sector",
			Excerpt:   "IMD predicts normal monsoon, boosting hopes for agricultural output and rural demand recovery.",
			Category:  "Agriculture",
			Date:      date,
			Source:    "Hindu BusinessLine",
			ImageURL:  "/og-image.png",
			URL:       "#",
			Sentiment: SentimentBullish,
		},
		{
			Id:        "mock-global-4",
			Title:     "Foreign Portfolio Investment Flows Turn Positive",
			Excerpt:   "FPIs invest ₹15,000 crores in Indian markets this month after three months of outflows.",
			Category:  "Investment",
			Date:      date,
			Source:    "Mint",
			ImageURL:  "/og-image.png",
			URL:       "#",
			Sentiment: SentimentBullish,
		},
	}
}

func mockTrendingStocks() []TrendingStock {
	return []TrendingStock{
		{
			Symbol:    "TCS",
			Name:      "Tata Consultancy Services",
			Change:    2.45,
			Sentiment: SentimentBullish,
			Headlines: []string{"TCS Reports Strong Q3 Results", "TCS Wins Major Banking Deal in Europe"},
		},
		{
			Symbol:    "RELIANCE",
			Name:      "Reliance Industries",
			Change:    -1.23,
			Sentiment: SentimentBearish,
			Headlines: []string{"Reliance Retail Expansion Plans", "Oil Price Impact on Reliance"},
		},
		{
			Symbol:    "INFY",
			Name:      "Infosys Limited",
			Change:    3.12,
			Sentiment: SentimentBullish,
			Headlines: []string{"Infosys AI Platform Launch", "Strong Digital Transformation Growth"},
		},
		{
			Symbol:    "HDFCBANK",
			Name:      "HDFC Bank Limited",
			Change:    0.87,
			Sentiment: SentimentNeutral,
			Headlines: []string{"HDFC Bank Merger Updates", "Digital Banking Initiatives"},
		},
		{
			Symbol:    "BHARTIARTL",
			Name:      "Bharti Airtel Limited",
			Change:    1.95,
			Sentiment: SentimentBullish,
			Headlines: []string{"5G Rollout Acceleration", "Africa Operations Growth"},
		},
	}
}

func mockSectors() []Sector {
	return []Sector{
		{
			Name:      "Information Technology",
			Change:    2.8,
			Sentiment: SentimentBullish,
			TopStocks: []StockRef{
				{Symbol: "TCS", Name: "Tata Consultancy Services", Change: 2.45},
				{Symbol: "INFY", Name: "Infosys Limited", Change: 3.12},
			},
		},
		{
			Name:      "Banking & Financial Services",
			Change:    1.2,
			Sentiment: SentimentNeutral,
			TopStocks: []StockRef{
				{Symbol: "HDFCBANK", Name: "HDFC Bank Limited", Change: 0.87},
				{Symbol: "ICICIBANK", Name: "ICICI Bank Limited", Change: 1.45},
			},
		},
		{
			Name:      "Oil & Gas",
			Change:    -0.65,
			Sentiment: SentimentBearish,
			TopStocks: []StockRef{
				{Symbol: "RELIANCE", Name: "Reliance Industries", Change: -1.23},
				{Symbol: "ONGC", Name: "Oil & Natural Gas Corp", Change: -0.89},
			},
		},
		{
			Name:      "Telecommunications",
			Change:    1.8,
			Sentiment: SentimentBullish,
			TopStocks: []StockRef{
				{Symbol: "BHARTIARTL", Name: "Bharti Airtel Limited", Change: 1.95},
				{Symbol: "IDEA", Name: "Vodafone Idea Limited", Change: 2.34},
			},
		},
	}
}
