package news

import (
	"regexp"
	"strings"
)

var indianStocks = map[string]struct{}{
	"TCS": {}, "INFY": {}, "WIPRO": {}, "HCLTECH": {}, "TECHM": {},
	"RELIANCE": {}, "HDFCBANK": {}, "ICICIBANK": {}, "SBIN": {},
	"KOTAKBANK": {}, "AXISBANK": {}, "BHARTIARTL": {}, "ITC": {},
	"HINDUNILVR": {}, "LT": {}, "ULTRACEMCO": {}, "MARUTI": {},
	"ASIANPAINT": {}, "NESTLEIND": {}, "BAJFINANCE": {}, "POWERGRID": {},
	"NTPC": {}, "ONGC": {}, "COALINDIA": {},
}

var tickerPattern = regexp.MustCompile(`\b[A-Z]{2,12}\b`)

// ExtractTickers pulls NSE symbols out of a headline, at most three.
func ExtractTickers(text string) []string {
	matches := tickerPattern.FindAllString(strings.ToUpper(text), -1)
	var tickers []string
	for _, m := range matches {
		if _, ok := indianStocks[m]; ok {
			tickers = append(tickers, m)
			if len(tickers) == 3 {
				break
			}
		}
	}
	return tickers
}
