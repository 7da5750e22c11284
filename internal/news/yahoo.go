package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// YahooNewsSource scrapes headlines from the Yahoo Finance quote page.
type YahooNewsSource struct {
	Client   *http.Client
	PerLimit int
}

// NewYahooNewsSource creates the source with optional proxy support.
func NewYahooNewsSource(proxyURL string, timeout time.Duration, perLimit int) *YahooNewsSource {
	if perLimit <= 0 {
		perLimit = 5
	}
	return &YahooNewsSource{Client: newHTTPClient(proxyURL, timeout), PerLimit: perLimit}
}

func (s *YahooNewsSource) Name() string { return "yahoo-finance" }

// storyKeywords marks a generic heading as news-like when no tagged
// headline elements are present.
var storyKeywords = []string{"stock", "shares", "earnings", "revenue", "profit", "loss"}

func (s *YahooNewsSource) Fetch(ctx context.Context, _, symbol string) ([]string, error) {
	pageURL := fmt.Sprintf("https://finance.yahoo.com/quote/%s/news", url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo news fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo news: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo news parse: %w", err)
	}

	headlines := make([]string, 0, s.PerLimit)
	doc.Find("h3, h4").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		if !strings.Contains(strings.ToLower(class), "headline") {
			return true
		}
		if text := cleanHeadline(sel.Text()); len(text) > 10 {
			headlines = append(headlines, text)
		}
		return len(headlines) < s.PerLimit
	})

	// Fallback: any heading that reads like a market story.
	if len(headlines) == 0 {
		doc.Find("h3, h4").EachWithBreak(func(i int, sel *goquery.Selection) bool {
			if i >= 10 {
				return false
			}
			text := cleanHeadline(sel.Text())
			if len(text) > 20 && containsAny(strings.ToLower(text), storyKeywords) {
				headlines = append(headlines, text)
			}
			return len(headlines) < s.PerLimit
		})
	}

	return headlines, nil
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
