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

// BingNewsSource scrapes headlines from Bing News search results.
type BingNewsSource struct {
	Client   *http.Client
	PerLimit int
}

// NewBingNewsSource creates the source with optional proxy support.
func NewBingNewsSource(proxyURL string, timeout time.Duration, perLimit int) *BingNewsSource {
	if perLimit <= 0 {
		perLimit = 5
	}
	return &BingNewsSource{Client: newHTTPClient(proxyURL, timeout), PerLimit: perLimit}
}

func (s *BingNewsSource) Name() string { return "bing-news" }

func (s *BingNewsSource) Fetch(ctx context.Context, companyName, symbol string) ([]string, error) {
	query := url.QueryEscape(companyName + " " + symbol + " news")
	searchURL := fmt.Sprintf("https://www.bing.com/news/search?q=%s", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bing news fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bing news: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("bing news parse: %w", err)
	}

	headlines := make([]string, 0, s.PerLimit)
	doc.Find("div").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		class, _ := card.Attr("class")
		if !strings.Contains(strings.ToLower(class), "news") {
			return true
		}
		// First link or heading inside the card is the headline.
		card.Find("a, h2, h3, h4").EachWithBreak(func(_ int, el *goquery.Selection) bool {
			if text := cleanHeadline(el.Text()); len(text) > 15 {
				headlines = append(headlines, text)
				return false
			}
			return true
		})
		return len(headlines) < s.PerLimit
	})

	return headlines, nil
}
