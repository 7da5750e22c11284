package news

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// GoogleNewsSource reads the Google News RSS search feed.
type GoogleNewsSource struct {
	Client   *http.Client
	PerLimit int
}

// NewGoogleNewsSource creates the source with optional proxy support.
func NewGoogleNewsSource(proxyURL string, timeout time.Duration, perLimit int) *GoogleNewsSource {
	if perLimit <= 0 {
		perLimit = 5
	}
	return &GoogleNewsSource{Client: newHTTPClient(proxyURL, timeout), PerLimit: perLimit}
}

func (s *GoogleNewsSource) Name() string { return "google-news" }

type rssFeed struct {
	Channel struct {
		Items []struct {
			Title string `xml:"title"`
		} `xml:"item"`
	} `xml:"channel"`
}

func (s *GoogleNewsSource) Fetch(ctx context.Context, companyName, _ string) ([]string, error) {
	query := url.QueryEscape(companyName + " stock news")
	feedURL := fmt.Sprintf("https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google news fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google news: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("google news read body: %w", err)
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("google news parse rss: %w", err)
	}

	headlines := make([]string, 0, s.PerLimit)
	for _, item := range feed.Channel.Items {
		if len(headlines) >= s.PerLimit {
			break
		}
		title := cleanHeadline(item.Title)
		if len(title) > 10 {
			headlines = append(headlines, title)
		}
	}
	return headlines, nil
}
