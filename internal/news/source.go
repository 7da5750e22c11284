// Package news aggregates best-effort headlines from a fixed, ordered
// list of public sources. Every source failure degrades to "no results";
// the aggregator never returns an error.
package news

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Source fetches zero or more headline strings for a company/symbol.
type Source interface {
	Fetch(ctx context.Context, companyName, symbol string) ([]string, error)
	Name() string
}

// newHTTPClient builds the shared client shape: fixed timeout, optional
// proxy transport.
func newHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

// cleanHeadline collapses whitespace and strips boilerplate prefixes.
func cleanHeadline(headline string) string {
	headline = strings.Join(strings.Fields(headline), " ")
	for _, prefix := range []string{"Breaking:", "BREAKING:", "News:", "NEWS:"} {
		if strings.HasPrefix(headline, prefix) {
			headline = strings.TrimSpace(strings.TrimPrefix(headline, prefix))
		}
	}
	return headline
}
