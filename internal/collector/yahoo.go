package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"StockScope/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public API:
// the v8 chart endpoint for daily history and the v10 quoteSummary
// endpoint for the fundamentals snapshot.
type YahooFetcher struct {
	Client  *http.Client
	limiter *rate.Limiter
}

// NewYahooFetcher creates a Yahoo Finance fetcher with optional proxy
// support and a cooperative request rate cap.
func NewYahooFetcher(proxyURL string, requestsPerSec float64, timeout time.Duration) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if requestsPerSec <= 0 {
		requestsPerSec = 2
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSec), 1),
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// yahooValue is quoteSummary's {"raw": n, "fmt": "..."} wrapper. A nil
// Raw means the provider omitted the field.
type yahooValue struct {
	Raw *float64 `json:"raw"`
}

func (v *yahooValue) metric() model.Metric {
	if v == nil || v.Raw == nil {
		return model.Metric{}
	}
	return model.MetricOf(*v.Raw)
}

// yahooQuoteSummary covers the modules the snapshot needs.
type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			Price *struct {
				RegularMarketPrice  *yahooValue `json:"regularMarketPrice"`
				RegularMarketVolume *yahooValue `json:"regularMarketVolume"`
				MarketCap           *yahooValue `json:"marketCap"`
				LongName            string      `json:"longName"`
				ShortName           string      `json:"shortName"`
				Currency            string      `json:"currency"`
				ExchangeName        string      `json:"exchangeName"`
			} `json:"price"`
			SummaryDetail *struct {
				TrailingPE    *yahooValue `json:"trailingPE"`
				ForwardPE     *yahooValue `json:"forwardPE"`
				DividendYield *yahooValue `json:"dividendYield"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics *struct {
				PriceToBook *yahooValue `json:"priceToBook"`
			} `json:"defaultKeyStatistics"`
			FinancialData *struct {
				ReturnOnEquity *yahooValue `json:"returnOnEquity"`
				DebtToEquity   *yahooValue `json:"debtToEquity"`
			} `json:"financialData"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func (f *YahooFetcher) get(ctx context.Context, u string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// FetchDailyCloses retrieves daily closes from the chart endpoint.
// Null bars (holidays etc.) and duplicate dates are dropped.
func (f *YahooFetcher) FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]model.ClosePoint, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		url.PathEscape(symbol), start.Unix(), end.Unix())

	body, err := f.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode chart: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	points := make([]model.ClosePoint, 0, len(result.Timestamp))
	seen := make(map[string]bool, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) {
			break
		}
		c, ok := toFloat(quote.Close[i])
		if !ok || c == 0 {
			continue
		}
		day := time.Unix(ts, 0).UTC().Truncate(24 * time.Hour)
		key := day.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		points = append(points, model.ClosePoint{Date: day, Close: c})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}

// FetchQuote retrieves the fundamentals snapshot from quoteSummary.
// Missing modules or fields come back as unavailable metrics.
func (f *YahooFetcher) FetchQuote(ctx context.Context, symbol string) (*model.QuoteSnapshot, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=price,summaryDetail,defaultKeyStatistics,financialData",
		url.PathEscape(symbol))

	body, err := f.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var qs yahooQuoteSummary
	if err := json.Unmarshal(body, &qs); err != nil {
		return nil, fmt.Errorf("yahoo decode quote: %w", err)
	}
	if qs.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", qs.QuoteSummary.Error.Description)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return &model.QuoteSnapshot{}, nil
	}

	r := qs.QuoteSummary.Result[0]
	snap := &model.QuoteSnapshot{}
	if r.Price != nil {
		snap.LivePrice = r.Price.RegularMarketPrice.metric()
		snap.Volume = r.Price.RegularMarketVolume.metric()
		snap.MarketCap = r.Price.MarketCap.metric()
		snap.LongName = r.Price.LongName
		snap.ShortName = r.Price.ShortName
		snap.Currency = r.Price.Currency
		snap.Exchange = r.Price.ExchangeName
	}
	if r.SummaryDetail != nil {
		snap.TrailingPE = r.SummaryDetail.TrailingPE.metric()
		snap.ForwardPE = r.SummaryDetail.ForwardPE.metric()
		snap.DividendYield = r.SummaryDetail.DividendYield.metric()
	}
	if r.DefaultKeyStatistics != nil {
		snap.PriceToBook = r.DefaultKeyStatistics.PriceToBook.metric()
	}
	if r.FinancialData != nil {
		snap.ROE = r.FinancialData.ReturnOnEquity.metric()
		snap.DebtToEquity = r.FinancialData.DebtToEquity.metric()
	}
	return snap, nil
}
