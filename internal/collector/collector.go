package collector

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"StockScope/internal/calculator"
	"StockScope/internal/model"
	"StockScope/internal/symbols"
)

// ErrNotFound reports that no candidate symbol yielded historical data.
// It is a soft failure: the caller drops the symbol and continues.
var ErrNotFound = errors.New("no candidate yielded historical data")

// MockFetcher returns controllable fixed data for development and testing.
// Safe for concurrent use.
type MockFetcher struct {
	Closes map[string][]model.ClosePoint
	Quotes map[string]*model.QuoteSnapshot
	Errs   map[string]error

	mu sync.Mutex
	// CallOrder records every symbol passed to FetchDailyCloses.
	CallOrder []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(_ context.Context, symbol string, _, _ time.Time) ([]model.ClosePoint, error) {
	m.mu.Lock()
	m.CallOrder = append(m.CallOrder, symbol)
	m.mu.Unlock()
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	return m.Closes[symbol], nil
}

func (m *MockFetcher) FetchQuote(_ context.Context, symbol string) (*model.QuoteSnapshot, error) {
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if q, ok := m.Quotes[symbol]; ok {
		return q, nil
	}
	return &model.QuoteSnapshot{}, nil
}

// Collector resolves a raw ticker into a StockRecord by trying exchange
// candidates in order against the market data provider.
type Collector struct {
	Fetcher    Fetcher
	Table      *symbols.Table
	RetryDelay time.Duration // politeness delay between candidate attempts
	Window     time.Duration // trailing history window
}

// NewCollector creates a Collector with the 6-month default window.
func NewCollector(fetcher Fetcher, table *symbols.Table, retryDelay time.Duration) *Collector {
	return &Collector{
		Fetcher:    fetcher,
		Table:      table,
		RetryDelay: retryDelay,
		Window:     180 * 24 * time.Hour,
	}
}

// FetchStock tries each candidate sequentially and accepts the first one
// whose history is non-empty. Partial data is never merged across
// candidates. Candidate-level fetch errors are treated like empty
// history: logged and skipped. Returns ErrNotFound when every candidate
// comes up empty.
func (c *Collector) FetchStock(ctx context.Context, rawSymbol string) (*model.StockRecord, error) {
	symbol := strings.ToUpper(strings.TrimSpace(rawSymbol))
	candidates := c.Table.Candidates(symbol)

	end := time.Now()
	start := end.Add(-c.Window)

	for i, candidate := range candidates {
		if i > 0 && c.RetryDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.RetryDelay):
			}
		}

		closes, err := c.Fetcher.FetchDailyCloses(ctx, candidate, start, end)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("[WARN] %s: history fetch for candidate %s failed: %v", symbol, candidate, err)
			continue
		}
		if len(closes) == 0 {
			continue
		}

		// History decides acceptance; a failed snapshot only degrades
		// the fundamentals to unavailable.
		snap, err := c.Fetcher.FetchQuote(ctx, candidate)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("[WARN] %s: quote snapshot for %s failed, fundamentals unavailable: %v", symbol, candidate, err)
			snap = &model.QuoteSnapshot{}
		}

		return c.buildRecord(symbol, candidate, snap, closes), nil
	}

	return nil, ErrNotFound
}

func (c *Collector) buildRecord(symbol, resolved string, snap *model.QuoteSnapshot, closes []model.ClosePoint) *model.StockRecord {
	currency := snap.Currency
	if currency == "" {
		currency = "USD"
	}
	exchange := snap.Exchange
	if exchange == "" {
		exchange = "Unknown"
	}
	return &model.StockRecord{
		Symbol:         symbol,
		ResolvedSymbol: resolved,
		CompanyName:    calculator.CompanyName(snap, symbol),
		CurrentPrice:   calculator.CurrentPrice(snap, closes),
		Currency:       currency,
		Exchange:       exchange,
		SixMonthChange: calculator.SixMonthChange(closes),
		Fundamentals:   calculator.Fundamentals(snap),
		MarketCap:      snap.MarketCap,
		Volume:         snap.Volume,
		Closes:         closes,
		FetchedAt:      time.Now(),
	}
}
