package collector

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"StockScope/internal/model"
	"StockScope/internal/symbols"
)

func closesOf(n int, base float64) []model.ClosePoint {
	pts := make([]model.ClosePoint, n)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range pts {
		pts[i] = model.ClosePoint{Date: start.AddDate(0, 0, i), Close: base + float64(i)}
	}
	return pts
}

func newTestCollector(f Fetcher) *Collector {
	// No retry delay in tests.
	return NewCollector(f, symbols.NewDefaultTable(), 0)
}

func TestFetchStock_ThirdCandidateWins(t *testing.T) {
	// RELIANCE expands to [RELIANCE.NS, RELIANCE.BO, RELIANCE]; the
	// first two return empty history, the third returns 40 rows.
	mock := &MockFetcher{
		Closes: map[string][]model.ClosePoint{
			"RELIANCE": closesOf(40, 2400),
		},
	}
	col := newTestCollector(mock)

	rec, err := col.FetchStock(context.Background(), "RELIANCE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ResolvedSymbol != "RELIANCE" {
		t.Errorf("resolved = %q, want third candidate %q", rec.ResolvedSymbol, "RELIANCE")
	}
	wantOrder := []string{"RELIANCE.NS", "RELIANCE.BO", "RELIANCE"}
	if !reflect.DeepEqual(mock.CallOrder, wantOrder) {
		t.Errorf("candidates tried out of order: %v", mock.CallOrder)
	}
	if len(rec.Closes) != 40 {
		t.Errorf("expected 40 rows kept, got %d", len(rec.Closes))
	}
}

func TestFetchStock_FirstCandidateStopsIteration(t *testing.T) {
	mock := &MockFetcher{
		Closes: map[string][]model.ClosePoint{
			"AAPL": closesOf(10, 180),
		},
	}
	col := newTestCollector(mock)

	rec, err := col.FetchStock(context.Background(), "aapl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Symbol != "AAPL" {
		t.Errorf("symbol should be normalized to uppercase, got %q", rec.Symbol)
	}
	if rec.ResolvedSymbol != "AAPL" {
		t.Errorf("resolved = %q, want AAPL", rec.ResolvedSymbol)
	}
	if len(mock.CallOrder) != 1 {
		t.Errorf("later candidates must not be consulted after a hit: %v", mock.CallOrder)
	}
}

func TestFetchStock_AllCandidatesEmpty(t *testing.T) {
	mock := &MockFetcher{}
	col := newTestCollector(mock)

	_, err := col.FetchStock(context.Background(), "BADTICKER1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(mock.CallOrder) != 3 {
		t.Errorf("all candidates should have been tried: %v", mock.CallOrder)
	}
}

func TestFetchStock_ErrorCandidateTriggersNext(t *testing.T) {
	mock := &MockFetcher{
		Errs: map[string]error{
			"AAPL": errors.New("timeout"),
		},
		Closes: map[string][]model.ClosePoint{
			"AAPL.NS": closesOf(5, 100),
		},
	}
	col := newTestCollector(mock)

	rec, err := col.FetchStock(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("transient failure must fall through to next candidate: %v", err)
	}
	if rec.ResolvedSymbol != "AAPL.NS" {
		t.Errorf("resolved = %q, want AAPL.NS", rec.ResolvedSymbol)
	}
}

func TestFetchStock_QuoteFailureDegradesToSentinels(t *testing.T) {
	mock := &MockFetcher{
		Closes: map[string][]model.ClosePoint{
			"MSFT": closesOf(6, 400),
		},
		Quotes: map[string]*model.QuoteSnapshot{},
	}
	// History succeeds, quote errors for the same symbol: simulate by
	// wrapping the mock.
	col := newTestCollector(&quoteFailFetcher{inner: mock})

	rec, err := col.FetchStock(context.Background(), "MSFT")
	if err != nil {
		t.Fatalf("quote failure must not drop the record: %v", err)
	}
	if rec.Fundamentals.PERatio.Valid {
		t.Error("fundamentals should be unavailable after quote failure")
	}
	if rec.CurrentPrice != 405 {
		t.Errorf("current price should fall back to last close, got %v", rec.CurrentPrice)
	}
	if rec.CompanyName != "MSFT" {
		t.Errorf("company name should fall back to the ticker, got %q", rec.CompanyName)
	}
}

type quoteFailFetcher struct {
	inner *MockFetcher
}

func (q *quoteFailFetcher) Name() string { return "quote-fail" }

func (q *quoteFailFetcher) FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]model.ClosePoint, error) {
	return q.inner.FetchDailyCloses(ctx, symbol, start, end)
}

func (q *quoteFailFetcher) FetchQuote(context.Context, string) (*model.QuoteSnapshot, error) {
	return nil, errors.New("snapshot unavailable")
}

func TestFetchStock_SnapshotFieldsFlowThrough(t *testing.T) {
	mock := &MockFetcher{
		Closes: map[string][]model.ClosePoint{
			"AAPL": closesOf(3, 200),
		},
		Quotes: map[string]*model.QuoteSnapshot{
			"AAPL": {
				LivePrice:     model.MetricOf(207.5),
				LongName:      "Apple Inc.",
				TrailingPE:    model.MetricOf(31.2),
				DividendYield: model.MetricOf(0.005),
				Currency:      "USD",
				Exchange:      "NMS",
			},
		},
	}
	col := newTestCollector(mock)

	rec, err := col.FetchStock(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.CompanyName != "Apple Inc." {
		t.Errorf("company = %q", rec.CompanyName)
	}
	if rec.CurrentPrice != 207.5 {
		t.Errorf("live price preferred, got %v", rec.CurrentPrice)
	}
	if got := rec.Fundamentals.DividendYield; !got.Valid || got.Value != 0.5 {
		t.Errorf("dividend yield = %+v, want 0.5%%", got)
	}
	if rec.Exchange != "NMS" {
		t.Errorf("exchange = %q", rec.Exchange)
	}
}

func TestFetchStock_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := &MockFetcher{
		Errs: map[string]error{"AAPL": context.Canceled},
	}
	col := newTestCollector(mock)
	if _, err := col.FetchStock(ctx, "AAPL"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
