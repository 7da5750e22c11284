// Package analyzer runs one complete analysis: per-symbol market data,
// per-symbol news, and the cross-symbol correlation matrix, assembled
// into a single immutable AnalysisResult.
package analyzer

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"StockScope/internal/collector"
	"StockScope/internal/correlation"
	"StockScope/internal/model"
)

// ErrNoUsableData reports total batch failure: the input list was empty
// or every symbol failed resolution. Distinct from a successful run that
// merely lacks a correlation matrix.
var ErrNoUsableData = errors.New("no usable data for any requested symbol")

// NewsFetcher is the thin capability the analyzer needs from the news
// component: best-effort headlines, never an error.
type NewsFetcher interface {
	Headlines(ctx context.Context, companyName, symbol string) []string
}

// Analyzer wires the collector and news aggregator into one batch run.
// Symbols are processed in parallel; the candidate/source order inside
// each symbol stays strictly sequential.
type Analyzer struct {
	Collector *collector.Collector
	News      NewsFetcher // nil skips news entirely
	Workers   int
}

// NewAnalyzer creates an Analyzer with a default worker bound.
func NewAnalyzer(col *collector.Collector, news NewsFetcher) *Analyzer {
	return &Analyzer{Collector: col, News: news, Workers: 4}
}

// Analyze fetches every ticker, computes correlations, and gathers news.
// One symbol's failure never cancels the others; failed symbols are
// dropped from the result. Returns ErrNoUsableData only when nothing
// could be analyzed at all.
func (a *Analyzer) Analyze(ctx context.Context, tickers []string) (*model.AnalysisResult, error) {
	symbols := normalize(tickers)
	if len(symbols) == 0 {
		return nil, ErrNoUsableData
	}

	records := a.fetchAll(ctx, symbols)
	if len(records) == 0 {
		return nil, ErrNoUsableData
	}

	// Keep input order, restricted to symbols that resolved.
	resolved := make([]string, 0, len(records))
	for _, sym := range symbols {
		if _, ok := records[sym]; ok {
			resolved = append(resolved, sym)
		}
	}

	result := &model.AnalysisResult{
		Symbols:      resolved,
		Records:      records,
		Correlations: correlation.Compute(records),
		News:         a.fetchNews(ctx, resolved, records),
		GeneratedAt:  time.Now(),
	}
	return result, nil
}

func (a *Analyzer) fetchAll(ctx context.Context, symbols []string) map[string]*model.StockRecord {
	workers := a.Workers
	if workers <= 0 {
		workers = 1
	}
	sem := make(chan struct{}, workers)

	var mu sync.Mutex
	records := make(map[string]*model.StockRecord)

	var wg sync.WaitGroup
	for _, sym := range symbols {
		wg.Add(1)
		go func(sym string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			log.Printf("[INFO] analyzing %s...", sym)
			rec, err := a.Collector.FetchStock(ctx, sym)
			if err != nil {
				log.Printf("[WARN] %s dropped: %v", sym, err)
				return
			}
			mu.Lock()
			records[sym] = rec
			mu.Unlock()
		}(sym)
	}
	wg.Wait()
	return records
}

func (a *Analyzer) fetchNews(ctx context.Context, symbols []string, records map[string]*model.StockRecord) model.NewsBundle {
	bundle := make(model.NewsBundle, len(symbols))
	if a.News == nil {
		for _, sym := range symbols {
			bundle[sym] = nil
		}
		return bundle
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, sym := range symbols {
		wg.Add(1)
		go func(sym string) {
			defer wg.Done()
			headlines := a.News.Headlines(ctx, records[sym].CompanyName, sym)
			mu.Lock()
			bundle[sym] = headlines
			mu.Unlock()
		}(sym)
	}
	wg.Wait()
	return bundle
}

// normalize uppercases, trims, drops empties, and deduplicates while
// preserving first-seen order.
func normalize(tickers []string) []string {
	out := make([]string, 0, len(tickers))
	seen := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		sym := strings.ToUpper(strings.TrimSpace(t))
		if sym == "" || seen[sym] {
			continue
		}
		seen[sym] = true
		out = append(out, sym)
	}
	return out
}
