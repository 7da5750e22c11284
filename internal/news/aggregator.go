package news

import (
	"context"
	"log"
	"math/rand"
	"time"
)

// Aggregator tries each source in order, swallowing per-source errors
// into a neutral empty result, until the headline cap is reached. The
// source order is deliberate: later sources are only consulted after
// earlier ones have been given their chance, so fetching for one symbol
// must stay sequential.
type Aggregator struct {
	Sources      []Source
	MaxHeadlines int
	MinDelay     time.Duration // politeness delay between sources
	MaxDelay     time.Duration
}

// NewAggregator builds the default source chain: Google News RSS, then
// the Yahoo Finance quote page, then Bing News.
func NewAggregator(proxyURL string, timeout time.Duration, maxHeadlines, perSource int) *Aggregator {
	if maxHeadlines <= 0 {
		maxHeadlines = 10
	}
	return &Aggregator{
		Sources: []Source{
			NewGoogleNewsSource(proxyURL, timeout, perSource),
			NewYahooNewsSource(proxyURL, timeout, perSource),
			NewBingNewsSource(proxyURL, timeout, perSource),
		},
		MaxHeadlines: maxHeadlines,
		MinDelay:     time.Second,
		MaxDelay:     2 * time.Second,
	}
}

// Headlines returns up to MaxHeadlines deduplicated headlines for the
// company/symbol. Never fails: every error degrades to fewer (or zero)
// headlines.
func (a *Aggregator) Headlines(ctx context.Context, companyName, symbol string) []string {
	collected := make([]string, 0, a.MaxHeadlines)
	seen := make(map[string]bool)

	for i, source := range a.Sources {
		if len(collected) >= a.MaxHeadlines {
			break
		}
		if i > 0 {
			if !a.politenessPause(ctx) {
				break
			}
		}

		headlines, err := source.Fetch(ctx, companyName, symbol)
		if err != nil {
			log.Printf("[WARN] news source %s failed for %s: %v", source.Name(), symbol, err)
			continue
		}
		for _, h := range headlines {
			if seen[h] {
				continue
			}
			seen[h] = true
			collected = append(collected, h)
			if len(collected) >= a.MaxHeadlines {
				break
			}
		}
	}

	return collected
}

// politenessPause sleeps a randomized interval between sources.
// Returns false when the context is cancelled.
func (a *Aggregator) politenessPause(ctx context.Context) bool {
	delay := a.MinDelay
	if a.MaxDelay > a.MinDelay {
		delay += time.Duration(rand.Int63n(int64(a.MaxDelay - a.MinDelay)))
	}
	if delay <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(delay):
		return true
	}
}
