package collector

import (
	"context"
	"time"

	"StockScope/internal/model"
)

// Fetcher defines the interface for the market data provider.
type Fetcher interface {
	// FetchQuote returns the metadata/quote snapshot for a symbol.
	FetchQuote(ctx context.Context, symbol string) (*model.QuoteSnapshot, error)
	// FetchDailyCloses returns daily closing prices for the date range,
	// ascending, no duplicate dates. An unknown symbol yields an empty
	// slice or an error; the caller treats both the same way.
	FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]model.ClosePoint, error)
	Name() string
}
