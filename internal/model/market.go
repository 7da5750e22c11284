package model

import "time"

// ClosePoint is a single daily closing price.
type ClosePoint struct {
	Date  time.Time
	Close float64
}

// QuoteSnapshot holds the raw quote fields returned by the market data
// provider. Every numeric field is optional and stays invalid when the
// provider omits it.
type QuoteSnapshot struct {
	LivePrice     Metric
	LongName      string
	ShortName     string
	TrailingPE    Metric
	ForwardPE     Metric
	DividendYield Metric // fraction, e.g. 0.025
	PriceToBook   Metric
	DebtToEquity  Metric
	ROE           Metric // fraction
	MarketCap     Metric
	Volume        Metric
	Currency      string
	Exchange      string
}

// Fundamentals is the derived valuation/profitability snapshot.
// Yield and ROE are expressed as percentages here.
type Fundamentals struct {
	PERatio       Metric
	ForwardPE     Metric
	DividendYield Metric
	PriceToBook   Metric
	DebtToEquity  Metric
	ROE           Metric
}

// StockRecord is one fully resolved stock. A record is created once per
// analysis run and is immutable afterwards. Closes is chronologically
// ascending with no duplicate dates and is never empty.
type StockRecord struct {
	Symbol         string // as entered by the user
	ResolvedSymbol string // exchange-qualified candidate that yielded data
	CompanyName    string
	CurrentPrice   float64
	Currency       string
	Exchange       string
	SixMonthChange float64 // percent
	Fundamentals   Fundamentals
	MarketCap      Metric
	Volume         Metric
	Closes         []ClosePoint
	FetchedAt      time.Time
}
