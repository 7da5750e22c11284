package calculator

import "StockScope/internal/model"

// SixMonthChange returns the percentage move between the earliest and
// latest available closes. Defined as 0 when fewer than 2 points exist.
func SixMonthChange(closes []model.ClosePoint) float64 {
	if len(closes) < 2 {
		return 0
	}
	first := closes[0].Close
	last := closes[len(closes)-1].Close
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}

// Fundamentals derives the displayable fundamentals set from a raw quote
// snapshot. Pure transformation: missing provider fields come through as
// unavailable metrics, never as zero.
func Fundamentals(snap *model.QuoteSnapshot) model.Fundamentals {
	return model.Fundamentals{
		PERatio:       snap.TrailingPE,
		ForwardPE:     snap.ForwardPE,
		DividendYield: fractionToPercent(snap.DividendYield),
		PriceToBook:   snap.PriceToBook,
		DebtToEquity:  snap.DebtToEquity,
		ROE:           fractionToPercent(snap.ROE),
	}
}

// fractionToPercent converts a provider fraction (0.025) to a percent
// (2.5). A missing or zero provider value means "no data", not 0%.
func fractionToPercent(m model.Metric) model.Metric {
	if !m.Valid || m.Value == 0 {
		return model.Metric{}
	}
	return model.MetricOf(m.Value * 100)
}

// CurrentPrice resolves the display price: the snapshot's live price when
// present and non-zero, otherwise the most recent historical close.
func CurrentPrice(snap *model.QuoteSnapshot, closes []model.ClosePoint) float64 {
	if snap.LivePrice.Valid && snap.LivePrice.Value != 0 {
		return snap.LivePrice.Value
	}
	if len(closes) > 0 {
		return closes[len(closes)-1].Close
	}
	return 0
}

// CompanyName resolves the display name: long name, then short name,
// then the raw ticker itself.
func CompanyName(snap *model.QuoteSnapshot, symbol string) string {
	if snap.LongName != "" {
		return snap.LongName
	}
	if snap.ShortName != "" {
		return snap.ShortName
	}
	return symbol
}
