package calculator

import (
	"math"
	"testing"
	"time"

	"StockScope/internal/model"
)

func series(closes ...float64) []model.ClosePoint {
	pts := make([]model.ClosePoint, len(closes))
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		pts[i] = model.ClosePoint{Date: base.AddDate(0, 0, i), Close: c}
	}
	return pts
}

func TestSixMonthChange(t *testing.T) {
	tests := []struct {
		name   string
		closes []model.ClosePoint
		want   float64
	}{
		{"empty", nil, 0},
		{"single point", series(100), 0},
		{"up 10 percent", series(100, 105, 110), 10},
		{"down 25 percent", series(200, 180, 150), -25},
		{"flat", series(50, 55, 50), 0},
		{"zero first close", series(0, 100), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SixMonthChange(tt.closes)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SixMonthChange = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFundamentals_FractionConversion(t *testing.T) {
	snap := &model.QuoteSnapshot{
		TrailingPE:    model.MetricOf(24.5),
		DividendYield: model.MetricOf(0.025),
		ROE:           model.MetricOf(0.18),
	}
	f := Fundamentals(snap)

	if !f.DividendYield.Valid || math.Abs(f.DividendYield.Value-2.5) > 1e-9 {
		t.Errorf("dividend yield = %+v, want 2.5", f.DividendYield)
	}
	if !f.ROE.Valid || math.Abs(f.ROE.Value-18) > 1e-9 {
		t.Errorf("roe = %+v, want 18", f.ROE)
	}
	if !f.PERatio.Valid || f.PERatio.Value != 24.5 {
		t.Errorf("pe ratio should pass through, got %+v", f.PERatio)
	}
}

func TestFundamentals_MissingFieldsStayUnavailable(t *testing.T) {
	f := Fundamentals(&model.QuoteSnapshot{})

	if f.PERatio.Valid || f.ForwardPE.Valid || f.PriceToBook.Valid || f.DebtToEquity.Valid {
		t.Errorf("missing pass-through fields must be unavailable: %+v", f)
	}
	if f.DividendYield.Valid {
		t.Error("missing dividend yield must be unavailable, not 0%")
	}
	if f.DividendYield.String() != "N/A" {
		t.Errorf("unavailable metric formats as %q, want N/A", f.DividendYield.String())
	}
}

func TestFundamentals_ZeroFractionTreatedAsUnavailable(t *testing.T) {
	snap := &model.QuoteSnapshot{
		DividendYield: model.MetricOf(0),
		ROE:           model.MetricOf(0),
	}
	f := Fundamentals(snap)
	if f.DividendYield.Valid || f.ROE.Valid {
		t.Errorf("zero provider fractions are no-data, got %+v / %+v", f.DividendYield, f.ROE)
	}
}

func TestCurrentPrice(t *testing.T) {
	closes := series(98, 99, 101.5)

	live := &model.QuoteSnapshot{LivePrice: model.MetricOf(102.25)}
	if got := CurrentPrice(live, closes); got != 102.25 {
		t.Errorf("live price preferred: got %v", got)
	}

	zero := &model.QuoteSnapshot{LivePrice: model.MetricOf(0)}
	if got := CurrentPrice(zero, closes); got != 101.5 {
		t.Errorf("zero live price falls back to last close: got %v", got)
	}

	if got := CurrentPrice(&model.QuoteSnapshot{}, closes); got != 101.5 {
		t.Errorf("missing live price falls back to last close: got %v", got)
	}

	if got := CurrentPrice(&model.QuoteSnapshot{}, nil); got != 0 {
		t.Errorf("no data at all: got %v, want 0", got)
	}
}

func TestCompanyName(t *testing.T) {
	long := &model.QuoteSnapshot{LongName: "Apple Inc.", ShortName: "Apple"}
	if got := CompanyName(long, "AAPL"); got != "Apple Inc." {
		t.Errorf("got %q", got)
	}
	short := &model.QuoteSnapshot{ShortName: "Apple"}
	if got := CompanyName(short, "AAPL"); got != "Apple" {
		t.Errorf("got %q", got)
	}
	if got := CompanyName(&model.QuoteSnapshot{}, "AAPL"); got != "AAPL" {
		t.Errorf("got %q", got)
	}
}
