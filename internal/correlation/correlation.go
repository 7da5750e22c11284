// Package correlation aligns closing-price series and computes the
// pairwise Pearson correlation matrix across an analysis run.
package correlation

import (
	"math"
	"sort"

	"StockScope/internal/model"
)

const dateKey = "2006-01-02"

// Compute returns the Pearson correlation matrix over the records'
// closing series, aligned on the dates present in every series. Returns
// nil when fewer than 2 records have usable history or no dates overlap;
// that is an expected state, not an error.
//
// Identical inputs always produce the identical matrix: symbols are
// sorted and rows are joined by calendar date, never by slice position.
func Compute(records map[string]*model.StockRecord) *model.CorrelationMatrix {
	series := make(map[string]map[string]float64)
	for sym, rec := range records {
		if rec == nil || len(rec.Closes) == 0 {
			continue
		}
		byDate := make(map[string]float64, len(rec.Closes))
		for _, p := range rec.Closes {
			byDate[p.Date.Format(dateKey)] = p.Close
		}
		series[sym] = byDate
	}
	if len(series) < 2 {
		return nil
	}

	symbols := make([]string, 0, len(series))
	for sym := range series {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	// Inner join: keep only dates present in every series.
	shared := make([]string, 0)
	for date := range series[symbols[0]] {
		inAll := true
		for _, sym := range symbols[1:] {
			if _, ok := series[sym][date]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			shared = append(shared, date)
		}
	}
	if len(shared) == 0 {
		return nil
	}
	sort.Strings(shared)

	columns := make([][]float64, len(symbols))
	for i, sym := range symbols {
		col := make([]float64, len(shared))
		for j, date := range shared {
			col[j] = series[sym][date]
		}
		columns[i] = col
	}

	matrix := model.NewCorrelationMatrix(symbols)
	for i := range symbols {
		matrix.Set(symbols[i], symbols[i], 1.0)
		for j := i + 1; j < len(symbols); j++ {
			matrix.Set(symbols[i], symbols[j], pearson(columns[i], columns[j]))
		}
	}
	return matrix
}

// pearson computes the correlation coefficient of two equal-length
// vectors. A constant vector has no defined correlation; 0 is returned
// so every cell stays within [-1, 1].
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= n
	meanY /= n

	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	r := cov / math.Sqrt(varX*varY)
	// Clamp floating-point drift at the boundaries.
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	return r
}
