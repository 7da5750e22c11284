package model

import (
	"sort"
	"time"
)

// CorrelationMatrix is a square, symmetric matrix of pairwise Pearson
// coefficients. Symbols are kept sorted so cell identity is stable
// regardless of map iteration order on the input.
type CorrelationMatrix struct {
	Symbols []string
	Cells   [][]float64

	index map[string]int
}

// NewCorrelationMatrix allocates a zeroed matrix over the given symbols,
// sorted ascending.
func NewCorrelationMatrix(symbols []string) *CorrelationMatrix {
	sorted := append([]string(nil), symbols...)
	sort.Strings(sorted)
	cells := make([][]float64, len(sorted))
	for i := range cells {
		cells[i] = make([]float64, len(sorted))
	}
	index := make(map[string]int, len(sorted))
	for i, s := range sorted {
		index[s] = i
	}
	return &CorrelationMatrix{Symbols: sorted, Cells: cells, index: index}
}

// Set stores v at (a, b) and (b, a).
func (m *CorrelationMatrix) Set(a, b string, v float64) {
	i, ok := m.index[a]
	j, ok2 := m.index[b]
	if !ok || !ok2 {
		return
	}
	m.Cells[i][j] = v
	m.Cells[j][i] = v
}

// At returns the coefficient for the symbol pair, and whether both
// symbols are present in the matrix.
func (m *CorrelationMatrix) At(a, b string) (float64, bool) {
	i, ok := m.index[a]
	j, ok2 := m.index[b]
	if !ok || !ok2 {
		return 0, false
	}
	return m.Cells[i][j], true
}

// NewsBundle maps a symbol to its ordered, deduplicated headlines.
type NewsBundle map[string][]string

// AnalysisResult is the unit handed to every downstream consumer.
// It is assembled once per run and never mutated afterwards.
type AnalysisResult struct {
	Symbols      []string // input order, successfully resolved only
	Records      map[string]*StockRecord
	Correlations *CorrelationMatrix // nil when fewer than 2 usable series
	News         NewsBundle
	GeneratedAt  time.Time
}
