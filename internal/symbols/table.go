package symbols

import "strings"

// Table resolves raw user-entered tickers into ordered exchange-qualified
// candidates. The known-ticker set is a seed table, replaceable through
// configuration, so new exchange coverage needs no code change.
type Table struct {
	PrimarySuffix   string // e.g. ".NS"
	AlternateSuffix string // e.g. ".BO"
	ShortTickerMax  int    // tickers longer than this are assumed foreign
	known           map[string]struct{}
}

// NewTable builds a Table over the given known exchange-specific tickers.
func NewTable(primary, alternate string, shortMax int, knownTickers []string) *Table {
	known := make(map[string]struct{}, len(knownTickers))
	for _, t := range knownTickers {
		known[strings.ToUpper(strings.TrimSpace(t))] = struct{}{}
	}
	return &Table{
		PrimarySuffix:   primary,
		AlternateSuffix: alternate,
		ShortTickerMax:  shortMax,
		known:           known,
	}
}

// NewDefaultTable returns a Table seeded with NSE/BSE suffixes and the
// bundled NSE ticker list.
func NewDefaultTable() *Table {
	return NewTable(".NS", ".BO", 6, DefaultKnownTickers)
}

// Candidates returns the ordered list of symbols to try against the
// market data provider. Pure function, no I/O.
//
// An already-suffixed symbol is returned as the sole candidate. A symbol
// in the known table, or longer than the short-ticker threshold, is
// assumed to trade on the primary exchange first; the bare form is kept
// as a final fallback. Everything else is tried bare first.
func (t *Table) Candidates(raw string) []string {
	sym := strings.ToUpper(strings.TrimSpace(raw))
	if strings.Contains(sym, ".") {
		return []string{sym}
	}
	if t.isKnown(sym) || len(sym) > t.ShortTickerMax {
		return []string{sym + t.PrimarySuffix, sym + t.AlternateSuffix, sym}
	}
	return []string{sym, sym + t.PrimarySuffix, sym + t.AlternateSuffix}
}

func (t *Table) isKnown(sym string) bool {
	_, ok := t.known[sym]
	return ok
}
