// Package report composes the markdown analysis document from an
// AnalysisResult. Section order is fixed; every consumer sees the same
// layout regardless of which symbols survived the run.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"StockScope/internal/model"
)

// Options holds the clearly-labeled presentation heuristics. Keyword
// sentiment and the "fundamentally strong" score carry no deeper model
// behind them; they are configurable so nobody has to pretend otherwise.
type Options struct {
	PositiveKeywords  []string
	NegativeKeywords  []string
	StrongPEBelow     float64 // P/E under this scores a point
	StrongROEAbove    float64 // ROE percent over this scores a point
	MaxShownHeadlines int
}

// DefaultOptions returns the stock heuristic configuration.
func DefaultOptions() Options {
	return Options{
		PositiveKeywords:  []string{"growth", "profit", "revenue", "beat", "strong", "positive", "gain", "rise", "up"},
		NegativeKeywords:  []string{"loss", "down", "fall", "weak", "decline", "drop", "negative", "concern"},
		StrongPEBelow:     25,
		StrongROEAbove:    10,
		MaxShownHeadlines: 8,
	}
}

// Composer renders AnalysisResults into markdown.
type Composer struct {
	Opts Options
}

// NewComposer creates a Composer; zero-value options fall back to defaults.
func NewComposer(opts Options) *Composer {
	def := DefaultOptions()
	if len(opts.PositiveKeywords) == 0 {
		opts.PositiveKeywords = def.PositiveKeywords
	}
	if len(opts.NegativeKeywords) == 0 {
		opts.NegativeKeywords = def.NegativeKeywords
	}
	if opts.StrongPEBelow == 0 {
		opts.StrongPEBelow = def.StrongPEBelow
	}
	if opts.StrongROEAbove == 0 {
		opts.StrongROEAbove = def.StrongROEAbove
	}
	if opts.MaxShownHeadlines == 0 {
		opts.MaxShownHeadlines = def.MaxShownHeadlines
	}
	return &Composer{Opts: opts}
}

// Compose renders the full report.
func (c *Composer) Compose(result *model.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Financial Analysis Report\n**Generated on:** %s\n\n", result.GeneratedAt.Format("2006-01-02"))

	fmt.Fprintf(&b, "## Executive Summary\n\n")
	fmt.Fprintf(&b, "This report provides a comprehensive analysis of the following stocks: %s.\n", strings.Join(result.Symbols, ", "))
	fmt.Fprintf(&b, "The analysis includes current stock prices, 6-month performance, fundamental ratios,\ncorrelation analysis, and recent news headlines.\n\n")

	b.WriteString("## Stock Overview\n")
	c.writeOverview(&b, result)

	b.WriteString("\n## Performance Analysis\n")
	c.writePerformance(&b, result)

	b.WriteString("\n## Fundamental Ratios Comparison\n\n")
	c.writeFundamentalsTable(&b, result)

	b.WriteString("\n### Ratio Descriptions\n")
	b.WriteString(ratioDescriptions)

	b.WriteString("\n## Correlation Analysis\n\n")
	c.writeCorrelations(&b, result.Correlations)

	b.WriteString("\n## News Analysis\n\n")
	c.writeNews(&b, result)

	b.WriteString("\n## Risk Assessment and Future Scenarios\n")
	c.writeRiskAssessment(&b, result)

	b.WriteString("\n## Conclusion\n")
	c.writeConclusion(&b, result)

	b.WriteString("\n---\n*This report was generated using real-time data from Yahoo Finance and news sources.\nData accuracy is subject to market conditions and source reliability.*\n")

	return b.String()
}

// Save writes the report into dir under a timestamped name and returns
// the full path.
func Save(dir, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	name := fmt.Sprintf("financial_report_%s.md", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func (c *Composer) writeOverview(b *strings.Builder, result *model.AnalysisResult) {
	for _, sym := range result.Symbols {
		rec := result.Records[sym]
		exchangeInfo := ""
		if rec.Exchange != "Unknown" {
			exchangeInfo = fmt.Sprintf(" (%s)", rec.Exchange)
		}
		fmt.Fprintf(b, "\n### %s - %s%s\n\n", sym, rec.CompanyName, exchangeInfo)
		fmt.Fprintf(b, "- **Current Price:** %s%.2f\n", currencySymbol(rec.Currency), rec.CurrentPrice)
		fmt.Fprintf(b, "- **6-Month Performance:** %.2f%%\n", rec.SixMonthChange)
		fmt.Fprintf(b, "- **Market Cap:** %s\n", formatLargeNumber(rec.MarketCap))
		fmt.Fprintf(b, "- **Trading Volume:** %s\n", formatLargeNumber(rec.Volume))
	}
}

func (c *Composer) writePerformance(b *strings.Builder, result *model.AnalysisResult) {
	if len(result.Symbols) == 0 {
		b.WriteString("\nPerformance data not available.\n")
		return
	}

	best, worst := result.Symbols[0], result.Symbols[0]
	for _, sym := range result.Symbols {
		if result.Records[sym].SixMonthChange > result.Records[best].SixMonthChange {
			best = sym
		}
		if result.Records[sym].SixMonthChange < result.Records[worst].SixMonthChange {
			worst = sym
		}
	}

	b.WriteString("\nOver the past 6 months, the analyzed stocks have shown varying performance:\n\n")
	fmt.Fprintf(b, "- **Best Performer:** %s (%s) with %.2f%% change\n",
		best, result.Records[best].CompanyName, result.Records[best].SixMonthChange)
	fmt.Fprintf(b, "- **Worst Performer:** %s (%s) with %.2f%% change\n",
		worst, result.Records[worst].CompanyName, result.Records[worst].SixMonthChange)

	b.WriteString("\n### Performance Summary\n")
	for _, sym := range result.Symbols {
		change := result.Records[sym].SixMonthChange
		trend := "➡️"
		if change > 0 {
			trend = "📈"
		} else if change < 0 {
			trend = "📉"
		}
		fmt.Fprintf(b, "- %s **%s:** %.2f%%\n", trend, sym, change)
	}
}

func (c *Composer) writeFundamentalsTable(b *strings.Builder, result *model.AnalysisResult) {
	b.WriteString("| Stock | P/E Ratio | Forward P/E | Dividend Yield | Price-to-Book | Debt/Equity | ROE |\n")
	b.WriteString("|-------|-----------|-------------|----------------|---------------|-------------|-----|\n")
	for _, sym := range result.Symbols {
		f := result.Records[sym].Fundamentals
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			sym, f.PERatio, f.ForwardPE, f.DividendYield.Percent(),
			f.PriceToBook, f.DebtToEquity, f.ROE.Percent())
	}
}

const ratioDescriptions = `
- **P/E Ratio (Price-to-Earnings):** Measures how much investors are willing to pay per dollar of earnings. Higher ratios may indicate growth expectations or overvaluation.

- **Forward P/E:** Similar to P/E ratio but uses projected earnings for the next 12 months.

- **Dividend Yield:** The percentage of a company's current stock price paid out as dividends annually.

- **Price-to-Book Ratio:** Compares a stock's market value to its book value. Values below 1.0 may indicate undervaluation.

- **Debt-to-Equity Ratio:** Measures a company's financial leverage by comparing total debt to shareholders' equity.

- **Return on Equity (ROE):** Indicates how effectively a company uses shareholders' equity to generate profits.
`

func (c *Composer) writeCorrelations(b *strings.Builder, m *model.CorrelationMatrix) {
	if m == nil {
		b.WriteString("Correlation analysis not available due to insufficient data.\n")
		return
	}
	b.WriteString("The correlation analysis shows how the stock prices move in relation to each other:\n\n")
	for i, a := range m.Symbols {
		for _, o := range m.Symbols[i+1:] {
			v, _ := m.At(a, o)
			fmt.Fprintf(b, "- **%s vs %s:** %.3f (%s)\n", a, o, v, describeCorrelation(v))
		}
	}
}

func describeCorrelation(v float64) string {
	switch {
	case v > 0.7:
		return "strong positive correlation"
	case v > 0.3:
		return "moderate positive correlation"
	case v > -0.3:
		return "weak correlation"
	case v > -0.7:
		return "moderate negative correlation"
	default:
		return "strong negative correlation"
	}
}

func (c *Composer) writeNews(b *strings.Builder, result *model.AnalysisResult) {
	b.WriteString("Recent news headlines provide insights into market sentiment and company developments:\n\n")
	for _, sym := range result.Symbols {
		rec := result.Records[sym]
		headlines := result.News[sym]

		fmt.Fprintf(b, "### %s - %s\n\n", sym, rec.CompanyName)
		if len(headlines) == 0 {
			b.WriteString("No recent news headlines were found for this stock.\n\n")
			continue
		}

		fmt.Fprintf(b, "**Recent Headlines (%d found):**\n\n", len(headlines))
		shown := headlines
		if len(shown) > c.Opts.MaxShownHeadlines {
			shown = shown[:c.Opts.MaxShownHeadlines]
		}
		for i, h := range shown {
			fmt.Fprintf(b, "%d. %s\n", i+1, h)
		}
		fmt.Fprintf(b, "\n**News Sentiment:** The recent news coverage appears %s. (keyword-count heuristic)\n\n",
			c.sentiment(headlines))
	}
}

// sentiment is a keyword-count heuristic, nothing more.
func (c *Composer) sentiment(headlines []string) string {
	var positive, negative int
	for _, h := range headlines {
		lower := strings.ToLower(h)
		for _, k := range c.Opts.PositiveKeywords {
			if strings.Contains(lower, k) {
				positive++
			}
		}
		for _, k := range c.Opts.NegativeKeywords {
			if strings.Contains(lower, k) {
				negative++
			}
		}
	}
	switch {
	case positive > negative:
		return "predominantly positive"
	case negative > positive:
		return "predominantly negative"
	default:
		return "mixed"
	}
}

func (c *Composer) writeRiskAssessment(b *strings.Builder, result *model.AnalysisResult) {
	b.WriteString("\n### Risk Factors:\n\n")

	var volatile []string
	for _, sym := range result.Symbols {
		change := result.Records[sym].SixMonthChange
		if change < 0 {
			change = -change
		}
		if change > 20 {
			volatile = append(volatile, fmt.Sprintf("%s (%.1f%% change)", sym, change))
		}
	}
	if len(volatile) > 0 {
		fmt.Fprintf(b, "- **High Volatility Stocks:** %s\n", strings.Join(volatile, ", "))
	}

	if m := result.Correlations; m != nil {
		var pairs []string
		for i, a := range m.Symbols {
			for _, o := range m.Symbols[i+1:] {
				v, _ := m.At(a, o)
				if v > 0.7 || v < -0.7 {
					pairs = append(pairs, fmt.Sprintf("%s-%s (%.2f)", a, o, v))
				}
			}
		}
		if len(pairs) > 0 {
			fmt.Fprintf(b, "- **High Correlation Risk:** Strong correlations between %s may lead to similar price movements.\n",
				strings.Join(pairs, ", "))
		}
	}

	b.WriteString(futureScenarios)
}

const futureScenarios = `
### Future Scenarios:

**Bull Market Scenario:**
- Stocks with strong fundamentals and positive news sentiment may outperform
- High-growth stocks could see accelerated gains
- Dividend-paying stocks may attract income-focused investors

**Bear Market Scenario:**
- High P/E ratio stocks may face pressure
- Highly correlated stocks may decline together
- Defensive stocks with strong balance sheets may be more resilient

**Neutral Market Scenario:**
- Stock selection based on individual company fundamentals becomes more important
- Dividend yields become more attractive relative to other investments
- Market correlation effects may be reduced
`

func (c *Composer) writeConclusion(b *strings.Builder, result *model.AnalysisResult) {
	fmt.Fprintf(b, "\nBased on the comprehensive analysis of %s, several key insights emerge:\n\n",
		strings.Join(result.Symbols, ", "))

	var strong []string
	for _, sym := range result.Symbols {
		if c.isFundamentallyStrong(result.Records[sym]) {
			strong = append(strong, sym)
		}
	}
	if len(strong) > 0 {
		fmt.Fprintf(b, "- **Fundamentally Strong Stocks:** %s show favorable metrics\n", strings.Join(strong, ", "))
	}

	b.WriteString(`
- Diversification across the analyzed stocks may help mitigate individual company risks
- Regular monitoring of news and fundamental changes is recommended
- Consider correlation effects when building a portfolio with these stocks

**Disclaimer:** This analysis is for informational purposes only and should not be considered as investment advice.
Always consult with a qualified financial advisor before making investment decisions.
`)
}

// isFundamentallyStrong scores 2-of-3 on the configured thresholds.
// An unavailable metric scores no point; it is never treated as zero
// or infinity.
func (c *Composer) isFundamentallyStrong(rec *model.StockRecord) bool {
	score := 0
	if pe := rec.Fundamentals.PERatio; pe.Valid && pe.Value < c.Opts.StrongPEBelow {
		score++
	}
	if roe := rec.Fundamentals.ROE; roe.Valid && roe.Value > c.Opts.StrongROEAbove {
		score++
	}
	if rec.SixMonthChange > 0 {
		score++
	}
	return score >= 2
}

func currencySymbol(currency string) string {
	if currency == "INR" {
		return "₹"
	}
	return "$"
}

// formatLargeNumber renders market cap / volume with a magnitude suffix.
func formatLargeNumber(m model.Metric) string {
	if !m.Valid {
		return "N/A"
	}
	v := m.Value
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	default:
		return "$" + humanize.CommafWithDigits(v, 0)
	}
}
