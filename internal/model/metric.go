package model

import "fmt"

// Metric is a numeric provider field that may be unavailable.
// Unavailable and zero are distinct states: a stock that reports no
// dividend data is not the same as one yielding 0%.
type Metric struct {
	Value float64
	Valid bool
}

// MetricOf returns an available Metric holding v.
func MetricOf(v float64) Metric { return Metric{Value: v, Valid: true} }

// String formats the value with two decimals, or "N/A" when unavailable.
func (m Metric) String() string {
	if !m.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", m.Value)
}

// Percent formats the value as a percentage, or "N/A" when unavailable.
func (m Metric) Percent() string {
	if !m.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", m.Value)
}
