// Package stats turns a ticker's daily-return series into summary
// statistics and a compounded cumulative-return series.
//
// All functions are pure: they never mutate their input and never fail
// for finite input.
package stats

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/guttosm/mag7pulse/internal/domain/models"
)

// SummaryPlaces is the number of fractional digits summary values are rounded to.
const SummaryPlaces = 4

// ComputeSummary returns min, max and arithmetic mean of the series returns,
// each rounded to SummaryPlaces digits. An empty series yields zero stats.
func ComputeSummary(series models.TickerSeries) models.SummaryStats {
	if len(series) == 0 {
		return models.SummaryStats{}
	}

	// running mean: every step stays within the range of the inputs, so
	// finite returns never overflow.
	lo, hi := series[0].Return, series[0].Return
	mean := 0.0
	for i, p := range series {
		if p.Return < lo {
			lo = p.Return
		}
		if p.Return > hi {
			hi = p.Return
		}
		k := float64(i + 1)
		mean += p.Return/k - mean/k
	}

	return models.SummaryStats{
		Min:  Round(lo),
		Max:  Round(hi),
		Mean: Round(mean),
	}
}

// ComputeCompounded returns the cumulative compounded return through each
// day of the series: factor starts at 1, factor *= 1+r, emit factor-1.
// No rounding is applied. The series is assumed to be date ascending.
func ComputeCompounded(series models.TickerSeries) models.CompoundedSeries {
	out := make(models.CompoundedSeries, len(series))
	factor := 1.0
	for i, p := range series {
		factor *= 1 + p.Return
		out[i] = factor - 1
	}
	return out
}

// TotalReturn is the compounded return over the whole series, 0 when empty.
func TotalReturn(series models.TickerSeries) float64 {
	return Final(ComputeCompounded(series))
}

// Final is the last value of a compounded series, 0 when empty.
func Final(c models.CompoundedSeries) float64 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1]
}

// Round rounds v to SummaryPlaces fractional digits, half away from zero.
// Non-finite values are returned unchanged.
func Round(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(SummaryPlaces).Float64()
	return f
}

// Finite maps a compounded value that overflowed float64 back into range:
// ±Inf become ±math.MaxFloat64 and NaN becomes 0. Finite values pass
// through unchanged. Use it before encoding values as JSON.
func Finite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	default:
		return v
	}
}
