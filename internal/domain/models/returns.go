package models

import "time"

// ReturnPoint is one trading day's fractional return for one ticker
// (e.g. 0.015 = +1.5%).
//
// swagger:model ReturnPoint
type ReturnPoint struct {
	Date   string  `json:"date" example:"2024-12-03"`
	Return float64 `json:"return" example:"0.00051"`
}

// TickerSeries is the ordered (date ascending) sequence of daily returns
// for a single ticker. Compounding depends on the order.
type TickerSeries []ReturnPoint

// SummaryStats holds min, max and mean of a series, each rounded to
// four fractional digits.
type SummaryStats struct {
	Min  float64 `json:"min" example:"-0.05"`
	Max  float64 `json:"max" example:"0.1"`
	Mean float64 `json:"mean" example:"0.025"`
}

// CompoundedSeries is index-aligned with its source TickerSeries; entry i
// is the cumulative compounded return through day i.
type CompoundedSeries []float64

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ReturnsResponse is the payload served by the upstream returns API:
//
//	{ "data": { "MSFT": [ { "date": "2024-01-02", "return": 0.01 } ] } }
type ReturnsResponse struct {
	Data map[string]TickerSeries `json:"data"`
}

// Tickers returns the ticker keys of the response.
func (r *ReturnsResponse) Tickers() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.Data))
	for k := range r.Data {
		out = append(out, k)
	}
	return out
}

// TickerSummary pairs the summary statistics of one ticker with the raw
// series they were derived from.
type TickerSummary struct {
	Ticker string
	SummaryStats
	Data TickerSeries
}
