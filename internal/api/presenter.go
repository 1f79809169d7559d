package api

import (
	"strconv"
	"strings"

	"github.com/guttosm/mag7pulse/internal/domain/dto"
	"github.com/guttosm/mag7pulse/internal/domain/models"
	"github.com/guttosm/mag7pulse/internal/returns"
	"github.com/guttosm/mag7pulse/internal/stats"
)

// defaultColor is used for tickers outside the MAG7 palette.
const defaultColor = "#6b7280"

var tickerColors = map[string]string{
	"MSFT":  "#00a4ef",
	"AAPL":  "#a2aaad",
	"GOOGL": "#4285f4",
	"AMZN":  "#ff9900",
	"NVDA":  "#76b900",
	"META":  "#0668E1",
	"TSLA":  "#cc0000",
}

// TickerColor returns the chart colour of a ticker.
func TickerColor(ticker string) string {
	if c, ok := tickerColors[ticker]; ok {
		return c
	}
	return defaultColor
}

// FormatPercentage renders a fractional value as a signed percentage with
// two decimals: 0.0123 → "+1.23%".
func FormatPercentage(v float64) string {
	s := strconv.FormatFloat(v*100, 'f', 2, 64)
	if v >= 0 && !strings.HasPrefix(s, "+") {
		s = "+" + s
	}
	return s + "%"
}

// NewDashboardResponse maps an orchestrator snapshot to its view model.
// Compounded series are derived here from the raw series of each summary.
func NewDashboardResponse(d models.Dashboard) dto.DashboardResponse {
	resp := dto.DashboardResponse{
		State:      string(d.State),
		Error:      d.Error,
		Symbols:    d.Symbols,
		Generation: d.Generation,
		Empty:      d.Empty(),
		Tickers:    make([]dto.TickerView, 0, len(d.Summaries)),
	}
	if !d.Range.Start.IsZero() {
		resp.Start = d.Range.Start.UTC().Format(returns.DateLayout)
		resp.End = d.Range.End.UTC().Format(returns.DateLayout)
	}
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt.UTC()
		resp.UpdatedAt = &t
	}

	for _, s := range d.Summaries {
		resp.Tickers = append(resp.Tickers, newTickerView(s))
	}
	return resp
}

func newTickerView(s models.TickerSummary) dto.TickerView {
	compounded := stats.ComputeCompounded(s.Data)
	points := make([]dto.PointView, len(s.Data))
	for i, p := range s.Data {
		points[i] = dto.PointView{Date: p.Date, Return: p.Return, Compounded: stats.Finite(compounded[i])}
	}
	total := stats.Finite(stats.Final(compounded))

	return dto.TickerView{
		Ticker:         s.Ticker,
		Color:          TickerColor(s.Ticker),
		Min:            s.Min,
		Max:            s.Max,
		Mean:           s.Mean,
		MinPct:         FormatPercentage(s.Min),
		MaxPct:         FormatPercentage(s.Max),
		MeanPct:        FormatPercentage(s.Mean),
		TotalReturn:    stats.Round(total),
		TotalReturnPct: FormatPercentage(total),
		Points:         points,
	}
}
