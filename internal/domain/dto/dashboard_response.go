package dto

import "time"

// DashboardResponse represents the JSON structure returned by the
// GET /api/v1/dashboard endpoints: everything a client needs to render
// summary cards and charts without further computation.
//
// Empty is true when no upstream response is held at all (render an empty
// state), as opposed to tickers whose series has no points (render cards
// with zeros).
type DashboardResponse struct {
	State      string       `json:"state" example:"success"`
	Error      string       `json:"error,omitempty"`
	Start      string       `json:"start,omitempty" example:"2024-11-01"`
	End        string       `json:"end,omitempty" example:"2024-12-01"`
	Symbols    string       `json:"symbols" example:"MSFT,AAPL"`
	Generation uint64       `json:"generation" example:"3"`
	UpdatedAt  *time.Time   `json:"updated_at,omitempty"`
	Empty      bool         `json:"empty"`
	Tickers    []TickerView `json:"tickers"`
}

// TickerView is one summary card plus its chart series.
type TickerView struct {
	Ticker         string      `json:"ticker" example:"MSFT"`
	Color          string      `json:"color" example:"#00a4ef"`
	Min            float64     `json:"min" example:"-0.0213"`
	Max            float64     `json:"max" example:"0.0311"`
	Mean           float64     `json:"mean" example:"0.0012"`
	MinPct         string      `json:"min_pct" example:"-2.13%"`
	MaxPct         string      `json:"max_pct" example:"+3.11%"`
	MeanPct        string      `json:"mean_pct" example:"+0.12%"`
	TotalReturn    float64     `json:"total_return" example:"0.0451"`
	TotalReturnPct string      `json:"total_return_pct" example:"+4.51%"`
	Points         []PointView `json:"points"`
}

// PointView is one chart point: the daily return and the compounded return
// through that day.
type PointView struct {
	Date       string  `json:"date" example:"2024-12-03"`
	Return     float64 `json:"return" example:"0.00051"`
	Compounded float64 `json:"compounded" example:"0.0123"`
}

// SettingsResponse exposes display configuration and request defaults.
type SettingsResponse struct {
	Title            string   `json:"title" example:"Stocks Dashboard"`
	Description      string   `json:"description"`
	Keywords         []string `json:"keywords"`
	DefaultTickers   []string `json:"default_tickers"`
	DefaultRangeDays int      `json:"default_range_days" example:"30"`
	MaxRangeDays     int      `json:"max_range_days" example:"3650"`
}
