package models

import "time"

// DashboardState is the lifecycle state of the data-fetch orchestrator.
type DashboardState string

const (
	StateIdle    DashboardState = "idle"
	StateLoading DashboardState = "loading"
	StateSuccess DashboardState = "success"
	StateFailed  DashboardState = "failed"
)

// Dashboard is a point-in-time snapshot of the orchestrator.
//
// Fields:
//   - State: current lifecycle state.
//   - Error: user-facing message, set only in StateFailed.
//   - Range / Symbols: parameters of the request that produced this snapshot.
//   - Response: raw upstream payload; nil when idle, loading from idle, or failed.
//   - Summaries: per-ticker summaries sorted by ticker.
//   - Generation: sequence number of the request that produced this snapshot.
//   - UpdatedAt: when the snapshot was last written.
type Dashboard struct {
	State      DashboardState
	Error      string
	Range      DateRange
	Symbols    string
	Response   *ReturnsResponse
	Summaries  []TickerSummary
	Generation uint64
	UpdatedAt  time.Time
}

// Empty reports whether there is no response to display at all.
func (d Dashboard) Empty() bool {
	return d.Response == nil
}
