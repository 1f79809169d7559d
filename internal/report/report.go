package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/guttosm/mag7pulse/internal/domain/models"
	"github.com/guttosm/mag7pulse/internal/logger"
	"github.com/guttosm/mag7pulse/internal/service"
	"github.com/guttosm/mag7pulse/internal/stats"
)

// Header is the fixed column order of the CSV report.
var Header = []string{"ticker", "points", "min", "max", "mean", "total_return"}

// Generate runs a single refresh through svc and writes the resulting
// summaries to w as CSV.
//
// Parameters:
//   - ctx: bounds the upstream call.
//   - svc: orchestrator used for the refresh.
//   - rng / symbols: passed to Refresh unchanged.
//   - w: destination of the CSV table.
//
// Returns an error when the refresh fails or the output cannot be written.
func Generate(ctx context.Context, svc service.DashboardService, rng models.DateRange, symbols string, w io.Writer) error {
	snap, err := svc.Refresh(ctx, rng, symbols)
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	logger.L().Info().
		Int("tickers", len(snap.Summaries)).
		Uint64("generation", snap.Generation).
		Msg("report generated")

	return WriteCSV(w, snap.Summaries)
}

// WriteCSV writes one row per summary, in the given order, preceded by Header.
// Statistics are written as stored; total_return is rounded like the
// summary statistics and clamped to the float64 range like the dashboard view.
func WriteCSV(w io.Writer, summaries []models.TickerSummary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, s := range summaries {
		row := []string{
			s.Ticker,
			strconv.Itoa(len(s.Data)),
			formatFloat(s.Min),
			formatFloat(s.Max),
			formatFloat(s.Mean),
			formatFloat(stats.Round(stats.Finite(stats.TotalReturn(s.Data)))),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", s.Ticker, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
