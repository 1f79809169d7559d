package service

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/mag7pulse/internal/domain/models"
	"github.com/guttosm/mag7pulse/internal/logger"
	"github.com/guttosm/mag7pulse/internal/returns"
	"github.com/guttosm/mag7pulse/internal/stats"
)

// ErrSuperseded is returned by Refresh when a newer Refresh was issued while
// this one was in flight. Its result has been discarded.
var ErrSuperseded = errors.New("refresh superseded by a newer request")

// fallbackMessage is shown when a failure carries no API message.
const fallbackMessage = "Failed to fetch stock data"

// DashboardService owns the request lifecycle of the dashboard:
// idle → loading → success | failed → loading …
type DashboardService interface {
	Refresh(ctx context.Context, rng models.DateRange, symbols string) (*models.Dashboard, error)
	Current() models.Dashboard
}

type dashboardService struct {
	fetcher returns.Fetcher
	now     func() time.Time

	mu    sync.Mutex
	gen   uint64
	state models.Dashboard
}

// NewDashboardService builds the orchestrator around a returns fetcher.
func NewDashboardService(fetcher returns.Fetcher) DashboardService {
	return &dashboardService{
		fetcher: fetcher,
		now:     time.Now,
		state:   models.Dashboard{State: models.StateIdle},
	}
}

// Current returns a copy of the latest snapshot.
func (s *dashboardService) Current() models.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Refresh moves the dashboard to loading, fetches returns for rng/symbols and
// applies the outcome, unless a newer Refresh started meanwhile, in which
// case the outcome is dropped and ErrSuperseded returned.
//
// Returns:
//   - the applied snapshot and nil on success;
//   - the applied failed snapshot and the fetch error on failure;
//   - nil and ErrSuperseded when stale.
func (s *dashboardService) Refresh(ctx context.Context, rng models.DateRange, symbols string) (*models.Dashboard, error) {
	gen := s.begin(rng, symbols)
	log := logger.L().With().Uint64("generation", gen).Str("symbols", symbols).Logger()
	log.Debug().Time("start", rng.Start).Time("end", rng.End).Msg("dashboard refresh")

	resp, err := s.fetcher.FetchReturns(ctx, rng, symbols)
	var summaries []models.TickerSummary
	if err == nil {
		summaries, err = summarize(ctx, resp)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		log.Info().Uint64("latest", s.gen).Msg("discarding stale refresh")
		return nil, ErrSuperseded
	}

	s.state.UpdatedAt = s.now()
	if err != nil {
		s.state.State = models.StateFailed
		s.state.Error = displayMessage(err)
		s.state.Response = nil
		s.state.Summaries = nil
		log.Warn().Err(err).Msg("dashboard refresh failed")
		snap := s.state
		return &snap, err
	}

	s.state.State = models.StateSuccess
	s.state.Error = ""
	s.state.Response = resp
	s.state.Summaries = summaries
	log.Info().Int("tickers", len(summaries)).Msg("dashboard refreshed")
	snap := s.state
	return &snap, nil
}

// begin records a new request generation and enters the loading state.
// Previously displayed data stays visible while loading.
func (s *dashboardService) begin(rng models.DateRange, symbols string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state.State = models.StateLoading
	s.state.Error = ""
	s.state.Range = rng
	s.state.Symbols = symbols
	s.state.Generation = s.gen
	s.state.UpdatedAt = s.now()
	return s.gen
}

// summarize runs the statistics engine over every ticker of resp. The result
// is sorted by ticker.
func summarize(ctx context.Context, resp *models.ReturnsResponse) ([]models.TickerSummary, error) {
	tickers := resp.Tickers()
	sort.Strings(tickers)
	out := make([]models.TickerSummary, len(tickers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, ticker := range tickers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			series := resp.Data[ticker]
			out[i] = models.TickerSummary{
				Ticker:       ticker,
				SummaryStats: stats.ComputeSummary(series),
				Data:         series,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func displayMessage(err error) string {
	if apiErr, ok := returns.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallbackMessage
}
