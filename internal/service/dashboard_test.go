package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/mag7pulse/internal/domain/models"
	"github.com/guttosm/mag7pulse/internal/returns"
)

type stubFetcher struct {
	resp *models.ReturnsResponse
	err  error
}

func (s *stubFetcher) FetchReturns(_ context.Context, _ models.DateRange, _ string) (*models.ReturnsResponse, error) {
	return s.resp, s.err
}
func (s *stubFetcher) Ping(_ context.Context) error { return nil }

var _ returns.Fetcher = (*stubFetcher)(nil)

func sampleResponse() *models.ReturnsResponse {
	return &models.ReturnsResponse{Data: map[string]models.TickerSeries{
		"TSLA": {{Date: "2024-01-02", Return: 0.02}},
		"AAPL": {{Date: "2024-01-02", Return: 0.10}, {Date: "2024-01-03", Return: -0.05}},
		"MSFT": {},
	}}
}

func testRange() models.DateRange {
	return models.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestDashboardService_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		fetcher   *stubFetcher
		wantState models.DashboardState
		wantErr   bool
		wantMsg   string
		wantCount int
	}{
		{
			name:      "success",
			fetcher:   &stubFetcher{resp: sampleResponse()},
			wantState: models.StateSuccess,
			wantCount: 3,
		},
		{
			name:      "api error",
			fetcher:   &stubFetcher{err: &returns.APIError{Kind: returns.KindHTTP, Status: 500, Message: "Failed to fetch stock data: Internal Server Error"}},
			wantState: models.StateFailed,
			wantErr:   true,
			wantMsg:   "Failed to fetch stock data: Internal Server Error",
		},
		{
			name:      "other error",
			fetcher:   &stubFetcher{err: errors.New("boom")},
			wantState: models.StateFailed,
			wantErr:   true,
			wantMsg:   "Failed to fetch stock data",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewDashboardService(tc.fetcher)
			if got := svc.Current().State; got != models.StateIdle {
				t.Fatalf("initial state=%s, want idle", got)
			}

			out, err := svc.Refresh(context.Background(), testRange(), "AAPL,MSFT,TSLA")
			if (err != nil) != tc.wantErr {
				t.Fatalf("err=%v, wantErr=%v", err, tc.wantErr)
			}
			if out == nil || out.State != tc.wantState {
				t.Fatalf("unexpected snapshot: %+v", out)
			}
			if out.Error != tc.wantMsg {
				t.Fatalf("error message=%q, want %q", out.Error, tc.wantMsg)
			}
			if len(out.Summaries) != tc.wantCount {
				t.Fatalf("summaries=%d, want %d", len(out.Summaries), tc.wantCount)
			}
			if out.Generation != 1 || out.Symbols != "AAPL,MSFT,TSLA" {
				t.Fatalf("unexpected request metadata: %+v", out)
			}
			if cur := svc.Current(); cur.State != tc.wantState {
				t.Fatalf("Current().State=%s, want %s", cur.State, tc.wantState)
			}
		})
	}
}

func TestDashboardService_SummariesSortedAndComputed(t *testing.T) {
	svc := NewDashboardService(&stubFetcher{resp: sampleResponse()})
	out, err := svc.Refresh(context.Background(), testRange(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"AAPL", "MSFT", "TSLA"}
	for i, s := range out.Summaries {
		if s.Ticker != want[i] {
			t.Fatalf("order=%v, want %v", out.Summaries, want)
		}
	}
	aapl := out.Summaries[0]
	if aapl.Min != -0.05 || aapl.Max != 0.1 || aapl.Mean != 0.025 || len(aapl.Data) != 2 {
		t.Fatalf("unexpected AAPL summary: %+v", aapl)
	}
	msft := out.Summaries[1]
	if msft.Min != 0 || msft.Max != 0 || msft.Mean != 0 {
		t.Fatalf("empty series should yield zero stats: %+v", msft)
	}
	if out.Empty() {
		t.Fatalf("dashboard with a response must not be empty")
	}
}

func TestDashboardService_FailureClearsPreviousData(t *testing.T) {
	f := &stubFetcher{resp: sampleResponse()}
	svc := NewDashboardService(f)
	if _, err := svc.Refresh(context.Background(), testRange(), ""); err != nil {
		t.Fatalf("first refresh: %v", err)
	}

	f.resp, f.err = nil, &returns.APIError{Kind: returns.KindTransport, Message: "connection refused"}
	out, err := svc.Refresh(context.Background(), testRange(), "")
	if err == nil {
		t.Fatalf("expected error")
	}
	if out.Response != nil || out.Summaries != nil || !out.Empty() {
		t.Fatalf("stale data kept after failure: %+v", out)
	}
	if out.Error != "connection refused" {
		t.Fatalf("message=%q", out.Error)
	}

	// A following success clears the error.
	f.resp, f.err = sampleResponse(), nil
	out, err = svc.Refresh(context.Background(), testRange(), "")
	if err != nil || out.Error != "" || out.State != models.StateSuccess {
		t.Fatalf("unexpected recovery: out=%+v err=%v", out, err)
	}
}

// gatedFetcher blocks the first call until release is closed.
type gatedFetcher struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func (g *gatedFetcher) FetchReturns(_ context.Context, _ models.DateRange, symbols string) (*models.ReturnsResponse, error) {
	g.mu.Lock()
	g.calls++
	first := g.calls == 1
	g.mu.Unlock()

	if first {
		close(g.started)
		<-g.release
	}
	return &models.ReturnsResponse{Data: map[string]models.TickerSeries{
		symbols: {{Date: "2024-01-02", Return: 0.01}},
	}}, nil
}
func (g *gatedFetcher) Ping(_ context.Context) error { return nil }

func TestDashboardService_StaleResponseDiscarded(t *testing.T) {
	f := &gatedFetcher{started: make(chan struct{}), release: make(chan struct{})}
	svc := NewDashboardService(f)

	type result struct {
		out *models.Dashboard
		err error
	}
	slow := make(chan result, 1)
	go func() {
		out, err := svc.Refresh(context.Background(), testRange(), "OLD")
		slow <- result{out, err}
	}()
	<-f.started

	if cur := svc.Current(); cur.State != models.StateLoading {
		t.Fatalf("state while in flight=%s, want loading", cur.State)
	}

	out, err := svc.Refresh(context.Background(), testRange(), "NEW")
	if err != nil || out.Summaries[0].Ticker != "NEW" {
		t.Fatalf("fresh refresh failed: out=%+v err=%v", out, err)
	}

	close(f.release)
	r := <-slow
	if !errors.Is(r.err, ErrSuperseded) || r.out != nil {
		t.Fatalf("expected ErrSuperseded, got out=%+v err=%v", r.out, r.err)
	}

	cur := svc.Current()
	if cur.Generation != 2 || cur.Symbols != "NEW" || cur.Summaries[0].Ticker != "NEW" {
		t.Fatalf("stale response overwrote fresh state: %+v", cur)
	}
}

func TestSummarize_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := summarize(ctx, sampleResponse()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDashboardService_HugeFiniteReturns(t *testing.T) {
	svc := NewDashboardService(&stubFetcher{resp: &models.ReturnsResponse{Data: map[string]models.TickerSeries{
		"NVDA": {{Date: "2024-01-02", Return: 1e308}, {Date: "2024-01-03", Return: 1e308}},
	}}})

	out, err := svc.Refresh(context.Background(), testRange(), "NVDA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State != models.StateSuccess || len(out.Summaries) != 1 {
		t.Fatalf("unexpected snapshot: %+v", out)
	}
	if s := out.Summaries[0]; s.Min != 1e308 || s.Max != 1e308 || s.Mean != 1e308 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}
