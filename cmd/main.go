package main

//
//  @title           mag7pulse API
//  @version         1.0
//  @description     Daily-return dashboard service for MAG7 stocks.
//  @termsOfService  https://github.com/guttosm/mag7pulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/mag7pulse
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        dashboard
//  @tag.description Daily returns, summary statistics and compounded returns
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/mag7pulse/config"
	"github.com/guttosm/mag7pulse/docs"
	"github.com/guttosm/mag7pulse/internal/api"
	"github.com/guttosm/mag7pulse/internal/app"
	"github.com/guttosm/mag7pulse/internal/calendar"
	"github.com/guttosm/mag7pulse/internal/domain/models"
	"github.com/guttosm/mag7pulse/internal/logger"
	"github.com/guttosm/mag7pulse/internal/report"
	"github.com/guttosm/mag7pulse/internal/returns"
	"github.com/guttosm/mag7pulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., idle upstream connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// reportRange resolves the --start/--end flags. Empty values fall back to
// the default range ending on the last business day before now.
func reportRange(start, end string, now time.Time, defaultDays int) (models.DateRange, error) {
	rng := calendar.DefaultRange(now, defaultDays)
	if s := strings.TrimSpace(start); s != "" {
		d, err := time.Parse(returns.DateLayout, s)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("invalid --start %q: %w", s, err)
		}
		rng.Start = d
	}
	if e := strings.TrimSpace(end); e != "" {
		d, err := time.Parse(returns.DateLayout, e)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("invalid --end %q: %w", e, err)
		}
		rng.End = d
	}
	if rng.Start.After(rng.End) {
		return models.DateRange{}, fmt.Errorf("--start %s is after --end %s",
			rng.Start.Format(returns.DateLayout), rng.End.Format(returns.DateLayout))
	}
	return rng, nil
}

// runReport performs one refresh against the configured upstream and writes
// the CSV report to out.
func runReport(ctx context.Context, cfg config.Config, start, end, symbols string, out io.Writer) error {
	rng, err := reportRange(start, end, time.Now(), cfg.Dashboard.DefaultRangeDays)
	if err != nil {
		return err
	}

	client, err := app.InitUpstream(cfg)
	if err != nil {
		return err
	}
	defer client.CloseIdleConnections()

	ctx, cancel := context.WithTimeout(ctx, cfg.Server.RequestTimeout)
	defer cancel()

	svc := service.NewDashboardService(client)
	return report.Generate(ctx, svc, rng, api.NormalizeSymbols(symbols), out)
}

// main is the entry point of the mag7pulse application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API serving the dashboard view model.
//   - report: Fetches returns once and prints a CSV summary to stdout.
//
// Flags:
//   - --mode:    Execution mode ("api" or "report"). Default: "api".
//   - --port:    Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --start:   Report start date (YYYY-MM-DD). Defaults to DEFAULT_RANGE_DAYS before --end.
//   - --end:     Report end date (YYYY-MM-DD). Defaults to the last business day.
//   - --symbols: Comma-separated tickers for the report. Defaults to DEFAULT_TICKERS.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	cfg := config.LoadConfig()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or report")
	port := flag.String("port", cfg.Server.Port, "Port for API mode")
	start := flag.String("start", "", "Report start date (YYYY-MM-DD)")
	end := flag.String("end", "", "Report end date (YYYY-MM-DD)")
	symbols := flag.String("symbols", cfg.Dashboard.DefaultSymbols(), "Comma-separated tickers for report mode")
	flag.Parse()

	switch *mode {
	case "api":
		logger.Init(cfg.Log.Level, cfg.Log.Pretty)
		logger.L().Info().Msg("starting API server")

		docs.SwaggerInfo.Title = cfg.Display.Title
		docs.SwaggerInfo.Description = cfg.Display.Description

		router, cleanup, err := app.InitializeApp(cfg)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "report":
		// stdout carries the CSV, so logs go to stderr
		logger.InitWithWriter(os.Stderr, cfg.Log.Level, cfg.Log.Pretty)

		if err := runReport(ctx, cfg, *start, *end, *symbols, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("report failed")
		}

	default:
		logger.Init(cfg.Log.Level, cfg.Log.Pretty)
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
