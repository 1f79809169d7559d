package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file. It is built once by LoadConfig and passed to the
// components that need it.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	API_BASE_URL=http://127.0.0.1:8000/api
//	APP_TITLE=Stocks Dashboard
//	APP_KEYWORDS=stocks,dashboard,MAG7
//	DEFAULT_TICKERS=MSFT,AAPL,GOOGL,AMZN,NVDA,META,TSLA
//	DEFAULT_RANGE_DAYS=30
//	MAX_DATE_RANGE_DAYS=3650
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Upstream  UpstreamConfig  // returns API the dashboard reads from
	Display   DisplayConfig   // titles and metadata shown by clients
	Dashboard DashboardConfig // ticker and date-range defaults
	Log       LogConfig       // logger settings
}

// ServerConfig holds HTTP server settings.
//
// Fields:
//   - Port: TCP port the HTTP server listens on (e.g., "8080").
//   - CORSOrigins: browser origins allowed to call the API.
//   - RateLimitPerMinute: requests allowed per client IP per minute.
//   - RequestTimeout: deadline attached to every request context.
type ServerConfig struct {
	Port               string
	CORSOrigins        []string
	RateLimitPerMinute int
	RequestTimeout     time.Duration
}

// UpstreamConfig points at the external returns API.
type UpstreamConfig struct {
	BaseURL string // e.g. http://127.0.0.1:8000/api; /returns and /health are appended
}

// DisplayConfig carries the strings a client renders in its chrome.
type DisplayConfig struct {
	Title       string
	Description string
	Keywords    []string
}

// DashboardConfig holds request defaults and limits.
type DashboardConfig struct {
	DefaultTickers   []string
	DefaultRangeDays int
	MaxRangeDays     int
}

// DefaultSymbols is DefaultTickers joined the way the upstream expects them.
func (d DashboardConfig) DefaultSymbols() string {
	return strings.Join(d.DefaultTickers, ",")
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level  string
	Pretty bool
}

// LoadConfig builds a Config by reading from a .env file or directly from
// environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates the app
//     with a descriptive log message.
func LoadConfig() Config {
	v := viper.New()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.SetDefault("REQUEST_TIMEOUT", "10s")

	v.SetDefault("API_BASE_URL", "http://127.0.0.1:8000/api")

	v.SetDefault("APP_TITLE", "Stocks Dashboard")
	v.SetDefault("APP_DESCRIPTION", "Interactive dashboard for visualizing daily returns of MAG7 stocks (MSFT, AAPL, GOOGL, AMZN, NVDA, META, TSLA)")
	v.SetDefault("APP_KEYWORDS", "stocks,dashboard,MAG7,finance,charts,returns")

	v.SetDefault("DEFAULT_TICKERS", "MSFT,AAPL,GOOGL,AMZN,NVDA,META,TSLA")
	v.SetDefault("DEFAULT_RANGE_DAYS", 30)
	v.SetDefault("MAX_DATE_RANGE_DAYS", 3650)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	// Optionally read from .env if present (common in local dev)
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore error if no .env

	v.AutomaticEnv()

	cfg := Config{
		Server: ServerConfig{
			Port:               v.GetString("SERVER_PORT"),
			CORSOrigins:        splitList(v.GetString("CORS_ORIGINS"), false),
			RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
			RequestTimeout:     v.GetDuration("REQUEST_TIMEOUT"),
		},
		Upstream: UpstreamConfig{
			BaseURL: strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		},
		Display: DisplayConfig{
			Title:       v.GetString("APP_TITLE"),
			Description: v.GetString("APP_DESCRIPTION"),
			Keywords:    splitList(v.GetString("APP_KEYWORDS"), false),
		},
		Dashboard: DashboardConfig{
			DefaultTickers:   splitList(v.GetString("DEFAULT_TICKERS"), true),
			DefaultRangeDays: v.GetInt("DEFAULT_RANGE_DAYS"),
			MaxRangeDays:     v.GetInt("MAX_DATE_RANGE_DAYS"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
	}

	validateConfig(cfg)
	return cfg
}

// splitList splits a comma-separated value, trimming blanks. Tickers are
// upper-cased.
func splitList(s string, upper bool) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if upper {
			part = strings.ToUpper(part)
		}
		out = append(out, part)
	}
	return out
}

// missingFields lists the variables whose values make cfg unusable.
func missingFields(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Server.RequestTimeout <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT")
	}
	if cfg.Upstream.BaseURL == "" {
		missing = append(missing, "API_BASE_URL")
	}
	if len(cfg.Dashboard.DefaultTickers) == 0 {
		missing = append(missing, "DEFAULT_TICKERS")
	}
	if cfg.Dashboard.DefaultRangeDays <= 0 {
		missing = append(missing, "DEFAULT_RANGE_DAYS")
	}
	if cfg.Dashboard.MaxRangeDays <= 0 {
		missing = append(missing, "MAX_DATE_RANGE_DAYS")
	}
	return missing
}

// validateConfig terminates the application when required values are
// missing or invalid.
func validateConfig(cfg Config) {
	if missing := missingFields(cfg); len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
