// Package returns is the HTTP client for the upstream daily-returns API.
package returns

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/guttosm/mag7pulse/internal/domain/models"
	"github.com/guttosm/mag7pulse/internal/logger"
)

// DateLayout is the calendar-date format used on the wire.
const DateLayout = "2006-01-02"

// Fetcher is the contract the orchestrator depends on.
type Fetcher interface {
	FetchReturns(ctx context.Context, rng models.DateRange, symbols string) (*models.ReturnsResponse, error)
	Ping(ctx context.Context) error
}

// Client talks to {baseURL}/returns and {baseURL}/health.
//
// It issues exactly one request per call: no retries, and no timeout of its
// own. Bound calls with the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
}

var _ Fetcher = (*Client)(nil)

// NewClient builds a Client. A nil httpClient means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// wireResponse mirrors the upstream payload with every field required.
type wireResponse struct {
	Data map[string][]wirePoint `json:"data" validate:"required,dive,keys,required,endkeys,dive"`
}

type wirePoint struct {
	Date   string   `json:"date" validate:"required,datetime=2006-01-02"`
	Return *float64 `json:"return" validate:"required"`
}

// FetchReturns performs GET {base}/returns?start=&end=[&symbols=].
//
// Dates are sent as UTC calendar dates. symbols is sent only when it is not
// blank. Every failure is an *APIError.
func (c *Client) FetchReturns(ctx context.Context, rng models.DateRange, symbols string) (*models.ReturnsResponse, error) {
	endpoint := c.returnsURL(rng, symbols)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &APIError{Kind: KindTransport, Message: err.Error(), Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.L().Warn().Err(err).Str("url", endpoint).Msg("returns request failed")
		return nil, &APIError{Kind: KindTransport, Message: err.Error(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	logger.L().Debug().
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("returns response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Kind:    KindHTTP,
			Status:  resp.StatusCode,
			Message: "Failed to fetch stock data: " + statusText(resp),
		}
	}

	var body wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &APIError{Kind: KindParse, Message: err.Error(), Err: err}
	}
	if err := c.validate.Struct(body); err != nil {
		return nil, &APIError{Kind: KindParse, Message: "invalid returns payload: " + err.Error(), Err: err}
	}

	return body.toModel(), nil
}

// Ping checks GET {base}/health answers with a 2xx status.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return &APIError{Kind: KindTransport, Message: err.Error(), Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindTransport, Message: err.Error(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Kind: KindHTTP, Status: resp.StatusCode, Message: "health check failed: " + statusText(resp)}
	}
	return nil
}

// CloseIdleConnections releases pooled connections of the underlying client.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) returnsURL(rng models.DateRange, symbols string) string {
	q := url.Values{}
	q.Set("start", rng.Start.UTC().Format(DateLayout))
	q.Set("end", rng.End.UTC().Format(DateLayout))
	if s := strings.TrimSpace(symbols); s != "" {
		q.Set("symbols", s)
	}
	return fmt.Sprintf("%s/returns?%s", c.baseURL, q.Encode())
}

func (w wireResponse) toModel() *models.ReturnsResponse {
	out := &models.ReturnsResponse{Data: make(map[string]models.TickerSeries, len(w.Data))}
	for ticker, points := range w.Data {
		series := make(models.TickerSeries, len(points))
		for i, p := range points {
			series[i] = models.ReturnPoint{Date: p.Date, Return: *p.Return}
		}
		out.Data[ticker] = series
	}
	return out
}

// statusText returns the reason phrase of resp ("Internal Server Error").
func statusText(resp *http.Response) string {
	if s := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); s != "" && s != resp.Status {
		return s
	}
	return http.StatusText(resp.StatusCode)
}
