package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/mag7pulse/config"
	"github.com/guttosm/mag7pulse/internal/calendar"
	"github.com/guttosm/mag7pulse/internal/domain/dto"
	"github.com/guttosm/mag7pulse/internal/domain/models"
	"github.com/guttosm/mag7pulse/internal/returns"
	"github.com/guttosm/mag7pulse/internal/service"
)

// Handler provides HTTP handlers for the dashboard endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Trigger dashboard refreshes through the service layer
//   - Translate dashboard snapshots into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc       service.DashboardService
	dashboard config.DashboardConfig
	display   config.DisplayConfig
	now       func() time.Time
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.DashboardService): orchestrator that owns the dashboard state.
//   - cfg (config.Config): application configuration (defaults, limits, display strings).
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.DashboardService, cfg config.Config) *Handler {
	return &Handler{
		svc:       svc,
		dashboard: cfg.Dashboard,
		display:   cfg.Display,
		now:       time.Now,
	}
}

// GetDashboard handles GET /api/v1/dashboard requests.
//
// Query Parameters:
//   - start (string, optional): first date, YYYY-MM-DD.
//   - end (string, optional): last date, YYYY-MM-DD.
//   - symbols (string, optional): comma-separated tickers. Absent means the
//     configured default tickers; present but blank means "let the upstream decide".
//
// Responses:
//   - 200 OK: DashboardResponse for the new snapshot.
//   - 400 Bad Request: invalid dates or range.
//   - 409 Conflict: a newer refresh superseded this one.
//   - 502 Bad Gateway: the returns API failed.
//   - 500 Internal Server Error: any other failure.
//
// GetDashboard godoc
// @Summary      Refresh the dashboard
// @Description  Fetches daily returns for the range and symbols, computes per-ticker statistics and compounded returns
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        start    query     string  false  "Start date in YYYY-MM-DD" example(2024-11-01)
// @Param        end      query     string  false  "End date in YYYY-MM-DD" example(2024-12-01)
// @Param        symbols  query     string  false  "Comma-separated tickers" example(MSFT,AAPL)
// @Success      200      {object}  dto.DashboardResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      409      {object}  dto.ErrorResponse      "Superseded"
// @Failure      502      {object}  dto.ErrorResponse      "Upstream Error"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	// ─── Parse and validate the date range ────────────────────
	def := calendar.DefaultRange(h.now(), h.dashboard.DefaultRangeDays)
	start, ok := parseDateParam(c, "start", def.Start)
	if !ok {
		return
	}
	end, ok := parseDateParam(c, "end", def.End)
	if !ok {
		return
	}
	rng := models.DateRange{Start: start, End: end}

	if rng.Start.After(rng.End) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("start date must not be after end date", nil))
		return
	}
	if rng.Start.After(calendar.Truncate(h.now())) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("start date cannot be in the future", nil))
		return
	}
	if days := int(rng.End.Sub(rng.Start).Hours() / 24); days > h.dashboard.MaxRangeDays {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("date range too long", errors.New("range exceeds maximum number of days")))
		return
	}

	// ─── Resolve symbols ──────────────────────────────────────
	symbols := h.dashboard.DefaultSymbols()
	if raw, present := c.GetQuery("symbols"); present {
		symbols = NormalizeSymbols(raw)
	}

	// ─── Refresh (with request context) ───────────────────────
	snap, err := h.svc.Refresh(c.Request.Context(), rng, symbols)
	if err != nil {
		if errors.Is(err, service.ErrSuperseded) {
			c.JSON(http.StatusConflict, dto.NewErrorResponse("superseded by a newer request", err))
			return
		}
		if apiErr, ok := returns.AsAPIError(err); ok {
			c.JSON(http.StatusBadGateway, dto.NewErrorResponse(apiErr.Message, err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to refresh dashboard", err))
		return
	}

	c.JSON(http.StatusOK, NewDashboardResponse(*snap))
}

// GetCurrentDashboard handles GET /api/v1/dashboard/current requests.
//
// GetCurrentDashboard godoc
// @Summary      Current dashboard snapshot
// @Description  Returns the latest snapshot without contacting the returns API
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/v1/dashboard/current [get]
func (h *Handler) GetCurrentDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, NewDashboardResponse(h.svc.Current()))
}

// GetSettings handles GET /api/v1/settings requests.
//
// GetSettings godoc
// @Summary      Display settings
// @Description  Title, description, keywords and request defaults
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/v1/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SettingsResponse{
		Title:            h.display.Title,
		Description:      h.display.Description,
		Keywords:         h.display.Keywords,
		DefaultTickers:   h.dashboard.DefaultTickers,
		DefaultRangeDays: h.dashboard.DefaultRangeDays,
		MaxRangeDays:     h.dashboard.MaxRangeDays,
	})
}

// parseDateParam reads a YYYY-MM-DD query parameter, falling back to def
// when absent. On a malformed value it writes a 400 and returns false.
func parseDateParam(c *gin.Context, name string, def time.Time) (time.Time, bool) {
	s := strings.TrimSpace(c.Query(name))
	if s == "" {
		return def, true
	}
	d, err := time.Parse(returns.DateLayout, s)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid "+name+" format, expected YYYY-MM-DD", err))
		return time.Time{}, false
	}
	return d, true
}

// NormalizeSymbols upper-cases, trims and de-duplicates a comma-separated
// ticker list, keeping first-seen order.
func NormalizeSymbols(raw string) string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return strings.Join(out, ",")
}
