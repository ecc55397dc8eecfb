package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/editorialops/edit_tracking_app/internal/core/ports/services"
	"github.com/editorialops/edit_tracking_app/internal/dto"
	"github.com/editorialops/edit_tracking_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for workload and board reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers all reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/workload", h.getDailyWorkload)
		reports.GET("/activities", h.getDailyActivities)
		reports.GET("/developer-stats", h.getDeveloperStats)
		reports.GET("/status-overview", h.getStatusOverview)
	}
}

// parseDateRange parses optional startDate/endDate query parameters. Both
// bounds must be given together. On failure it writes a 400 response and
// returns false.
func parseDateRange(c *gin.Context) (*time.Time, *time.Time, bool) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return nil, nil, false
	}

	if (params.StartDate == nil) != (params.EndDate == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate must be provided together"})
		return nil, nil, false
	}
	if params.StartDate == nil {
		return nil, nil, true
	}

	from, _ := time.Parse("2006-01-02", *params.StartDate)
	to, _ := time.Parse("2006-01-02", *params.EndDate)
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must not be before startDate"})
		return nil, nil, false
	}

	// Make the range inclusive of the whole end day
	to = to.Add(24*time.Hour - time.Nanosecond)
	return &from, &to, true
}

// getDailyWorkload godoc
// @Summary Daily workload per developer
// @Description Aggregates a day's closed time entries by the record's current assignee
// @Tags reports
// @Produce  json
// @Param   day query string true "Day (YYYY-MM-DD)"
// @Param   developer query string false "Filter by developer username"
// @Success 200 {array} domain.DeveloperWorkload
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build workload report"
// @Router /reports/workload [get]
func (h *reportingHandler) getDailyWorkload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.WorkloadParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for workload report", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	day, _ := time.Parse("2006-01-02", params.Day)

	workloads, err := h.reportingService.GetDailyWorkload(c.Request.Context(), day, params.Developer)
	if err != nil {
		logger.Error("Failed to build workload report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workload report"})
		return
	}

	c.JSON(http.StatusOK, workloads)
}

// getDailyActivities godoc
// @Summary Daily activity intervals per record
// @Description Returns a day's closed time entries grouped by record with full interval detail
// @Tags reports
// @Produce  json
// @Param   day query string true "Day (YYYY-MM-DD)"
// @Param   developer query string false "Filter by developer username"
// @Success 200 {array} domain.RecordActivities
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build activity report"
// @Router /reports/activities [get]
func (h *reportingHandler) getDailyActivities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.WorkloadParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for activity report", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	day, _ := time.Parse("2006-01-02", params.Day)

	activities, err := h.reportingService.GetDailyActivities(c.Request.Context(), day, params.Developer)
	if err != nil {
		logger.Error("Failed to build activity report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build activity report"})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// getDeveloperStats godoc
// @Summary Per-developer record and time statistics
// @Description Summarises each developer's record counts and closed tracked hours, optionally filtered by record creation date range
// @Tags reports
// @Produce  json
// @Param   startDate query string false "Range start (YYYY-MM-DD)"
// @Param   endDate query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} domain.DeveloperStats
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build developer stats"
// @Router /reports/developer-stats [get]
func (h *reportingHandler) getDeveloperStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	stats, err := h.reportingService.GetDeveloperStats(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build developer stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build developer stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getStatusOverview godoc
// @Summary Board-wide status overview
// @Description Returns record counts per status and total closed hours per trackable status
// @Tags reports
// @Produce  json
// @Param   startDate query string false "Range start (YYYY-MM-DD)"
// @Param   endDate query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} domain.StatusOverview
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build status overview"
// @Router /reports/status-overview [get]
func (h *reportingHandler) getStatusOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	overview, err := h.reportingService.GetStatusOverview(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build status overview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build status overview"})
		return
	}

	c.JSON(http.StatusOK, overview)
}
