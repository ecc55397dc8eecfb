package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/editorialops/edit_tracking_app/internal/apperrors"
	portssvc "github.com/editorialops/edit_tracking_app/internal/core/ports/services"
	"github.com/editorialops/edit_tracking_app/internal/dto"
	"github.com/editorialops/edit_tracking_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// recordHandler handles HTTP requests related to records and their tracked time.
type recordHandler struct {
	recordService   portssvc.RecordSvcFacade
	trackingService portssvc.TrackingSvcFacade
}

// newRecordHandler creates a new recordHandler.
func newRecordHandler(rs portssvc.RecordSvcFacade, ts portssvc.TrackingSvcFacade) *recordHandler {
	return &recordHandler{
		recordService:   rs,
		trackingService: ts,
	}
}

// registerRecordRoutes registers all record-related routes.
func registerRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade, trackingService portssvc.TrackingSvcFacade) {
	h := newRecordHandler(recordService, trackingService)

	records := rg.Group("/records")
	{
		records.POST("", h.createRecord)                      // Admin or lead
		records.GET("", h.listRecords)                        // Any role
		records.GET("/:recordID", h.getRecord)                // Any role
		records.PUT("/:recordID", h.updateRecord)             // Admin or lead
		records.DELETE("/:recordID", h.deleteRecord)          // Admin or lead
		records.POST("/:recordID/status", h.changeStatus)     // Role checked per transition
		records.GET("/:recordID/times", h.getRecordTimes)     // Any role
		records.GET("/:recordID/entries", h.getRecordEntries) // Any role
	}
}

// parseRecordID parses the :recordID path parameter. On failure it writes a
// 400 response and returns false.
func parseRecordID(c *gin.Context) (int64, bool) {
	recordID, err := strconv.ParseInt(c.Param("recordID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return 0, false
	}
	return recordID, true
}

// createRecord godoc
// @Summary Create a new record
// @Description Creates a new editorial record in BACKLOG (admin or lead only)
// @Tags records
// @Accept  json
// @Produce  json
// @Param   record body dto.CreateRecordRequest true "Record details"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to create record"
// @Router /records [post]
func (h *recordHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create record request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActingUserFromContext(c)
	if !ok {
		logger.Error("Acting user not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create record", slog.String("task", req.Task), slog.String("book_id", req.BookID))

	record, err := h.recordService.CreateRecord(c.Request.Context(), req, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Actor forbidden to create record", slog.String("actor_id", actor.UserID))
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid create record request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
		}
		return
	}

	logger.Info("Record created successfully", slog.Int64("record_id", record.RecordID))
	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// listRecords godoc
// @Summary List records
// @Description Retrieves records, optionally filtered by developer username and status
// @Tags records
// @Produce  json
// @Param   developer query string false "Filter by assignee username"
// @Param   status query string false "Filter by record status"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list records"
// @Router /records [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for list records", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list records from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordResponses(records))
}

// getRecord godoc
// @Summary Get a record by ID
// @Description Retrieves details for a specific record
// @Tags records
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid record ID"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve record"
// @Router /records/{recordID} [get]
func (h *recordHandler) getRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}

	record, err := h.recordService.GetRecordByID(c.Request.Context(), recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Record not found", slog.Int64("record_id", recordID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			logger.Error("Failed to get record from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// updateRecord godoc
// @Summary Update a record
// @Description Applies a field patch to a record (admin or lead only). Status cannot be changed here.
// @Tags records
// @Accept  json
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Param   record body dto.UpdateRecordRequest true "Fields to update"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to update record"
// @Router /records/{recordID} [put]
func (h *recordHandler) updateRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}

	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update record request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActingUserFromContext(c)
	if !ok {
		logger.Error("Acting user not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.Int64("record_id", recordID), slog.String("actor_id", actor.UserID))
	logger.Info("Received request to update record")

	record, err := h.recordService.UpdateRecord(c.Request.Context(), recordID, req, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Record not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Actor forbidden to update record")
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid update record request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		}
		return
	}

	logger.Info("Record updated successfully")
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// deleteRecord godoc
// @Summary Delete a record
// @Description Removes a record and all its time entries (admin or lead only)
// @Tags records
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid record ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to delete record"
// @Router /records/{recordID} [delete]
func (h *recordHandler) deleteRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}

	actor, ok := middleware.GetActingUserFromContext(c)
	if !ok {
		logger.Error("Acting user not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.Int64("record_id", recordID), slog.String("actor_id", actor.UserID))
	logger.Info("Received request to delete record")

	err := h.trackingService.DeleteRecord(c.Request.Context(), recordID, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Record not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Actor forbidden to delete record")
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		default:
			logger.Error("Failed to delete record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		}
		return
	}

	logger.Info("Record deleted successfully")
	c.Status(http.StatusNoContent)
}

// changeStatus godoc
// @Summary Change a record's status
// @Description Moves a record to a new status, closing and opening timers atomically
// @Tags records
// @Accept  json
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Param   status body dto.ChangeStatusRequest true "Target status"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 409 {object} map[string]string "Record already in the requested status"
// @Failure 500 {object} map[string]string "Failed to change status"
// @Router /records/{recordID}/status [post]
func (h *recordHandler) changeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for change status request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActingUserFromContext(c)
	if !ok {
		logger.Error("Acting user not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.Int64("record_id", recordID), slog.String("actor_id", actor.UserID), slog.String("new_status", string(req.Status)))
	logger.Info("Received request to change record status")

	record, err := h.trackingService.ChangeStatus(c.Request.Context(), recordID, req.Status, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Record not found for status change")
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Actor forbidden to change record status")
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Record already in the requested status")
			c.JSON(http.StatusConflict, gin.H{"error": "Record is already in the requested status"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid status change request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to change record status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change status"})
		}
		return
	}

	logger.Info("Record status changed successfully")
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// getRecordTimes godoc
// @Summary Get a record's live per-status times
// @Description Returns closed ledger time plus the open timer's elapsed time per status
// @Tags records
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Success 200 {object} dto.RecordTimesResponse
// @Failure 400 {object} map[string]string "Invalid record ID"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve record times"
// @Router /records/{recordID}/times [get]
func (h *recordHandler) getRecordTimes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}

	times, err := h.trackingService.GetRecordTimes(c.Request.Context(), recordID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Record not found for times lookup", slog.Int64("record_id", recordID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			logger.Error("Failed to get record times from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve record times"})
		}
		return
	}

	c.JSON(http.StatusOK, times)
}

// getRecordEntries godoc
// @Summary List a record's closed time entries
// @Description Returns the record's closed intervals ordered by start time
// @Tags records
// @Produce  json
// @Param   recordID path int true "Record ID"
// @Success 200 {object} dto.RecordEntriesResponse
// @Failure 400 {object} map[string]string "Invalid record ID"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve record entries"
// @Router /records/{recordID}/entries [get]
func (h *recordHandler) getRecordEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}

	entries, err := h.trackingService.GetRecordEntries(c.Request.Context(), recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Record not found for entries lookup", slog.Int64("record_id", recordID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			logger.Error("Failed to get record entries from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve record entries"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordEntriesResponse(recordID, entries))
}
