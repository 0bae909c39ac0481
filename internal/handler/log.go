package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/surdiana/worklog/internal/constants"
	"github.com/surdiana/worklog/internal/dto"
	apperrors "github.com/surdiana/worklog/internal/errors"
	"github.com/surdiana/worklog/internal/middleware"
	"github.com/surdiana/worklog/internal/service"
	"github.com/surdiana/worklog/pkg/logger"
	"go.uber.org/zap"
)

type LogHandler struct {
	logService *service.LogEntryService
}

func NewLogHandler(logService *service.LogEntryService) *LogHandler {
	return &LogHandler{logService: logService}
}

func (h *LogHandler) identity(c *gin.Context) (uint, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse("Unauthorized", nil))
	}
	return userID, ok
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid id", nil))
		return 0, false
	}
	return uint(id), true
}

// Create handles POST /logs
func (h *LogHandler) Create(c *gin.Context) {
	userID, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.LogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().Warn("Invalid create log request",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(
			"Invalid request format", middleware.FormatBindingError(err)))
		return
	}

	entry, err := h.logService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse("Log created successfully", entry))
}

// Update handles PUT /logs/:id
func (h *LogHandler) Update(c *gin.Context) {
	userID, ok := h.identity(c)
	if !ok {
		return
	}

	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.LogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().Warn("Invalid update log request",
			zap.Uint("user_id", userID),
			zap.Uint("log_id", entryID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(
			"Invalid request format", middleware.FormatBindingError(err)))
		return
	}

	entry, err := h.logService.Update(c.Request.Context(), userID, entryID, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse("Log updated successfully", entry))
}

// Delete handles DELETE /logs/:id (soft delete)
func (h *LogHandler) Delete(c *gin.Context) {
	userID, ok := h.identity(c)
	if !ok {
		return
	}

	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.logService.SoftDelete(c.Request.Context(), userID, entryID)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse("Log deleted successfully", result))
}

// ListByUser handles GET /user-log/:userId
func (h *LogHandler) ListByUser(c *gin.Context) {
	userID, ok := h.identity(c)
	if !ok {
		return
	}

	requestedUserID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	entries, err := h.logService.ListByUser(c.Request.Context(), userID, requestedUserID)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		constants.ResponseFieldData: entries,
	})
}
