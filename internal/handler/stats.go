package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/surdiana/worklog/internal/constants"
	apperrors "github.com/surdiana/worklog/internal/errors"
	"github.com/surdiana/worklog/internal/middleware"
	"github.com/surdiana/worklog/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /stats for the authenticated user
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse("Unauthorized", nil))
		return
	}

	stats, err := h.statsService.Aggregate(c.Request.Context(), userID)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse("Stats retrieved successfully", stats))
}
