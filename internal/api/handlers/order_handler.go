package handlers

import (
	"net/http"

	"github.com/HJantango/wild-octave-august-sub004/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type OrderHandler struct {
	service *service.RecommendationService
}

func NewOrderHandler(service *service.RecommendationService) *OrderHandler {
	return &OrderHandler{service: service}
}

// GetRecommendations serves GET /orders/recommendations?weeks=&buffer=
func (h *OrderHandler) GetRecommendations(c *gin.Context) {
	result, err := h.service.GetRecommendations(c.Request.Context(), service.RecommendationOptions{
		Weeks:          queryInt(c, "weeks"),
		BufferFraction: queryFloat(c, "buffer"),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to compute order recommendations")
		errorJSON(c, http.StatusInternalServerError, "Failed to compute order recommendations", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) GetReminders(c *gin.Context) {
	result, err := h.service.GetReminders(c.Request.Context(), service.ReminderOptions{
		LookaheadHours:    queryFloat(c, "lookahead_hours"),
		IncludeNoDeadline: queryBool(c, "include_no_deadline"),
		IncludeAll:        queryBool(c, "include_all"),
		IncludeUpcoming:   queryBool(c, "include_upcoming"),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to compute order reminders")
		errorJSON(c, http.StatusInternalServerError, "Failed to compute order reminders", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) GetTimeOfDay(c *gin.Context) {
	result, err := h.service.GetTimeOfDayEstimate(c.Request.Context(), queryInt(c, "weeks"))
	if err != nil {
		log.Error().Err(err).Msg("failed to estimate time-of-day demand")
		errorJSON(c, http.StatusInternalServerError, "Failed to estimate time-of-day demand", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
