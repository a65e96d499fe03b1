package handlers

import (
	"errors"
	"net/http"

	"github.com/HJantango/wild-octave-august-sub004/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StockHandler struct {
	service *service.StockService
}

func NewStockHandler(service *service.StockService) *StockHandler {
	return &StockHandler{service: service}
}

type setStockRequest struct {
	OnHand *int `json:"on_hand" binding:"required"`
}

func (h *StockHandler) List(c *gin.Context) {
	levels, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list stock levels")
		errorJSON(c, http.StatusInternalServerError, "Failed to list stock levels", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock_levels": levels, "count": len(levels)})
}

func (h *StockHandler) Get(c *gin.Context) {
	level, ok, err := h.service.Get(c.Request.Context(), c.Param("item_id"))
	switch {
	case errors.Is(err, service.ErrEmptyItemID):
		errorJSON(c, http.StatusBadRequest, "item_id is required", nil)
		return
	case err != nil:
		log.Error().Err(err).Str("item_id", c.Param("item_id")).Msg("failed to get stock level")
		errorJSON(c, http.StatusInternalServerError, "Failed to get stock level", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item_id": level.ItemID, "on_hand": level.OnHand, "found": ok})
}

// Set serves PUT /stock/:item_id with body {"on_hand": n}. Negative counts are stored as zero.
func (h *StockHandler) Set(c *gin.Context) {
	var req setStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	level, err := h.service.Set(c.Request.Context(), c.Param("item_id"), *req.OnHand)
	switch {
	case errors.Is(err, service.ErrEmptyItemID):
		errorJSON(c, http.StatusBadRequest, "item_id is required", nil)
		return
	case err != nil:
		log.Error().Err(err).Str("item_id", c.Param("item_id")).Msg("failed to set stock level")
		errorJSON(c, http.StatusInternalServerError, "Failed to set stock level", err)
		return
	}
	c.JSON(http.StatusOK, level)
}

func (h *StockHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("failed to clear stock levels")
		errorJSON(c, http.StatusInternalServerError, "Failed to clear stock levels", err)
		return
	}
	c.Status(http.StatusNoContent)
}
