package handlers

import (
	"net/http"
	"time"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/services"
	"github.com/gin-gonic/gin"
)

// StatusHandler serves the public storefront status endpoints
type StatusHandler struct {
	storeStatusService *services.StoreStatusService
	now                func() time.Time
}

func NewStatusHandler(storeStatusService *services.StoreStatusService) *StatusHandler {
	return &StatusHandler{
		storeStatusService: storeStatusService,
		now:                time.Now,
	}
}

type availabilityCheckRequest struct {
	Mode string `json:"mode" binding:"required"`
	At   string `json:"at"`
}

// GetStatus returns the current store and mode availability of a merchant.
// An optional ?at=RFC3339 evaluates another instant.
func (h *StatusHandler) GetStatus(c *gin.Context) {
	at, ok := h.parseInstant(c, c.Query("at"))
	if !ok {
		return
	}

	status, err := h.storeStatusService.GetStatus(c.Param("code"), at)
	if err != nil {
		respondError(c, err, "Failed to evaluate store status")
		return
	}

	c.JSON(http.StatusOK, status)
}

// CheckAvailability answers whether a mode is usable at a future instant
func (h *StatusHandler) CheckAvailability(c *gin.Context) {
	var req availabilityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Request body must contain mode and at")
		return
	}

	mode, err := models.ParseOrderMode(req.Mode)
	if err != nil {
		respondError(c, err, "Invalid mode")
		return
	}

	at, ok := h.parseInstant(c, req.At)
	if !ok {
		return
	}

	result, err := h.storeStatusService.CheckAvailability(c.Param("code"), mode, at)
	if err != nil {
		respondError(c, err, "Failed to check availability")
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseInstant reads an RFC3339 instant, defaulting to now when empty
func (h *StatusHandler) parseInstant(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		return h.now(), true
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		badRequest(c, "at must be an RFC3339 timestamp")
		return time.Time{}, false
	}
	return at, true
}
