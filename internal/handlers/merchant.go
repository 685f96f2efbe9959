package handlers

import (
	"net/http"

	"github.com/alimgiray/menuhub/internal/services"
	"github.com/gin-gonic/gin"
)

// MerchantHandler serves the settings and override endpoints of the merchant back office
type MerchantHandler struct {
	merchantService *services.MerchantService
}

func NewMerchantHandler(merchantService *services.MerchantService) *MerchantHandler {
	return &MerchantHandler{
		merchantService: merchantService,
	}
}

type overrideRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
	IsOpen  bool  `json:"isOpen"`
}

// GetSettings returns the merchant record
func (h *MerchantHandler) GetSettings(c *gin.Context) {
	merchant, err := h.merchantService.GetMerchantByID(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get merchant")
		return
	}

	c.JSON(http.StatusOK, merchant)
}

// UpdateSettings replaces the editable merchant fields
func (h *MerchantHandler) UpdateSettings(c *gin.Context) {
	var settings services.MerchantSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		badRequest(c, "Invalid settings payload")
		return
	}

	merchant, err := h.merchantService.UpdateSettings(c.Param("id"), settings)
	if err != nil {
		respondError(c, err, "Failed to update merchant settings")
		return
	}

	c.JSON(http.StatusOK, merchant)
}

// SetOverride forces the store open or closed, or returns it to its schedule
func (h *MerchantHandler) SetOverride(c *gin.Context) {
	var req overrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Request body must contain enabled")
		return
	}

	merchant, err := h.merchantService.SetManualOverride(c.Param("id"), *req.Enabled, req.IsOpen)
	if err != nil {
		respondError(c, err, "Failed to change manual override")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                 merchant.ID,
		"is_manual_override": merchant.IsManualOverride,
		"is_open":            merchant.IsOpen,
	})
}
