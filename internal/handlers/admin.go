package handlers

import (
	"net/http"

	"github.com/alimgiray/menuhub/internal/services"
	"github.com/gin-gonic/gin"
)

// WorkerStatusProvider reports whether each background worker is running
type WorkerStatusProvider interface {
	GetWorkerStatus() map[string]bool
}

// AdminHandler serves the super admin console API
type AdminHandler struct {
	merchantService *services.MerchantService
	workers         WorkerStatusProvider
}

func NewAdminHandler(merchantService *services.MerchantService, workers WorkerStatusProvider) *AdminHandler {
	return &AdminHandler{
		merchantService: merchantService,
		workers:         workers,
	}
}

type createMerchantRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name" binding:"required"`
	Timezone string `json:"timezone"`
}

// ListMerchants returns every merchant. ?active=true hides deactivated ones.
func (h *AdminHandler) ListMerchants(c *gin.Context) {
	merchants, err := h.merchantService.ListMerchants(c.Query("active") == "true")
	if err != nil {
		respondError(c, err, "Failed to list merchants")
		return
	}

	c.JSON(http.StatusOK, merchants)
}

func (h *AdminHandler) CreateMerchant(c *gin.Context) {
	var req createMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Merchant name is required")
		return
	}

	merchant, err := h.merchantService.CreateMerchant(req.Code, req.Name, req.Timezone)
	if err != nil {
		respondError(c, err, "Failed to create merchant")
		return
	}

	c.JSON(http.StatusCreated, merchant)
}

func (h *AdminHandler) DeactivateMerchant(c *gin.Context) {
	if err := h.merchantService.Deactivate(c.Param("id")); err != nil {
		respondError(c, err, "Failed to deactivate merchant")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Merchant deactivated"})
}

// WorkerStatus lists the background workers
func (h *AdminHandler) WorkerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"workers": h.workers.GetWorkerStatus()})
}
