package handlers

import (
	"bytes"
	"net/http"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ScheduleHandler serves the opening hours, mode schedules and special hours of a merchant
type ScheduleHandler struct {
	openingHourService  *services.OpeningHourService
	modeScheduleService *services.ModeScheduleService
	specialHourService  *services.SpecialHourService
	exportService       *services.ScheduleExportService
}

func NewScheduleHandler(
	openingHourService *services.OpeningHourService,
	modeScheduleService *services.ModeScheduleService,
	specialHourService *services.SpecialHourService,
	exportService *services.ScheduleExportService,
) *ScheduleHandler {
	return &ScheduleHandler{
		openingHourService:  openingHourService,
		modeScheduleService: modeScheduleService,
		specialHourService:  specialHourService,
		exportService:       exportService,
	}
}

// GetOpeningHours returns the seven weekday rows
func (h *ScheduleHandler) GetOpeningHours(c *gin.Context) {
	week, err := h.openingHourService.GetWeek(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get opening hours")
		return
	}

	c.JSON(http.StatusOK, week)
}

// ReplaceOpeningHours stores a new weekly template
func (h *ScheduleHandler) ReplaceOpeningHours(c *gin.Context) {
	var hours []models.OpeningHour
	if err := c.ShouldBindJSON(&hours); err != nil {
		badRequest(c, "Request body must be a list of opening hours")
		return
	}

	week, err := h.openingHourService.ReplaceWeek(c.Param("id"), hours)
	if err != nil {
		respondError(c, err, "Failed to save opening hours")
		return
	}

	c.JSON(http.StatusOK, week)
}

// GetModeSchedules returns the windows of every mode
func (h *ScheduleHandler) GetModeSchedules(c *gin.Context) {
	schedules, err := h.modeScheduleService.ListByMerchant(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get mode schedules")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// ReplaceModeSchedules stores all windows of one mode
func (h *ScheduleHandler) ReplaceModeSchedules(c *gin.Context) {
	mode, err := models.ParseOrderMode(c.Param("mode"))
	if err != nil {
		respondError(c, err, "Invalid mode")
		return
	}

	var windows []services.ModeScheduleWindow
	if err := c.ShouldBindJSON(&windows); err != nil {
		badRequest(c, "Request body must be a list of windows")
		return
	}

	schedules, err := h.modeScheduleService.ReplaceForMode(c.Param("id"), mode, windows)
	if err != nil {
		respondError(c, err, "Failed to save mode schedules")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// ListSpecialHours returns the overrides in ?from..?to
func (h *ScheduleHandler) ListSpecialHours(c *gin.Context) {
	specials, err := h.specialHourService.List(c.Param("id"), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err, "Failed to get special hours")
		return
	}

	c.JSON(http.StatusOK, specials)
}

// UpsertSpecialHour creates or replaces the override of :date
func (h *ScheduleHandler) UpsertSpecialHour(c *gin.Context) {
	var input models.SpecialHour
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid special hour payload")
		return
	}

	special, err := h.specialHourService.Upsert(c.Param("id"), c.Param("date"), input)
	if err != nil {
		respondError(c, err, "Failed to save special hour")
		return
	}

	c.JSON(http.StatusOK, special)
}

func (h *ScheduleHandler) DeleteSpecialHour(c *gin.Context) {
	if err := h.specialHourService.Delete(c.Param("id"), c.Param("date")); err != nil {
		respondError(c, err, "Failed to delete special hour")
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportSchedule downloads all schedules as a spreadsheet
func (h *ScheduleHandler) ExportSchedule(c *gin.Context) {
	var buf bytes.Buffer
	merchant, err := h.exportService.Export(c.Param("id"), &buf)
	if err != nil {
		respondError(c, err, "Failed to export schedule")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.FileName(merchant)+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
