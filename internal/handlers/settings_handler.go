package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barshopapp/barshop-api/internal/audit"
	"github.com/barshopapp/barshop-api/internal/httperr"
	"github.com/barshopapp/barshop-api/internal/httpresp"
	"github.com/barshopapp/barshop-api/internal/middleware"
	"github.com/barshopapp/barshop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type SettingsHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewSettingsHandler(db *gorm.DB, dispatcher *audit.Dispatcher, loc *time.Location) *SettingsHandler {
	return &SettingsHandler{
		db:    db,
		audit: dispatcher,
		loc:   loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateSettingsRequest struct {
	ShopName     *string `json:"shopName"`
	OpeningHours *string `json:"openingHours"`
}

type OffDateRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// ======================================================
// HELPERS
// ======================================================

// loadSettings fetches the singleton row by its fixed key, creating it with
// defaults on first read.
func (h *SettingsHandler) loadSettings() (*models.Settings, error) {
	settings := models.Settings{ID: models.SettingsID}
	if err := h.db.FirstOrCreate(&settings, models.Settings{ID: models.SettingsID}).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (h *SettingsHandler) listOffDates() ([]time.Time, error) {
	var rows []models.OffDate
	if err := h.db.Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.Date)
	}
	return dates, nil
}

func (h *SettingsHandler) respond(c *gin.Context, settings *models.Settings) {
	offDates, err := h.listOffDates()
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_settings", "Error fetching settings.")
		return
	}

	httpresp.OK(c, gin.H{
		"shopName":     settings.ShopName,
		"openingHours": settings.OpeningHours,
		"offDates":     offDates,
		"updatedAt":    settings.UpdatedAt,
	})
}

// ======================================================
// GET / UPDATE
// ======================================================

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.loadSettings()
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_settings", "Error fetching settings.")
		return
	}

	h.respond(c, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	settings, err := h.loadSettings()
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_settings", "Error fetching settings.")
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid settings payload.")
		return
	}

	if req.ShopName != nil {
		settings.ShopName = *req.ShopName
	}
	if req.OpeningHours != nil {
		settings.OpeningHours = *req.OpeningHours
	}

	if err := h.db.Save(settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Error updating settings.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &adminID,
		Action: "settings_updated",
		Entity: "settings",
	})

	h.respond(c, settings)
}

// ======================================================
// OFF DATES
// ======================================================

func (h *SettingsHandler) AddOffDate(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req OffDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	day, err := parseDate(h.loc, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date format. Use YYYY-MM-DD.")
		return
	}

	var count int64
	if err := h.db.Model(&models.OffDate{}).
		Where("date >= ? AND date < ?", day, day.Add(24*time.Hour)).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_add_off_date", "Error adding off date.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "off_date_exists", "This date is already marked as off.")
		return
	}

	if err := h.db.Create(&models.OffDate{Date: day}).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "off_date_exists", "This date is already marked as off.")
			return
		}
		httperr.Internal(c, "failed_to_add_off_date", "Error adding off date.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "off_date_added",
		Entity:   "settings",
		Metadata: map[string]any{"date": req.Date},
	})

	settings, err := h.loadSettings()
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_settings", "Error fetching settings.")
		return
	}
	h.respond(c, settings)
}

func (h *SettingsHandler) RemoveOffDate(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req OffDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	day, err := parseDate(h.loc, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date format. Use YYYY-MM-DD.")
		return
	}

	if err := h.db.
		Where("date >= ? AND date < ?", day, day.Add(24*time.Hour)).
		Delete(&models.OffDate{}).Error; err != nil {
		httperr.Internal(c, "failed_to_remove_off_date", "Error removing off date.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "off_date_removed",
		Entity:   "settings",
		Metadata: map[string]any{"date": req.Date},
	})

	settings, err := h.loadSettings()
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_settings", "Error fetching settings.")
		return
	}
	h.respond(c, settings)
}
