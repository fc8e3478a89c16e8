package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barshopapp/barshop-api/internal/httperr"
	"github.com/barshopapp/barshop-api/internal/httpresp"
	"github.com/barshopapp/barshop-api/internal/middleware"
	ucAppointment "github.com/barshopapp/barshop-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateBooking
	edit         *ucAppointment.EditAppointment
	updateStatus *ucAppointment.UpdateStatus
	delete       *ucAppointment.DeleteAppointment
	list         *ucAppointment.ListAppointments
	get          *ucAppointment.GetAppointment

	loc *time.Location
}

func NewAppointmentHandler(
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateBooking,
	edit *ucAppointment.EditAppointment,
	updateStatus *ucAppointment.UpdateStatus,
	del *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
	get *ucAppointment.GetAppointment,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		create:       create,
		edit:         edit,
		updateStatus: updateStatus,
		delete:       del,
		list:         list,
		get:          get,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:mm
	Notes         string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	CustomerName  *string `json:"customerName"`
	CustomerPhone *string `json:"customerPhone"`
	Date          *string `json:"date"` // YYYY-MM-DD
	Time          *string `json:"time"` // HH:mm
	Notes         *string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Available(c *gin.Context) {
	dateStr := c.Param("date")

	day, err := parseDate(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date format. Use YYYY-MM-DD.")
		return
	}

	av, err := h.availability.Execute(c.Request.Context(), day)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Error fetching available time slots.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"date":           av.Date,
		"availableSlots": av.Available,
		"bookedSlots":    av.Booked,
		"totalSlots":     av.TotalSlots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Customer name, phone, and appointment date/time are required.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		ucAppointment.CreateBookingInput{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			Time:          req.Time,
			Notes:         req.Notes,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, "Appointment created successfully.", ap)
}

func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_fields"):
		httperr.BadRequest(c, "missing_fields", "Customer name, phone, and appointment date/time are required.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid appointment date or time.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "This time slot is already booked. Please select another time.")
	case httperr.IsBusiness(err, "outside_business_hours"):
		httperr.BadRequest(c, "outside_business_hours", "Appointments are only available between 9:00 AM and 7:00 PM, every 30 minutes.")
	case httperr.IsBusiness(err, "past_date"):
		httperr.BadRequest(c, "past_date", "Cannot book appointments in the past.")
	case httperr.IsBusiness(err, "shop_closed"):
		httperr.BadRequest(c, "shop_closed", "The shop is closed on the selected date.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Error creating appointment.")
	}
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error fetching appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.edit.Execute(
		c.Request.Context(),
		&adminID,
		id,
		ucAppointment.EditAppointmentInput{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Notes:         req.Notes,
			Date:          req.Date,
			Time:          req.Time,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Only scheduled appointments can be rescheduled.")
		default:
			mapBookingErrors(c, err)
		}
		return
	}

	httpresp.Message(c, "Appointment updated successfully.", ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), &adminID, id, req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status must be scheduled, completed or cancelled.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Appointment status can no longer be changed.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Error updating appointment.")
		}
		return
	}

	httpresp.Message(c, "Appointment updated successfully.", ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), &adminID, id); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Error deleting appointment.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Appointment deleted successfully.",
	})
}
