package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barshopapp/barshop-api/internal/httperr"
	"github.com/barshopapp/barshop-api/internal/middleware"
	ucPayment "github.com/barshopapp/barshop-api/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	record    *ucPayment.RecordPayment
	statusMap *ucPayment.GetStatusMap
	report    *ucPayment.CollectionsReport
}

func NewPaymentHandler(
	record *ucPayment.RecordPayment,
	statusMap *ucPayment.GetStatusMap,
	report *ucPayment.CollectionsReport,
) *PaymentHandler {
	return &PaymentHandler{
		record:    record,
		statusMap: statusMap,
		report:    report,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RecordPaymentRequest struct {
	CustomerType  string `json:"customerType" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

// ======================================================
// RECORD
// ======================================================

func (h *PaymentHandler) Record(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_customer_type", "Valid customer type (student or professional) is required.")
		return
	}

	p, err := h.record.Execute(
		c.Request.Context(),
		&adminID,
		ucPayment.RecordPaymentInput{
			AppointmentID: id,
			CustomerType:  req.CustomerType,
			Method:        req.PaymentMethod,
			Notes:         req.Notes,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_customer_type"):
			httperr.BadRequest(c, "invalid_customer_type", "Valid customer type (student or professional) is required.")
		case httperr.IsBusiness(err, "invalid_payment_method"):
			httperr.BadRequest(c, "invalid_payment_method", "Payment method must be cash, card or other.")
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Payment requires a completed appointment.")
		case httperr.IsBusiness(err, "payment_already_recorded"):
			httperr.Conflict(c, "payment_already_recorded", "Payment already processed for this appointment.")
		default:
			httperr.Internal(c, "failed_to_record_payment", "Error processing payment.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment processed successfully.",
		"payment": p,
	})
}

// ======================================================
// STATUS MAP
// ======================================================

func (h *PaymentHandler) StatusMap(c *gin.Context) {
	payments, err := h.statusMap.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_payments", "Error fetching payment status.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"payments": payments,
	})
}

// ======================================================
// COLLECTIONS REPORT
// ======================================================

func (h *PaymentHandler) Collections(c *gin.Context) {
	period := c.Query("period")

	result, err := h.report.Execute(c.Request.Context(), period)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_report", "Error generating collection report.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"period":      result.Period,
		"collections": result.Collections,
		"summary":     result.Summary,
	})
}
