package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/httperr"
	ucbooking "github.com/bellebook/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC  *ucbooking.CreateAppointment
	reserveUC *ucbooking.ReserveSlot
	decideUC  *ucbooking.DecideAppointment
	listUC    *ucbooking.ListAppointments
	pendingUC *ucbooking.ListPendingForStylist
}

func NewAppointmentHandler(
	createUC *ucbooking.CreateAppointment,
	reserveUC *ucbooking.ReserveSlot,
	decideUC *ucbooking.DecideAppointment,
	listUC *ucbooking.ListAppointments,
	pendingUC *ucbooking.ListPendingForStylist,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:  createUC,
		reserveUC: reserveUC,
		decideUC:  decideUC,
		listUC:    listUC,
		pendingUC: pendingUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	StylistID *uint  `json:"stylist_id"`
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	HoldID    string `json:"hold_id"`
}

type ReserveSlotRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	StylistID *uint  `json:"stylist_id"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

type DecideAppointmentRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// ======================================================
// RESERVE
// ======================================================

func (h *AppointmentHandler) Reserve(c *gin.Context) {
	userID := currentUserID(c)

	var req ReserveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reservation data")
		return
	}

	hold, err := h.reserveUC.Execute(
		c.Request.Context(),
		domain.SlotInput{
			UserID:    userID,
			ServiceID: req.ServiceID,
			StylistID: req.StylistID,
			Date:      req.Date,
			StartTime: req.StartTime,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"hold_id":    hold.ID,
		"expires_in": int(ucbooking.HoldTTL.Seconds()),
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucbooking.CreateAppointmentInput{
			UserID:    userID,
			ServiceID: req.ServiceID,
			StylistID: req.StylistID,
			Date:      req.Date,
			StartTime: req.StartTime,
			HoldID:    req.HoldID,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	appointments, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) ListPending(c *gin.Context) {
	userID := currentUserID(c)

	appointments, err := h.pendingUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list pending appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// ======================================================
// DECIDE
// ======================================================

func (h *AppointmentHandler) Decide(c *gin.Context) {
	userID := currentUserID(c)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id")
		return
	}

	var req DecideAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A decision is required")
		return
	}

	ap, err := h.decideUC.Execute(
		c.Request.Context(),
		userID,
		uint(appointmentID),
		req.Decision,
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Appointment was already decided")
		case httperr.IsBusiness(err, "invalid_decision"):
			httperr.BadRequest(c, "invalid_decision", "Decision must be confirm or cancel")
		default:
			httperr.Internal(c, "failed_to_decide", "Failed to decide appointment")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}
