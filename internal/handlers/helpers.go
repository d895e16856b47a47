package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/middleware"
	"github.com/bellebook/salon-scheduler/internal/models"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

// ownerSalon resolves the salon owned by the authenticated user. Owner
// endpoints all start here; customers get salon_not_found.
func ownerSalon(db *gorm.DB, ownerID uint) (*models.Salon, error) {
	var salon models.Salon
	if err := db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}
	return &salon, nil
}

// mapBookingErrors turns booking business codes into the client-facing
// messages; the error field carries the message verbatim.
func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_already_booked"):
		httperr.BadRequest(c, "slot_already_booked", "Slot already booked")
	case httperr.IsBusiness(err, "slot_not_offered"):
		httperr.BadRequest(c, "slot_not_offered", "Slot is not offered on this date")
	case httperr.IsBusiness(err, "slot_on_hold"):
		httperr.BadRequest(c, "slot_on_hold", "Slot is being booked by another customer")
	case httperr.IsBusiness(err, "hold_expired"):
		httperr.BadRequest(c, "hold_expired", "Reservation expired")
	case httperr.IsBusiness(err, "hold_mismatch"):
		httperr.BadRequest(c, "hold_mismatch", "Reservation does not match the requested slot")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Service not found")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Invalid date")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Invalid time")
	default:
		httperr.Internal(c, "booking_failed", "Failed to process the booking")
	}
}
