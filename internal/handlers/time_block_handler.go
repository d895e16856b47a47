package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellebook/salon-scheduler/internal/audit"
	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/models"
)

type TimeBlockHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTimeBlockHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *TimeBlockHandler {
	return &TimeBlockHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

// Times arrive in either the current flat shape or the legacy labelled
// shape; both normalize before anything is stored.
type AddTimeBlockRequest struct {
	ServiceID uint   `json:"service_id"`
	StylistID *uint  `json:"stylist_id"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD

	domain.BlockPayload
}

// --------- Handlers ---------

// AddForService handles POST /services/:id/time-blocks.
func (h *TimeBlockHandler) AddForService(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id")
		return
	}

	h.add(c, uint(serviceID))
}

// AddForMyService handles POST /services/my-service/time-block; the
// service comes from the body and still must belong to the caller.
func (h *TimeBlockHandler) AddForMyService(c *gin.Context) {
	h.add(c, 0)
}

func (h *TimeBlockHandler) add(c *gin.Context, pathServiceID uint) {
	userID := currentUserID(c)

	salon, err := ownerSalon(h.db, userID)
	if err != nil {
		httperr.NotFound(c, "salon_not_found", "You do not own a salon")
		return
	}

	var req AddTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid time block data")
		return
	}

	serviceID := pathServiceID
	if serviceID == 0 {
		serviceID = req.ServiceID
	}
	if serviceID == 0 {
		httperr.BadRequest(c, "missing_service_id", "A service id is required")
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND salon_id = ?", serviceID, salon.ID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date")
		return
	}

	if req.StylistID != nil {
		var stylist models.Stylist
		if err := h.db.
			Where("id = ? AND salon_id = ?", *req.StylistID, salon.ID).
			First(&stylist).Error; err != nil {
			httperr.BadRequest(c, "stylist_not_found", "Stylist not found")
			return
		}
	}

	times, err := domain.NormalizeTimes(req.BlockPayload)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_times"):
			httperr.BadRequest(c, "missing_times", "A list of times is required")
		case httperr.IsBusiness(err, "ambiguous_time_shape"):
			httperr.BadRequest(c, "ambiguous_time_shape", "Send either times or time_blocks, not both")
		default:
			httperr.BadRequest(c, "invalid_time_format", "Times must be HH:MM")
		}
		return
	}

	block := models.TimeBlock{
		ServiceID: service.ID,
		StylistID: req.StylistID,
		Date:      req.Date,
	}
	block.SetTimeList(times)

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_time_block", "Failed to save time block")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &userID,
		Action:   "time_block_created",
		Entity:   "time_block",
		EntityID: &block.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"id":         block.ID,
		"service_id": block.ServiceID,
		"stylist_id": block.StylistID,
		"date":       block.Date,
		"times":      times,
	})
}
