package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellebook/salon-scheduler/internal/audit"
	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/httpresp"
	"github.com/bellebook/salon-scheduler/internal/models"
)

type StylistHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewStylistHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *StylistHandler {
	return &StylistHandler{db: db, audit: auditDispatcher}
}

type CreateStylistRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

func (h *StylistHandler) ListBySalon(c *gin.Context) {
	salonID := c.Param("id")

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found")
		return
	}

	var stylists []models.Stylist
	if err := h.db.
		Where("salon_id = ? AND active = true", salon.ID).
		Order("id ASC").
		Find(&stylists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_stylists", "Failed to list stylists")
		return
	}

	httpresp.OK(c, stylists)
}

func (h *StylistHandler) CreateMyStylist(c *gin.Context) {
	userID := currentUserID(c)

	salon, err := ownerSalon(h.db, userID)
	if err != nil {
		httperr.NotFound(c, "salon_not_found", "You do not own a salon")
		return
	}

	var req CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid stylist data")
		return
	}

	stylist := models.Stylist{
		SalonID: salon.ID,
		Name:    req.Name,
		Phone:   req.Phone,
		Active:  true,
	}

	if err := h.db.Create(&stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_create_stylist", "Failed to create stylist")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &userID,
		Action:   "stylist_created",
		Entity:   "stylist",
		EntityID: &stylist.ID,
	})

	c.JSON(http.StatusCreated, stylist)
}
