package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellebook/salon-scheduler/internal/audit"
	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/models"
	ucbooking "github.com/bellebook/salon-scheduler/internal/usecase/booking"
)

type ServiceHandler struct {
	db           *gorm.DB
	audit        *audit.Dispatcher
	availability *ucbooking.GetAvailability
}

func NewServiceHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	availability *ucbooking.GetAvailability,
) *ServiceHandler {
	return &ServiceHandler{
		db:           db,
		audit:        auditDispatcher,
		availability: availability,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required"`
}

// --------- Public ---------

func (h *ServiceHandler) List(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Preload("Salon").Where("active = true")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.Preload("Salon").First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) ListBySalon(c *gin.Context) {
	salonID := c.Param("id")

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("salon_id = ? AND active = true", salon.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

// --------- Availability ---------

func (h *ServiceHandler) Availability(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "A date is required")
		return
	}

	entries, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			ServiceID: uint(serviceID),
			Date:      dateStr,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         dateStr,
		"availability": entries,
	})
}

// --------- Owner ---------

func (h *ServiceHandler) CreateMyService(c *gin.Context) {
	userID := currentUserID(c)

	salon, err := ownerSalon(h.db, userID)
	if err != nil {
		httperr.NotFound(c, "salon_not_found", "You do not own a salon")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data")
		return
	}

	service := models.Service{
		SalonID:     salon.ID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &userID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusCreated, service)
}
