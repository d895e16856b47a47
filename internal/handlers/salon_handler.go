package handlers

import (
	"math"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellebook/salon-scheduler/internal/audit"
	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/models"
	"github.com/bellebook/salon-scheduler/internal/timezone"
)

// Salons outside this radius are not interesting to a nearby search.
const nearbyRadiusKm = 25.0

type SalonHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSalonHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *SalonHandler {
	return &SalonHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateSalonRequest struct {
	Name       string  `json:"name" binding:"required"`
	CategoryID uint    `json:"category_id" binding:"required"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Timezone   string  `json:"timezone"`
}

type UpdateSalonRequest struct {
	Name      *string  `json:"name,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timezone  *string  `json:"timezone,omitempty"`
}

// --------- Public ---------

func (h *SalonHandler) List(c *gin.Context) {
	var salons []models.Salon
	if err := h.db.Preload("Category").Order("id ASC").Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Failed to list salons")
		return
	}

	c.JSON(http.StatusOK, salons)
}

func (h *SalonHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var salon models.Salon
	if err := h.db.Preload("Category").First(&salon, id).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found")
		return
	}

	c.JSON(http.StatusOK, salon)
}

type nearbySalon struct {
	models.Salon
	DistanceKm float64 `json:"distance_km"`
}

func (h *SalonHandler) Nearby(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_coordinates", "lat and lng are required")
		return
	}

	var salons []models.Salon
	if err := h.db.Preload("Category").Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Failed to list salons")
		return
	}

	c.JSON(http.StatusOK, nearbySalons(salons, lat, lng))
}

// nearbySalons keeps the salons within the radius, nearest first.
func nearbySalons(salons []models.Salon, lat, lng float64) []nearbySalon {
	nearby := make([]nearbySalon, 0, len(salons))
	for _, s := range salons {
		d := haversineKm(lat, lng, s.Latitude, s.Longitude)
		if d > nearbyRadiusKm {
			continue
		}
		nearby = append(nearby, nearbySalon{Salon: s, DistanceKm: d})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby
}

// --------- Owner ---------

func (h *SalonHandler) CreateMySalon(c *gin.Context) {
	userID := currentUserID(c)

	var count int64
	h.db.Model(&models.Salon{}).Where("owner_id = ?", userID).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "salon_already_exists", "You already own a salon")
		return
	}

	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid salon data")
		return
	}

	var category models.Category
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		httperr.BadRequest(c, "category_not_found", "Category not found")
		return
	}

	tz := req.Timezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	salon := models.Salon{
		OwnerID:    userID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Timezone:   tz,
	}

	if err := h.db.Create(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_create_salon", "Failed to create salon")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &userID,
		Action:   "salon_created",
		Entity:   "salon",
		EntityID: &salon.ID,
	})

	c.JSON(http.StatusCreated, salon)
}

func (h *SalonHandler) UpdateMySalon(c *gin.Context) {
	userID := currentUserID(c)

	salon, err := ownerSalon(h.db, userID)
	if err != nil {
		httperr.NotFound(c, "salon_not_found", "You do not own a salon")
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid salon data")
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Latitude != nil {
		salon.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		salon.Longitude = *req.Longitude
	}
	if req.Timezone != nil && timezone.IsValid(*req.Timezone) {
		salon.Timezone = *req.Timezone
	}

	if err := h.db.Save(salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Failed to update salon")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &userID,
		Action:   "salon_updated",
		Entity:   "salon",
		EntityID: &salon.ID,
	})

	c.JSON(http.StatusOK, salon)
}

// --------- Distance ---------

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
