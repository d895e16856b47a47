package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/httpresp"
	"github.com/bellebook/salon-scheduler/internal/models"
)

const feedPageSize = 50

type PostHandler struct {
	db *gorm.DB
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{db: db}
}

type CreatePostRequest struct {
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"image_url"`
}

func (h *PostHandler) List(c *gin.Context) {
	var posts []models.Post
	if err := h.db.
		Preload("User").
		Order("created_at DESC").
		Limit(feedPageSize).
		Find(&posts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_posts", "Failed to load the feed")
		return
	}

	httpresp.List(c, posts)
}

func (h *PostHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Post content is required")
		return
	}

	post := models.Post{
		UserID:   userID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}

	if err := h.db.Create(&post).Error; err != nil {
		httperr.Internal(c, "failed_to_create_post", "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}
