package httpresp

import "github.com/gin-gonic/gin"

// ListResponse wraps list payloads (the salon feed, paged listings)
// with their count.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// List answers 200 with the items in the ListResponse envelope.
func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
