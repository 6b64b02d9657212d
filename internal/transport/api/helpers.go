package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam разбирает путь /:id. Нечисловой или неположительный id
// трактуется как отсутствующий ресурс.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return id, true
}

// parseLimitQuery разбирает необязательный query-параметр limit.
func parseLimitQuery(c *gin.Context) (uint, bool) {
	limitStr := c.Query("limit")
	if limitStr == "" {
		return 0, true
	}
	limit, err := strconv.ParseUint(limitStr, 10, 32)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return 0, false
	}
	return uint(limit), true
}

// parseStoreIDQuery разбирает необязательный query-параметр store_id.
func parseStoreIDQuery(c *gin.Context) (*int64, bool) {
	storeIDStr := c.Query("store_id")
	if storeIDStr == "" {
		return nil, true
	}
	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil || storeID <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid store_id"})
		return nil, false
	}
	return &storeID, true
}
