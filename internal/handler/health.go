package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
)

// Health returns a JSON health check response with catalog size, so a probe
// also verifies the store was seeded.
func Health(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":       true,
			"products": len(st.Products()),
		})
	}
}
