package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

const corsAllowMethods = "GET, POST, PUT, DELETE"

// CORS answers cross-origin requests from the listed origins. Requests from
// other origins pass through without CORS headers, so browsers block them.
// Credentials are never allowed.
func CORS(origins []string) gin.HandlerFunc {
	allowed := slices.Clone(origins)
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" || !slices.Contains(allowed, origin) {
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")

		// Preflight
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", "*")
			h.Set("Access-Control-Max-Age", "600")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
