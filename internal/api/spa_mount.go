package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/jroosing/eqrng/internal/api/models"
)

// MountFrontend serves a built frontend from dir at the root path. Unknown
// non-API GET paths fall back to index.html so client-side routes resolve.
func MountFrontend(r *gin.Engine, dir string, logger *slog.Logger) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Warn("frontend directory not found, skipping", "dir", dir)
		return
	}
	r.Use(static.Serve("/", static.LocalFile(dir, false)))

	index := filepath.Join(dir, "index.html")
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || isAPIPath(path) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
			return
		}
		if _, err := os.Stat(index); err != nil {
			logger.Error("failed to open index.html", "error", err)
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
			return
		}
		c.File(index)
	})
}

func isAPIPath(path string) bool {
	for _, prefix := range []string{"/api", "/random_", "/zones/", "/instances/", "/swagger", "/metrics"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
