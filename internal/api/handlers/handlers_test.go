// Package handlers_test provides behavior tests for the API handlers package.
package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/eqrng/internal/api/handlers"
	"github.com/jroosing/eqrng/internal/config"
	"github.com/jroosing/eqrng/internal/database"
	"github.com/jroosing/eqrng/internal/selection"
	"github.com/stretchr/testify/require"
)

const seedPath = "../../database/testdata/seed.yaml"

func init() {
	gin.SetMode(gin.TestMode)
}

func createTestConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{RatingIPHashKey: "handlers-test-key-0123456789abcdef"},
		Ratings:  config.RatingsConfig{MinRating: 1, MaxRating: 5, RequestsPerMinute: 5},
		Admin:    config.AdminConfig{Enabled: true, PageSize: 20, MinPageSize: 1, MaxPageSize: 100},
	}
}

// openSeededDB returns a migrated temporary database holding testdata/seed.yaml.
func openSeededDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "zones.db"), database.Options{Migrate: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	seed, err := database.LoadSeedFile(seedPath)
	require.NoError(t, err)
	_, err = db.Import(context.Background(), seed, database.SeedOptions{})
	require.NoError(t, err)
	return db
}

// createTestHandler returns a handler over the seeded database whose
// selections always pick the first matching record.
func createTestHandler(t *testing.T) *handlers.Handler {
	t.Helper()
	h := handlers.New(createTestConfig(), openSeededDB(t), nil)
	h.SetSelectionOptions(selection.WithIntN(func(int) int { return 0 }))
	_, _, err := h.Reload(context.Background())
	require.NoError(t, err)
	return h
}

func setupTestRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()

	r.GET("/random_zone", h.RandomZone)
	r.GET("/random_instance", h.RandomInstance)
	r.GET("/random_race", h.RandomRace)
	r.GET("/random_class", h.RandomClass)
	r.GET("/version", h.Version)
	r.GET("/flag-types", h.FlagTypes)
	r.GET("/zones/:zone_id/rating", h.GetZoneRating)
	r.POST("/zones/:zone_id/rating", h.SubmitZoneRating)
	r.GET("/zones/:zone_id/ratings", h.ZoneRatings)
	r.GET("/zones/:zone_id/notes", h.ZoneNotes)
	r.GET("/instances/:instance_id/notes", h.InstanceNotes)
	r.GET("/api/links", h.Links)
	r.GET("/api/links/by-category", h.LinksByCategory)
	r.GET("/api/links/categories", h.LinkCategories)
	r.GET("/api/links/:id", h.GetLink)

	api := r.Group("/api/v1")
	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/admin/zones", h.AdminZones)
	api.GET("/admin/instances", h.AdminInstances)
	api.GET("/admin/links", h.AdminLinks)
	api.GET("/admin/ratings", h.AdminRatings)
	api.POST("/admin/reload", h.AdminReload)

	return r
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	return performRequestFrom(r, method, path, body, "")
}

// performRequestFrom sends the request from remoteAddr when it is set.
func performRequestFrom(r http.Handler, method, path, body, remoteAddr string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
