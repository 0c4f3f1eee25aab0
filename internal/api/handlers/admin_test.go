package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jroosing/eqrng/internal/api/handlers"
	"github.com/jroosing/eqrng/internal/api/models"
	"github.com/jroosing/eqrng/internal/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePage[T any](t *testing.T, body []byte) models.PageResponse[T] {
	t.Helper()
	var page models.PageResponse[T]
	require.NoError(t, json.Unmarshal(body, &page))
	return page
}

func names(zs []zone.Zone) []string {
	out := make([]string, len(zs))
	for i, z := range zs {
		out[i] = z.Name
	}
	return out
}

// ============================================================================
// Admin Zone Listing Tests
// ============================================================================

func TestAdminZones_Paging(t *testing.T) {
	router := setupTestRouter(createTestHandler(t))

	w := performRequest(router, "GET", "/api/v1/admin/zones?per_page=2", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page := decodePage[zone.Zone](t, w.Body.Bytes())
	assert.Equal(t, []string{"Crushbone", "East Commons"}, names(page.Items))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.PerPage)
	assert.Equal(t, int64(4), page.Total)
	assert.Equal(t, int64(2), page.TotalPages)
	assert.Equal(t, "name", page.Sort)
	assert.Equal(t, "ASC", page.Order)

	w = performRequest(router, "GET", "/api/v1/admin/zones?per_page=2&page=2", "")
	page = decodePage[zone.Zone](t, w.Body.Bytes())
	assert.Equal(t, []string{"Plane of Fear", "West Commons"}, names(page.Items))

	w = performRequest(router, "GET", "/api/v1/admin/zones?per_page=2&page=9", "")
	page = decodePage[zone.Zone](t, w.Body.Bytes())
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(4), page.Total)

	w = performRequest(router, "GET", "/api/v1/admin/zones?per_page=20&page=461168601842738792", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page = decodePage[zone.Zone](t, w.Body.Bytes())
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(4), page.Total)
}

func TestAdminZones_ResponseKeys(t *testing.T) {
	router := setupTestRouter(createTestHandler(t))

	w := performRequest(router, "GET", "/api/v1/admin/zones", "")

	require.Equal(t, http.StatusOK, w.Code)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, key := range []string{"items", "page", "per_page", "total", "total_pages", "sort", "order"} {
		assert.Contains(t, raw, key)
	}
}

func TestAdminZones_SortAndFilters(t *testing.T) {
	router := setupTestRouter(createTestHandler(t))

	tests := []struct {
		name  string
		query string
		want  []string
		sort  string
		order string
	}{
		{"sort descending", "?sort=name&order=DESC", []string{"West Commons", "Plane of Fear", "East Commons", "Crushbone"}, "name", "DESC"},
		{"unknown sort falls back", "?sort=secret&order=sideways", []string{"Crushbone", "East Commons", "Plane of Fear", "West Commons"}, "name", "ASC"},
		{"search", "?search=commons", []string{"East Commons", "West Commons"}, "name", "ASC"},
		{"verified", "?verified=true", []string{"Crushbone", "East Commons"}, "name", "ASC"},
		{"zone type", "?zone_type=raid", []string{"Plane of Fear"}, "name", "ASC"},
		{"flags", "?flags=undead", []string{"Plane of Fear"}, "name", "ASC"},
		{"search is not a wildcard", "?search=%25", []string{}, "name", "ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, "GET", "/api/v1/admin/zones"+tt.query, "")

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			page := decodePage[zone.Zone](t, w.Body.Bytes())
			assert.Equal(t, tt.want, names(page.Items))
			assert.Equal(t, tt.sort, page.Sort)
			assert.Equal(t, tt.order, page.Order)
		})
	}
}

func TestAdminZones_BadPageParameters(t *testing.T) {
	router := setupTestRouter(createTestHandler(t))

	assert.Equal(t, http.StatusBadRequest, performRequest(router, "GET", "/api/v1/admin/zones?page=abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, performRequest(router, "GET", "/api/v1/admin/zones?per_page=lots", "").Code)
}

func TestAdminZones_PerPageClamped(t *testing.T) {
	cfg := createTestConfig()
	cfg.Admin.MinPageSize = 3
	cfg.Admin.MaxPageSize = 10
	h := handlers.New(cfg, openSeededDB(t), nil)
	router := setupTestRouter(h)

	page := decodePage[zone.Zone](t, performRequest(router, "GET", "/api/v1/admin/zones?per_page=1", "").Body.Bytes())
	assert.Equal(t, 3, page.PerPage)
	assert.Len(t, page.Items, 3)

	page = decodePage[zone.Zone](t, performRequest(router, "GET", "/api/v1/admin/zones?per_page=500&page=-4", "").Body.Bytes())
	assert.Equal(t, 10, page.PerPage)
	assert.Equal(t, 1, page.Page)
}

// ============================================================================
// Other Admin Listing Tests
// ============================================================================

func TestAdminInstances_SortByHotZone(t *testing.T) {
	router := setupTestRouter(createTestHandler(t))

	w := performRequest(router, "GET", "/api/v1/admin/instances?sort=hot_zone&order=desc", "")

	require.Equal(t, http.StatusOK, w.Code)
	page := decodePage[zone.Instance](t, w.Body.Bytes())
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Miragul's Menagerie", page.Items[0].Name)
	assert.Equal(t, "hot_zone", page.Sort)
}

func TestAdminLinks(t *testing.T) {
	router := setupTestRouter(createTestHandler(t))

	w := performRequest(router, "GET", "/api/v1/admin/links?search=discord", "")

	require.Equal(t, http.StatusOK, w.Code)
	page := decodePage[zone.Link](t, w.Body.Bytes())
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, "Bard Discord", page.Items[0].Name)
}

func TestAdminRatings_NewestFirstByDefault(t *testing.T) {
	router := setupTestRouter(createTestHandler(t))
	performRequestFrom(router, "POST", "/zones/1/rating", `{"rating":5}`, "198.51.100.7:5555")
	performRequest(router, "POST", "/zones/4/rating", `{"rating":2}`)

	w := performRequest(router, "GET", "/api/v1/admin/ratings", "")

	require.Equal(t, http.StatusOK, w.Code)
	page := decodePage[zone.Rating](t, w.Body.Bytes())
	require.Len(t, page.Items, 2)
	assert.Equal(t, "created_at", page.Sort)
	assert.Equal(t, "DESC", page.Order)

	w = performRequest(router, "GET", "/api/v1/admin/ratings?sort=id&order=desc", "")
	page = decodePage[zone.Rating](t, w.Body.Bytes())
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Crushbone", page.Items[0].ZoneName)
	assert.Equal(t, "East Commons", page.Items[1].ZoneName)
}

func TestAdminListings_WithoutStore(t *testing.T) {
	router := setupTestRouter(handlers.New(createTestConfig(), nil, nil))

	for _, path := range []string{"/api/v1/admin/zones", "/api/v1/admin/instances", "/api/v1/admin/links", "/api/v1/admin/ratings"} {
		assert.Equal(t, http.StatusServiceUnavailable, performRequest(router, "GET", path, "").Code, path)
	}
	assert.Equal(t, http.StatusServiceUnavailable, performRequest(router, "POST", "/api/v1/admin/reload", "").Code)
}

// ============================================================================
// Reload Tests
// ============================================================================

func TestAdminReload(t *testing.T) {
	h := handlers.New(createTestConfig(), openSeededDB(t), nil)
	router := setupTestRouter(h)

	assert.Equal(t, http.StatusNotFound, performRequest(router, "GET", "/random_zone", "").Code)

	w := performRequest(router, "POST", "/api/v1/admin/reload", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ReloadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 4, resp.Zones)
	assert.Equal(t, 2, resp.Instances)

	assert.Equal(t, http.StatusOK, performRequest(router, "GET", "/random_zone", "").Code)
}

func TestAdminReload_FailureKeepsSnapshot(t *testing.T) {
	db := openSeededDB(t)
	h := handlers.New(createTestConfig(), db, nil)
	router := setupTestRouter(h)
	require.Equal(t, http.StatusOK, performRequest(router, "POST", "/api/v1/admin/reload", "").Code)

	require.NoError(t, db.Close())
	w := performRequest(router, "POST", "/api/v1/admin/reload", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, http.StatusOK, performRequest(router, "GET", "/random_zone", "").Code)
}

func TestAdminZones_StoreFailure(t *testing.T) {
	db := openSeededDB(t)
	router := setupTestRouter(handlers.New(createTestConfig(), db, nil))
	require.NoError(t, db.Close())

	w := performRequest(router, "GET", "/api/v1/admin/zones", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed to retrieve zones", resp.Error)
}
