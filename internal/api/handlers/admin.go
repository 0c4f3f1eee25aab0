package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/eqrng/internal/api/models"
	"github.com/jroosing/eqrng/internal/database"
	"github.com/jroosing/eqrng/internal/helpers"
	"github.com/jroosing/eqrng/internal/listquery"
)

// filterParams are copied from the query string into listquery.Spec.Filters.
// Each schema ignores the ones it does not declare.
var filterParams = []string{"verified", "zone_type", "expansion", "flags"}

func (h *Handler) listLimits() listquery.Limits {
	l := listquery.DefaultLimits()
	if h.cfg == nil {
		return l
	}
	a := h.cfg.Admin
	if a.MinPageSize > 0 && a.MaxPageSize >= a.MinPageSize {
		l.MinPerPage, l.MaxPerPage = a.MinPageSize, a.MaxPageSize
	}
	if a.PageSize > 0 {
		l.DefaultPerPage = helpers.ClampInt(a.PageSize, l.MinPerPage, l.MaxPerPage)
	}
	return l
}

// parseListSpec reads page, per_page, search, sort, order and the filter
// parameters. Only non-numeric page values are rejected; out of range ones
// are clamped by the planner.
func parseListSpec(c *gin.Context) (listquery.Spec, error) {
	spec := listquery.Spec{
		Search:  c.Query("search"),
		Sort:    c.Query("sort"),
		Order:   c.Query("order"),
		Filters: make(map[string]string),
	}

	page, err := helpers.ParseOptionalInt(c.Query("page"))
	if err != nil {
		return spec, fmt.Errorf("page: %w", err)
	}
	if page != nil {
		spec.Page = *page
	}
	perPage, err := helpers.ParseOptionalInt(c.Query("per_page"))
	if err != nil {
		return spec, fmt.Errorf("per_page: %w", err)
	}
	if perPage != nil {
		spec.PerPage = *perPage
	}

	for _, p := range filterParams {
		if v, ok := c.GetQuery(p); ok {
			spec.Filters[p] = v
		}
	}
	return spec, nil
}

func toPageResponse[T any](p database.Page[T]) models.PageResponse[T] {
	return models.PageResponse[T]{
		Items:      p.Items,
		Page:       p.Plan.Page,
		PerPage:    p.Plan.PerPage,
		Total:      p.Total,
		TotalPages: p.TotalPages(),
		Sort:       p.Plan.Sort,
		Order:      string(p.Plan.Order),
	}
}

func serveList[T any](
	h *Handler,
	c *gin.Context,
	list func(context.Context, listquery.Spec, listquery.Limits) (database.Page[T], error),
	what string,
) {
	if !h.requireDB(c) {
		return
	}
	spec, err := parseListSpec(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	page, err := list(c.Request.Context(), spec, h.listLimits())
	if err != nil {
		h.storeError(c, err, what)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(page))
}

// AdminZones godoc
// @Summary List zones
// @Description Paged zone listing with search over name, expansion and zone type.
// @Tags admin
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Page size (clamped to the configured bounds)"
// @Param search query string false "Case-insensitive substring"
// @Param sort query string false "Sort column; unknown values fall back to name"
// @Param order query string false "asc or desc"
// @Param verified query bool false "Verified flag"
// @Param zone_type query string false "Zone type substring"
// @Param expansion query string false "Expansion substring"
// @Param flags query string false "Flag name the zone must carry"
// @Success 200 {object} models.PageResponse[zone.Zone]
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/zones [get]
func (h *Handler) AdminZones(c *gin.Context) {
	serveList(h, c, h.db.ListZones, "zones")
}

// AdminInstances godoc
// @Summary List instances
// @Tags admin
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Page size"
// @Param search query string false "Case-insensitive substring"
// @Param sort query string false "Sort column"
// @Param order query string false "asc or desc"
// @Param verified query bool false "Verified flag"
// @Success 200 {object} models.PageResponse[zone.Instance]
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/instances [get]
func (h *Handler) AdminInstances(c *gin.Context) {
	serveList(h, c, h.db.ListInstances, "instances")
}

// AdminLinks godoc
// @Summary List links
// @Tags admin
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Page size"
// @Param search query string false "Case-insensitive substring of name, category or description"
// @Param sort query string false "Sort column"
// @Param order query string false "asc or desc"
// @Success 200 {object} models.PageResponse[zone.Link]
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/links [get]
func (h *Handler) AdminLinks(c *gin.Context) {
	serveList(h, c, h.db.ListLinks, "links")
}

// AdminRatings godoc
// @Summary List ratings
// @Description Newest first by default; search matches the zone name.
// @Tags admin
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Page size"
// @Param search query string false "Zone name substring"
// @Param sort query string false "Sort column"
// @Param order query string false "asc or desc"
// @Success 200 {object} models.PageResponse[zone.Rating]
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/ratings [get]
func (h *Handler) AdminRatings(c *gin.Context) {
	serveList(h, c, h.db.ListRatings, "ratings")
}

// AdminReload godoc
// @Summary Rebuild selection snapshots
// @Description Reloads zones and instances from the store. The previous snapshots stay active if loading fails.
// @Tags admin
// @Produce json
// @Success 200 {object} models.ReloadResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/reload [post]
func (h *Handler) AdminReload(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	start := time.Now()
	zones, instances, err := h.Reload(c.Request.Context())
	if err != nil {
		h.logger.Error("snapshot reload failed", "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "reload failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ReloadResponse{
		Status:     "ok",
		Zones:      zones,
		Instances:  instances,
		DurationMs: time.Since(start).Milliseconds(),
	})
}
