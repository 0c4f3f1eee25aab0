package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Links godoc
// @Summary List links
// @Tags links
// @Produce json
// @Param category query string false "Only links in this category"
// @Success 200 {array} zone.Link
// @Failure 500 {object} models.ErrorResponse
// @Router /api/links [get]
func (h *Handler) Links(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	links, err := h.db.Links(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.storeError(c, err, "links")
		return
	}
	c.JSON(http.StatusOK, links)
}

// LinksByCategory godoc
// @Summary Links grouped by category
// @Tags links
// @Produce json
// @Success 200 {object} map[string][]zone.Link
// @Failure 500 {object} models.ErrorResponse
// @Router /api/links/by-category [get]
func (h *Handler) LinksByCategory(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	grouped, err := h.db.LinksByCategory(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "links")
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// LinkCategories godoc
// @Summary Link categories
// @Tags links
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/links/categories [get]
func (h *Handler) LinkCategories(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	cats, err := h.db.LinkCategories(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "link categories")
		return
	}
	c.JSON(http.StatusOK, cats)
}

// GetLink godoc
// @Summary Get link
// @Tags links
// @Produce json
// @Param id path int true "Link ID"
// @Success 200 {object} zone.Link
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/links/{id} [get]
func (h *Handler) GetLink(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	l, err := h.db.LinkByID(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "link")
		return
	}
	c.JSON(http.StatusOK, l)
}
