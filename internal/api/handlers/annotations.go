package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FlagTypes godoc
// @Summary Filterable flag types
// @Description Flag types that can be passed to /random_zone as flags.
// @Tags zones
// @Produce json
// @Success 200 {array} zone.FlagType
// @Failure 500 {object} models.ErrorResponse
// @Router /flag-types [get]
func (h *Handler) FlagTypes(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	types, err := h.db.FlagTypes(c.Request.Context(), true)
	if err != nil {
		h.storeError(c, err, "flag types")
		return
	}
	c.JSON(http.StatusOK, types)
}

// ZoneNotes godoc
// @Summary Zone notes
// @Tags zones
// @Produce json
// @Param zone_id path int true "Zone ID"
// @Success 200 {array} zone.Note
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /zones/{zone_id}/notes [get]
func (h *Handler) ZoneNotes(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	id, ok := pathID(c, "zone_id")
	if !ok {
		return
	}
	notes, err := h.db.ZoneNotes(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "zone")
		return
	}
	c.JSON(http.StatusOK, notes)
}

// InstanceNotes godoc
// @Summary Instance notes
// @Tags instances
// @Produce json
// @Param instance_id path int true "Instance ID"
// @Success 200 {array} zone.Note
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /instances/{instance_id}/notes [get]
func (h *Handler) InstanceNotes(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	id, ok := pathID(c, "instance_id")
	if !ok {
		return
	}
	notes, err := h.db.InstanceNotes(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "instance")
		return
	}
	c.JSON(http.StatusOK, notes)
}
