package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/eqrng/internal/api/models"
	"github.com/jroosing/eqrng/internal/database"
)

// ratingBounds returns the configured rating range, narrowed to what the
// store accepts.
func (h *Handler) ratingBounds() (int, int) {
	lo, hi := database.MinRating, database.MaxRating
	if h.cfg != nil {
		if r := h.cfg.Ratings.MinRating; r > lo && r <= hi {
			lo = r
		}
		if r := h.cfg.Ratings.MaxRating; r >= lo && r < hi {
			hi = r
		}
	}
	return lo, hi
}

// clientHash returns the keyed hash of the caller's address. Raw addresses
// never reach the store.
func (h *Handler) clientHash(c *gin.Context) string {
	if h.hasher == nil {
		return ""
	}
	return h.hasher.Hash(c.ClientIP())
}

// GetZoneRating godoc
// @Summary Zone rating statistics
// @Description Average and count of a zone's ratings plus the caller's own rating, if any.
// @Tags ratings
// @Produce json
// @Param zone_id path int true "Zone ID"
// @Success 200 {object} zone.RatingStats
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /zones/{zone_id}/rating [get]
func (h *Handler) GetZoneRating(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	id, ok := pathID(c, "zone_id")
	if !ok {
		return
	}
	stats, err := h.db.RatingStats(c.Request.Context(), id, h.clientHash(c))
	if err != nil {
		h.storeError(c, err, "zone")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SubmitZoneRating godoc
// @Summary Rate a zone
// @Description Records the caller's rating. A repeat submission replaces the earlier one. Returns the updated statistics.
// @Tags ratings
// @Accept json
// @Produce json
// @Param zone_id path int true "Zone ID"
// @Param request body models.RatingRequest true "Rating"
// @Success 200 {object} zone.RatingStats
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /zones/{zone_id}/rating [post]
func (h *Handler) SubmitZoneRating(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	id, ok := pathID(c, "zone_id")
	if !ok {
		return
	}

	var req models.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.getMetrics().ObserveRating("invalid")
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}
	lo, hi := h.ratingBounds()
	if req.Rating < lo || req.Rating > hi {
		h.getMetrics().ObserveRating("invalid")
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("rating must be between %d and %d", lo, hi),
		})
		return
	}

	ctx := c.Request.Context()
	hash := h.clientHash(c)
	if err := h.db.SubmitRating(ctx, id, hash, req.Rating); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			h.getMetrics().ObserveRating("not_found")
		case errors.Is(err, database.ErrInvalidRating):
			h.getMetrics().ObserveRating("invalid")
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		default:
			h.getMetrics().ObserveRating("error")
			h.logger.Error("failed to save rating", "zone_id", id, "err", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save rating"})
			return
		}
		h.storeError(c, err, "zone")
		return
	}
	h.getMetrics().ObserveRating("accepted")
	h.logger.Debug("rating recorded", "zone_id", id, "rating", req.Rating)

	stats, err := h.db.RatingStats(ctx, id, hash)
	if err != nil {
		h.storeError(c, err, "zone")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ZoneRatings godoc
// @Summary Individual ratings of a zone
// @Tags ratings
// @Produce json
// @Param zone_id path int true "Zone ID"
// @Success 200 {array} zone.Rating
// @Failure 400 {object} models.ErrorResponse
// @Router /zones/{zone_id}/ratings [get]
func (h *Handler) ZoneRatings(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	id, ok := pathID(c, "zone_id")
	if !ok {
		return
	}
	ratings, err := h.db.ZoneRatings(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "zone")
		return
	}
	c.JSON(http.StatusOK, ratings)
}
