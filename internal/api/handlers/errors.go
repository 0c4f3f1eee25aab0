package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/eqrng/internal/api/models"
	"github.com/jroosing/eqrng/internal/database"
	"github.com/jroosing/eqrng/internal/helpers"
)

// requireDB aborts with 503 when no store is configured.
func (h *Handler) requireDB(c *gin.Context) bool {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "record store unavailable"})
		return false
	}
	return true
}

// pathID parses a positive identity from the named path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := helpers.ParseID(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return 0, false
	}
	return id, true
}

// storeError maps a store error to a response. Missing records become 404;
// anything else is logged and reported as 500 without the cause.
func (h *Handler) storeError(c *gin.Context, err error, what string) {
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: what + " not found"})
		return
	}
	h.logger.Error("store request failed",
		"path", c.FullPath(),
		"err", err,
	)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to retrieve " + what})
}
