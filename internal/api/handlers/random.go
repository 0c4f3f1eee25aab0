package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/eqrng/internal/api/models"
	"github.com/jroosing/eqrng/internal/helpers"
	"github.com/jroosing/eqrng/internal/selection"
)

const errNoMatch = "no matching zone"

// Character levels are carried as a single byte.
const maxLevelParam = 255

// parseConstraints reads the random_zone query parameters. Empty values are
// unset; unparsable min, max or mission values are errors, as are levels
// outside 0..255.
func parseConstraints(c *gin.Context, allowMission bool) (selection.Constraints, error) {
	var sc selection.Constraints
	var err error

	if sc.MinLevel, err = parseLevel(c.Query("min")); err != nil {
		return sc, fmt.Errorf("min: %w", err)
	}
	if sc.MaxLevel, err = parseLevel(c.Query("max")); err != nil {
		return sc, fmt.Errorf("max: %w", err)
	}
	if allowMission {
		if sc.Mission, err = helpers.ParseOptionalBool(c.Query("mission")); err != nil {
			return sc, fmt.Errorf("mission: %w", err)
		}
	}

	sc.ZoneType = c.Query("zone_type")
	sc.Expansion = c.Query("expansion")
	sc.Continent = c.Query("continent")
	for _, raw := range c.QueryArray("flags") {
		sc.Flags = append(sc.Flags, helpers.SplitList(raw)...)
	}
	return sc, nil
}

func parseLevel(s string) (*int, error) {
	v, err := helpers.ParseOptionalInt(s)
	if err != nil || v == nil {
		return v, err
	}
	if *v < 0 || *v > maxLevelParam {
		return nil, fmt.Errorf("level %d out of range 0..%d", *v, maxLevelParam)
	}
	return v, nil
}

// RandomZone godoc
// @Summary Random zone
// @Description Returns a uniformly random zone satisfying every supplied constraint.
// @Description With both min and max a level range must contain [min,max]; with only min a range must reach min; with only max a range must start at or below max.
// @Tags random
// @Produce json
// @Param min query int false "Minimum character level"
// @Param max query int false "Maximum character level"
// @Param zone_type query string false "Zone type (case-insensitive)"
// @Param expansion query string false "Expansion (case-insensitive)"
// @Param continent query string false "Continent (case-insensitive)"
// @Param mission query bool false "Mission zones only / non-mission zones only"
// @Param flags query string false "Comma separated filterable flag names; any may match"
// @Success 200 {object} zone.Zone
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /random_zone [get]
func (h *Handler) RandomZone(c *gin.Context) {
	sc, err := parseConstraints(c, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	z, ok := h.zoneSnapshot().Select(sc)
	h.getMetrics().ObserveSelection("zone", ok)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: errNoMatch})
		return
	}
	c.JSON(http.StatusOK, z)
}

// RandomInstance godoc
// @Summary Random instance
// @Description Returns a uniformly random instance. Same constraints as /random_zone except mission.
// @Tags random
// @Produce json
// @Param min query int false "Minimum character level"
// @Param max query int false "Maximum character level"
// @Param zone_type query string false "Zone type (case-insensitive)"
// @Param expansion query string false "Expansion (case-insensitive)"
// @Param continent query string false "Continent (case-insensitive)"
// @Success 200 {object} zone.Instance
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /random_instance [get]
func (h *Handler) RandomInstance(c *gin.Context) {
	sc, err := parseConstraints(c, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	// Instances carry no filterable flags.
	sc.Flags = nil

	in, ok := h.instanceSnapshot().Select(sc)
	h.getMetrics().ObserveSelection("instance", ok)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "no matching instance"})
		return
	}
	c.JSON(http.StatusOK, in)
}

// RandomRace godoc
// @Summary Random race
// @Tags random
// @Produce json
// @Success 200 {string} string
// @Router /random_race [get]
func (h *Handler) RandomRace(c *gin.Context) {
	c.JSON(http.StatusOK, h.getRoster().RandomRace())
}

// RandomClass godoc
// @Summary Random class
// @Description With race set, the class is drawn from the classes that race may play. An unknown race yields null.
// @Tags random
// @Produce json
// @Param race query string false "Race name"
// @Success 200 {string} string
// @Router /random_class [get]
func (h *Handler) RandomClass(c *gin.Context) {
	class, ok := h.getRoster().RandomClass(c.Query("race"))
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, class)
}

// Version godoc
// @Summary Release version
// @Tags system
// @Produce json
// @Success 200 {object} models.VersionResponse
// @Router /version [get]
func (h *Handler) Version(c *gin.Context) {
	h.mu.RLock()
	v := h.version
	h.mu.RUnlock()
	c.JSON(http.StatusOK, models.VersionResponse{Version: fmt.Sprintf("v%s - %s", v, UpdateLabel)})
}
