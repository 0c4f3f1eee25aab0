// Package handlers implements the REST API endpoint handlers for eqrng.
//
// Public endpoints:
//   - GET /random_zone - Random zone matching level, type, expansion, mission, continent and flag constraints
//   - GET /random_instance - Random instance matching the same constraints (no mission)
//   - GET /random_race, GET /random_class - Random playable race / class
//   - GET /version - Release string
//   - GET /flag-types - Flag types usable as random_zone constraints
//   - GET /zones/:zone_id/notes, GET /instances/:instance_id/notes - Notes
//   - GET|POST /zones/:zone_id/rating, GET /zones/:zone_id/ratings - Ratings
//   - GET /api/links, /api/links/by-category, /api/links/categories, /api/links/:id - Links
//
// Admin endpoints (under /api/v1):
//   - GET /admin/zones, /admin/instances, /admin/links, /admin/ratings - Paged listings
//   - POST /admin/reload - Rebuild the selection snapshots from the store
//   - GET /health - Health check (never requires a key)
//   - GET /stats - Process and host statistics
//
// Authentication:
//
// When admin.api_key is configured, admin and stats endpoints require it in
// the X-API-Key header.
//
// @title eqrng API
// @version 1.0
// @description Random zone selection and admin listings for EverQuest zone data.
//
// @contact.name eqrng
// @contact.url https://github.com/jroosing/eqrng
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jroosing/eqrng/internal/config"
	"github.com/jroosing/eqrng/internal/database"
	"github.com/jroosing/eqrng/internal/metrics"
	"github.com/jroosing/eqrng/internal/roster"
	"github.com/jroosing/eqrng/internal/security"
	"github.com/jroosing/eqrng/internal/selection"
	"github.com/jroosing/eqrng/internal/zone"
)

// UpdateLabel is appended to the release version by /version.
const UpdateLabel = "Update 3 - July 20, 2025"

// ErrNoStore is returned by Reload when the handler has no database.
var ErrNoStore = errors.New("no record store configured")

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	db        *database.DB
	logger    *slog.Logger
	startTime time.Time

	hasher  *security.IPHasher
	roster  *roster.Roster
	metrics *metrics.Metrics
	version string

	selectOpts []selection.Option

	// Selection snapshots are replaced wholesale on reload.
	zones     *selection.Snapshot[zone.Zone]
	instances *selection.Snapshot[zone.Instance]
	loadedAt  time.Time
	reloadOK  bool
	mu        sync.RWMutex
}

// New creates a new Handler with the given configuration and database.
// Snapshots start empty until Reload is called.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{
		cfg:       cfg,
		db:        db,
		logger:    logger,
		startTime: time.Now(),
		roster:    roster.Default(),
		version:   "dev",
	}
	if cfg != nil {
		h.hasher = security.NewIPHasher(cfg.Security.RatingIPHashKey)
	}
	h.zones = selection.NewSnapshot[zone.Zone](nil, selection.DescribeZone)
	h.instances = selection.NewSnapshot[zone.Instance](nil, selection.DescribeInstance)
	return h
}

// DB returns the database connection for handlers that need it.
func (h *Handler) DB() *database.DB {
	return h.db
}

// SetMetrics attaches Prometheus instrumentation.
func (h *Handler) SetMetrics(m *metrics.Metrics) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.metrics = m
}

// SetRoster replaces the race and class table.
func (h *Handler) SetRoster(r *roster.Roster) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.roster = r
}

// SetVersion sets the release version reported by /version.
func (h *Handler) SetVersion(v string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.version = v
}

// SetSelectionOptions configures snapshots built by later reloads.
func (h *Handler) SetSelectionOptions(opts ...selection.Option) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.selectOpts = opts
}

// Reload rebuilds both selection snapshots from the store. On failure the
// previous snapshots stay active.
func (h *Handler) Reload(ctx context.Context) (zones, instances int, err error) {
	defer func() { h.getMetrics().ObserveReload(err, zones, instances) }()

	if h.db == nil {
		return 0, 0, ErrNoStore
	}

	zs, err := h.db.LoadZones(ctx)
	if err != nil {
		h.markReload(false)
		return 0, 0, err
	}
	ins, err := h.db.LoadInstances(ctx)
	if err != nil {
		h.markReload(false)
		return 0, 0, err
	}

	h.mu.RLock()
	opts := h.selectOpts
	h.mu.RUnlock()

	zoneSnap := selection.NewSnapshot(zs, selection.DescribeZone, opts...)
	instSnap := selection.NewSnapshot(ins, selection.DescribeInstance, opts...)

	h.mu.Lock()
	h.zones = zoneSnap
	h.instances = instSnap
	h.loadedAt = time.Now()
	h.reloadOK = true
	h.mu.Unlock()

	h.logger.Info("selection snapshots loaded", "zones", zoneSnap.Len(), "instances", instSnap.Len())
	return zoneSnap.Len(), instSnap.Len(), nil
}

func (h *Handler) markReload(ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reloadOK = ok
}

func (h *Handler) zoneSnapshot() *selection.Snapshot[zone.Zone] {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.zones
}

func (h *Handler) instanceSnapshot() *selection.Snapshot[zone.Instance] {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.instances
}

func (h *Handler) getMetrics() *metrics.Metrics {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.metrics
}

func (h *Handler) getRoster() *roster.Roster {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.roster
}
