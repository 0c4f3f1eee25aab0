package handlers

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/eqrng/internal/api/models"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const bytesPerMB = 1024 * 1024

// Health godoc
// @Summary Health check
// @Description Returns server health status. Reports 503 when the store cannot be reached.
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /api/v1/health [get]
func (h *Handler) Health(c *gin.Context) {
	resp := models.HealthResponse{
		Status:    "ok",
		Database:  "not configured",
		Zones:     h.zoneSnapshot().Len(),
		Instances: h.instanceSnapshot().Len(),
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Health(ctx); err != nil {
			h.logger.Warn("database health check failed", "err", err)
			resp.Status = "degraded"
			resp.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
		resp.Database = "ok"
	}

	c.JSON(http.StatusOK, resp)
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including host CPU and memory, process usage, snapshot sizes and the connection pool.
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /api/v1/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / bytesPerMB,
		CPU:           models.CPUStats{NumCPU: runtime.NumCPU()},
	}

	if pct, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pct) > 0 {
		resp.CPU.UsedPercent = pct[0]
		resp.CPU.IdlePercent = 100 - pct[0]
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		resp.Memory = models.MemoryStats{
			TotalMB:     float64(vm.Total) / bytesPerMB,
			FreeMB:      float64(vm.Free) / bytesPerMB,
			UsedMB:      float64(vm.Used) / bytesPerMB,
			UsedPercent: vm.UsedPercent,
		}
	}

	resp.Process = processStats(ctx)

	h.mu.RLock()
	resp.Snapshots = models.SnapshotStats{
		Zones:      h.zones.Len(),
		Instances:  h.instances.Len(),
		LoadedAt:   h.loadedAt,
		ReloadedOK: h.reloadOK,
	}
	h.mu.RUnlock()

	if h.db != nil {
		st := h.db.Stats()
		resp.Database = models.DatabaseStats{
			OpenConnections: st.OpenConnections,
			InUse:           st.InUse,
			Idle:            st.Idle,
			WaitCount:       st.WaitCount,
		}
		if v, _, ok, err := h.db.SchemaVersion(); err == nil && ok {
			resp.Database.SchemaVersion = v
		}
	}

	c.JSON(http.StatusOK, resp)
}

// processStats returns nil when the platform does not expose process info.
func processStats(ctx context.Context) *models.ProcessStats {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return nil
	}
	ps := &models.ProcessStats{PID: p.Pid}
	if mi, err := p.MemoryInfoWithContext(ctx); err == nil {
		ps.RSSMB = float64(mi.RSS) / bytesPerMB
	}
	if n, err := p.NumThreadsWithContext(ctx); err == nil {
		ps.NumThreads = n
	}
	if files, err := p.OpenFilesWithContext(ctx); err == nil {
		ps.OpenFiles = len(files)
	}
	return ps
}
