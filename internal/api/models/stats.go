package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string        `json:"uptime"`
	UptimeSeconds int64         `json:"uptime_seconds"`
	StartTime     time.Time     `json:"start_time"`
	GoRoutines    int           `json:"goroutines"`
	MemoryAllocMB float64       `json:"memory_alloc_mb"`
	CPU           CPUStats      `json:"cpu"`
	Memory        MemoryStats   `json:"memory"`
	Process       *ProcessStats `json:"process,omitempty"`
	Snapshots     SnapshotStats `json:"snapshots"`
	Database      DatabaseStats `json:"database"`
}

// CPUStats contains host CPU usage.
type CPUStats struct {
	NumCPU      int     `json:"num_cpu"`
	UsedPercent float64 `json:"used_percent"`
	IdlePercent float64 `json:"idle_percent"`
}

// MemoryStats contains host memory usage.
type MemoryStats struct {
	TotalMB     float64 `json:"total_mb"`
	FreeMB      float64 `json:"free_mb"`
	UsedMB      float64 `json:"used_mb"`
	UsedPercent float64 `json:"used_percent"`
}

// ProcessStats describes the eqrng process itself.
type ProcessStats struct {
	PID        int32   `json:"pid"`
	RSSMB      float64 `json:"rss_mb"`
	NumThreads int32   `json:"num_threads"`
	OpenFiles  int     `json:"open_files"`
}

// SnapshotStats reports the size and age of the selection snapshots.
type SnapshotStats struct {
	Zones      int       `json:"zones"`
	Instances  int       `json:"instances"`
	LoadedAt   time.Time `json:"loaded_at"`
	ReloadedOK bool      `json:"reloaded_ok"`
}

// DatabaseStats mirrors the connection pool counters of database/sql.
type DatabaseStats struct {
	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"wait_count"`
	SchemaVersion   uint  `json:"schema_version"`
}
