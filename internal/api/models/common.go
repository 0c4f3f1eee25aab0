// Package models defines request and response types for the eqrng REST API.
// All types are JSON-serializable and include validation tags where appropriate.
package models

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse represents a simple status response.
type StatusResponse struct {
	Status string `json:"status"`
}

// HealthResponse reports liveness plus the state of the store and the
// active selection snapshots.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Zones     int    `json:"zones"`
	Instances int    `json:"instances"`
}

// VersionResponse carries the release string shown in the UI footer.
type VersionResponse struct {
	Version string `json:"version"`
}
