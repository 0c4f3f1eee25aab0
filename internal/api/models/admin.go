package models

// PageResponse is one page of an admin listing.
type PageResponse[T any] struct {
	Items      []T    `json:"items"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int64  `json:"total"`
	TotalPages int64  `json:"total_pages"`
	Sort       string `json:"sort"`
	Order      string `json:"order"`
}

// ReloadResponse reports the outcome of a snapshot rebuild.
type ReloadResponse struct {
	Status     string `json:"status"`
	Zones      int    `json:"zones"`
	Instances  int    `json:"instances"`
	DurationMs int64  `json:"duration_ms"`
}
