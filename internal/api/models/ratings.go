package models

// RatingRequest is the body of POST /zones/{zone_id}/rating.
type RatingRequest struct {
	Rating int `json:"rating"`
}
