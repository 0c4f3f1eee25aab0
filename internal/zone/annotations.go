package zone

// NoteType classifies a note (e.g. "Epic 1.0").
type NoteType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	ColorClass  string `json:"color_class"`
}

// Note is free text attached to a zone or an instance.
// OwnerID is the zone id or the instance id depending on the owner.
type Note struct {
	ID         int64    `json:"id"`
	OwnerID    int64    `json:"owner_id"`
	NoteTypeID int64    `json:"note_type_id"`
	Content    string   `json:"content"`
	NoteType   NoteType `json:"note_type"`
}

// FlagType is a tag that can be attached to zones. Only filterable flag
// types can be used as a random_zone constraint.
type FlagType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	ColorClass  string `json:"color_class"`
	Filterable  bool   `json:"filterable"`
}

// Flag attaches a FlagType to a zone.
type Flag struct {
	ID         int64    `json:"id"`
	ZoneID     int64    `json:"zone_id"`
	FlagTypeID int64    `json:"flag_type_id"`
	FlagType   FlagType `json:"flag_type"`
}

// FilterableFlagNames returns the names of the filterable flags on z.
func (z Zone) FilterableFlagNames() []string {
	var names []string
	for _, f := range z.Flags {
		if f.FlagType.Filterable {
			names = append(names, f.FlagType.Name)
		}
	}
	return names
}

// Link is a curated external resource.
type Link struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// Rating is a single visitor rating of a zone. The hashed client address
// it is keyed on is never exposed.
type Rating struct {
	ID        int64  `json:"id"`
	ZoneID    int64  `json:"zone_id"`
	ZoneName  string `json:"zone_name"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// RatingStats aggregates the ratings of one zone.
type RatingStats struct {
	ZoneID        int64   `json:"zone_id"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
	UserRating    *int    `json:"user_rating"`
}
