// Package zone defines the records served by eqrng: zones, instances and the
// descriptive data attached to them (notes, flags, links and ratings).
//
// Records are plain values. The store fills them in, the selection engine
// reads them, and nothing in between mutates them.
package zone

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidLevelRange is returned when a level range has low > high.
var ErrInvalidLevelRange = errors.New("invalid level range")

// LevelRange is a closed interval [low, high] of character levels.
// It encodes as a two element JSON array, e.g. [1,10].
type LevelRange [2]int

// Low returns the lower bound.
func (r LevelRange) Low() int { return r[0] }

// High returns the upper bound.
func (r LevelRange) High() int { return r[1] }

// Covers reports whether r fully contains [minLevel, maxLevel].
func (r LevelRange) Covers(minLevel, maxLevel int) bool {
	return r[0] <= minLevel && r[1] >= maxLevel
}

func (r LevelRange) String() string {
	return fmt.Sprintf("[%d,%d]", r[0], r[1])
}

// LevelRanges is an unordered set of level ranges. Ranges may overlap.
type LevelRanges []LevelRange

// Validate checks that every range satisfies low <= high.
func (rs LevelRanges) Validate() error {
	for _, r := range rs {
		if r[0] > r[1] {
			return fmt.Errorf("%w: %s", ErrInvalidLevelRange, r)
		}
	}
	return nil
}

// Encode returns the JSON text stored in the level_ranges column.
func (rs LevelRanges) Encode() string {
	if len(rs) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(rs)
	return string(b)
}

// ParseLevelRanges decodes the JSON column form and validates it.
// An empty string is treated as no ranges.
func ParseLevelRanges(s string) (LevelRanges, error) {
	if s == "" {
		return LevelRanges{}, nil
	}
	var rs LevelRanges
	if err := json.Unmarshal([]byte(s), &rs); err != nil {
		return nil, fmt.Errorf("failed to decode level ranges %q: %w", s, err)
	}
	if rs == nil {
		rs = LevelRanges{}
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// Zone is an open-world location.
type Zone struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	LevelRanges LevelRanges `json:"level_ranges"`
	Expansion   string      `json:"expansion"`
	Continent   string      `json:"continent"`
	ZoneType    string      `json:"zone_type"`
	Connections []string    `json:"connections"`
	ImageURL    string      `json:"image_url"`
	MapURL      string      `json:"map_url"`
	Rating      int         `json:"rating"`
	Mission     bool        `json:"mission"`
	Verified    bool        `json:"verified"`
	Notes       []Note      `json:"notes"`
	Flags       []Flag      `json:"flags"`
}

// Instance is an instanced location. It has no mission flag but can be
// marked as a hot zone.
type Instance struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	LevelRanges LevelRanges `json:"level_ranges"`
	Expansion   string      `json:"expansion"`
	Continent   string      `json:"continent"`
	ZoneType    string      `json:"zone_type"`
	Connections []string    `json:"connections"`
	ImageURL    string      `json:"image_url"`
	MapURL      string      `json:"map_url"`
	Rating      int         `json:"rating"`
	HotZone     bool        `json:"hot_zone"`
	Verified    bool        `json:"verified"`
	Notes       []Note      `json:"notes"`
}

// ParseConnections decodes the JSON list stored in the connections column.
// Malformed input yields an empty list, matching how the column is written.
func ParseConnections(s string) []string {
	var out []string
	if s == "" || json.Unmarshal([]byte(s), &out) != nil || out == nil {
		return []string{}
	}
	return out
}

// EncodeConnections is the inverse of ParseConnections.
func EncodeConnections(conns []string) string {
	if len(conns) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(conns)
	return string(b)
}
