package listquery

// ZonesSchema lists zones with search over name, expansion and zone type.
var ZonesSchema = Schema{
	Name: "zones",
	From: "zones",
	Columns: []string{
		"id", "name", "level_ranges", "expansion", "continent", "zone_type",
		"connections", "image_url", "map_url", "rating", "mission", "verified",
	},
	SortColumns: []string{
		"id", "name", "level_ranges", "expansion", "zone_type", "rating", "verified", "created_at",
	},
	DefaultSort:   "name",
	DefaultOrder:  Asc,
	TieBreaker:    "id",
	SearchColumns: []string{"name", "expansion", "zone_type"},
	Filters: []Filter{
		{Param: "verified", Kind: FilterBool, Column: "verified"},
		{Param: "zone_type", Kind: FilterContains, Column: "zone_type"},
		{Param: "expansion", Kind: FilterContains, Column: "expansion"},
		{
			Param: "flags",
			Kind:  FilterExists,
			Clause: "EXISTS (SELECT 1 FROM zone_flags zf JOIN flag_types ft ON zf.flag_type_id = ft.id" +
				" WHERE zf.zone_id = zones.id AND LOWER(ft.name) = LOWER(?))",
		},
	},
}

// InstancesSchema lists instances. Only the verified filter applies.
var InstancesSchema = Schema{
	Name: "instances",
	From: "instances",
	Columns: []string{
		"id", "name", "level_ranges", "expansion", "continent", "zone_type",
		"connections", "image_url", "map_url", "rating", "hot_zone", "verified",
	},
	SortColumns: []string{
		"id", "name", "level_ranges", "expansion", "zone_type", "rating", "hot_zone", "verified", "created_at",
	},
	DefaultSort:   "name",
	DefaultOrder:  Asc,
	TieBreaker:    "id",
	SearchColumns: []string{"name", "expansion", "zone_type"},
	Filters: []Filter{
		{Param: "verified", Kind: FilterBool, Column: "verified"},
	},
}

// LinksSchema lists curated links.
var LinksSchema = Schema{
	Name:          "links",
	From:          "links",
	Columns:       []string{"id", "name", "url", "category", "description", "created_at", "updated_at"},
	SortColumns:   []string{"id", "name", "category", "created_at", "updated_at"},
	DefaultSort:   "name",
	DefaultOrder:  Asc,
	TieBreaker:    "id",
	SearchColumns: []string{"name", "category", "description"},
}

// RatingsSchema lists ratings joined to their zone name, newest first.
var RatingsSchema = Schema{
	Name:      "ratings",
	From:      "zone_ratings LEFT JOIN zones ON zone_ratings.zone_id = zones.id",
	CountFrom: "zone_ratings LEFT JOIN zones ON zone_ratings.zone_id = zones.id",
	Columns: []string{
		"zone_ratings.id", "zone_ratings.zone_id", "COALESCE(zones.name, 'Unknown Zone')",
		"zone_ratings.rating", "zone_ratings.created_at", "zone_ratings.updated_at",
	},
	SortColumns:   []string{"id", "zone_id", "rating", "created_at", "updated_at"},
	SortQualifier: "zone_ratings.",
	DefaultSort:   "created_at",
	DefaultOrder:  Desc,
	TieBreaker:    "id",
	SearchColumns: []string{"zones.name"},
}
