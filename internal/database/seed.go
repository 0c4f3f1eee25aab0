package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jroosing/eqrng/internal/zone"
	"gopkg.in/yaml.v3"
)

// Seed is the YAML document imported by `eqrng seed` and by the
// database.seed_file setting.
//
//	zones:
//	  - name: East Commons
//	    level_ranges: [[1, 10]]
//	    expansion: Classic
//	    zone_type: outdoor
//	    flags: [hot_zone]
//	    notes:
//	      - type: epic_1_0
//	        content: Speak to the bard.
type Seed struct {
	NoteTypes []SeedType     `yaml:"note_types"`
	FlagTypes []SeedType     `yaml:"flag_types"`
	Zones     []SeedZone     `yaml:"zones"`
	Instances []SeedInstance `yaml:"instances"`
	Links     []SeedLink     `yaml:"links"`
}

// SeedType declares a note or flag type. Filterable only applies to flag
// types and defaults to true.
type SeedType struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	ColorClass  string `yaml:"color_class"`
	Filterable  *bool  `yaml:"filterable"`
}

// SeedRecord holds the fields shared by zones and instances.
type SeedRecord struct {
	Name        string     `yaml:"name"`
	LevelRanges [][]int    `yaml:"level_ranges"`
	Expansion   string     `yaml:"expansion"`
	Continent   string     `yaml:"continent"`
	ZoneType    string     `yaml:"zone_type"`
	Connections []string   `yaml:"connections"`
	ImageURL    string     `yaml:"image_url"`
	MapURL      string     `yaml:"map_url"`
	Rating      int        `yaml:"rating"`
	Verified    bool       `yaml:"verified"`
	Notes       []SeedNote `yaml:"notes"`
}

// SeedZone is a zone entry. HotZone is stored as the hot_zone flag.
type SeedZone struct {
	SeedRecord `yaml:",inline"`
	Mission    bool     `yaml:"mission"`
	HotZone    bool     `yaml:"hot_zone"`
	Flags      []string `yaml:"flags"`
}

// SeedInstance is an instance entry.
type SeedInstance struct {
	SeedRecord `yaml:",inline"`
	HotZone    bool `yaml:"hot_zone"`
}

// SeedNote references a note type by name.
type SeedNote struct {
	Type    string `yaml:"type"`
	Content string `yaml:"content"`
}

// SeedLink is a link entry.
type SeedLink struct {
	Name        string  `yaml:"name"`
	URL         string  `yaml:"url"`
	Category    string  `yaml:"category"`
	Description *string `yaml:"description"`
}

// SeedOptions controls Import.
type SeedOptions struct {
	// Replace deletes existing zones, instances and links first. Without it
	// a collection that already has rows is left untouched.
	Replace bool
}

// SeedResult counts imported rows. Skipped names collections left alone
// because they already held data.
type SeedResult struct {
	Zones     int      `json:"zones"`
	Instances int      `json:"instances"`
	Links     int      `json:"links"`
	Notes     int      `json:"notes"`
	Flags     int      `json:"flags"`
	Skipped   []string `json:"skipped,omitempty"`
}

// ParseSeed decodes a seed document. Unknown keys are rejected.
func ParseSeed(r io.Reader) (*Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Seed
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	return &s, nil
}

// LoadSeedFile reads and decodes the seed document at path.
func LoadSeedFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return ParseSeed(f)
}

// Import writes a seed document in a single transaction.
func (db *DB) Import(ctx context.Context, s *Seed, opts SeedOptions) (SeedResult, error) {
	var res SeedResult

	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if opts.Replace {
		for _, table := range []string{"zones", "instances", "links"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return res, fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
	}

	if err := seedTypes(ctx, tx, "note_types", s.NoteTypes, false); err != nil {
		return res, err
	}
	if err := seedTypes(ctx, tx, "flag_types", s.FlagTypes, true); err != nil {
		return res, err
	}

	if len(s.Zones) > 0 {
		empty, err := tableEmpty(ctx, tx, "zones")
		if err != nil {
			return res, err
		}
		if empty {
			if err := seedZones(ctx, tx, s.Zones, &res); err != nil {
				return res, err
			}
		} else {
			res.Skipped = append(res.Skipped, "zones")
		}
	}

	if len(s.Instances) > 0 {
		empty, err := tableEmpty(ctx, tx, "instances")
		if err != nil {
			return res, err
		}
		if empty {
			if err := seedInstances(ctx, tx, s.Instances, &res); err != nil {
				return res, err
			}
		} else {
			res.Skipped = append(res.Skipped, "instances")
		}
	}

	if len(s.Links) > 0 {
		empty, err := tableEmpty(ctx, tx, "links")
		if err != nil {
			return res, err
		}
		if empty {
			if err := seedLinks(ctx, tx, s.Links, &res); err != nil {
				return res, err
			}
		} else {
			res.Skipped = append(res.Skipped, "links")
		}
	}

	if err := tx.Commit(); err != nil {
		return SeedResult{}, fmt.Errorf("failed to commit seed: %w", err)
	}
	return res, nil
}

func tableEmpty(ctx context.Context, tx *sql.Tx, table string) (bool, error) {
	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n == 0, nil
}

func seedTypes(ctx context.Context, tx *sql.Tx, table string, types []SeedType, flags bool) error {
	for _, t := range types {
		if t.Name == "" {
			return fmt.Errorf("%s entry is missing a name", table)
		}
		display := t.DisplayName
		if display == "" {
			display = t.Name
		}
		color := t.ColorClass
		if color == "" {
			color = "bg-blue-500"
		}

		var err error
		if flags {
			filterable := t.Filterable == nil || *t.Filterable
			_, err = tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO flag_types (name, display_name, color_class, filterable)
				VALUES (?, ?, ?, ?)
			`, t.Name, display, color, filterable)
		} else {
			_, err = tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO note_types (name, display_name, color_class)
				VALUES (?, ?, ?)
			`, t.Name, display, color)
		}
		if err != nil {
			return fmt.Errorf("failed to insert %s %q: %w", table, t.Name, err)
		}
	}
	return nil
}

func (r SeedRecord) levelRanges() (zone.LevelRanges, error) {
	out := make(zone.LevelRanges, 0, len(r.LevelRanges))
	for _, pair := range r.LevelRanges {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%q: level range %v must have two bounds", r.Name, pair)
		}
		out = append(out, zone.LevelRange{pair[0], pair[1]})
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%q: %w", r.Name, err)
	}
	return out, nil
}

func lookupTypeID(ctx context.Context, tx *sql.Tx, table, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM `+table+` WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("unknown %s %q: %w", table, name, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up %s %q: %w", table, name, err)
	}
	return id, nil
}

func seedNotes(ctx context.Context, tx *sql.Tx, table, ownerCol string, ownerID int64, notes []SeedNote, res *SeedResult) error {
	for _, n := range notes {
		typeID, err := lookupTypeID(ctx, tx, "note_types", n.Type)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO `+table+` (`+ownerCol+`, note_type_id, content) VALUES (?, ?, ?)`,
			ownerID, typeID, n.Content)
		if err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}
		res.Notes++
	}
	return nil
}

func seedZones(ctx context.Context, tx *sql.Tx, zones []SeedZone, res *SeedResult) error {
	for _, z := range zones {
		ranges, err := z.levelRanges()
		if err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO zones (name, level_ranges, expansion, continent, zone_type, connections,
			                   image_url, map_url, rating, mission, verified)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, z.Name, ranges.Encode(), z.Expansion, z.Continent, z.ZoneType, zone.EncodeConnections(z.Connections),
			z.ImageURL, z.MapURL, z.Rating, z.Mission, z.Verified)
		if err != nil {
			return fmt.Errorf("failed to insert zone %q: %w", z.Name, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get zone id: %w", err)
		}
		res.Zones++

		flags := append([]string(nil), z.Flags...)
		if z.HotZone {
			flags = append(flags, "hot_zone")
		}
		for _, name := range flags {
			typeID, err := lookupTypeID(ctx, tx, "flag_types", name)
			if err != nil {
				return err
			}
			fr, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO zone_flags (zone_id, flag_type_id) VALUES (?, ?)`,
				id, typeID)
			if err != nil {
				return fmt.Errorf("failed to flag zone %q: %w", z.Name, err)
			}
			if n, _ := fr.RowsAffected(); n > 0 {
				res.Flags++
			}
		}

		if err := seedNotes(ctx, tx, "zone_notes", "zone_id", id, z.Notes, res); err != nil {
			return err
		}
	}
	return nil
}

func seedInstances(ctx context.Context, tx *sql.Tx, instances []SeedInstance, res *SeedResult) error {
	for _, in := range instances {
		ranges, err := in.levelRanges()
		if err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO instances (name, level_ranges, expansion, continent, zone_type, connections,
			                       image_url, map_url, rating, hot_zone, verified)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, in.Name, ranges.Encode(), in.Expansion, in.Continent, in.ZoneType, zone.EncodeConnections(in.Connections),
			in.ImageURL, in.MapURL, in.Rating, in.HotZone, in.Verified)
		if err != nil {
			return fmt.Errorf("failed to insert instance %q: %w", in.Name, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get instance id: %w", err)
		}
		res.Instances++

		if err := seedNotes(ctx, tx, "instance_notes", "instance_id", id, in.Notes, res); err != nil {
			return err
		}
	}
	return nil
}

func seedLinks(ctx context.Context, tx *sql.Tx, links []SeedLink, res *SeedResult) error {
	for _, l := range links {
		if l.Name == "" || l.URL == "" || l.Category == "" {
			return fmt.Errorf("link %q requires name, url and category", l.Name)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO links (name, url, category, description) VALUES (?, ?, ?, ?)
		`, l.Name, l.URL, l.Category, l.Description); err != nil {
			return fmt.Errorf("failed to insert link %q: %w", l.Name, err)
		}
		res.Links++
	}
	return nil
}
