package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jroosing/eqrng/internal/listquery"
	"github.com/jroosing/eqrng/internal/zone"
)

const zoneColumns = `id, name, level_ranges, expansion, continent, zone_type, connections, image_url, map_url, rating, mission, verified`

const instanceColumns = `id, name, level_ranges, expansion, continent, zone_type, connections, image_url, map_url, rating, hot_zone, verified`

// Page is one page of an admin listing together with the plan that
// produced it.
type Page[T any] struct {
	Items []T
	Total int64
	Plan  listquery.Plan
}

// TotalPages returns the page count implied by Total and the plan's page size.
func (p Page[T]) TotalPages() int64 {
	return listquery.TotalPages(p.Total, p.Plan.PerPage)
}

func scanZone(sc scanner) (zone.Zone, error) {
	var z zone.Zone
	var ranges, conns string
	if err := sc.Scan(&z.ID, &z.Name, &ranges, &z.Expansion, &z.Continent, &z.ZoneType,
		&conns, &z.ImageURL, &z.MapURL, &z.Rating, &z.Mission, &z.Verified); err != nil {
		return z, err
	}
	lr, err := zone.ParseLevelRanges(ranges)
	if err != nil {
		return z, fmt.Errorf("zone %d (%s): %w", z.ID, z.Name, err)
	}
	z.LevelRanges = lr
	z.Connections = zone.ParseConnections(conns)
	z.Notes = []zone.Note{}
	z.Flags = []zone.Flag{}
	return z, nil
}

func scanInstance(sc scanner) (zone.Instance, error) {
	var in zone.Instance
	var ranges, conns string
	if err := sc.Scan(&in.ID, &in.Name, &ranges, &in.Expansion, &in.Continent, &in.ZoneType,
		&conns, &in.ImageURL, &in.MapURL, &in.Rating, &in.HotZone, &in.Verified); err != nil {
		return in, err
	}
	lr, err := zone.ParseLevelRanges(ranges)
	if err != nil {
		return in, fmt.Errorf("instance %d (%s): %w", in.ID, in.Name, err)
	}
	in.LevelRanges = lr
	in.Connections = zone.ParseConnections(conns)
	in.Notes = []zone.Note{}
	return in, nil
}

// LoadZones returns every zone with its notes and flags attached.
// A zone whose stored level ranges are malformed fails the whole load.
func (db *DB) LoadZones(ctx context.Context) ([]zone.Zone, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.QueryContext(ctx, `SELECT `+zoneColumns+` FROM zones ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	zones := []zone.Zone{}
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zones: %w", err)
	}
	rows.Close()

	if err := db.attachZoneChildren(ctx, zones, nil); err != nil {
		return nil, err
	}
	return zones, nil
}

// LoadInstances returns every instance with its notes attached.
func (db *DB) LoadInstances(ctx context.Context) ([]zone.Instance, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.QueryContext(ctx, `SELECT `+instanceColumns+` FROM instances ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query instances: %w", err)
	}
	defer rows.Close()

	instances := []zone.Instance{}
	for rows.Next() {
		in, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan instance: %w", err)
		}
		instances = append(instances, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instances: %w", err)
	}
	rows.Close()

	if err := db.attachInstanceNotes(ctx, instances, nil); err != nil {
		return nil, err
	}
	return instances, nil
}

// GetZone returns a single zone by ID with notes and flags attached.
func (db *DB) GetZone(ctx context.Context, id int64) (zone.Zone, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRowContext(ctx, `SELECT `+zoneColumns+` FROM zones WHERE id = ?`, id)
	z, err := scanZone(row)
	if errors.Is(err, sql.ErrNoRows) {
		return zone.Zone{}, fmt.Errorf("zone %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return zone.Zone{}, fmt.Errorf("failed to get zone: %w", err)
	}

	zones := []zone.Zone{z}
	if err := db.attachZoneChildren(ctx, zones, []int64{id}); err != nil {
		return zone.Zone{}, err
	}
	return zones[0], nil
}

// ZoneExists reports whether a zone with the given ID exists.
func (db *DB) ZoneExists(ctx context.Context, id int64) (bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.zoneExists(ctx, id)
}

func (db *DB) zoneExists(ctx context.Context, id int64) (bool, error) {
	var n int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM zones WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check zone: %w", err)
	}
	return n > 0, nil
}

// InstanceExists reports whether an instance with the given ID exists.
func (db *DB) InstanceExists(ctx context.Context, id int64) (bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.instanceExists(ctx, id)
}

func (db *DB) instanceExists(ctx context.Context, id int64) (bool, error) {
	var n int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM instances WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check instance: %w", err)
	}
	return n > 0, nil
}

// ListZones executes an admin listing of zones. Notes and flags for the
// page are attached with one query per collection.
func (db *DB) ListZones(ctx context.Context, spec listquery.Spec, limits listquery.Limits) (Page[zone.Zone], error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	page, err := listPage(ctx, db.conn, listquery.ZonesSchema, spec, limits, scanZone)
	if err != nil {
		return page, err
	}
	if err := db.attachZoneChildren(ctx, page.Items, zoneIDs(page.Items)); err != nil {
		return page, err
	}
	return page, nil
}

// ListInstances executes an admin listing of instances with notes attached.
func (db *DB) ListInstances(ctx context.Context, spec listquery.Spec, limits listquery.Limits) (Page[zone.Instance], error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	page, err := listPage(ctx, db.conn, listquery.InstancesSchema, spec, limits, scanInstance)
	if err != nil {
		return page, err
	}
	ids := make([]int64, len(page.Items))
	for i, in := range page.Items {
		ids[i] = in.ID
	}
	if err := db.attachInstanceNotes(ctx, page.Items, ids); err != nil {
		return page, err
	}
	return page, nil
}

// listPage runs the count and page statements of a plan.
// Callers hold db.mu.
func listPage[T any](
	ctx context.Context,
	conn *sql.DB,
	schema listquery.Schema,
	spec listquery.Spec,
	limits listquery.Limits,
	scan func(scanner) (T, error),
) (Page[T], error) {
	plan := listquery.Build(spec, schema, limits)
	page := Page[T]{Items: []T{}, Plan: plan}

	if err := conn.QueryRowContext(ctx, plan.CountSQL, plan.CountArgs...).Scan(&page.Total); err != nil {
		return page, fmt.Errorf("failed to count %s: %w", schema.Name, err)
	}

	rows, err := conn.QueryContext(ctx, plan.PageSQL, plan.PageArgs...)
	if err != nil {
		return page, fmt.Errorf("failed to list %s: %w", schema.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return page, fmt.Errorf("failed to scan %s row: %w", schema.Name, err)
		}
		page.Items = append(page.Items, item)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("error iterating %s: %w", schema.Name, err)
	}
	return page, nil
}

func zoneIDs(zones []zone.Zone) []int64 {
	ids := make([]int64, len(zones))
	for i, z := range zones {
		ids[i] = z.ID
	}
	return ids
}

// inClause returns "(?,?,...)" and the matching args. A nil ids slice
// yields an empty clause, meaning no restriction.
func inClause(col string, ids []int64) (string, []any) {
	if ids == nil {
		return "", nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return " WHERE " + col + " IN (" + strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",") + ")", args
}

// attachZoneChildren fills Notes and Flags. ids restricts the child queries;
// nil loads children for every zone. Callers hold db.mu.
func (db *DB) attachZoneChildren(ctx context.Context, zones []zone.Zone, ids []int64) error {
	if len(zones) == 0 {
		return nil
	}
	notes, err := db.notesByOwner(ctx, "zone_notes", "zone_id", ids)
	if err != nil {
		return err
	}
	flags, err := db.flagsByZone(ctx, ids)
	if err != nil {
		return err
	}
	for i := range zones {
		if n, ok := notes[zones[i].ID]; ok {
			zones[i].Notes = n
		}
		if f, ok := flags[zones[i].ID]; ok {
			zones[i].Flags = f
		}
	}
	return nil
}

func (db *DB) attachInstanceNotes(ctx context.Context, instances []zone.Instance, ids []int64) error {
	if len(instances) == 0 {
		return nil
	}
	notes, err := db.notesByOwner(ctx, "instance_notes", "instance_id", ids)
	if err != nil {
		return err
	}
	for i := range instances {
		if n, ok := notes[instances[i].ID]; ok {
			instances[i].Notes = n
		}
	}
	return nil
}
