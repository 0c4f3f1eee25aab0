package database

import (
	"context"
	"fmt"

	"github.com/jroosing/eqrng/internal/zone"
)

// notesByOwner loads notes from zone_notes or instance_notes keyed by owner.
// table and ownerCol are package constants, never user input.
func (db *DB) notesByOwner(ctx context.Context, table, ownerCol string, ids []int64) (map[int64][]zone.Note, error) {
	where, args := inClause("n."+ownerCol, ids)
	query := `SELECT n.id, n.` + ownerCol + `, n.note_type_id, n.content,
	                 nt.id, nt.name, nt.display_name, nt.color_class
	          FROM ` + table + ` n
	          JOIN note_types nt ON n.note_type_id = nt.id` + where + `
	          ORDER BY n.id`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	out := make(map[int64][]zone.Note)
	for rows.Next() {
		var n zone.Note
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.NoteTypeID, &n.Content,
			&n.NoteType.ID, &n.NoteType.Name, &n.NoteType.DisplayName, &n.NoteType.ColorClass); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		out[n.OwnerID] = append(out[n.OwnerID], n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", table, err)
	}
	return out, nil
}

func (db *DB) flagsByZone(ctx context.Context, ids []int64) (map[int64][]zone.Flag, error) {
	where, args := inClause("zf.zone_id", ids)
	query := `SELECT zf.id, zf.zone_id, zf.flag_type_id,
	                 ft.id, ft.name, ft.display_name, ft.color_class, ft.filterable
	          FROM zone_flags zf
	          JOIN flag_types ft ON zf.flag_type_id = ft.id` + where + `
	          ORDER BY ft.name`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query zone flags: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]zone.Flag)
	for rows.Next() {
		var f zone.Flag
		if err := rows.Scan(&f.ID, &f.ZoneID, &f.FlagTypeID,
			&f.FlagType.ID, &f.FlagType.Name, &f.FlagType.DisplayName, &f.FlagType.ColorClass, &f.FlagType.Filterable); err != nil {
			return nil, fmt.Errorf("failed to scan zone flag: %w", err)
		}
		out[f.ZoneID] = append(out[f.ZoneID], f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zone flags: %w", err)
	}
	return out, nil
}

// NoteTypes returns all note types ordered by display name.
func (db *DB) NoteTypes(ctx context.Context) ([]zone.NoteType, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, name, display_name, color_class
		FROM note_types
		ORDER BY display_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query note types: %w", err)
	}
	defer rows.Close()

	types := []zone.NoteType{}
	for rows.Next() {
		var nt zone.NoteType
		if err := rows.Scan(&nt.ID, &nt.Name, &nt.DisplayName, &nt.ColorClass); err != nil {
			return nil, fmt.Errorf("failed to scan note type: %w", err)
		}
		types = append(types, nt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note types: %w", err)
	}
	return types, nil
}

// FlagTypes returns flag types ordered by display name. With filterableOnly
// set, flags that cannot be used as a selection constraint are omitted.
func (db *DB) FlagTypes(ctx context.Context, filterableOnly bool) ([]zone.FlagType, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	query := `SELECT id, name, display_name, color_class, filterable FROM flag_types`
	if filterableOnly {
		query += ` WHERE filterable = 1`
	}
	query += ` ORDER BY display_name`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query flag types: %w", err)
	}
	defer rows.Close()

	types := []zone.FlagType{}
	for rows.Next() {
		var ft zone.FlagType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.DisplayName, &ft.ColorClass, &ft.Filterable); err != nil {
			return nil, fmt.Errorf("failed to scan flag type: %w", err)
		}
		types = append(types, ft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating flag types: %w", err)
	}
	return types, nil
}

// ZoneNotes returns the notes of one zone. A missing zone yields ErrNotFound.
func (db *DB) ZoneNotes(ctx context.Context, zoneID int64) ([]zone.Note, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	ok, err := db.zoneExists(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("zone %d: %w", zoneID, ErrNotFound)
	}

	notes, err := db.notesByOwner(ctx, "zone_notes", "zone_id", []int64{zoneID})
	if err != nil {
		return nil, err
	}
	if n := notes[zoneID]; n != nil {
		return n, nil
	}
	return []zone.Note{}, nil
}

// InstanceNotes returns the notes of one instance. A missing instance
// yields ErrNotFound.
func (db *DB) InstanceNotes(ctx context.Context, instanceID int64) ([]zone.Note, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	ok, err := db.instanceExists(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("instance %d: %w", instanceID, ErrNotFound)
	}

	notes, err := db.notesByOwner(ctx, "instance_notes", "instance_id", []int64{instanceID})
	if err != nil {
		return nil, err
	}
	if ns := notes[instanceID]; ns != nil {
		return ns, nil
	}
	return []zone.Note{}, nil
}
