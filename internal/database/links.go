package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jroosing/eqrng/internal/listquery"
	"github.com/jroosing/eqrng/internal/zone"
)

// DefaultLinkCategories are always offered, even before any link uses them.
var DefaultLinkCategories = []string{"General", "Class Discords", "Content Creators"}

const linkColumns = `id, name, url, category, description, created_at, updated_at`

func scanLink(sc scanner) (zone.Link, error) {
	var l zone.Link
	var desc, created, updated sql.NullString
	if err := sc.Scan(&l.ID, &l.Name, &l.URL, &l.Category, &desc, &created, &updated); err != nil {
		return l, err
	}
	if desc.Valid {
		l.Description = &desc.String
	}
	l.CreatedAt = created.String
	l.UpdatedAt = updated.String
	return l, nil
}

// Links returns links ordered by category then name. An empty category
// returns every link.
func (db *DB) Links(ctx context.Context, category string) ([]zone.Link, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	query := `SELECT ` + linkColumns + ` FROM links`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY category, name COLLATE NOCASE`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	links := []zone.Link{}
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating links: %w", err)
	}
	return links, nil
}

// LinksByCategory groups all links by their category.
func (db *DB) LinksByCategory(ctx context.Context) (map[string][]zone.Link, error) {
	links, err := db.Links(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make(map[string][]zone.Link)
	for _, l := range links {
		out[l.Category] = append(out[l.Category], l)
	}
	return out, nil
}

// LinkByID returns one link or ErrNotFound.
func (db *DB) LinkByID(ctx context.Context, id int64) (zone.Link, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	l, err := scanLink(db.conn.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM links WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return zone.Link{}, fmt.Errorf("link %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return zone.Link{}, fmt.Errorf("failed to get link: %w", err)
	}
	return l, nil
}

// LinkCategories returns the default categories followed by any other
// category in use, alphabetically.
func (db *DB) LinkCategories(ctx context.Context) ([]string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.QueryContext(ctx, `SELECT DISTINCT category FROM links ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query link categories: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]bool, len(DefaultLinkCategories))
	categories := make([]string, 0, len(DefaultLinkCategories))
	for _, c := range DefaultLinkCategories {
		seen[c] = true
		categories = append(categories, c)
	}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan link category: %w", err)
		}
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating link categories: %w", err)
	}
	return categories, nil
}

// ListLinks executes an admin listing of links.
func (db *DB) ListLinks(ctx context.Context, spec listquery.Spec, limits listquery.Limits) (Page[zone.Link], error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return listPage(ctx, db.conn, listquery.LinksSchema, spec, limits, scanLink)
}
