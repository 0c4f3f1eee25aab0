package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jroosing/eqrng/internal/listquery"
	"github.com/jroosing/eqrng/internal/zone"
)

// Bounds enforced by the zone_ratings CHECK constraint.
const (
	MinRating = 1
	MaxRating = 5
)

// ErrInvalidRating is returned for a rating outside [MinRating, MaxRating].
var ErrInvalidRating = errors.New("rating out of range")

// SubmitRating records a client's rating of a zone. A second submission from
// the same client hash replaces the first.
func (db *DB) SubmitRating(ctx context.Context, zoneID int64, clientHash string, rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("%w: %d", ErrInvalidRating, rating)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	ok, err := db.zoneExists(ctx, zoneID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("zone %d: %w", zoneID, ErrNotFound)
	}

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO zone_ratings (zone_id, user_ip, rating)
		VALUES (?, ?, ?)
		ON CONFLICT(zone_id, user_ip) DO UPDATE SET
			rating = excluded.rating,
			updated_at = CURRENT_TIMESTAMP
	`, zoneID, clientHash, rating)
	if err != nil {
		return fmt.Errorf("failed to submit rating: %w", err)
	}
	return nil
}

// RatingStats returns the average and count of a zone's ratings plus the
// rating previously given by clientHash, if any.
func (db *DB) RatingStats(ctx context.Context, zoneID int64, clientHash string) (zone.RatingStats, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	stats := zone.RatingStats{ZoneID: zoneID}

	ok, err := db.zoneExists(ctx, zoneID)
	if err != nil {
		return stats, err
	}
	if !ok {
		return stats, fmt.Errorf("zone %d: %w", zoneID, ErrNotFound)
	}

	var avg sql.NullFloat64
	err = db.conn.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(CAST(rating AS FLOAT))
		FROM zone_ratings
		WHERE zone_id = ?
	`, zoneID).Scan(&stats.TotalRatings, &avg)
	if err != nil {
		return stats, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	if avg.Valid {
		stats.AverageRating = avg.Float64
	}

	if clientHash == "" {
		return stats, nil
	}
	var own int
	err = db.conn.QueryRowContext(ctx,
		`SELECT rating FROM zone_ratings WHERE zone_id = ? AND user_ip = ?`,
		zoneID, clientHash).Scan(&own)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return stats, fmt.Errorf("failed to get user rating: %w", err)
	default:
		stats.UserRating = &own
	}
	return stats, nil
}

func scanRating(sc scanner) (zone.Rating, error) {
	var r zone.Rating
	var created, updated sql.NullString
	if err := sc.Scan(&r.ID, &r.ZoneID, &r.ZoneName, &r.Rating, &created, &updated); err != nil {
		return r, err
	}
	r.CreatedAt = created.String
	r.UpdatedAt = updated.String
	return r, nil
}

// ZoneRatings returns the individual ratings of a zone, newest first.
func (db *DB) ZoneRatings(ctx context.Context, zoneID int64) ([]zone.Rating, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	ok, err := db.zoneExists(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("zone %d: %w", zoneID, ErrNotFound)
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT zr.id, zr.zone_id, COALESCE(z.name, 'Unknown Zone'), zr.rating, zr.created_at, zr.updated_at
		FROM zone_ratings zr
		LEFT JOIN zones z ON zr.zone_id = z.id
		WHERE zr.zone_id = ?
		ORDER BY zr.created_at DESC, zr.id DESC
	`, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to query zone ratings: %w", err)
	}
	defer rows.Close()

	ratings := []zone.Rating{}
	for rows.Next() {
		r, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ratings: %w", err)
	}
	return ratings, nil
}

// ListRatings executes an admin listing of ratings joined to zone names.
func (db *DB) ListRatings(ctx context.Context, spec listquery.Spec, limits listquery.Limits) (Page[zone.Rating], error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return listPage(ctx, db.conn, listquery.RatingsSchema, spec, limits, scanRating)
}
