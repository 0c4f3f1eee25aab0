package database_test

import (
	"context"
	"testing"

	"github.com/jroosing/eqrng/internal/database"
	"github.com/jroosing/eqrng/internal/listquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRating_Upsert(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	require.NoError(t, db.SubmitRating(ctx, 1, "client-a", 2))
	require.NoError(t, db.SubmitRating(ctx, 1, "client-a", 5))

	stats, err := db.RatingStats(ctx, 1, "client-a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalRatings)
	assert.InDelta(t, 5.0, stats.AverageRating, 1e-9)
	require.NotNil(t, stats.UserRating)
	assert.Equal(t, 5, *stats.UserRating)
}

func TestRatingStats_Average(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	require.NoError(t, db.SubmitRating(ctx, 1, "client-a", 4))
	require.NoError(t, db.SubmitRating(ctx, 1, "client-b", 1))
	require.NoError(t, db.SubmitRating(ctx, 1, "client-c", 2))

	stats, err := db.RatingStats(ctx, 1, "client-z")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ZoneID)
	assert.Equal(t, int64(3), stats.TotalRatings)
	assert.InDelta(t, 7.0/3.0, stats.AverageRating, 1e-9)
	assert.Nil(t, stats.UserRating)
}

func TestRatingStats_NoRatings(t *testing.T) {
	db := seededDB(t)

	stats, err := db.RatingStats(context.Background(), 2, "")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRatings)
	assert.Zero(t, stats.AverageRating)
	assert.Nil(t, stats.UserRating)
}

func TestSubmitRating_Errors(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	assert.ErrorIs(t, db.SubmitRating(ctx, 99, "client-a", 3), database.ErrNotFound)
	assert.ErrorIs(t, db.SubmitRating(ctx, 1, "client-a", 0), database.ErrInvalidRating)
	assert.ErrorIs(t, db.SubmitRating(ctx, 1, "client-a", 6), database.ErrInvalidRating)

	_, err := db.RatingStats(ctx, 99, "")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestZoneRatings_NewestFirst(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	require.NoError(t, db.SubmitRating(ctx, 1, "client-a", 3))
	require.NoError(t, db.SubmitRating(ctx, 1, "client-b", 4))
	require.NoError(t, db.SubmitRating(ctx, 2, "client-a", 1))

	ratings, err := db.ZoneRatings(ctx, 1)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.Equal(t, 4, ratings[0].Rating)
	assert.Equal(t, "East Commons", ratings[0].ZoneName)
	assert.NotEmpty(t, ratings[0].CreatedAt)

	ratings, err = db.ZoneRatings(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, ratings)
	assert.Empty(t, ratings)

	_, err = db.ZoneRatings(ctx, 99)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestListRatings_SearchByZoneName(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	require.NoError(t, db.SubmitRating(ctx, 1, "client-a", 3))
	require.NoError(t, db.SubmitRating(ctx, 1, "client-b", 4))
	require.NoError(t, db.SubmitRating(ctx, 4, "client-a", 5))

	page, err := db.ListRatings(ctx, listquery.Spec{Search: "EAST"}, listquery.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	for _, r := range page.Items {
		assert.Equal(t, "East Commons", r.ZoneName)
	}

	page, err = db.ListRatings(ctx, listquery.Spec{Sort: "rating", Order: "desc"}, listquery.DefaultLimits())
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, 5, page.Items[0].Rating)
	assert.Equal(t, "Crushbone", page.Items[0].ZoneName)
}

func TestRatings_CascadeOnReplace(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()
	require.NoError(t, db.SubmitRating(ctx, 1, "client-a", 3))

	s, err := database.LoadSeedFile("testdata/seed.yaml")
	require.NoError(t, err)
	_, err = db.Import(ctx, s, database.SeedOptions{Replace: true})
	require.NoError(t, err)

	page, err := db.ListRatings(ctx, listquery.Spec{}, listquery.DefaultLimits())
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}
