package database_test

import (
	"context"
	"math"
	"testing"

	"github.com/jroosing/eqrng/internal/database"
	"github.com/jroosing/eqrng/internal/listquery"
	"github.com/jroosing/eqrng/internal/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zoneNames(zs []zone.Zone) []string {
	out := make([]string, len(zs))
	for i, z := range zs {
		out[i] = z.Name
	}
	return out
}

// ============================================================================
// Snapshot Load Tests
// ============================================================================

func TestLoadZones_AttachesNotesAndFlags(t *testing.T) {
	db := seededDB(t)

	zones, err := db.LoadZones(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"East Commons", "West Commons", "Plane of Fear", "Crushbone"}, zoneNames(zones))

	east := zones[0]
	assert.Equal(t, zone.LevelRanges{{1, 10}}, east.LevelRanges)
	assert.Equal(t, []string{"West Commons", "Nektulos Forest"}, east.Connections)
	assert.True(t, east.Verified)
	require.Len(t, east.Notes, 1)
	assert.Equal(t, "epic_1_0", east.Notes[0].NoteType.Name)
	assert.Equal(t, "Speak to the bard by the tunnel.", east.Notes[0].Content)
	assert.Equal(t, []string{"hot_zone"}, east.FilterableFlagNames())

	west := zones[1]
	assert.NotNil(t, west.Notes)
	assert.Empty(t, west.Notes)
	assert.Empty(t, west.Flags)

	fear := zones[2]
	require.Len(t, fear.Flags, 2)
	assert.Equal(t, []string{"undead"}, fear.FilterableFlagNames())

	assert.True(t, zones[3].Mission)
}

func TestLoadInstances(t *testing.T) {
	db := seededDB(t)

	instances, err := db.LoadInstances(context.Background())
	require.NoError(t, err)
	require.Len(t, instances, 2)

	assert.Equal(t, "Miragul's Menagerie", instances[0].Name)
	assert.True(t, instances[0].HotZone)
	require.Len(t, instances[0].Notes, 1)
	assert.Equal(t, "zone_aug", instances[0].Notes[0].NoteType.Name)
	assert.False(t, instances[1].HotZone)
	assert.Empty(t, instances[1].Notes)
}

func TestLoadZones_Empty(t *testing.T) {
	db := openTestDB(t)
	zones, err := db.LoadZones(context.Background())
	require.NoError(t, err)
	assert.Empty(t, zones)
}

func TestGetZone(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	z, err := db.GetZone(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "East Commons", z.Name)
	assert.Len(t, z.Flags, 1)

	_, err = db.GetZone(ctx, 999)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestZoneExists(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	ok, err := db.ZoneExists(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = db.ZoneExists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

// ============================================================================
// Admin Listing Tests
// ============================================================================

func TestListZones_Search(t *testing.T) {
	db := seededDB(t)

	page, err := db.ListZones(context.Background(), listquery.Spec{Search: "commons"}, listquery.DefaultLimits())
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, []string{"East Commons", "West Commons"}, zoneNames(page.Items))
	assert.Equal(t, int64(1), page.TotalPages())
	assert.Equal(t, 20, page.Plan.PerPage)
}

func TestListZones_PagePastEnd(t *testing.T) {
	db := seededDB(t)

	page, err := db.ListZones(context.Background(), listquery.Spec{Page: 9, Search: "commons"}, listquery.DefaultLimits())
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.Total)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestListZones_HugePageReturnsNothing(t *testing.T) {
	db := seededDB(t)

	for _, p := range []int{math.MaxInt/20 + 2, math.MaxInt} {
		page, err := db.ListZones(context.Background(), listquery.Spec{Page: p, PerPage: 20}, listquery.DefaultLimits())
		require.NoError(t, err)

		assert.Equal(t, int64(4), page.Total)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items, "page %d", p)
	}
}

func TestListZones_PagesCoverTotal(t *testing.T) {
	db := seededDB(t)
	limits := listquery.Limits{DefaultPerPage: 3, MinPerPage: 1, MaxPerPage: 10}

	var seen []string
	first, err := db.ListZones(context.Background(), listquery.Spec{}, limits)
	require.NoError(t, err)
	require.Equal(t, int64(2), first.TotalPages())

	for p := 1; p <= int(first.TotalPages()); p++ {
		page, err := db.ListZones(context.Background(), listquery.Spec{Page: p}, limits)
		require.NoError(t, err)
		assert.Equal(t, first.Total, page.Total)
		seen = append(seen, zoneNames(page.Items)...)
	}
	assert.Len(t, seen, int(first.Total))
	assert.ElementsMatch(t, []string{"Crushbone", "East Commons", "Plane of Fear", "West Commons"}, seen)
}

func TestListZones_SortAndFallback(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	page, err := db.ListZones(ctx, listquery.Spec{Sort: "name", Order: "desc"}, listquery.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, []string{"West Commons", "Plane of Fear", "East Commons", "Crushbone"}, zoneNames(page.Items))

	page, err = db.ListZones(ctx, listquery.Spec{Sort: "name; DROP TABLE zones", Order: "sideways"}, listquery.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, "name", page.Plan.Sort)
	assert.Equal(t, listquery.Asc, page.Plan.Order)
	assert.Equal(t, []string{"Crushbone", "East Commons", "Plane of Fear", "West Commons"}, zoneNames(page.Items))
}

func TestListZones_Filters(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		filters map[string]string
		want    []string
	}{
		{"verified", map[string]string{"verified": "true"}, []string{"Crushbone", "East Commons"}},
		{"unverified", map[string]string{"verified": "false"}, []string{"Plane of Fear", "West Commons"}},
		{"zone type contains", map[string]string{"zone_type": "DUNG"}, []string{"Crushbone"}},
		{"flag", map[string]string{"flags": "Undead"}, []string{"Plane of Fear"}},
		{"invalid bool ignored", map[string]string{"verified": "maybe"}, []string{"Crushbone", "East Commons", "Plane of Fear", "West Commons"}},
		{"combined", map[string]string{"verified": "true", "expansion": "classic", "flags": "hot_zone"}, []string{"East Commons"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := db.ListZones(ctx, listquery.Spec{Filters: tt.filters}, listquery.DefaultLimits())
			require.NoError(t, err)
			assert.Equal(t, tt.want, zoneNames(page.Items))
			assert.Equal(t, int64(len(tt.want)), page.Total)
		})
	}
}

func TestListZones_AttachesChildrenForPageOnly(t *testing.T) {
	db := seededDB(t)

	page, err := db.ListZones(context.Background(), listquery.Spec{Search: "east"}, listquery.DefaultLimits())
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Len(t, page.Items[0].Notes, 1)
	assert.Len(t, page.Items[0].Flags, 1)
}

func TestListInstances(t *testing.T) {
	db := seededDB(t)

	page, err := db.ListInstances(context.Background(),
		listquery.Spec{Sort: "hot_zone", Order: "desc"}, listquery.DefaultLimits())
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Miragul's Menagerie", page.Items[0].Name)
	assert.Len(t, page.Items[0].Notes, 1)
}

// ============================================================================
// Notes Tests
// ============================================================================

func TestZoneNotes(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	notes, err := db.ZoneNotes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	notes, err = db.ZoneNotes(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)

	_, err = db.ZoneNotes(ctx, 99)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestInstanceNotes(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	notes, err := db.InstanceNotes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Drops a type 3 augment.", notes[0].Content)

	_, err = db.InstanceNotes(ctx, 99)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestFlagTypes_IncludesNonFilterable(t *testing.T) {
	db := seededDB(t)

	all, err := db.FlagTypes(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filterable, err := db.FlagTypes(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, filterable, 2)
}
