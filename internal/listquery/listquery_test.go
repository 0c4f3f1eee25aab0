package listquery_test

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/eqrng/internal/listquery"
)

func render(p listquery.Plan) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "count: %s\n", p.CountSQL)
	fmt.Fprintf(&b, "count args: %s\n", formatArgs(p.CountArgs))
	fmt.Fprintf(&b, "page: %s\n", p.PageSQL)
	fmt.Fprintf(&b, "page args: %s\n", formatArgs(p.PageArgs))
	return []byte(b.String())
}

func formatArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if s, ok := a.(string); ok {
			parts[i] = strconv.Quote(s)
		} else {
			parts[i] = fmt.Sprint(a)
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// =============================================================================
// Golden SQL Tests
// =============================================================================

func TestBuild_Golden(t *testing.T) {
	tests := []struct {
		name   string
		spec   listquery.Spec
		schema listquery.Schema
	}{
		{
			name:   "zones_default",
			spec:   listquery.Spec{},
			schema: listquery.ZonesSchema,
		},
		{
			name: "zones_all_filters",
			spec: listquery.Spec{
				Page:    3,
				PerPage: 10,
				Search:  "commons",
				Sort:    "rating",
				Order:   "DESC",
				Filters: map[string]string{
					"verified":  "true",
					"zone_type": "Outdoor",
					"expansion": "classic",
					"flags":     "hot_zone",
				},
			},
			schema: listquery.ZonesSchema,
		},
		{
			name: "instances_verified_false",
			spec: listquery.Spec{
				Sort:    "hot_zone",
				Order:   "asc",
				Filters: map[string]string{"verified": "false", "zone_type": "dungeon"},
			},
			schema: listquery.InstancesSchema,
		},
		{
			name:   "links_search_unknown_sort",
			spec:   listquery.Spec{Search: "wiki", Sort: "url; DROP TABLE links", Order: "sideways"},
			schema: listquery.LinksSchema,
		},
		{
			name:   "ratings_search",
			spec:   listquery.Spec{Search: "commons", PerPage: 50},
			schema: listquery.RatingsSchema,
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := listquery.Build(tt.spec, tt.schema, listquery.DefaultLimits())
			g.Assert(t, tt.name, render(plan))
		})
	}
}

// =============================================================================
// Sort and Direction Tests
// =============================================================================

func TestBuild_SortAllowList(t *testing.T) {
	plan := listquery.Build(listquery.Spec{Sort: "nonexistent_column"}, listquery.ZonesSchema, listquery.DefaultLimits())
	assert.Equal(t, "name", plan.Sort)
	assert.Equal(t, listquery.Asc, plan.Order)
	assert.Contains(t, plan.PageSQL, "ORDER BY name ASC, id ASC")
	assert.NotContains(t, plan.PageSQL, "nonexistent_column")

	plan = listquery.Build(listquery.Spec{Sort: "expansion"}, listquery.ZonesSchema, listquery.DefaultLimits())
	assert.Equal(t, "expansion", plan.Sort)
}

func TestBuild_SortIsCaseSensitiveIdentifier(t *testing.T) {
	plan := listquery.Build(listquery.Spec{Sort: "NAME"}, listquery.LinksSchema, listquery.DefaultLimits())
	assert.Equal(t, "name", plan.Sort)
	assert.NotContains(t, plan.PageSQL, "NAME")
}

func TestBuild_TieBreakerSkippedWhenSortingByIt(t *testing.T) {
	plan := listquery.Build(listquery.Spec{Sort: "id", Order: "desc"}, listquery.ZonesSchema, listquery.DefaultLimits())
	assert.True(t, strings.HasSuffix(plan.PageSQL, "ORDER BY id DESC LIMIT ? OFFSET ?"), plan.PageSQL)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		fallback listquery.Direction
		want     listquery.Direction
	}{
		{in: "asc", fallback: listquery.Desc, want: listquery.Asc},
		{in: "ASC", fallback: listquery.Desc, want: listquery.Asc},
		{in: " Desc ", fallback: listquery.Asc, want: listquery.Desc},
		{in: "", fallback: listquery.Desc, want: listquery.Desc},
		{in: "DESC; --", fallback: listquery.Asc, want: listquery.Asc},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, listquery.ParseDirection(tt.in, tt.fallback))
		})
	}
}

func TestBuild_RatingsDefaultDescending(t *testing.T) {
	plan := listquery.Build(listquery.Spec{}, listquery.RatingsSchema, listquery.DefaultLimits())
	assert.Equal(t, "created_at", plan.Sort)
	assert.Equal(t, listquery.Desc, plan.Order)
	assert.Contains(t, plan.PageSQL, "ORDER BY zone_ratings.created_at DESC, zone_ratings.id ASC")
}

// =============================================================================
// Pagination Tests
// =============================================================================

func TestBuild_PageClamping(t *testing.T) {
	limits := listquery.DefaultLimits()

	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{name: "defaults", page: 0, perPage: 0, wantPage: 1, wantPerPage: 20, wantOffset: 0},
		{name: "negative-page", page: -4, perPage: 10, wantPage: 1, wantPerPage: 10, wantOffset: 0},
		{name: "below-min-per-page", page: 2, perPage: 1, wantPage: 2, wantPerPage: 5, wantOffset: 5},
		{name: "negative-per-page", page: 1, perPage: -10, wantPage: 1, wantPerPage: 5, wantOffset: 0},
		{name: "above-max-per-page", page: 3, perPage: 1000, wantPage: 3, wantPerPage: 100, wantOffset: 200},
		{name: "inside", page: 4, perPage: 25, wantPage: 4, wantPerPage: 25, wantOffset: 75},
		{name: "huge-page", page: math.MaxInt/20 + 2, perPage: 20,
			wantPage: math.MaxInt / 20, wantPerPage: 20, wantOffset: (math.MaxInt/20 - 1) * 20},
		{name: "max-int-page", page: math.MaxInt, perPage: 100,
			wantPage: math.MaxInt / 100, wantPerPage: 100, wantOffset: (math.MaxInt/100 - 1) * 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := listquery.Build(listquery.Spec{Page: tt.page, PerPage: tt.perPage}, listquery.LinksSchema, limits)
			assert.Equal(t, tt.wantPage, plan.Page)
			assert.Equal(t, tt.wantPerPage, plan.PerPage)
			assert.Equal(t, tt.wantOffset, plan.Offset)
			require.Len(t, plan.PageArgs, 2)
			assert.Equal(t, []any{tt.wantPerPage, tt.wantOffset}, plan.PageArgs)
		})
	}
}

func TestBuild_CustomLimits(t *testing.T) {
	limits := listquery.Limits{DefaultPerPage: 50, MinPerPage: 10, MaxPerPage: 200}
	plan := listquery.Build(listquery.Spec{}, listquery.ZonesSchema, limits)
	assert.Equal(t, 50, plan.PerPage)

	plan = listquery.Build(listquery.Spec{PerPage: 150}, listquery.ZonesSchema, limits)
	assert.Equal(t, 150, plan.PerPage)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int64
	}{
		{total: 0, perPage: 20, want: 0},
		{total: 1, perPage: 20, want: 1},
		{total: 20, perPage: 20, want: 1},
		{total: 21, perPage: 20, want: 2},
		{total: 99, perPage: 5, want: 20},
		{total: 100, perPage: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.perPage), func(t *testing.T) {
			assert.Equal(t, tt.want, listquery.TotalPages(tt.total, tt.perPage))
		})
	}
}

// =============================================================================
// Predicate Tests
// =============================================================================

func TestBuild_CountAndPageSharePredicates(t *testing.T) {
	spec := listquery.Spec{
		Search:  "east",
		Filters: map[string]string{"verified": "true", "flags": "undead"},
	}
	plan := listquery.Build(spec, listquery.ZonesSchema, listquery.DefaultLimits())

	where := plan.CountSQL[strings.Index(plan.CountSQL, " WHERE "):]
	assert.Contains(t, plan.PageSQL, where+" ORDER BY ")
	assert.Equal(t, plan.CountArgs, plan.PageArgs[:len(plan.PageArgs)-2])
	assert.Equal(t, strings.Count(plan.CountSQL, "?"), len(plan.CountArgs))
	assert.Equal(t, strings.Count(plan.PageSQL, "?"), len(plan.PageArgs))
}

func TestBuild_ValuesAreNeverInterpolated(t *testing.T) {
	hostile := "x' OR 1=1 --"
	spec := listquery.Spec{
		Search:  hostile,
		Filters: map[string]string{"zone_type": hostile, "expansion": hostile, "flags": hostile},
	}
	plan := listquery.Build(spec, listquery.ZonesSchema, listquery.DefaultLimits())

	assert.NotContains(t, plan.CountSQL, "OR 1=1")
	assert.NotContains(t, plan.PageSQL, "OR 1=1")
	assert.Contains(t, plan.CountArgs, hostile)
	assert.Contains(t, plan.CountArgs, "%"+hostile+"%")
}

func TestBuild_VerifiedOnlyTrueOrFalse(t *testing.T) {
	for _, v := range []string{"yes", "1", "maybe"} {
		plan := listquery.Build(listquery.Spec{Filters: map[string]string{"verified": v}}, listquery.ZonesSchema, listquery.DefaultLimits())
		assert.NotContains(t, plan.CountSQL, "WHERE", v)
		assert.Empty(t, plan.CountArgs, v)
	}

	plan := listquery.Build(listquery.Spec{Filters: map[string]string{"verified": "FALSE"}}, listquery.ZonesSchema, listquery.DefaultLimits())
	assert.Equal(t, "SELECT COUNT(*) FROM zones WHERE verified = ?", plan.CountSQL)
	assert.Equal(t, []any{0}, plan.CountArgs)
}

func TestBuild_LikeMetacharactersEscaped(t *testing.T) {
	plan := listquery.Build(listquery.Spec{Search: `50%_off\`}, listquery.LinksSchema, listquery.DefaultLimits())
	require.Len(t, plan.CountArgs, 3)
	assert.Equal(t, `%50\%\_off\\%`, plan.CountArgs[0])
}

func TestBuild_UndeclaredFiltersIgnored(t *testing.T) {
	plan := listquery.Build(listquery.Spec{Filters: map[string]string{"flags": "hot_zone"}}, listquery.LinksSchema, listquery.DefaultLimits())
	assert.Equal(t, "SELECT COUNT(*) FROM links", plan.CountSQL)
}

func TestBuild_BlankSearchIgnored(t *testing.T) {
	plan := listquery.Build(listquery.Spec{Search: "   "}, listquery.InstancesSchema, listquery.DefaultLimits())
	assert.Equal(t, "SELECT COUNT(*) FROM instances", plan.CountSQL)
	assert.Nil(t, plan.CountArgs)
}
