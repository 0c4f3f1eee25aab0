// Package listquery builds the count and page queries behind the admin
// list views.
//
// Only identifiers taken from a Schema's allow-lists and the ASC/DESC
// keywords are written into the SQL text. Search terms and filter values
// always travel as bound parameters.
package listquery

import (
	"math"
	"strings"

	"github.com/jroosing/eqrng/internal/helpers"
)

// Direction is a normalized sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection normalizes "asc"/"desc" in any case. Anything else yields
// fallback.
func ParseDirection(s string, fallback Direction) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc
	case "desc":
		return Desc
	default:
		return fallback
	}
}

// FilterKind selects how a filter value is turned into a predicate.
type FilterKind int

const (
	// FilterBool accepts only "true" or "false"; other values are ignored.
	FilterBool FilterKind = iota
	// FilterContains is a case-insensitive substring match on Column.
	FilterContains
	// FilterExists uses Clause verbatim. Clause must contain exactly one
	// placeholder, which receives the filter value.
	FilterExists
)

// Filter is a collection-specific predicate driven by a query parameter.
type Filter struct {
	Param  string
	Kind   FilterKind
	Column string
	Clause string
}

// Schema describes one listable collection.
type Schema struct {
	Name      string
	From      string
	CountFrom string // defaults to From
	Columns   []string

	SortColumns   []string
	SortQualifier string
	DefaultSort   string
	DefaultOrder  Direction
	TieBreaker    string

	SearchColumns []string
	Filters       []Filter
}

// AllowsSort reports whether col is in the sort allow-list.
func (s Schema) AllowsSort(col string) bool {
	for _, c := range s.SortColumns {
		if c == col {
			return true
		}
	}
	return false
}

// Spec is the caller's request. Zero Page or PerPage select the defaults.
type Spec struct {
	Page    int
	PerPage int
	Search  string
	Sort    string
	Order   string
	Filters map[string]string
}

// Limits bound the page size.
type Limits struct {
	DefaultPerPage int
	MinPerPage     int
	MaxPerPage     int
}

// DefaultLimits returns the stock page size bounds: 20 per page, 5 to 100.
func DefaultLimits() Limits {
	return Limits{DefaultPerPage: 20, MinPerPage: 5, MaxPerPage: 100}
}

// Plan is the output of Build.
type Plan struct {
	CountSQL  string
	CountArgs []any
	PageSQL   string
	PageArgs  []any

	Page    int
	PerPage int
	Offset  int
	Sort    string
	Order   Direction
}

// Build turns spec into a count query and a page query over schema.
// It never fails: unknown sort columns and directions fall back to the
// schema defaults, and unknown filter values contribute nothing.
func Build(spec Spec, schema Schema, limits Limits) Plan {
	page := spec.Page
	if page < 1 {
		page = 1
	}
	perPage := spec.PerPage
	if perPage == 0 {
		perPage = limits.DefaultPerPage
	}
	perPage = helpers.ClampInt(perPage, limits.MinPerPage, limits.MaxPerPage)
	if perPage < 1 {
		perPage = 1
	}
	// Keep (page-1)*perPage from overflowing into a negative OFFSET.
	if maxPage := math.MaxInt / perPage; page > maxPage {
		page = maxPage
	}
	offset := (page - 1) * perPage

	sortCol := schema.DefaultSort
	if schema.AllowsSort(spec.Sort) {
		sortCol = spec.Sort
	}
	order := ParseDirection(spec.Order, schema.DefaultOrder)

	where, args := predicates(spec, schema)

	countFrom := schema.CountFrom
	if countFrom == "" {
		countFrom = schema.From
	}

	var count strings.Builder
	count.WriteString("SELECT COUNT(*) FROM ")
	count.WriteString(countFrom)
	count.WriteString(where)

	var q strings.Builder
	q.WriteString("SELECT ")
	q.WriteString(strings.Join(schema.Columns, ", "))
	q.WriteString(" FROM ")
	q.WriteString(schema.From)
	q.WriteString(where)
	q.WriteString(" ORDER BY ")
	q.WriteString(schema.SortQualifier + sortCol + " " + string(order))
	if schema.TieBreaker != "" && schema.TieBreaker != sortCol {
		q.WriteString(", " + schema.SortQualifier + schema.TieBreaker + " ASC")
	}
	q.WriteString(" LIMIT ? OFFSET ?")

	pageArgs := make([]any, 0, len(args)+2)
	pageArgs = append(pageArgs, args...)
	pageArgs = append(pageArgs, perPage, offset)

	return Plan{
		CountSQL:  count.String(),
		CountArgs: args,
		PageSQL:   q.String(),
		PageArgs:  pageArgs,
		Page:      page,
		PerPage:   perPage,
		Offset:    offset,
		Sort:      sortCol,
		Order:     order,
	}
}

// TotalPages returns ceil(total / perPage).
func TotalPages(total int64, perPage int) int64 {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	p := int64(perPage)
	return (total + p - 1) / p
}

// predicates returns the WHERE clause (with leading space, or empty) and
// its arguments in placeholder order.
func predicates(spec Spec, schema Schema) (string, []any) {
	var clauses []string
	var args []any

	if term := strings.TrimSpace(spec.Search); term != "" && len(schema.SearchColumns) > 0 {
		pattern := containsPattern(term)
		parts := make([]string, len(schema.SearchColumns))
		for i, col := range schema.SearchColumns {
			parts[i] = likeClause(col)
			args = append(args, pattern)
		}
		clauses = append(clauses, "("+strings.Join(parts, " OR ")+")")
	}

	for _, f := range schema.Filters {
		v := strings.TrimSpace(spec.Filters[f.Param])
		if v == "" {
			continue
		}
		switch f.Kind {
		case FilterBool:
			switch strings.ToLower(v) {
			case "true":
				clauses = append(clauses, f.Column+" = ?")
				args = append(args, 1)
			case "false":
				clauses = append(clauses, f.Column+" = ?")
				args = append(args, 0)
			}
		case FilterContains:
			clauses = append(clauses, likeClause(f.Column))
			args = append(args, containsPattern(v))
		case FilterExists:
			clauses = append(clauses, f.Clause)
			args = append(args, v)
		}
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func likeClause(col string) string {
	return "LOWER(" + col + ") LIKE LOWER(?) ESCAPE '\\'"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern wraps term in % after escaping LIKE metacharacters.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
