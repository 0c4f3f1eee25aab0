// Package selection picks a uniformly random record from an immutable
// in-memory snapshot, restricted to the records that satisfy a set of
// optional constraints.
//
// A Snapshot is built once from the store and then only read. Concurrent
// Select calls need no coordination. To pick up new data, build a new
// Snapshot and swap the pointer.
package selection

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jroosing/eqrng/internal/pool"
	"github.com/jroosing/eqrng/internal/zone"
)

// Constraints narrow the candidate set. Every field is optional; a nil
// pointer, empty string or empty slice leaves that dimension unconstrained.
// All present constraints are ANDed.
type Constraints struct {
	MinLevel  *int
	MaxLevel  *int
	ZoneType  string
	Expansion string
	Mission   *bool
	Continent string
	// Flags matches records carrying ANY of the named filterable flags.
	Flags []string
}

// Attributes are the fields of a record that constraints are evaluated
// against. Mission is nil for record kinds that have no mission flag;
// such records never satisfy a mission constraint.
type Attributes struct {
	LevelRanges zone.LevelRanges
	ZoneType    string
	Expansion   string
	Continent   string
	Mission     *bool
	Flags       []string
}

// DescribeZone extracts the selectable attributes of a zone.
func DescribeZone(z zone.Zone) Attributes {
	mission := z.Mission
	return Attributes{
		LevelRanges: z.LevelRanges,
		ZoneType:    z.ZoneType,
		Expansion:   z.Expansion,
		Continent:   z.Continent,
		Mission:     &mission,
		Flags:       z.FilterableFlagNames(),
	}
}

// DescribeInstance extracts the selectable attributes of an instance.
func DescribeInstance(in zone.Instance) Attributes {
	return Attributes{
		LevelRanges: in.LevelRanges,
		ZoneType:    in.ZoneType,
		Expansion:   in.Expansion,
		Continent:   in.Continent,
	}
}

// Option configures a Snapshot.
type Option func(*options)

type options struct {
	intN func(n int) int
}

// WithIntN replaces the random source. fn must return a value in [0, n)
// and must be safe for concurrent use if the snapshot is shared.
func WithIntN(fn func(n int) int) Option {
	return func(o *options) {
		if fn != nil {
			o.intN = fn
		}
	}
}

// candidateBuffers is shared by every snapshot; buffers only hold indexes.
var candidateBuffers = pool.IndexBuffers(64)

// Snapshot is an immutable collection of records ready for selection.
type Snapshot[T any] struct {
	records []T
	attrs   []Attributes // case-folded at construction
	intN    func(n int) int
}

// NewSnapshot copies records and pre-computes their folded attributes.
func NewSnapshot[T any](records []T, describe func(T) Attributes, opts ...Option) *Snapshot[T] {
	o := options{intN: rand.IntN}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Snapshot[T]{
		records: make([]T, len(records)),
		attrs:   make([]Attributes, len(records)),
		intN:    o.intN,
	}
	copy(s.records, records)
	for i, r := range records {
		s.attrs[i] = foldAttributes(describe(r))
	}
	return s
}

// Len returns the number of records in the snapshot.
func (s *Snapshot[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Select returns a uniformly random record satisfying c. The boolean is
// false when no record qualifies.
func (s *Snapshot[T]) Select(c Constraints) (T, bool) {
	var zero T
	if s.Len() == 0 {
		return zero, false
	}

	q := foldConstraints(c)

	buf := candidateBuffers.Get()
	defer candidateBuffers.Put(buf)

	for i := range s.attrs {
		if matchFolded(q, &s.attrs[i]) {
			*buf = append(*buf, i)
		}
	}
	if len(*buf) == 0 {
		return zero, false
	}

	return s.records[(*buf)[s.intN(len(*buf))]], true
}

// Matches reports whether a record with the given attributes satisfies c.
func Matches(c Constraints, a Attributes) bool {
	fa := foldAttributes(a)
	return matchFolded(foldConstraints(c), &fa)
}

func matchFolded(c Constraints, a *Attributes) bool {
	if c.ZoneType != "" && c.ZoneType != a.ZoneType {
		return false
	}
	if c.Expansion != "" && c.Expansion != a.Expansion {
		return false
	}
	if c.Mission != nil && (a.Mission == nil || *a.Mission != *c.Mission) {
		return false
	}
	if c.Continent != "" && c.Continent != a.Continent {
		return false
	}
	if len(c.Flags) > 0 && !anyShared(c.Flags, a.Flags) {
		return false
	}
	return levelsMatch(a.LevelRanges, c.MinLevel, c.MaxLevel)
}

// levelsMatch applies the level stage. With both bounds a single range must
// contain [min, max]. With one bound the test is one-sided: min only needs
// high >= min, max only needs low <= max.
func levelsMatch(ranges zone.LevelRanges, minLevel, maxLevel *int) bool {
	switch {
	case minLevel == nil && maxLevel == nil:
		return true
	case minLevel != nil && maxLevel != nil:
		for _, r := range ranges {
			if r.Covers(*minLevel, *maxLevel) {
				return true
			}
		}
	case minLevel != nil:
		for _, r := range ranges {
			if r.High() >= *minLevel {
				return true
			}
		}
	default:
		for _, r := range ranges {
			if r.Low() <= *maxLevel {
				return true
			}
		}
	}
	return false
}

func anyShared(want, have []string) bool {
	for _, w := range want {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}

// fold returns the caseless form of s. cases.Caser is stateful, so a fresh
// one is used per call.
func fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

func foldAttributes(a Attributes) Attributes {
	out := a
	out.ZoneType = fold(a.ZoneType)
	out.Expansion = fold(a.Expansion)
	out.Continent = fold(a.Continent)
	if len(a.Flags) > 0 {
		out.Flags = make([]string, 0, len(a.Flags))
		for _, f := range a.Flags {
			if f = fold(f); f != "" {
				out.Flags = append(out.Flags, f)
			}
		}
	}
	return out
}

func foldConstraints(c Constraints) Constraints {
	out := c
	out.ZoneType = fold(c.ZoneType)
	out.Expansion = fold(c.Expansion)
	out.Continent = fold(c.Continent)
	out.Flags = nil
	for _, f := range c.Flags {
		if f = fold(f); f != "" {
			out.Flags = append(out.Flags, f)
		}
	}
	return out
}
