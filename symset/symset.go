package symset

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/npillmayer/tna"
)

// Interval is a closed range lo…hi of token categories. An interval with
// Lo == Hi denotes a single token.
type Interval struct {
	Lo, Hi tna.TokType
}

// Contains checks a token category for membership in the interval.
func (iv Interval) Contains(t tna.TokType) bool {
	return iv.Lo <= t && t <= iv.Hi
}

// Len returns the number of token categories covered by the interval.
func (iv Interval) Len() int {
	return int(iv.Hi-iv.Lo) + 1
}

func (iv Interval) String() string {
	if iv.Lo == iv.Hi {
		return fmt.Sprintf("%d", int(iv.Lo))
	}
	return fmt.Sprintf("%d…%d", int(iv.Lo), int(iv.Hi))
}

// Set is a set of token categories, stored as a sorted list of disjoint,
// non-adjacent intervals. The zero value is not usable, construct with New.
//
//     S := symset.New()
//     S.Add(4).AddRange(10, 12)
//     S.Contains(11)              // => true
//     S.Freeze()
//     S.Add(5)                    // => panics
type Set struct {
	intervals []Interval
	frozen    bool
}

// New creates an empty set.
func New() *Set {
	return &Set{}
}

// Single creates a set containing a single token category.
func Single(t tna.TokType) *Set {
	return New().Add(t)
}

// Freeze marks the set immutable. Any subsequent mutation panics.
// Freezing is irreversible. Returns the set for chaining.
func (s *Set) Freeze() *Set {
	s.frozen = true
	return s
}

// Frozen returns true if the set has been frozen.
func (s *Set) Frozen() bool {
	return s.frozen
}

func (s *Set) mutable() {
	if s.frozen {
		panic("symset: mutation of frozen set")
	}
}

// Add includes a single token category in the set.
func (s *Set) Add(t tna.TokType) *Set {
	return s.AddRange(t, t)
}

// AddRange includes the closed interval lo…hi in the set. Overlapping and
// adjacent intervals are coalesced.
func (s *Set) AddRange(lo, hi tna.TokType) *Set {
	s.mutable()
	if hi < lo {
		return s
	}
	// find the first interval which could interact with lo…hi
	n := len(s.intervals)
	i := sort.Search(n, func(k int) bool { return s.intervals[k].Hi >= lo-1 })
	j := i
	for j < n && s.intervals[j].Lo <= hi+1 { // collect all intervals to merge
		if s.intervals[j].Lo < lo {
			lo = s.intervals[j].Lo
		}
		if s.intervals[j].Hi > hi {
			hi = s.intervals[j].Hi
		}
		j++
	}
	merged := append(s.intervals[:i:i], Interval{lo, hi})
	s.intervals = append(merged, s.intervals[j:]...)
	return s
}

// AddSet unions another set into s. The other set is left untouched.
func (s *Set) AddSet(other *Set) *Set {
	s.mutable()
	if other == nil {
		return s
	}
	for _, iv := range other.intervals {
		s.AddRange(iv.Lo, iv.Hi)
	}
	return s
}

// Remove excludes a single token category from the set, splitting an
// interval if necessary.
func (s *Set) Remove(t tna.TokType) *Set {
	s.mutable()
	n := len(s.intervals)
	i := sort.Search(n, func(k int) bool { return s.intervals[k].Hi >= t })
	if i == n || !s.intervals[i].Contains(t) {
		return s
	}
	iv := s.intervals[i]
	switch {
	case iv.Lo == t && iv.Hi == t: // drop the whole interval
		s.intervals = append(s.intervals[:i], s.intervals[i+1:]...)
	case iv.Lo == t:
		s.intervals[i].Lo = t + 1
	case iv.Hi == t:
		s.intervals[i].Hi = t - 1
	default: // split
		rest := append([]Interval(nil), s.intervals[i+1:]...)
		s.intervals = append(s.intervals[:i], Interval{iv.Lo, t - 1}, Interval{t + 1, iv.Hi})
		s.intervals = append(s.intervals, rest...)
	}
	return s
}

// Contains checks a token category for membership.
func (s *Set) Contains(t tna.TokType) bool {
	n := len(s.intervals)
	i := sort.Search(n, func(k int) bool { return s.intervals[k].Hi >= t })
	return i < n && s.intervals[i].Contains(t)
}

// Empty returns true if no token is contained in the set.
func (s *Set) Empty() bool {
	return len(s.intervals) == 0
}

// Size returns the number of token categories in the set.
func (s *Set) Size() int {
	size := 0
	for _, iv := range s.intervals {
		size += iv.Len()
	}
	return size
}

// IntervalCount returns the number of disjoint intervals in the set.
func (s *Set) IntervalCount() int {
	return len(s.intervals)
}

// Intervals returns the intervals of the set, sorted ascending.
// Callers must not modify the returned slice.
func (s *Set) Intervals() []Interval {
	return s.intervals
}

// Equals compares two sets for equal content.
func (s *Set) Equals(other *Set) bool {
	if other == nil || len(s.intervals) != len(other.intervals) {
		return false
	}
	for i, iv := range s.intervals {
		if iv != other.intervals[i] {
			return false
		}
	}
	return true
}

// Copy returns a mutable copy of the set.
func (s *Set) Copy() *Set {
	return &Set{intervals: append([]Interval(nil), s.intervals...)}
}

// AppendTo appends every member of the set to a slice, in ascending order.
func (s *Set) AppendTo(toks []tna.TokType) []tna.TokType {
	for _, iv := range s.intervals {
		for t := iv.Lo; t <= iv.Hi; t++ {
			toks = append(toks, t)
		}
	}
	return toks
}

func (s *Set) String() string {
	return s.StringWith(nil)
}

// StringWith creates a string representation of the set, using names to
// print token categories. names may be nil.
func (s *Set) StringWith(names tna.TokTypeStringer) string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	for _, iv := range s.intervals {
		for t := iv.Lo; t <= iv.Hi; t++ {
			if first {
				b.WriteString(" ")
				first = false
			} else {
				b.WriteString(", ")
			}
			if names != nil {
				b.WriteString(names(t))
			} else {
				b.WriteString(t.String())
			}
		}
	}
	b.WriteString(" }")
	return b.String()
}
