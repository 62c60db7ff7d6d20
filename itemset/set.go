package itemset

import (
	"sort"
	"strings"
)

// keySep separates items inside a canonical Key. The unit separator is
// never expected inside a real item symbol, so distinct Sets cannot
// collide on Key.
const keySep = "\x1f"

// Set is an unordered collection of distinct item symbols.
//
// The zero value is not usable; construct with New. Two Sets are equal
// iff they contain the same items, regardless of insertion order.
type Set map[string]struct{}

// New builds a Set from the given items. Duplicates collapse.
func New(items ...string) Set {
	s := make(Set, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

// Add inserts item into s.
func (s Set) Add(item string) {
	s[item] = struct{}{}
}

// Contains reports whether item is a member of s.
func (s Set) Contains(item string) bool {
	_, ok := s[item]

	return ok
}

// Len returns the number of items in s.
func (s Set) Len() int {
	return len(s)
}

// Equal reports whether s and other contain exactly the same items.
func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// SubsetOf reports whether every item of s is also in other.
// The empty Set is a subset of everything.
func (s Set) SubsetOf(other Set) bool {
	if len(s) > len(other) {
		return false
	}
	for it := range s {
		if !other.Contains(it) {
			return false
		}
	}

	return true
}

// ProperSubsetOf reports whether s is a subset of other and strictly smaller.
func (s Set) ProperSubsetOf(other Set) bool {
	return len(s) < len(other) && s.SubsetOf(other)
}

// Disjoint reports whether s and other share no items.
func (s Set) Disjoint(other Set) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for it := range small {
		if large.Contains(it) {
			return false
		}
	}

	return true
}

// Union returns a fresh Set containing every item of s and other.
// Neither input is modified.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for it := range s {
		out[it] = struct{}{}
	}
	for it := range other {
		out[it] = struct{}{}
	}

	return out
}

// Minus returns a fresh Set with the items of s that are not in other.
func (s Set) Minus(other Set) Set {
	out := make(Set, len(s))
	for it := range s {
		if !other.Contains(it) {
			out[it] = struct{}{}
		}
	}

	return out
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for it := range s {
		out[it] = struct{}{}
	}

	return out
}

// Items returns the members of s in ascending order.
// Sorted output is the determinism anchor for every consumer of Set.
func (s Set) Items() []string {
	out := make([]string, 0, len(s))
	for it := range s {
		out = append(out, it)
	}
	sort.Strings(out)

	return out
}

// Key returns the canonical identity of s: its items sorted ascending and
// joined by a separator. Equal Sets always produce equal Keys, so a Key is
// safe to use as a map key standing in for the Set itself.
func (s Set) Key() string {
	return strings.Join(s.Items(), keySep)
}

// String renders s as "{a, b, c}" with items in ascending order.
func (s Set) String() string {
	return "{" + strings.Join(s.Items(), ", ") + "}"
}
