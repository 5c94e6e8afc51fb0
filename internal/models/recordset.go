package models

import "sort"

// RecordSet is a set of supporters keyed by full structural equality.
// Uniqueness is by the whole record, not by name alone: the same name with
// a different comment or rating is a distinct member.
type RecordSet map[Supporter]struct{}

// NewRecordSet creates a record set from the given supporters
func NewRecordSet(supporters ...Supporter) RecordSet {
	rs := make(RecordSet, len(supporters))
	for _, s := range supporters {
		rs.Add(s)
	}
	return rs
}

// Add inserts a supporter into the set
func (rs RecordSet) Add(s Supporter) {
	rs[s] = struct{}{}
}

// Contains reports whether the exact record is a member
func (rs RecordSet) Contains(s Supporter) bool {
	_, ok := rs[s]
	return ok
}

// ContainsName reports whether any member has the given name
func (rs RecordSet) ContainsName(name string) bool {
	for s := range rs {
		if s.Name == name {
			return true
		}
	}
	return false
}

// FindByName returns the first member with the given name, if any. Iteration
// order over the set is not deterministic, so callers should only rely on
// this when at most one member per name is expected.
func (rs RecordSet) FindByName(name string) (Supporter, bool) {
	for s := range rs {
		if s.Name == name {
			return s, true
		}
	}
	return Supporter{}, false
}

// Len returns the number of members
func (rs RecordSet) Len() int {
	return len(rs)
}

// IsEmpty reports whether the set has no members
func (rs RecordSet) IsEmpty() bool {
	return len(rs) == 0
}

// Difference returns the members of rs that are not in other, by full
// structural equality.
func (rs RecordSet) Difference(other RecordSet) RecordSet {
	diff := make(RecordSet)
	for s := range rs {
		if !other.Contains(s) {
			diff.Add(s)
		}
	}
	return diff
}

// Sorted returns the members ordered by name, then comment, then stars.
// The ordering makes persistence and notification output deterministic.
func (rs RecordSet) Sorted() []Supporter {
	out := make([]Supporter, 0, len(rs))
	for s := range rs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		if out[i].Comment != out[j].Comment {
			return out[i].Comment < out[j].Comment
		}
		return out[i].Stars < out[j].Stars
	})
	return out
}
