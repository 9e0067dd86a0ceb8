package studentgroup

import (
	"encoding/json"
	"slices"
	"strings"
)

// Set is a set of student groups compared by value. Iteration order is not
// significant; Slice returns the members sorted by name.
//
// The zero value is an empty set ready to use.
type Set struct {
	m map[StudentGroup]struct{}
}

// NewSet returns a set holding groups.
func NewSet(groups ...StudentGroup) Set {
	s := Set{m: make(map[StudentGroup]struct{}, len(groups))}
	for _, g := range groups {
		s.m[g] = struct{}{}
	}
	return s
}

// ParseSet parses every raw name in order and collects the results.
//
// It stops at the first invalid name and returns that error with an empty
// set, so callers never observe a partially populated result. Names that
// normalize to the same group collapse into one member.
func ParseSet(raws []string) (Set, error) {
	s := Set{m: make(map[StudentGroup]struct{}, len(raws))}
	for _, raw := range raws {
		g, err := kind.Parse(raw)
		if err != nil {
			return Set{}, err
		}
		s.m[g] = struct{}{}
	}
	return s, nil
}

// Add returns a copy of s that also holds g. s itself is left untouched.
func (s Set) Add(g StudentGroup) Set {
	out := Set{m: make(map[StudentGroup]struct{}, len(s.m)+1)}
	for member := range s.m {
		out.m[member] = struct{}{}
	}
	out.m[g] = struct{}{}
	return out
}

func (s Set) Contains(g StudentGroup) bool {
	_, ok := s.m[g]
	return ok
}

func (s Set) Len() int {
	return len(s.m)
}

// Equal reports whether s and other hold the same groups.
func (s Set) Equal(other Set) bool {
	if len(s.m) != len(other.m) {
		return false
	}
	for g := range s.m {
		if _, ok := other.m[g]; !ok {
			return false
		}
	}
	return true
}

// Slice returns the members sorted by name.
func (s Set) Slice() []StudentGroup {
	out := make([]StudentGroup, 0, len(s.m))
	for g := range s.m {
		out = append(out, g)
	}
	slices.SortFunc(out, func(a, b StudentGroup) int {
		return strings.Compare(a.name, b.name)
	})
	return out
}

// Names returns the member names sorted.
func (s Set) Names() []string {
	members := s.Slice()
	names := make([]string, len(members))
	for i, g := range members {
		names[i] = g.name
	}
	return names
}

func (s Set) String() string {
	var b strings.Builder
	for _, g := range s.Slice() {
		b.WriteString(g.String())
	}
	return b.String()
}

// UnmarshalTextList replaces the contents of s with the parsed names.
// On error s is left unchanged.
func (s *Set) UnmarshalTextList(values []string) error {
	parsed, err := ParseSet(values)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	return s.UnmarshalTextList(names)
}

// MarshalYAML renders the set as a sorted list of names.
func (s Set) MarshalYAML() (any, error) {
	return s.Names(), nil
}
