// Package fileset turns combined multi-file replies from the generation
// service into ordered path→body sets, and overlays corrected sets onto
// earlier ones.
package fileset

import "strings"

// Set is an ordered mapping from relative path to file body.
// Iteration order is first-seen order; adding an existing path replaces
// its body but keeps the original position.
type Set struct {
	order  []string
	bodies map[string]string
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{bodies: make(map[string]string)}
}

// Add inserts or replaces the body for path. Backslash separators are
// normalized to forward slashes so keys are stable across generator quirks.
func (s *Set) Add(path, body string) {
	path = strings.ReplaceAll(path, "\\", "/")
	if _, ok := s.bodies[path]; !ok {
		s.order = append(s.order, path)
	}
	s.bodies[path] = body
}

// Get returns the body for path and whether it exists.
func (s *Set) Get(path string) (string, bool) {
	body, ok := s.bodies[strings.ReplaceAll(path, "\\", "/")]
	return body, ok
}

// Paths returns the paths in first-seen order. The slice is a copy.
func (s *Set) Paths() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.order)
}

// Merge returns a new Set with other's entries overlaid on s: every path in
// other overwrites or extends s, and paths absent from other carry over
// unchanged. Merge never removes an entry. Order is s's order followed by
// other's new paths in their own order.
func (s *Set) Merge(other *Set) *Set {
	merged := NewSet()
	for _, p := range s.order {
		merged.Add(p, s.bodies[p])
	}
	if other != nil {
		for _, p := range other.order {
			merged.Add(p, other.bodies[p])
		}
	}
	return merged
}
