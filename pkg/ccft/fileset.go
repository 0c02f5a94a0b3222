package ccft

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FileSet is a set of absolute file paths.
type FileSet map[string]struct{}

func NewFileSet(paths ...string) FileSet {
	set := FileSet{}
	for _, path := range paths {
		set.Add(path)
	}
	return set
}

func (s FileSet) Add(path string) {
	s[path] = struct{}{}
}

func (s FileSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

func (s FileSet) Merge(other FileSet) {
	for path := range other {
		s.Add(path)
	}
}

// Paths returns the members in lexical order.
func (s FileSet) Paths() []string {
	paths := maps.Keys(s)
	slices.Sort(paths)
	return paths
}
