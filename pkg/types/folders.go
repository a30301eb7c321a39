package types

import (
	"path/filepath"
	"sort"
)

// CreatedFolderSet tracks the directories created during one run.
//
// Both the full path and the folder name are kept: the reaper matches on
// names, so a category folder name created anywhere protects every folder
// with that name.
type CreatedFolderSet struct {
	paths map[string]struct{}
	names map[string]struct{}
}

// NewCreatedFolderSet returns an empty set
func NewCreatedFolderSet() *CreatedFolderSet {
	return &CreatedFolderSet{
		paths: make(map[string]struct{}),
		names: make(map[string]struct{}),
	}
}

// Add records a created directory
func (s *CreatedFolderSet) Add(path string) {
	path = filepath.Clean(path)
	s.paths[path] = struct{}{}
	s.names[filepath.Base(path)] = struct{}{}
}

// Contains reports whether path was created in this run
func (s *CreatedFolderSet) Contains(path string) bool {
	if s == nil {
		return false
	}
	_, ok := s.paths[filepath.Clean(path)]
	return ok
}

// ContainsName reports whether a folder with this name was created in this run
func (s *CreatedFolderSet) ContainsName(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.names[name]
	return ok
}

// Paths returns the created directories, sorted
func (s *CreatedFolderSet) Paths() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of created directories
func (s *CreatedFolderSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.paths)
}
