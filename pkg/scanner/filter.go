package scanner

import (
	"strings"

	"github.com/arthur-debert/mediatidy/pkg/types"
)

// ExtensionSet matches records by extension, case-insensitively.
// Entries may be given with or without the leading dot.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds a set from a list such as ["jpg", ".MOV"]
func NewExtensionSet(exts []string) ExtensionSet {
	set := make(ExtensionSet, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}

// Has reports whether ext (".JPG", "jpg") is in the set
func (s ExtensionSet) Has(ext string) bool {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	_, ok := s[ext]
	return ok
}

// Matches reports whether the record's extension is in the set
func (s ExtensionSet) Matches(r *types.FileRecord) bool {
	return r.Ext != "" && s.Has(r.Ext)
}

// Filter returns the records keep accepts, preserving order
func Filter(records []*types.FileRecord, keep func(*types.FileRecord) bool) []*types.FileRecord {
	if keep == nil {
		return records
	}
	out := make([]*types.FileRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
