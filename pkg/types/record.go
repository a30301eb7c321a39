package types

import (
	"path/filepath"
	"strings"
)

// FileRecord is one regular file discovered by a walk.
//
// Path only changes through SetPath, which the engine calls after it has
// successfully moved or renamed the backing file. The fingerprint and the
// metadata are computed at most once per record.
type FileRecord struct {
	// Path is the absolute location of the file
	Path string

	// Stem is the file name without its extension
	Stem string

	// Ext is the extension including the leading dot, in its original case
	Ext string

	// Size is the file size in bytes at walk time
	Size int64

	// Gone is set once a resolver deleted the backing file
	Gone bool

	fingerprint string
	meta        Metadata
	metaLoaded  bool
}

// NewFileRecord creates a record for the file at path
func NewFileRecord(path string, size int64) *FileRecord {
	r := &FileRecord{Size: size}
	r.SetPath(path)
	return r
}

// SetPath points the record at a new location and re-derives Stem and Ext
func (r *FileRecord) SetPath(path string) {
	r.Path = filepath.Clean(path)
	r.Stem, r.Ext = SplitExt(filepath.Base(r.Path))
}

// Name returns the base name of the file
func (r *FileRecord) Name() string {
	return filepath.Base(r.Path)
}

// Dir returns the directory holding the file
func (r *FileRecord) Dir() string {
	return filepath.Dir(r.Path)
}

// LowerExt returns the extension lowercased, with the leading dot
func (r *FileRecord) LowerExt() string {
	return strings.ToLower(r.Ext)
}

// Fingerprint returns the cached content fingerprint, if computed
func (r *FileRecord) Fingerprint() (string, bool) {
	return r.fingerprint, r.fingerprint != ""
}

// SetFingerprint caches the content fingerprint. An already cached value is
// never replaced.
func (r *FileRecord) SetFingerprint(fp string) {
	if r.fingerprint == "" {
		r.fingerprint = fp
	}
}

// LoadMetadata asks p for the record's metadata once and caches the answer.
// A failed lookup is cached as empty metadata and its error returned.
func (r *FileRecord) LoadMetadata(p MetadataProvider) (Metadata, error) {
	if r.metaLoaded || p == nil {
		return r.meta, nil
	}
	r.metaLoaded = true
	meta, err := p.Lookup(r.Path)
	if err != nil {
		r.meta = Metadata{}
		return r.meta, err
	}
	r.meta = meta
	return r.meta, nil
}

// SplitExt splits a file name into stem and extension the way a shell user
// expects: the extension is the suffix from the last dot, and a leading dot
// alone (".profile") does not start an extension.
func SplitExt(name string) (stem, ext string) {
	trimmed := strings.TrimLeft(name, ".")
	idx := strings.LastIndex(trimmed, ".")
	if idx < 0 {
		return name, ""
	}
	cut := len(name) - len(trimmed) + idx
	return name[:cut], name[cut:]
}
