package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for mediatidy operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
}

// MetadataProvider reports the capture timestamp and declared type of a file.
// Implementations return an empty Metadata (and possibly an error) when the
// file carries no usable metadata. Callers treat errors as "no metadata".
type MetadataProvider interface {
	Lookup(path string) (Metadata, error)
}

// DurationProvider reports the playing time of a video in whole seconds.
// ok is false when the duration is unknown or unparseable.
type DurationProvider interface {
	Duration(path string) (seconds int, ok bool)
}

// Confirmer asks the user a question and blocks until it is answered
type Confirmer interface {
	Ask(prompt Prompt) (Answer, error)
}
