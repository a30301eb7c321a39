package metadata

import (
	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/types"
)

// Static is an in-memory provider keyed by path. It never touches the
// filesystem, which makes it the test double for both ports.
type Static struct {
	Metadata  map[string]types.Metadata
	Durations map[string]int
	Calls     int
}

// NewStatic returns an empty Static provider
func NewStatic() *Static {
	return &Static{
		Metadata:  make(map[string]types.Metadata),
		Durations: make(map[string]int),
	}
}

// Set registers metadata for path
func (s *Static) Set(path, timestamp, declaredExt string) *Static {
	s.Metadata[path] = types.Metadata{CaptureTimestamp: timestamp, DeclaredExt: NormalizeMIME(declaredExt)}
	return s
}

// SetDuration registers a duration for path
func (s *Static) SetDuration(path string, seconds int) *Static {
	s.Durations[path] = seconds
	return s
}

// Lookup implements types.MetadataProvider
func (s *Static) Lookup(path string) (types.Metadata, error) {
	s.Calls++
	meta, ok := s.Metadata[path]
	if !ok || meta.IsEmpty() {
		return types.Metadata{}, errors.Newf(errors.ErrMetadataUnavailable, "no metadata for %s", path)
	}
	return meta, nil
}

// Duration implements types.DurationProvider
func (s *Static) Duration(path string) (int, bool) {
	d, ok := s.Durations[path]
	return d, ok
}
