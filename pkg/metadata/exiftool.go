package metadata

import (
	"fmt"
	"math"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/barasher/go-exiftool"
)

// Tags read from exiftool output, in priority order
var (
	captureTags  = []string{"CreateDate", "DateTimeOriginal"}
	mimeTag      = "MIMEType"
	durationTags = []string{"Duration", "MediaDuration", "TrackDuration"}
)

// extractor is the part of *exiftool.Exiftool the adapter uses
type extractor interface {
	ExtractMetadata(files ...string) []exiftool.FileMetadata
	Close() error
}

// Exiftool answers metadata and duration questions through a single
// stay-open exiftool process.
type Exiftool struct {
	et extractor
}

// NewExiftool starts exiftool. binaryPath may be empty to use the one on PATH.
func NewExiftool(binaryPath string) (*Exiftool, error) {
	var opts []func(*exiftool.Exiftool) error
	if binaryPath != "" {
		opts = append(opts, exiftool.SetExiftoolBinaryPath(binaryPath))
	}
	et, err := exiftool.NewExiftool(opts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrMetadataUnavailable, "cannot start exiftool")
	}
	return &Exiftool{et: et}, nil
}

// Close stops the exiftool process
func (e *Exiftool) Close() error {
	return e.et.Close()
}

func (e *Exiftool) fields(path string) (map[string]interface{}, error) {
	results := e.et.ExtractMetadata(path)
	if len(results) == 0 {
		return nil, errors.Newf(errors.ErrMetadataUnavailable, "exiftool returned nothing for %s", path)
	}
	if results[0].Err != nil {
		return nil, errors.Wrapf(results[0].Err, errors.ErrMetadataUnavailable, "exiftool failed on %s", path)
	}
	return results[0].Fields, nil
}

// Lookup implements types.MetadataProvider
func (e *Exiftool) Lookup(path string) (types.Metadata, error) {
	fields, err := e.fields(path)
	if err != nil {
		return types.Metadata{}, err
	}

	var meta types.Metadata
	for _, tag := range captureTags {
		if v := fieldString(fields, tag); v != "" {
			meta.CaptureTimestamp = v
			break
		}
	}
	meta.DeclaredExt = NormalizeMIME(fieldString(fields, mimeTag))

	if meta.IsEmpty() {
		return meta, errors.Newf(errors.ErrMetadataUnavailable, "no capture date or type in %s", path)
	}
	return meta, nil
}

// Duration implements types.DurationProvider
func (e *Exiftool) Duration(path string) (int, bool) {
	logger := logging.GetLogger("metadata.exiftool")

	fields, err := e.fields(path)
	if err != nil {
		logger.Trace().Err(err).Str("path", path).Msg("No duration metadata")
		return 0, false
	}
	for _, tag := range durationTags {
		// Numeric output (exiftool -n) is plain seconds
		if f, ok := fields[tag].(float64); ok && f >= 0 {
			return int(math.RoundToEven(f)), true
		}
		raw := fieldString(fields, tag)
		if raw == "" {
			continue
		}
		if seconds, ok := ParseDuration(raw); ok {
			return seconds, true
		}
		logger.Debug().Str("path", path).Str("duration", raw).Msg("Unknown duration format")
		return 0, false
	}
	return 0, false
}

// fieldString renders a JSON field as exiftool printed it
func fieldString(fields map[string]interface{}, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
