package metadata

import (
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/types"
)

// Options selects how metadata is read for a run
type Options struct {
	// FS is used by the in-process readers
	FS types.FS

	// ExiftoolPath overrides the exiftool binary; empty means PATH
	ExiftoolPath string

	// DisableExiftool forces the in-process readers
	DisableExiftool bool
}

// Providers bundles the providers of one run
type Providers struct {
	Metadata types.MetadataProvider

	// Durations is nil when no duration source is available
	Durations types.DurationProvider

	closer func() error
}

// Close releases the external process, if any
func (p *Providers) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}

// Open builds the providers for a run: exiftool when it can be started,
// otherwise the in-process readers, with XMP sidecars filling missing dates.
func Open(opts Options) *Providers {
	logger := logging.GetLogger("metadata")
	sidecars := NewXMPSidecar(opts.FS)

	if !opts.DisableExiftool {
		et, err := NewExiftool(opts.ExiftoolPath)
		if err == nil {
			logger.Debug().Str("binary", opts.ExiftoolPath).Msg("Using exiftool for metadata")
			return &Providers{
				Metadata:  NewCache(Chain{et, sidecars}),
				Durations: et,
				closer:    et.Close,
			}
		}
		logger.Warn().Err(err).Msg("exiftool unavailable, falling back to built-in EXIF reader")
	}

	return &Providers{
		Metadata: NewCache(Chain{NewNative(opts.FS), sidecars}),
	}
}
