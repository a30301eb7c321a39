package core

import (
	"time"

	"github.com/arthur-debert/mediatidy/pkg/config"
	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/metadata"
	"github.com/arthur-debert/mediatidy/pkg/scanner"
	"github.com/arthur-debert/mediatidy/pkg/shortvideo"
	"github.com/arthur-debert/mediatidy/pkg/types"
)

// PruneOptions contains the collaborators of a short video prune
type PruneOptions struct {
	Root      string
	Threshold int
	Config    *config.Config

	// FileSystem defaults to the OS filesystem
	FileSystem types.FS

	// Durations defaults to exiftool; the prune fails without it
	Durations types.DurationProvider

	Confirmer types.Confirmer
}

// PruneShortVideos deletes the media files under opts.Root that play for
// less than opts.Threshold seconds, after one confirmation.
func PruneShortVideos(opts PruneOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("core.prune")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	if opts.Threshold < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "duration threshold must not be negative, got %d", opts.Threshold)
	}
	if opts.Confirmer == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no confirmer configured")
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	root, err := checkRoot(fs, opts.Root)
	if err != nil {
		return nil, err
	}

	durations := opts.Durations
	if durations == nil {
		providers := metadata.Open(metadata.Options{
			FS:              fs,
			ExiftoolPath:    cfg.Exiftool.Path,
			DisableExiftool: cfg.Exiftool.Disabled,
		})
		defer func() {
			if err := providers.Close(); err != nil {
				logger.Warn().Err(err).Msg("Failed to stop metadata reader")
			}
		}()
		if providers.Durations == nil {
			return nil, errors.New(errors.ErrDurationUnavailable,
				"reading video durations requires exiftool; install it or set exiftool.path")
		}
		durations = providers.Durations
	}

	defer logging.LogOperationStart(logger, "prune-short")()

	logger.Info().
		Str("root", root).
		Int("threshold", opts.Threshold).
		Msg("Starting short video prune")

	scan := scanner.New(fs, scanner.Options{
		ExcludeDirs: []string{cfg.Folders.Quarantine},
		Ignore:      cfg.Media.Ignore,
	})
	records, err := scan.Walk(root)
	if err != nil {
		return nil, err
	}
	records = scanner.Filter(records, scanner.NewExtensionSet(cfg.Media.Extensions).Matches)

	result := &types.RunResult{
		Command:   CommandPrune,
		Root:      root,
		Timestamp: time.Now(),
	}

	pr, err := shortvideo.New(fs, durations, opts.Confirmer, root).Prune(records, opts.Threshold)
	pr.Pass = types.PassShortVideo
	if err != nil {
		logger.Error().Err(err).Msg("Prune failed")
		pr.Error = err.Error()
	}
	result.Passes = append(result.Passes, pr)

	logger.Info().Int("deleted", pr.Acted).Msg("Short video prune completed")
	return result, nil
}
