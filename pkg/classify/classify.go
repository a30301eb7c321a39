package classify

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/rs/zerolog"
)

// Outcome is what happened to one file
type Outcome int

const (
	// Moved means the file now lives in its category folder
	Moved Outcome = iota
	// InPlace means the file already was in its category folder
	InPlace
	// Skipped means the destination was taken or the source vanished
	Skipped
	// Failed means a filesystem error stopped the move
	Failed
)

// Options configures a Classifier
type Options struct {
	Root          string
	Mode          types.FormatMode
	Uncategorized string
}

// Classifier moves files into their category folders
type Classifier struct {
	fs      types.FS
	meta    types.MetadataProvider
	folders *types.CreatedFolderSet
	opts    Options
	logger  zerolog.Logger
}

// New creates a classifier. Every directory it creates is added to folders.
func New(fsys types.FS, meta types.MetadataProvider, folders *types.CreatedFolderSet, opts Options) *Classifier {
	if opts.Uncategorized == "" {
		opts.Uncategorized = DefaultUncategorized
	}
	opts.Root = filepath.Clean(opts.Root)
	return &Classifier{
		fs:      fsys,
		meta:    meta,
		folders: folders,
		opts:    opts,
		logger:  logging.GetLogger("classify"),
	}
}

// Destination returns the category folder of r
func (c *Classifier) Destination(r *types.FileRecord) (string, bool) {
	meta, err := r.LoadMetadata(c.meta)
	if err != nil {
		c.logger.Debug().Err(err).Str("path", r.Path).Msg("No metadata, treating as undated")
	}
	return Destination(meta.CaptureTimestamp, c.opts.Mode, c.opts.Root, c.opts.Uncategorized)
}

// Classify moves r into its category folder. A taken destination is never
// overwritten: the file stays where it is and ErrDestinationExists is
// returned with the Skipped outcome.
func (c *Classifier) Classify(r *types.FileRecord) (Outcome, string, error) {
	dir, _ := c.Destination(r)
	target := filepath.Join(dir, r.Name())

	if target == r.Path {
		return InPlace, target, nil
	}
	if !filesystem.IsFile(c.fs, r.Path) {
		return Skipped, target, errors.Newf(errors.ErrNotFound, "%s no longer exists", r.Path)
	}

	if err := filesystem.EnsureDir(c.fs, dir, func(created string) {
		c.folders.Add(created)
		c.logger.Debug().Str("dir", created).Msg("Created category folder")
	}); err != nil {
		return Failed, target, err
	}

	if err := filesystem.MoveNoOverwrite(c.fs, r.Path, target); err != nil {
		if errors.IsErrorCode(err, errors.ErrDestinationExists) {
			return Skipped, target, err
		}
		return Failed, target, err
	}

	r.SetPath(target)
	return Moved, target, nil
}

// Run classifies every record and reports the pass
func (c *Classifier) Run(records []*types.FileRecord) types.PassResult {
	result := types.NewPassResult(types.PassClassify)
	inPlace := 0

	for _, r := range types.Live(records) {
		result.Found++
		source := r.Path
		outcome, target, err := c.Classify(r)

		item := types.PassItem{Path: source, Target: target}
		switch outcome {
		case Moved:
			item.Status = types.StatusMoved
			c.logger.Info().Str("from", source).Str("to", target).Msg("Moved file")
		case InPlace:
			inPlace++
			item.Status = types.StatusKept
			item.Message = "already in place"
		case Skipped:
			item.Status = types.StatusSkipped
			item.Message = err.Error()
			c.logger.Warn().Err(err).Str("path", source).Str("target", target).Msg("Leaving file in place")
		default:
			item.Status = types.StatusFailed
			item.Message = err.Error()
			c.logger.Error().Err(err).Str("path", source).Msg("Failed to move file")
		}
		result.Record(item)
	}

	result.Summary = fmt.Sprintf("%d moved, %d already in place, %d skipped, %d failed",
		result.Acted, inPlace, result.Skipped-inPlace, result.Failed)
	return result
}
