// Package reaper removes the folders a tidy run left behind.
//
// Folders are visited children first, so removing an empty child can empty
// its parent. Category folders are never removed, even when empty: folders
// created during the run, year folders, month folders and the
// uncategorized folder.
package reaper

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/arthur-debert/mediatidy/pkg/classify"
	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/scanner"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/rs/zerolog"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// Options configures a Reaper
type Options struct {
	Root          string
	Uncategorized string

	// ExcludeDirs are folder names the reaper does not descend into
	ExcludeDirs []string
}

// Reaper removes empty folders
type Reaper struct {
	fs      types.FS
	confirm types.Confirmer
	opts    Options
	logger  zerolog.Logger
}

// New creates a Reaper
func New(fsys types.FS, confirm types.Confirmer, opts Options) *Reaper {
	if opts.Uncategorized == "" {
		opts.Uncategorized = classify.DefaultUncategorized
	}
	opts.Root = filepath.Clean(opts.Root)
	return &Reaper{
		fs:      fsys,
		confirm: confirm,
		opts:    opts,
		logger:  logging.GetLogger("reaper"),
	}
}

// Protected reports whether a folder name marks a category folder
func (r *Reaper) Protected(name string, folders *types.CreatedFolderSet) bool {
	return folders.ContainsName(name) ||
		classify.IsMonthName(name) ||
		name == r.opts.Uncategorized ||
		yearPattern.MatchString(name)
}

// Reap removes empty folders under the root and offers to force-delete the
// non-empty ones. The root itself is never removed.
func (r *Reaper) Reap(folders *types.CreatedFolderSet) (types.PassResult, error) {
	result := types.NewPassResult(types.PassReap)

	dirs, err := scanner.New(r.fs, scanner.Options{ExcludeDirs: r.opts.ExcludeDirs}).Dirs(r.opts.Root)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	for _, dir := range dirs {
		if filepath.Clean(dir) == r.opts.Root {
			continue
		}
		if r.Protected(filepath.Base(dir), folders) {
			r.logger.Trace().Str("dir", dir).Msg("Category folder, keeping")
			continue
		}
		if ok, _ := filesystem.Exists(r.fs, dir); !ok {
			continue
		}

		result.Found++
		item, err := r.reapDir(dir)
		if err != nil {
			result.Error = err.Error()
			return result, err
		}
		result.Record(item)
	}

	result.Summary = fmt.Sprintf("removed %d folders, kept %d", result.Acted, result.Skipped)
	if result.Found == 0 {
		result.Summary = "no folders to clean up"
	}
	return result, nil
}

func (r *Reaper) reapDir(dir string) (types.PassItem, error) {
	item := types.PassItem{Path: dir}

	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		item.Status = types.StatusFailed
		item.Message = errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", dir).Error()
		return item, nil
	}

	if len(entries) == 0 {
		if err := r.fs.Remove(dir); err != nil {
			item.Status = types.StatusFailed
			item.Message = errors.Wrapf(err, errors.ErrDirRemove, "cannot remove %s", dir).Error()
			r.logger.Error().Err(err).Str("dir", dir).Msg("Failed to remove empty folder")
			return item, nil
		}
		item.Status = types.StatusDeleted
		item.Message = "empty"
		r.logger.Info().Str("dir", dir).Msg("Removed empty folder")
		return item, nil
	}

	listing := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += string(filepath.Separator)
		}
		listing = append(listing, name)
	}
	answer, err := r.confirm.Ask(types.Prompt{
		ID:       types.PromptReapForce,
		Pass:     string(types.PassReap),
		Question: fmt.Sprintf("Folder %s is not empty (%d entries). Delete it with everything in it?", r.rel(dir), len(entries)),
		Items:    listing,
	})
	if err != nil {
		return item, err
	}
	if !answer.Approved() {
		item.Status = types.StatusKept
		item.Message = "not empty"
		r.logger.Debug().Str("dir", dir).Str("answer", answer.String()).Msg("Keeping non-empty folder")
		return item, nil
	}

	if err := r.fs.RemoveAll(dir); err != nil {
		item.Status = types.StatusFailed
		item.Message = errors.Wrapf(err, errors.ErrDirRemove, "cannot remove %s", dir).Error()
		r.logger.Error().Err(err).Str("dir", dir).Msg("Failed to force-delete folder")
		return item, nil
	}
	item.Status = types.StatusDeleted
	item.Message = fmt.Sprintf("forced, %d entries", len(entries))
	r.logger.Info().Str("dir", dir).Int("entries", len(entries)).Msg("Force-deleted folder")
	return item, nil
}

func (r *Reaper) rel(path string) string {
	if rel, err := filepath.Rel(r.opts.Root, path); err == nil {
		return rel
	}
	return path
}
