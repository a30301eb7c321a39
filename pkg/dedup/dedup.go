package dedup

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/arthur-debert/mediatidy/pkg/fingerprint"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultQuarantine is the staging folder name under the library root
const DefaultQuarantine = "Duplicates"

// Options configures a Resolver
type Options struct {
	Root       string
	Quarantine string
}

// Resolver finds and removes duplicate files
type Resolver struct {
	fs      types.FS
	fp      *fingerprint.Fingerprinter
	confirm types.Confirmer
	opts    Options
	logger  zerolog.Logger
}

// New creates a Resolver
func New(fsys types.FS, fp *fingerprint.Fingerprinter, confirm types.Confirmer, opts Options) *Resolver {
	if opts.Quarantine == "" {
		opts.Quarantine = DefaultQuarantine
	}
	return &Resolver{
		fs:      fsys,
		fp:      fp,
		confirm: confirm,
		opts:    opts,
		logger:  logging.GetLogger("dedup"),
	}
}

// QuarantineDir returns the staging folder path
func (r *Resolver) QuarantineDir() string {
	return filepath.Join(r.opts.Root, r.opts.Quarantine)
}

// duplicate is a record to delete together with the file it duplicates
type duplicate struct {
	record   *types.FileRecord
	survivor *types.FileRecord
}

// Resolve finds duplicates in records and, after confirmation, deletes every
// group member except the survivor.
func (r *Resolver) Resolve(records []*types.FileRecord) (types.PassResult, error) {
	result := types.NewPassResult(types.PassDedup)

	groups := r.Groups(records)
	if len(groups) == 0 {
		result.Summary = "no duplicates"
		r.logger.Info().Msg("No duplicates found")
		return result, nil
	}

	var dups []duplicate
	var listing []string
	for _, g := range groups {
		survivor := g.Records[0]
		for _, rec := range g.Records[1:] {
			dups = append(dups, duplicate{record: rec, survivor: survivor})
			listing = append(listing, fmt.Sprintf("%s (copy of %s)", r.rel(rec.Path), r.rel(survivor.Path)))
		}
	}
	result.Found = len(dups)
	r.logger.Info().Int("groups", len(groups)).Int("duplicates", len(dups)).Msg("Found duplicates")

	answer, err := r.confirm.Ask(types.Prompt{
		ID:         types.PromptDedupPreview,
		Pass:       string(types.PassDedup),
		Question:   fmt.Sprintf("Found %d duplicates in %d groups. Preview them in %s before deletion?", len(dups), len(groups), r.opts.Quarantine),
		Items:      listing,
		Cancelable: true,
	})
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	switch answer {
	case types.AnswerYes:
		return r.stagedDelete(result, dups)
	case types.AnswerNo:
		r.deleteAll(&result, dups)
		result.Summary = fmt.Sprintf("deleted %d of %d duplicates", result.Acted, len(dups))
		return result, nil
	default:
		result.Declined = true
		result.Summary = "cancelled, nothing deleted"
		r.logger.Info().Msg("Dedup cancelled")
		return result, nil
	}
}

// stagedDelete copies every duplicate into the quarantine, asks for
// confirmation and then deletes the originals.
func (r *Resolver) stagedDelete(result types.PassResult, dups []duplicate) (types.PassResult, error) {
	q := newQuarantine(r.fs, r.QuarantineDir())

	for _, d := range dups {
		staged, err := q.stage(d.record.Path)
		if err != nil {
			r.logger.Error().Err(err).Str("path", d.record.Path).Msg("Staging failed, aborting dedup")
			if cerr := q.cleanup(); cerr != nil {
				r.logger.Error().Err(cerr).Str("dir", q.dir).Msg("Cannot clean up quarantine")
			}
			result.Error = err.Error()
			result.Summary = "staging failed, nothing deleted"
			return result, err
		}
		r.logger.Debug().Str("path", d.record.Path).Str("staged", staged).Msg("Staged duplicate")
	}

	answer, err := r.confirm.Ask(types.Prompt{
		ID:   types.PromptDedupCommit,
		Pass: string(types.PassDedup),
		Question: fmt.Sprintf("%d duplicates copied to %s for review. Delete the originals?",
			len(dups), r.rel(q.dir)),
	})
	if err != nil || !answer.Approved() {
		if cerr := q.cleanup(); cerr != nil {
			r.logger.Error().Err(cerr).Str("dir", q.dir).Msg("Cannot clean up quarantine")
		}
		if err != nil {
			result.Error = err.Error()
			return result, err
		}
		result.Declined = true
		result.Summary = "declined, nothing deleted"
		r.logger.Info().Msg("Dedup declined at commit")
		return result, nil
	}

	r.deleteAll(&result, dups)
	if err := q.cleanup(); err != nil {
		r.logger.Error().Err(err).Str("dir", q.dir).Msg("Cannot remove quarantine")
		result.Error = err.Error()
	}
	result.Summary = fmt.Sprintf("deleted %d of %d duplicates", result.Acted, len(dups))
	return result, nil
}

func (r *Resolver) deleteAll(result *types.PassResult, dups []duplicate) {
	for _, d := range dups {
		result.Record(r.delete(d))
	}
}

func (r *Resolver) delete(d duplicate) types.PassItem {
	item := types.PassItem{Path: d.record.Path, Target: d.survivor.Path}

	// The survivor must still be there before its copy goes
	if !filesystem.IsFile(r.fs, d.survivor.Path) {
		item.Status = types.StatusSkipped
		item.Message = "survivor no longer exists"
		r.logger.Warn().Str("path", d.record.Path).Str("survivor", d.survivor.Path).Msg("Survivor vanished, keeping duplicate")
		return item
	}
	if !filesystem.IsFile(r.fs, d.record.Path) {
		item.Status = types.StatusSkipped
		item.Message = "already gone"
		return item
	}

	if err := r.fs.Remove(d.record.Path); err != nil {
		err = errors.Wrapf(err, errors.ErrFileRemove, "cannot delete %s", d.record.Path)
		item.Status = types.StatusFailed
		item.Message = err.Error()
		r.logger.Error().Err(err).Str("path", d.record.Path).Msg("Failed to delete duplicate")
		return item
	}

	d.record.Gone = true
	item.Status = types.StatusDeleted
	r.logger.Info().Str("path", d.record.Path).Str("survivor", d.survivor.Path).Msg("Deleted duplicate")
	return item
}

func (r *Resolver) rel(path string) string {
	if rel, err := filepath.Rel(r.opts.Root, path); err == nil {
		return rel
	}
	return path
}
