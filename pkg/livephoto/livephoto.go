package livephoto

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/scanner"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultVideoClass lists the companion extensions of a live photo
var DefaultVideoClass = []string{".mov", ".mp4", ".aae"}

// Options configures a Resolver
type Options struct {
	Root       string
	VideoClass []string
}

// Resolver finds live photo groups and deletes their companions
type Resolver struct {
	fs      types.FS
	meta    types.MetadataProvider
	confirm types.Confirmer
	video   scanner.ExtensionSet
	opts    Options
	logger  zerolog.Logger
}

// New creates a Resolver
func New(fsys types.FS, meta types.MetadataProvider, confirm types.Confirmer, opts Options) *Resolver {
	if len(opts.VideoClass) == 0 {
		opts.VideoClass = DefaultVideoClass
	}
	return &Resolver{
		fs:      fsys,
		meta:    meta,
		confirm: confirm,
		video:   scanner.NewExtensionSet(opts.VideoClass),
		opts:    opts,
		logger:  logging.GetLogger("livephoto"),
	}
}

// IsVideo reports whether r has a video-class extension
func (r *Resolver) IsVideo(rec *types.FileRecord) bool {
	return r.video.Matches(rec)
}

// stemKey groups files sharing a name without extension, across folders
func stemKey(rec *types.FileRecord) (string, bool) {
	return rec.Stem, true
}

func (r *Resolver) timestampKey(rec *types.FileRecord) (string, bool) {
	meta, err := rec.LoadMetadata(r.meta)
	if err != nil {
		r.logger.Trace().Err(err).Str("path", rec.Path).Msg("No metadata, not paired by timestamp")
	}
	return meta.CaptureTimestamp, meta.CaptureTimestamp != ""
}

// Groups returns the candidate groups: stem groups first, then timestamp
// groups. A candidate has more than one member, at least one of them video.
func (r *Resolver) Groups(records []*types.FileRecord) []types.Group {
	live := types.Live(records)
	var out []types.Group
	for _, key := range []func(*types.FileRecord) (string, bool){stemKey, r.timestampKey} {
		for _, g := range types.Multi(types.GroupBy(live, key)) {
			if r.hasVideo(g.Records) {
				out = append(out, g)
			}
		}
	}
	return out
}

func (r *Resolver) hasVideo(records []*types.FileRecord) bool {
	for _, rec := range records {
		if r.IsVideo(rec) {
			return true
		}
	}
	return false
}

// Victims applies the keep policy to the members of one group
func (r *Resolver) Victims(members []*types.FileRecord) []*types.FileRecord {
	var videos []*types.FileRecord
	hasStill := false
	for _, rec := range members {
		if r.IsVideo(rec) {
			videos = append(videos, rec)
		} else {
			hasStill = true
		}
	}
	if hasStill {
		return videos
	}
	if len(videos) <= 1 {
		return nil
	}
	// Video-only groups keep their last member
	return videos[:len(videos)-1]
}

// plan lists the deletions Resolve would make if every one succeeded
func (r *Resolver) plan(groups []types.Group) []*types.FileRecord {
	deleted := make(map[*types.FileRecord]bool)
	var out []*types.FileRecord
	for _, g := range groups {
		var members []*types.FileRecord
		for _, rec := range g.Records {
			if !deleted[rec] {
				members = append(members, rec)
			}
		}
		for _, rec := range r.Victims(members) {
			deleted[rec] = true
			out = append(out, rec)
		}
	}
	return out
}

// Resolve deletes live photo companions after a single confirmation
func (r *Resolver) Resolve(records []*types.FileRecord) (types.PassResult, error) {
	result := types.NewPassResult(types.PassLivePhoto)

	groups := r.Groups(records)
	planned := r.plan(groups)
	if len(planned) == 0 {
		result.Summary = "no live photos"
		r.logger.Info().Msg("No live photo companions found")
		return result, nil
	}
	result.Found = len(planned)

	items := make([]string, 0, len(planned))
	for _, rec := range planned {
		items = append(items, r.rel(rec.Path))
	}
	answer, err := r.confirm.Ask(types.Prompt{
		ID:       types.PromptLivePhotoDelete,
		Pass:     string(types.PassLivePhoto),
		Question: fmt.Sprintf("Found %d live photo companion files. Delete them?", len(planned)),
		Items:    items,
	})
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	if !answer.Approved() {
		result.Declined = true
		result.Summary = "declined, nothing deleted"
		r.logger.Info().Str("answer", answer.String()).Msg("Live photo cleanup declined")
		return result, nil
	}

	for _, g := range groups {
		for _, rec := range r.Victims(r.liveMembers(g)) {
			result.Record(r.delete(rec, g.Key))
		}
	}
	result.Summary = fmt.Sprintf("deleted %d of %d companion files", result.Acted, len(planned))
	return result, nil
}

// liveMembers drops members deleted earlier in the pass or missing on disk
func (r *Resolver) liveMembers(g types.Group) []*types.FileRecord {
	var out []*types.FileRecord
	for _, rec := range g.Records {
		if rec.Gone {
			continue
		}
		if !filesystem.IsFile(r.fs, rec.Path) {
			r.logger.Debug().Str("path", rec.Path).Msg("File vanished, dropping from group")
			rec.Gone = true
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (r *Resolver) delete(rec *types.FileRecord, key string) types.PassItem {
	item := types.PassItem{Path: rec.Path, Message: "group " + key}
	if err := r.fs.Remove(rec.Path); err != nil {
		err = errors.Wrapf(err, errors.ErrFileRemove, "cannot delete %s", rec.Path)
		item.Status = types.StatusFailed
		item.Message = err.Error()
		r.logger.Error().Err(err).Str("path", rec.Path).Msg("Failed to delete companion")
		return item
	}
	rec.Gone = true
	item.Status = types.StatusDeleted
	r.logger.Info().Str("path", rec.Path).Str("group", key).Msg("Deleted live photo companion")
	return item
}

func (r *Resolver) rel(path string) string {
	if rel, err := filepath.Rel(r.opts.Root, path); err == nil {
		return rel
	}
	return path
}
