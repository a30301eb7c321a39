// Package extfix renames files whose extension disagrees with the type
// declared in their metadata, e.g. a HEIC image saved as photo.jpg.
package extfix

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/scanner"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultSkip lists extensions that are never reconciled
var DefaultSkip = []string{".aae"}

// aliases folds spellings of the same type onto one name before comparing
var aliases = map[string]string{
	"JPG":  "JPEG",
	"TIF":  "TIFF",
	"HEIF": "HEIC",
	"MPEG": "MPG",
}

// Kind returns the comparable form of an extension or declared type:
// uppercased, without a leading dot, with aliases folded.
func Kind(ext string) string {
	k := strings.ToUpper(strings.TrimPrefix(ext, "."))
	if alias, ok := aliases[k]; ok {
		return alias
	}
	return k
}

// Options configures a Reconciler
type Options struct {
	Root string
	Skip []string
}

// Reconciler fixes extensions in one batch
type Reconciler struct {
	fs      types.FS
	meta    types.MetadataProvider
	confirm types.Confirmer
	skip    scanner.ExtensionSet
	opts    Options
	logger  zerolog.Logger
}

// New creates a Reconciler
func New(fsys types.FS, meta types.MetadataProvider, confirm types.Confirmer, opts Options) *Reconciler {
	if opts.Skip == nil {
		opts.Skip = DefaultSkip
	}
	return &Reconciler{
		fs:      fsys,
		meta:    meta,
		confirm: confirm,
		skip:    scanner.NewExtensionSet(opts.Skip),
		opts:    opts,
		logger:  logging.GetLogger("extfix"),
	}
}

// Mismatch is a file whose name and metadata disagree
type Mismatch struct {
	Record   *types.FileRecord
	Declared string
	Target   string
}

// Mismatches returns every record whose extension disagrees with its
// declared type. Records without metadata are left out.
func (c *Reconciler) Mismatches(records []*types.FileRecord) []Mismatch {
	var out []Mismatch
	for _, rec := range types.Live(records) {
		if c.skip.Matches(rec) {
			continue
		}
		meta, err := rec.LoadMetadata(c.meta)
		if err != nil || meta.DeclaredExt == "" {
			c.logger.Trace().Str("path", rec.Path).Msg("No declared type, skipping")
			continue
		}
		if Kind(rec.Ext) == Kind(meta.DeclaredExt) {
			continue
		}
		out = append(out, Mismatch{
			Record:   rec,
			Declared: meta.DeclaredExt,
			Target:   filepath.Join(rec.Dir(), rec.Stem+"."+strings.ToUpper(meta.DeclaredExt)),
		})
	}
	return out
}

// Reconcile renames all mismatched files after one confirmation
func (c *Reconciler) Reconcile(records []*types.FileRecord) (types.PassResult, error) {
	result := types.NewPassResult(types.PassExtFix)

	mismatches := c.Mismatches(records)
	if len(mismatches) == 0 {
		result.Summary = "no mismatched extensions"
		c.logger.Info().Msg("All extensions match their metadata")
		return result, nil
	}
	result.Found = len(mismatches)

	items := make([]string, 0, len(mismatches))
	for _, m := range mismatches {
		items = append(items, fmt.Sprintf("%s -> %s", c.rel(m.Record.Path), filepath.Base(m.Target)))
	}
	answer, err := c.confirm.Ask(types.Prompt{
		ID:       types.PromptExtensionRename,
		Pass:     string(types.PassExtFix),
		Question: fmt.Sprintf("Found %d files whose extension does not match their content. Rename them?", len(mismatches)),
		Items:    items,
	})
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	if !answer.Approved() {
		result.Declined = true
		result.Summary = "declined, nothing renamed"
		c.logger.Info().Str("answer", answer.String()).Msg("Extension fix declined")
		return result, nil
	}

	for _, m := range mismatches {
		result.Record(c.rename(m))
	}
	result.Summary = fmt.Sprintf("renamed %d of %d files", result.Acted, len(mismatches))
	return result, nil
}

func (c *Reconciler) rename(m Mismatch) types.PassItem {
	source := m.Record.Path
	item := types.PassItem{Path: source, Target: m.Target}

	if !filesystem.IsFile(c.fs, source) {
		item.Status = types.StatusSkipped
		item.Message = "no longer exists"
		return item
	}

	if err := filesystem.MoveNoOverwrite(c.fs, source, m.Target); err != nil {
		item.Message = err.Error()
		if errors.IsErrorCode(err, errors.ErrDestinationExists) {
			item.Status = types.StatusSkipped
			c.logger.Warn().Str("path", source).Str("target", m.Target).Msg("Target name taken, not renaming")
		} else {
			item.Status = types.StatusFailed
			c.logger.Error().Err(err).Str("path", source).Msg("Failed to rename file")
		}
		return item
	}

	m.Record.SetPath(m.Target)
	item.Status = types.StatusRenamed
	c.logger.Info().Str("from", source).Str("to", m.Target).Str("declared", m.Declared).Msg("Renamed file")
	return item
}

func (c *Reconciler) rel(path string) string {
	if rel, err := filepath.Rel(c.opts.Root, path); err == nil {
		return rel
	}
	return path
}
