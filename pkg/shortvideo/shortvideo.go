// Package shortvideo deletes clips shorter than a threshold, such as the
// accidental one-second recordings phones leave behind.
package shortvideo

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultThreshold is the minimum duration, in seconds, of a kept video
const DefaultThreshold = 3

// Candidate is a video found to be too short
type Candidate struct {
	Record   *types.FileRecord
	Duration int
}

// Pruner deletes short videos after confirmation
type Pruner struct {
	fs        types.FS
	durations types.DurationProvider
	confirm   types.Confirmer
	root      string
	logger    zerolog.Logger
}

// New creates a Pruner
func New(fsys types.FS, durations types.DurationProvider, confirm types.Confirmer, root string) *Pruner {
	return &Pruner{
		fs:        fsys,
		durations: durations,
		confirm:   confirm,
		root:      root,
		logger:    logging.GetLogger("shortvideo"),
	}
}

// Candidates returns the records whose known duration is below threshold
// seconds. Files without a duration are never candidates.
func (p *Pruner) Candidates(records []*types.FileRecord, threshold int) []Candidate {
	var out []Candidate
	for _, rec := range types.Live(records) {
		seconds, ok := p.durations.Duration(rec.Path)
		if !ok {
			p.logger.Trace().Str("path", rec.Path).Msg("No duration, skipping")
			continue
		}
		if seconds < threshold {
			out = append(out, Candidate{Record: rec, Duration: seconds})
		}
	}
	return out
}

// Prune deletes every video shorter than threshold seconds
func (p *Pruner) Prune(records []*types.FileRecord, threshold int) (types.PassResult, error) {
	result := types.NewPassResult(types.PassShortVideo)
	if threshold < 0 {
		err := errors.Newf(errors.ErrInvalidInput, "threshold must not be negative, got %d", threshold)
		result.Error = err.Error()
		return result, err
	}

	candidates := p.Candidates(records, threshold)
	if len(candidates) == 0 {
		result.Summary = "no short videos"
		p.logger.Info().Int("threshold", threshold).Msg("No short videos found")
		return result, nil
	}
	result.Found = len(candidates)

	items := make([]string, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, fmt.Sprintf("%s (%ds)", p.rel(c.Record.Path), c.Duration))
	}
	answer, err := p.confirm.Ask(types.Prompt{
		ID:       types.PromptShortVideos,
		Pass:     string(types.PassShortVideo),
		Question: fmt.Sprintf("Found %d videos shorter than %d seconds. Delete them?", len(candidates), threshold),
		Items:    items,
	})
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	if !answer.Approved() {
		result.Declined = true
		result.Summary = "declined, nothing deleted"
		return result, nil
	}

	for _, c := range candidates {
		result.Record(p.delete(c))
	}
	result.Summary = fmt.Sprintf("deleted %d of %d short videos", result.Acted, len(candidates))
	return result, nil
}

func (p *Pruner) delete(c Candidate) types.PassItem {
	item := types.PassItem{Path: c.Record.Path, Message: fmt.Sprintf("%ds", c.Duration)}
	if !filesystem.IsFile(p.fs, c.Record.Path) {
		item.Status = types.StatusSkipped
		item.Message = "no longer exists"
		return item
	}
	if err := p.fs.Remove(c.Record.Path); err != nil {
		err = errors.Wrapf(err, errors.ErrFileRemove, "cannot delete %s", c.Record.Path)
		item.Status = types.StatusFailed
		item.Message = err.Error()
		p.logger.Error().Err(err).Str("path", c.Record.Path).Msg("Failed to delete video")
		return item
	}
	c.Record.Gone = true
	item.Status = types.StatusDeleted
	p.logger.Info().Str("path", c.Record.Path).Int("seconds", c.Duration).Msg("Deleted short video")
	return item
}

func (p *Pruner) rel(path string) string {
	if rel, err := filepath.Rel(p.root, path); err == nil {
		return rel
	}
	return path
}
