package dedup

import (
	"path/filepath"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/arthur-debert/mediatidy/pkg/types"
)

// quarantine holds preview copies of the files about to be deleted. It only
// ever removes what it put there: a folder of the same name that existed
// before the run is left in place with its original content.
type quarantine struct {
	fs      types.FS
	dir     string
	created bool
	staged  []string
}

func newQuarantine(fsys types.FS, dir string) *quarantine {
	return &quarantine{fs: fsys, dir: dir}
}

// stage copies src into the quarantine under a free name
func (q *quarantine) stage(src string) (string, error) {
	if !q.created && len(q.staged) == 0 {
		exists, err := filesystem.Exists(q.fs, q.dir)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", q.dir)
		}
		if !exists {
			if err := q.fs.MkdirAll(q.dir, 0755); err != nil {
				return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", q.dir)
			}
			q.created = true
		}
	}

	dst := filesystem.UniquePath(q.fs, filepath.Join(q.dir, filepath.Base(src)))
	if err := filesystem.CopyNoOverwrite(q.fs, src, dst); err != nil {
		return "", err
	}
	q.staged = append(q.staged, dst)
	return dst, nil
}

// cleanup removes the staged copies, and the folder if this run created it
func (q *quarantine) cleanup() error {
	var firstErr error
	for _, p := range q.staged {
		if err := q.fs.Remove(p); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, errors.ErrFileRemove, "cannot remove %s", p)
		}
	}
	q.staged = nil
	if q.created {
		if err := q.fs.RemoveAll(q.dir); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, errors.ErrDirRemove, "cannot remove %s", q.dir)
		}
		q.created = false
	}
	return firstErr
}
