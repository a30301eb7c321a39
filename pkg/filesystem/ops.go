package filesystem

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/types"
)

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(fsys types.FS, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsFile reports whether path exists and is a regular file
func IsFile(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsEmptyDir reports whether dir has no entries at all
func IsEmptyDir(fsys types.FS, dir string) (bool, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// EnsureDir creates dir and any missing parents, calling onCreate for every
// directory it actually created, outermost first. Existing directories are
// left alone, so the call is idempotent.
func EnsureDir(fsys types.FS, dir string, onCreate func(path string)) error {
	dir = filepath.Clean(dir)

	var missing []string
	for p := dir; ; p = filepath.Dir(p) {
		info, err := fsys.Stat(p)
		if err == nil {
			if !info.IsDir() {
				return errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", p).
					WithDetail("path", dir)
			}
			break
		}
		if !stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", p)
		}
		missing = append(missing, p)
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}

	for i := len(missing) - 1; i >= 0; i-- {
		if err := fsys.MkdirAll(missing[i], 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", missing[i])
		}
		if onCreate != nil {
			onCreate(missing[i])
		}
	}
	return nil
}

// MoveNoOverwrite renames src to dst unless dst already exists, in which case
// an ErrDestinationExists error is returned and nothing changes.
func MoveNoOverwrite(fsys types.FS, src, dst string) error {
	exists, err := Exists(fsys, dst)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", dst)
	}
	if exists {
		return errors.Newf(errors.ErrDestinationExists, "%s already exists", dst).
			WithDetail("source", src)
	}
	if err := fsys.Rename(src, dst); err != nil {
		if IsCrossDevice(err) {
			return errors.Wrapf(err, errors.ErrFileMove, "cannot move %s to another filesystem", src).
				WithDetail("target", dst).
				WithDetail("crossDevice", true)
		}
		return errors.Wrapf(err, errors.ErrFileMove, "cannot move %s to %s", src, dst)
	}
	return nil
}

// CopyNoOverwrite copies the content of src into a new file dst. It fails
// with ErrDestinationExists if dst is already there.
func CopyNoOverwrite(fsys types.FS, src, dst string) (err error) {
	exists, err := Exists(fsys, dst)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", dst)
	}
	if exists {
		return errors.Newf(errors.ErrDestinationExists, "%s already exists", dst).
			WithDetail("source", src)
	}

	in, err := fsys.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", src)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := fsys.Create(dst)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot create %s", dst)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, errors.ErrFileCopy, "cannot close %s", dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot copy %s to %s", src, dst)
	}
	return nil
}

// UniquePath returns path if nothing exists there, otherwise the first free
// "name (n).ext" sibling.
func UniquePath(fsys types.FS, path string) string {
	if ok, _ := Exists(fsys, path); !ok {
		return path
	}
	dir := filepath.Dir(path)
	stem, ext := types.SplitExt(filepath.Base(path))
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if ok, _ := Exists(fsys, candidate); !ok {
			return candidate
		}
	}
}
