// Package fingerprint computes content digests used to detect byte-identical
// files. Digests are cached on the FileRecord so each file is read at most
// once per run.
package fingerprint

import (
	"fmt"
	"io"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/twmb/murmur3"
	"github.com/zeebo/blake3"
)

// QuickSampleSize is how many leading bytes the quick digest reads
const QuickSampleSize = 64 * 1024

// Fingerprinter streams files through the digests
type Fingerprinter struct {
	fs    types.FS
	quick map[*types.FileRecord]string
}

// New creates a Fingerprinter reading through fsys
func New(fsys types.FS) *Fingerprinter {
	return &Fingerprinter{
		fs:    fsys,
		quick: make(map[*types.FileRecord]string),
	}
}

// Fingerprint returns the full-content digest of the record, computing and
// caching it on first use.
func (f *Fingerprinter) Fingerprint(r *types.FileRecord) (string, error) {
	if fp, ok := r.Fingerprint(); ok {
		return fp, nil
	}
	fp, err := FileDigest(f.fs, r.Path)
	if err != nil {
		return "", err
	}
	r.SetFingerprint(fp)
	return fp, nil
}

// Quick returns a cheap digest of the first QuickSampleSize bytes. Equal full
// fingerprints imply equal quick digests, so it is safe as a pre-filter.
func (f *Fingerprinter) Quick(r *types.FileRecord) (string, error) {
	if q, ok := f.quick[r]; ok {
		return q, nil
	}
	file, err := f.fs.Open(r.Path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileHash, "cannot open %s", r.Path)
	}
	defer func() {
		_ = file.Close()
	}()

	hasher := murmur3.New64()
	if _, err := io.CopyN(hasher, file, QuickSampleSize); err != nil && err != io.EOF {
		return "", errors.Wrapf(err, errors.ErrFileHash, "cannot read %s", r.Path)
	}
	q := fmt.Sprintf("%x", hasher.Sum64())
	f.quick[r] = q
	return q, nil
}

// FileDigest calculates the blake3 digest of a file
func FileDigest(fsys types.FS, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileHash, "cannot open %s", path)
	}
	defer func() {
		_ = file.Close()
	}()

	hash := blake3.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileHash, "cannot read %s", path)
	}

	return fmt.Sprintf("blake3:%x", hash.Sum(nil)), nil
}
