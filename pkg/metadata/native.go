package metadata

import (
	"bytes"
	"io"
	"strings"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/h2non/filetype"
	"github.com/rwcarlsen/goexif/exif"
)

// sniffSize is how many leading bytes filetype needs to recognize a format
const sniffSize = 261

// Native reads metadata in-process: the capture date from EXIF (JPEG and
// TIFF based formats) and the real file type from magic bytes. It is the
// fallback when exiftool is not installed.
type Native struct {
	fs types.FS
}

// NewNative creates a Native provider reading through fsys
func NewNative(fsys types.FS) *Native {
	return &Native{fs: fsys}
}

// Lookup implements types.MetadataProvider
func (n *Native) Lookup(path string) (types.Metadata, error) {
	f, err := n.fs.Open(path)
	if err != nil {
		return types.Metadata{}, errors.Wrapf(err, errors.ErrMetadataUnavailable, "cannot open %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	head := make([]byte, sniffSize)
	read, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return types.Metadata{}, errors.Wrapf(err, errors.ErrMetadataUnavailable, "cannot read %s", path)
	}
	head = head[:read]

	var meta types.Metadata
	if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown {
		meta.DeclaredExt = NormalizeMIME(kind.MIME.Value)
	}

	// EXIF decoding needs the whole stream, starting with the bytes already read
	meta.CaptureTimestamp = exifTimestamp(io.MultiReader(bytes.NewReader(head), f))

	if meta.IsEmpty() {
		return meta, errors.Newf(errors.ErrMetadataUnavailable, "no recognizable metadata in %s", path)
	}
	return meta, nil
}

// exifTimestamp returns the raw DateTimeOriginal (or DateTime) EXIF value
func exifTimestamp(r io.Reader) string {
	x, err := exif.Decode(r)
	if err != nil {
		// Normal for formats without EXIF
		return ""
	}
	for _, name := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTimeDigitized, exif.DateTime} {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		s, err := tag.StringVal()
		if err != nil {
			continue
		}
		s = strings.TrimRight(strings.TrimSpace(s), "\x00")
		if len(s) >= 10 && s[4] == ':' && s[7] == ':' {
			return s
		}
	}
	return ""
}
