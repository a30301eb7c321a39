package metadata

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/beevik/etree"
)

// xmpDateKeys are the XMP properties carrying a capture date, best first
var xmpDateKeys = []struct{ space, key string }{
	{"exif", "DateTimeOriginal"},
	{"xmp", "CreateDate"},
	{"photoshop", "DateCreated"},
}

// XMPSidecar reads capture dates from ".xmp" files written next to the
// media by photo editors ("IMG_1.xmp" or "IMG_1.JPG.xmp").
type XMPSidecar struct {
	fs types.FS
}

// NewXMPSidecar creates a sidecar reader using fsys
func NewXMPSidecar(fsys types.FS) *XMPSidecar {
	return &XMPSidecar{fs: fsys}
}

// SidecarPaths returns the candidate sidecar locations for a media file
func SidecarPaths(path string) []string {
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	stem, _ := types.SplitExt(name)
	return []string{
		filepath.Join(dir, stem+".xmp"),
		filepath.Join(dir, stem+".XMP"),
		filepath.Join(dir, name+".xmp"),
		filepath.Join(dir, name+".XMP"),
	}
}

// Lookup implements types.MetadataProvider. Only CaptureTimestamp is filled.
func (x *XMPSidecar) Lookup(path string) (types.Metadata, error) {
	if strings.EqualFold(filepath.Ext(path), ".xmp") {
		return types.Metadata{}, errors.Newf(errors.ErrMetadataUnavailable, "%s is a sidecar", path)
	}
	for _, candidate := range SidecarPaths(path) {
		ts, err := x.readDate(candidate)
		if err != nil || ts == "" {
			continue
		}
		return types.Metadata{CaptureTimestamp: ts}, nil
	}
	return types.Metadata{}, errors.Newf(errors.ErrMetadataUnavailable, "no xmp sidecar date for %s", path)
}

func (x *XMPSidecar) readDate(sidecar string) (string, error) {
	f, err := x.fs.Open(sidecar)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", err
	}
	elements := doc.FindElements("//*")
	for _, want := range xmpDateKeys {
		for _, el := range elements {
			// Compact form: attribute on rdf:Description
			for _, attr := range el.Attr {
				if attr.Space == want.space && attr.Key == want.key {
					if ts := XMPToExif(attr.Value); ts != "" {
						return ts, nil
					}
				}
			}
			// Expanded form: child element
			if el.Space == want.space && el.Tag == want.key {
				if ts := XMPToExif(el.Text()); ts != "" {
					return ts, nil
				}
			}
		}
	}
	return "", nil
}

// XMPToExif converts an XMP date ("2019-07-04T18:30:00+02:00", "2019-07-04")
// into exif form ("2019:07:04 18:30:00"). Unparseable input yields "".
func XMPToExif(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 10 || s[4] != '-' || s[7] != '-' {
		return ""
	}
	date := strings.ReplaceAll(s[:10], "-", ":")
	clock := "00:00:00"
	if len(s) >= 19 && (s[10] == 'T' || s[10] == ' ') {
		clock = s[11:19]
	} else if len(s) >= 16 && (s[10] == 'T' || s[10] == ' ') {
		clock = s[11:16] + ":00"
	}
	return date + " " + clock
}
