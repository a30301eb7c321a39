package metadata

import "strings"

// mimeExtensions maps full MIME types whose subtype is not a usable file
// extension
var mimeExtensions = map[string]string{
	"video/quicktime":           "mov",
	"video/mpeg":                "mpg",
	"audio/mpeg":                "mp3",
	"video/x-msvideo":           "avi",
	"video/x-matroska":          "mkv",
	"video/3gpp":                "3gp",
	"video/x-m4v":               "m4v",
	"image/svg+xml":             "svg",
	"image/x-canon-cr2":         "cr2",
	"image/x-canon-cr3":         "cr3",
	"image/x-nikon-nef":         "nef",
	"image/x-sony-arw":          "arw",
	"image/x-adobe-dng":         "dng",
	"image/vnd.adobe.photoshop": "psd",
}

// subtypeExtensions covers bare subtypes, when the type half is unknown
var subtypeExtensions = map[string]string{
	"quicktime":   "mov",
	"x-msvideo":   "avi",
	"x-matroska":  "mkv",
	"3gpp":        "3gp",
	"x-m4v":       "m4v",
	"svg+xml":     "svg",
	"x-canon-cr2": "cr2",
	"x-nikon-nef": "nef",
	"x-adobe-dng": "dng",
}

// NormalizeMIME turns a MIME type ("video/quicktime") or a bare subtype
// ("quicktime") into the lowercase extension the file should carry ("mov").
// An empty input yields an empty result.
func NormalizeMIME(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if mime == "" {
		return ""
	}
	if ext, ok := mimeExtensions[mime]; ok {
		return ext
	}
	subtype := mime
	if i := strings.IndexByte(mime, '/'); i >= 0 {
		subtype = mime[i+1:]
	}
	if ext, ok := subtypeExtensions[subtype]; ok {
		return ext
	}
	return subtype
}
