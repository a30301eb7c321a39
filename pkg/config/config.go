package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/types"
)

// Config is the complete mediatidy configuration
type Config struct {
	Format     string     `koanf:"format" toml:"format" comment:"Folder layout: \"year\" or \"year-month\""`
	Media      Media      `koanf:"media" toml:"media"`
	Folders    Folders    `koanf:"folders" toml:"folders"`
	Passes     Passes     `koanf:"passes" toml:"passes" comment:"Passes run by the default command, in this order"`
	Exiftool   Exiftool   `koanf:"exiftool" toml:"exiftool"`
	ShortVideo ShortVideo `koanf:"shortvideo" toml:"shortvideo"`
}

// Media describes which files the passes look at
type Media struct {
	// Extensions are moved into date folders; other files stay put
	Extensions []string `koanf:"extensions" toml:"extensions" comment:"Files with these extensions are classified into date folders"`

	// VideoClass are the companion extensions of a live photo
	VideoClass []string `koanf:"video_class" toml:"video_class" comment:"Live photo companion extensions"`

	// Sidecar files never get their extension fixed
	Sidecar []string `koanf:"sidecar" toml:"sidecar" comment:"Extensions never renamed by the extension fix"`

	// Ignore are file name globs left out of every walk
	Ignore []string `koanf:"ignore" toml:"ignore" comment:"File name patterns ignored everywhere"`
}

// Folders names the folders mediatidy manages under the library root
type Folders struct {
	Uncategorized string `koanf:"uncategorized" toml:"uncategorized" comment:"Folder for files without a capture date"`
	Quarantine    string `koanf:"quarantine" toml:"quarantine" comment:"Staging folder for duplicate previews"`
}

// Passes toggles the passes of the default command
type Passes struct {
	Classify  bool `koanf:"classify" toml:"classify"`
	Dedup     bool `koanf:"dedup" toml:"dedup"`
	LivePhoto bool `koanf:"livephoto" toml:"livephoto"`
	ExtFix    bool `koanf:"extfix" toml:"extfix"`
	Reap      bool `koanf:"reap" toml:"reap"`
}

// Enabled reports whether the named pass should run
func (p Passes) Enabled(name types.PassName) bool {
	switch name {
	case types.PassClassify:
		return p.Classify
	case types.PassDedup:
		return p.Dedup
	case types.PassLivePhoto:
		return p.LivePhoto
	case types.PassExtFix:
		return p.ExtFix
	case types.PassReap:
		return p.Reap
	default:
		return true
	}
}

// Exiftool configures the metadata tool
type Exiftool struct {
	Path     string `koanf:"path" toml:"path" comment:"exiftool binary; empty means the one on PATH"`
	Disabled bool   `koanf:"disabled" toml:"disabled" comment:"Use the built-in EXIF reader instead of exiftool"`
}

// ShortVideo configures the prune-short command
type ShortVideo struct {
	Threshold int `koanf:"threshold" toml:"threshold" comment:"Videos shorter than this many seconds are pruned"`
}

// FormatMode returns the parsed folder layout
func (c *Config) FormatMode() types.FormatMode {
	mode, err := types.ParseFormatMode(c.Format)
	if err != nil {
		return types.FormatYear
	}
	return mode
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	if _, err := types.ParseFormatMode(c.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid format").WithDetail("format", c.Format)
	}
	for key, name := range map[string]string{
		"folders.uncategorized": c.Folders.Uncategorized,
		"folders.quarantine":    c.Folders.Quarantine,
	} {
		if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
			return errors.Newf(errors.ErrConfigValid, "%s must be a plain folder name, got %q", key, name).
				WithDetail("key", key)
		}
	}
	if c.Folders.Uncategorized == c.Folders.Quarantine {
		return errors.New(errors.ErrConfigValid, "folders.uncategorized and folders.quarantine must differ")
	}
	if c.ShortVideo.Threshold < 0 {
		return errors.Newf(errors.ErrConfigValid, "shortvideo.threshold must not be negative, got %d", c.ShortVideo.Threshold)
	}
	return nil
}
