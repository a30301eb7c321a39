package config

import (
	"bytes"
	"path/filepath"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

const generatedHeader = "# mediatidy configuration\n# Generated by `mediatidy config init`. Remove any key to use its default.\n\n"

// GenerateConfigContent renders cfg as a commented TOML file
func GenerateConfigContent(cfg *Config) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return buf.String(), nil
}

// WriteDefaultFile writes the defaults to dir/mediatidy.toml. An existing
// file is never replaced.
func WriteDefaultFile(fsys types.FS, dir string) (string, error) {
	path := filepath.Join(dir, FileNames[0])
	if ok, _ := filesystem.Exists(fsys, path); ok {
		return path, errors.Newf(errors.ErrDestinationExists, "%s already exists", path).
			WithDetail("path", path)
	}

	content, err := GenerateConfigContent(Defaults())
	if err != nil {
		return path, err
	}

	w, err := fsys.Create(path)
	if err != nil {
		return path, errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", path)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		_ = w.Close()
		return path, errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", path)
	}
	if err := w.Close(); err != nil {
		return path, errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", path)
	}
	return path, nil
}
