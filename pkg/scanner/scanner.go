package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/rs/zerolog"
)

// Options controls what a walk leaves out
type Options struct {
	// ExcludeDirs are directory names skipped together with their contents
	ExcludeDirs []string

	// Ignore are glob patterns matched, case-insensitively, against file names
	Ignore []string
}

// Scanner walks a library through a types.FS
type Scanner struct {
	fs      types.FS
	opts    Options
	exclude map[string]struct{}
	logger  zerolog.Logger
}

// New creates a scanner
func New(fsys types.FS, opts Options) *Scanner {
	exclude := make(map[string]struct{}, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		exclude[name] = struct{}{}
	}
	return &Scanner{
		fs:      fsys,
		opts:    opts,
		exclude: exclude,
		logger:  logging.GetLogger("scanner"),
	}
}

// Walk returns a record for every regular file under root
func (s *Scanner) Walk(root string) ([]*types.FileRecord, error) {
	root = filepath.Clean(root)
	if err := s.checkRoot(root); err != nil {
		return nil, err
	}

	var records []*types.FileRecord
	s.walk(root, func(path string, entry fs.DirEntry) {
		info, err := entry.Info()
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("Cannot stat file, skipping")
			return
		}
		records = append(records, types.NewFileRecord(path, info.Size()))
	})

	s.logger.Debug().
		Str("root", root).
		Int("files", len(records)).
		Msg("Walk complete")
	return records, nil
}

// Dirs returns every directory under root, children before parents. The root
// itself is not included.
func (s *Scanner) Dirs(root string) ([]string, error) {
	root = filepath.Clean(root)
	if err := s.checkRoot(root); err != nil {
		return nil, err
	}
	return s.dirsBelow(root), nil
}

func (s *Scanner) dirsBelow(dir string) []string {
	var out []string
	for _, sub := range s.subdirs(dir) {
		out = append(out, s.dirsBelow(sub)...)
		out = append(out, sub)
	}
	return out
}

func (s *Scanner) checkRoot(root string) error {
	info, err := s.fs.Stat(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot access %s", root).
			WithDetail("root", root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s is not a directory", root).
			WithDetail("root", root)
	}
	return nil
}

// walk visits the files of dir, then recurses into its subdirectories
func (s *Scanner) walk(dir string, visit func(path string, entry fs.DirEntry)) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		s.logger.Warn().Err(err).Str("dir", dir).Msg("Cannot read directory, skipping")
		return
	}

	var dirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			if s.excludedDir(entry.Name()) {
				s.logger.Trace().Str("dir", path).Msg("Excluded directory")
				continue
			}
			dirs = append(dirs, path)
		case entry.Type()&fs.ModeSymlink != 0:
			s.logger.Trace().Str("path", path).Msg("Skipping symlink")
		case !entry.Type().IsRegular():
			// sockets, devices and the like
		case s.ignored(entry.Name()):
			s.logger.Trace().Str("path", path).Msg("Ignored file")
		default:
			visit(path, entry)
		}
	}

	for _, sub := range dirs {
		s.walk(sub, visit)
	}
}

func (s *Scanner) subdirs(dir string) []string {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		s.logger.Warn().Err(err).Str("dir", dir).Msg("Cannot read directory, skipping")
		return nil
	}
	var out []string
	for _, entry := range entries {
		if entry.IsDir() && !s.excludedDir(entry.Name()) {
			out = append(out, filepath.Join(dir, entry.Name()))
		}
	}
	return out
}

func (s *Scanner) excludedDir(name string) bool {
	_, ok := s.exclude[name]
	return ok
}

func (s *Scanner) ignored(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range s.opts.Ignore {
		if matched, _ := filepath.Match(strings.ToLower(pattern), lower); matched {
			return true
		}
	}
	return false
}
