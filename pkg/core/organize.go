package core

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/mediatidy/pkg/classify"
	"github.com/arthur-debert/mediatidy/pkg/config"
	"github.com/arthur-debert/mediatidy/pkg/dedup"
	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/extfix"
	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/arthur-debert/mediatidy/pkg/fingerprint"
	"github.com/arthur-debert/mediatidy/pkg/livephoto"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/metadata"
	"github.com/arthur-debert/mediatidy/pkg/reaper"
	"github.com/arthur-debert/mediatidy/pkg/scanner"
	"github.com/arthur-debert/mediatidy/pkg/types"
)

// Command names reported in RunResult
const (
	CommandOrganize = "organize"
	CommandPrune    = "prune-short"
)

// OrganizeOptions contains the collaborators of one organize run
type OrganizeOptions struct {
	Root   string
	Config *config.Config

	// FileSystem defaults to the OS filesystem
	FileSystem types.FS

	// Metadata defaults to the providers built by metadata.Open
	Metadata types.MetadataProvider

	Confirmer types.Confirmer

	// OnPass, when set, is called before each pass starts
	OnPass func(pass types.PassName)
}

// run holds the state shared by the passes of one Organize call
type run struct {
	root    string
	cfg     *config.Config
	fs      types.FS
	meta    types.MetadataProvider
	confirm types.Confirmer
	folders *types.CreatedFolderSet
	scan    *scanner.Scanner
	media   scanner.ExtensionSet
}

// Organize runs the enabled passes against opts.Root
func Organize(opts OrganizeOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("core.organize")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Confirmer == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no confirmer configured")
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	root, err := checkRoot(fs, opts.Root)
	if err != nil {
		return nil, err
	}

	defer logging.LogOperationStart(logger, "organize")()

	logger.Info().
		Str("root", root).
		Str("format", cfg.Format).
		Msg("Starting organize")

	meta := opts.Metadata
	if meta == nil {
		providers := metadata.Open(metadata.Options{
			FS:              fs,
			ExiftoolPath:    cfg.Exiftool.Path,
			DisableExiftool: cfg.Exiftool.Disabled,
		})
		defer func() {
			if err := providers.Close(); err != nil {
				logger.Warn().Err(err).Msg("Failed to stop metadata reader")
			}
		}()
		meta = providers.Metadata
	}

	r := &run{
		root:    root,
		cfg:     cfg,
		fs:      fs,
		meta:    meta,
		confirm: opts.Confirmer,
		folders: types.NewCreatedFolderSet(),
		scan: scanner.New(fs, scanner.Options{
			ExcludeDirs: []string{cfg.Folders.Quarantine},
			Ignore:      cfg.Media.Ignore,
		}),
		media: scanner.NewExtensionSet(cfg.Media.Extensions),
	}

	result := &types.RunResult{
		Command:   CommandOrganize,
		Root:      root,
		Timestamp: time.Now(),
	}

	for _, p := range passOrder {
		if !cfg.Passes.Enabled(p.name) {
			logger.Debug().Str("pass", string(p.name)).Msg("Pass disabled")
			continue
		}
		if opts.OnPass != nil {
			opts.OnPass(p.name)
		}
		result.Passes = append(result.Passes, r.runPass(p))
	}

	logger.Info().
		Int("passes", len(result.Passes)).
		Int("foldersCreated", r.folders.Len()).
		Msg("Organize completed")

	return result, nil
}

type pass struct {
	name types.PassName
	fn   func(r *run, records []*types.FileRecord) (types.PassResult, error)
}

var passOrder = []pass{
	{types.PassClassify, (*run).classify},
	{types.PassDedup, (*run).dedup},
	{types.PassLivePhoto, (*run).livePhoto},
	{types.PassExtFix, (*run).extFix},
	{types.PassReap, (*run).reap},
}

// EnabledPasses lists the passes Organize runs with cfg, in order
func EnabledPasses(cfg *config.Config) []types.PassName {
	var names []types.PassName
	for _, p := range passOrder {
		if cfg.Passes.Enabled(p.name) {
			names = append(names, p.name)
		}
	}
	return names
}

// runPass walks the target and runs one pass. Errors stay in the pass result.
func (r *run) runPass(p pass) types.PassResult {
	logger := logging.GetLogger("core.organize").With().Str("pass", string(p.name)).Logger()

	var records []*types.FileRecord
	if p.name != types.PassReap {
		var err error
		records, err = r.scan.Walk(r.root)
		if err != nil {
			logger.Error().Err(err).Msg("Walk failed")
			pr := types.NewPassResult(p.name)
			pr.Summary = "failed"
			pr.Error = err.Error()
			return pr
		}
	}

	pr, err := p.fn(r, records)
	pr.Pass = p.name
	if err != nil {
		logger.Error().Err(err).Msg("Pass failed")
		pr.Error = err.Error()
		if pr.Summary == "" {
			pr.Summary = "failed"
		}
	}
	logger.Info().
		Int("found", pr.Found).
		Int("acted", pr.Acted).
		Int("skipped", pr.Skipped).
		Int("failed", pr.Failed).
		Bool("declined", pr.Declined).
		Msg(pr.Summary)
	return pr
}

func (r *run) classify(records []*types.FileRecord) (types.PassResult, error) {
	c := classify.New(r.fs, r.meta, r.folders, classify.Options{
		Root:          r.root,
		Mode:          r.cfg.FormatMode(),
		Uncategorized: r.cfg.Folders.Uncategorized,
	})
	return c.Run(scanner.Filter(records, r.media.Matches)), nil
}

func (r *run) dedup(records []*types.FileRecord) (types.PassResult, error) {
	d := dedup.New(r.fs, fingerprint.New(r.fs), r.confirm, dedup.Options{
		Root:       r.root,
		Quarantine: r.cfg.Folders.Quarantine,
	})
	return d.Resolve(records)
}

func (r *run) livePhoto(records []*types.FileRecord) (types.PassResult, error) {
	l := livephoto.New(r.fs, r.meta, r.confirm, livephoto.Options{
		Root:       r.root,
		VideoClass: r.cfg.Media.VideoClass,
	})
	return l.Resolve(records)
}

func (r *run) extFix(records []*types.FileRecord) (types.PassResult, error) {
	e := extfix.New(r.fs, r.meta, r.confirm, extfix.Options{
		Root: r.root,
		Skip: r.cfg.Media.Sidecar,
	})
	return e.Reconcile(scanner.Filter(records, r.media.Matches))
}

func (r *run) reap(_ []*types.FileRecord) (types.PassResult, error) {
	rp := reaper.New(r.fs, r.confirm, reaper.Options{
		Root:          r.root,
		Uncategorized: r.cfg.Folders.Uncategorized,
		ExcludeDirs:   []string{r.cfg.Folders.Quarantine},
	})
	return rp.Reap(r.folders)
}

// checkRoot makes root absolute and checks it is an existing directory
func checkRoot(fs types.FS, root string) (string, error) {
	if root == "" {
		return "", errors.New(errors.ErrInvalidInput, "no target folder given")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "invalid target folder").
			WithDetail("path", root)
	}
	info, err := fs.Stat(abs)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "target folder does not exist").
			WithDetail("path", abs)
	}
	if !info.IsDir() {
		return "", errors.New(errors.ErrInvalidInput, "target is not a folder").
			WithDetail("path", abs)
	}
	return abs, nil
}
