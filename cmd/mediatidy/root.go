package mediatidy

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/mediatidy/internal/version"
	"github.com/arthur-debert/mediatidy/pkg/cobrax/topics"
	"github.com/arthur-debert/mediatidy/pkg/config"
	"github.com/arthur-debert/mediatidy/pkg/core"
	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/guide"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/style"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/arthur-debert/mediatidy/pkg/ui"
	"github.com/arthur-debert/mediatidy/pkg/ui/confirmations"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are the flags every command shares
type globalOptions struct {
	verbosity  int
	yes        bool
	output     string
	configFile string
}

// bindGlobalFlags registers the shared flags as persistent flags of cmd
func bindGlobalFlags(cmd *cobra.Command, opts *globalOptions) {
	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	cmd.PersistentFlags().BoolVarP(&opts.yes, "yes", "y", false, MsgFlagYes)
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "auto", MsgFlagOutput)
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.SetupLogger(opts.verbosity)
		log.Debug().Str("command", cmd.Name()).Msg("Command started")
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}
	var format string

	rootCmd := &cobra.Command{
		Use:     "mediatidy <target_folder>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    exactlyOneTarget,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("format") {
				overrides["format"] = format
			}
			return runOrganize(cmd, opts, args[0], overrides)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	bindGlobalFlags(rootCmd, opts)
	rootCmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	pruneCmd := newPruneCmd("prune-short <target_folder>", opts)
	pruneCmd.GroupID = "core"
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	tm, err := topics.InitializeWithOptions(rootCmd, guide.Topics(), topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.AddCommand(newGuideCmd(tm))

	return rootCmd
}

func exactlyOneTarget(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.Newf(errors.ErrInvalidInput, MsgErrTargetArg, len(args))
	}
	return nil
}

func runOrganize(cmd *cobra.Command, opts *globalOptions, target string, overrides map[string]interface{}) error {
	cfg, err := config.Load(config.LoadOptions{
		Root:      target,
		File:      opts.configFile,
		Overrides: overrides,
	})
	if err != nil {
		return err
	}

	renderer, outFormat, err := newRenderer(cmd, opts)
	if err != nil {
		return err
	}

	passes := core.EnabledPasses(cfg)
	step := 0
	onPass := func(p types.PassName) {
		step++
		if outFormat.Machine() {
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), style.RenderPassBanner(p, step, len(passes)))
	}

	log.Info().
		Str("target", target).
		Str("format", cfg.Format).
		Bool("yes", opts.yes).
		Msg("Organizing library")

	result, err := core.Organize(core.OrganizeOptions{
		Root:      target,
		Config:    cfg,
		Confirmer: newConfirmer(cmd, opts, outFormat),
		OnPass:    onPass,
	})
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

// newRenderer resolves --output against the command's writer
func newRenderer(cmd *cobra.Command, opts *globalOptions) (ui.Renderer, ui.Format, error) {
	format, err := ui.ParseFormat(opts.output)
	if err != nil {
		return nil, format, err
	}
	w := cmd.OutOrStdout()
	if format == ui.FormatAuto {
		format = ui.FormatTerminal
		if f, ok := w.(*os.File); ok {
			format = ui.DetectFormat(f)
		}
	}
	if format != ui.FormatTerminal {
		pterm.DisableStyling()
	}

	renderer, err := ui.NewRenderer(format, w)
	return renderer, format, err
}

// newConfirmer answers prompts from --yes or from the console. Machine
// readable output keeps stdout clean, so prompts go to stderr then.
func newConfirmer(cmd *cobra.Command, opts *globalOptions, format ui.Format) types.Confirmer {
	if opts.yes {
		return confirmations.AssumeYes{Deny: []string{types.PromptReapForce}}
	}
	var out io.Writer = cmd.OutOrStdout()
	if format.Machine() {
		out = cmd.ErrOrStderr()
	}
	return confirmations.NewConsoleDialogWithIO(cmd.InOrStdin(), out)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newGuideCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "guide",
		Short:   MsgGuideShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tm == nil {
				return errors.New(errors.ErrNotFound, "the guide is not available")
			}
			topic, ok := tm.GetTopic(guide.Overview)
			if !ok {
				return errors.Newf(errors.ErrNotFound, "help topic %q not found", guide.Overview)
			}
			fmt.Fprint(cmd.OutOrStdout(), tm.Render(topic))
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
