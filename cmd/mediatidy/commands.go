package mediatidy

import (
	"fmt"

	"github.com/arthur-debert/mediatidy/internal/version"
	"github.com/arthur-debert/mediatidy/pkg/config"
	"github.com/arthur-debert/mediatidy/pkg/core"
	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewPruneCmd returns the short video prune as a standalone root command.
// Unlike `mediatidy prune-short`, it requires -d.
func NewPruneCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}
	cmd := newPruneCmd("prune-short-videos <root_folder>", opts)
	cmd.Version = version.Version
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.DisableAutoGenTag = true
	cmd.SetUsageTemplate(MsgUsageTemplate)
	bindGlobalFlags(cmd, opts)
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

func newPruneCmd(use string, opts *globalOptions) *cobra.Command {
	var seconds int

	cmd := &cobra.Command{
		Use:     use,
		Short:   MsgPruneShort,
		Long:    MsgPruneLong,
		Example: MsgPruneExample,
		Args:    exactlyOneTarget,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				Root: args[0],
				File: opts.configFile,
			})
			if err != nil {
				return err
			}

			threshold := cfg.ShortVideo.Threshold
			if cmd.Flags().Changed("duration") {
				threshold = seconds
			}

			renderer, format, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}

			log.Info().
				Str("root", args[0]).
				Int("threshold", threshold).
				Msg("Pruning short videos")

			result, err := core.PruneShortVideos(core.PruneOptions{
				Root:      args[0],
				Threshold: threshold,
				Config:    cfg,
				Confirmer: newConfirmer(cmd, opts, format),
			})
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().IntVarP(&seconds, "duration", "d", 0, MsgFlagDuration)
	return cmd
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init [dir]",
		Short: MsgConfigInitShort,
		Long:  MsgConfigInitLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			renderer, _, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}

			path, err := config.WriteDefaultFile(filesystem.NewOS(), dir)
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, path))
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show [target_folder]",
		Short: MsgConfigShowShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg, err := config.Load(config.LoadOptions{Root: root, File: opts.configFile})
			if err != nil {
				return err
			}
			content, err := config.GenerateConfigContent(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	})

	return configCmd
}
