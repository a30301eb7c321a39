package mediatidy

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Tidy a folder of photos and videos"
	MsgPruneShort      = "Delete videos shorter than a number of seconds"
	MsgConfigShort     = "Manage the configuration file"
	MsgConfigInitShort = "Write a default mediatidy.toml"
	MsgConfigShowShort = "Print the effective configuration"
	MsgGuideShort      = "Show the user guide"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "[success]Wrote[/success] [path]%s[/path]"
	MsgVersionFormat = "mediatidy version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrTargetArg = "expected exactly one target folder, got %d"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Folder layout: year or year-month (default from config, else year)"
	MsgFlagYes      = "Answer yes to every question, except force-deleting non-empty folders"
	MsgFlagOutput   = "Report format: auto, term, text, json or yaml"
	MsgFlagConfig   = "Configuration file (default: mediatidy.toml in the target folder)"
	MsgFlagDuration = "Delete videos shorter than this many seconds"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/prune-long.txt
	msgPruneLongRaw string
	MsgPruneLong    = strings.TrimSpace(msgPruneLongRaw)

	//go:embed msgs/prune-example.txt
	msgPruneExampleRaw string
	MsgPruneExample    = strings.TrimRight(msgPruneExampleRaw, "\n")

	//go:embed msgs/config-init-long.txt
	msgConfigInitLongRaw string
	MsgConfigInitLong    = strings.TrimSpace(msgConfigInitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
