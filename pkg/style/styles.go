package style

import (
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// Text styles
	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// List styles
	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Action styles
var (
	MovedStyle = lipgloss.NewStyle().
			Foreground(MovedColor).
			Bold(true)

	RenamedStyle = lipgloss.NewStyle().
			Foreground(RenamedColor).
			Bold(true)

	DeletedStyle = lipgloss.NewStyle().
			Foreground(DeletedColor).
			Bold(true)

	KeptStyle = lipgloss.NewStyle().
			Foreground(KeptColor)
)

// Operation indicator styles
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = InfoStyle.Render("•")
	PendingIndicator = MutedStyle.Render("○")
)

// ItemStyle returns the style used for an item with the given status
func ItemStyle(status types.ItemStatus) lipgloss.Style {
	switch status {
	case types.StatusMoved:
		return MovedStyle
	case types.StatusRenamed:
		return RenamedStyle
	case types.StatusDeleted, types.StatusStaged:
		return DeletedStyle
	case types.StatusKept:
		return KeptStyle
	case types.StatusFailed:
		return ErrorStyle
	default:
		return MutedStyle
	}
}

// Helper functions
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Italic(s string) string {
	return lipgloss.NewStyle().Italic(true).Render(s)
}

func Underline(s string) string {
	return lipgloss.NewStyle().Underline(true).Render(s)
}
