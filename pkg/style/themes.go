package style

import (
	"github.com/charmbracelet/lipgloss"
)

// adaptive picks light or dark automatically from the terminal background
func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Report palette
var (
	HeadingColor   = adaptive("#1F2328", "#F0F3F6")
	TextColor      = adaptive("#3D444D", "#D1D7E0")
	MutedColor     = adaptive("#6E7781", "#9198A1")
	SecondaryColor = adaptive("#57606A", "#B0B8C1") // paths

	SuccessColor = adaptive("#1A7F37", "#3FB950")
	ErrorColor   = adaptive("#CF222E", "#F85149")
	WarningColor = adaptive("#9A6700", "#D29922")
	InfoColor    = adaptive("#0969DA", "#58A6FF")
)

// Item colors, one per thing a pass can do to a file
var (
	MovedColor   = adaptive("#0EA5E9", "#38BDF8")
	RenamedColor = adaptive("#8B5CF6", "#A78BFA")
	DeletedColor = adaptive("#D97706", "#FBBF24")
	KeptColor    = adaptive("#059669", "#34D399")
)
