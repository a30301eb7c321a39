package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/pterm/pterm"
)

// PassTitles are the human names shown for each pass
var PassTitles = map[types.PassName]string{
	types.PassClassify:   "Sorting by capture date",
	types.PassDedup:      "Removing duplicates",
	types.PassLivePhoto:  "Cleaning up live photos",
	types.PassExtFix:     "Fixing file extensions",
	types.PassReap:       "Removing empty folders",
	types.PassShortVideo: "Pruning short videos",
}

// PassTitle returns the display title of a pass
func PassTitle(pass types.PassName) string {
	if title, ok := PassTitles[pass]; ok {
		return title
	}
	return string(pass)
}

// StatusStyle returns the pterm style for a pass outcome
func StatusStyle(result types.PassResult) *pterm.Style {
	switch {
	case result.Error != "" || result.Failed > 0:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	case result.Declined:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case result.Acted > 0:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderPassBanner renders the header line printed before a pass starts
func RenderPassBanner(pass types.PassName, step, total int) string {
	label := fmt.Sprintf(" %s ", strings.ToUpper(string(pass)))
	badge := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold).Sprint(label)
	counter := ""
	if total > 0 {
		counter = pterm.FgGray.Sprintf(" [%d/%d]", step, total)
	}
	return badge + " " + pterm.Bold.Sprint(PassTitle(pass)) + counter
}

// RenderPassStatus renders the one-line outcome of a pass
func RenderPassStatus(result types.PassResult) string {
	name := fmt.Sprintf("%-10s", result.Pass)
	line := StatusStyle(result).Sprint(name) + " " + result.Summary
	if result.Error != "" {
		line += " " + pterm.FgRed.Sprint("("+result.Error+")")
	}
	return line
}
