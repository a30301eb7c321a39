package style

import (
	"regexp"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

var tagPattern = regexp.MustCompile(`\[(/?)([a-z_]+)\]`)

// MarkupParser handles parsing and rendering of markup tags such as
// [moved]IMG_1.jpg[/moved]
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{
		styles:   make(map[string]lipgloss.Style),
		patterns: make(map[string]*regexp.Regexp),
	}
	for tag, s := range map[string]lipgloss.Style{
		"title":     TitleStyle,
		"subtitle":  SubtitleStyle,
		"success":   SuccessStyle,
		"error":     ErrorStyle,
		"warning":   WarningStyle,
		"info":      InfoStyle,
		"path":      PathStyle,
		"muted":     MutedStyle,
		"bold":      lipgloss.NewStyle().Bold(true),
		"italic":    lipgloss.NewStyle().Italic(true),
		"underline": lipgloss.NewStyle().Underline(true),

		// item statuses
		"moved":   MovedStyle,
		"renamed": RenamedStyle,
		"deleted": DeletedStyle,
		"staged":  DeletedStyle,
		"kept":    KeptStyle,
		"skipped": MutedStyle,
		"failed":  ErrorStyle,
	} {
		p.AddStyle(tag, s)
	}
	return p
}

// Render processes markup text and returns styled output. Unknown tags are
// left as they are.
func (p *MarkupParser) Render(text string) string {
	tags := make([]string, 0, len(p.patterns))
	for tag := range p.patterns {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	result := text
	for changed := true; changed; {
		changed = false
		for _, tag := range tags {
			pattern := p.patterns[tag]
			style := p.styles[tag]
			next := pattern.ReplaceAllStringFunc(result, func(match string) string {
				return style.Render(pattern.FindStringSubmatch(match)[1])
			})
			if next != result {
				result = next
				changed = true
			}
		}
	}
	return result
}

// Strip removes known tags, leaving the plain text
func (p *MarkupParser) Strip(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		if _, ok := p.styles[tagPattern.FindStringSubmatch(match)[2]]; ok {
			return ""
		}
		return match
	})
}

// AddStyle allows adding custom styles
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
	p.patterns[tag] = regexp.MustCompile(`(?s)\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`)
}

// Global parser instance
var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip is a convenience function using the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
