// Package ui picks how results reach the user: styled terminal text, plain
// text, JSON or YAML. Interactive prompts live in ui/confirmations.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/output"
	"github.com/arthur-debert/mediatidy/pkg/types"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders the report of one run
	RenderResult(result *types.RunResult) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := w.(*os.File); ok {
			return NewRenderer(DetectFormat(file), w)
		}
		// not a file, default to terminal format
		return NewRenderer(FormatTerminal, w)
	case FormatTerminal, FormatText:
		newRenderer := output.NewText
		if format == FormatTerminal {
			newRenderer = output.NewTerminal
		}
		r, err := newRenderer(w)
		if err != nil {
			return nil, err
		}
		return r, nil
	case FormatJSON:
		return output.NewJSON(w), nil
	case FormatYAML:
		return output.NewYAML(w), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
