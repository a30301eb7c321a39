// Package output renders run results for people and for machines.
//
// The terminal and text renderers share one template. The template marks
// up its output with tags such as [moved]...[/moved]; the terminal renderer
// expands them into lipgloss styles and the text renderer strips them.
// JSON and YAML renderers encode the RunResult as is.
package output

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/style"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var funcs = template.FuncMap{
	"passTitle": style.PassTitle,
	"relItem":   relItem,
}

// relItem shows item paths relative to the library root
func relItem(root string, item types.PassItem) types.PassItem {
	item.Path = relPath(root, item.Path)
	if item.Target != "" {
		item.Target = relPath(root, item.Target)
	}
	return item
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

// TemplateRenderer renders results through the embedded templates
type TemplateRenderer struct {
	templates *template.Template
	writer    io.Writer
	noColor   bool
}

// NewTerminal creates a renderer with lipgloss styling
func NewTerminal(w io.Writer) (*TemplateRenderer, error) {
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(w))
	return newTemplateRenderer(w, false)
}

// NewText creates a renderer for plain text
func NewText(w io.Writer) (*TemplateRenderer, error) {
	return newTemplateRenderer(w, true)
}

func newTemplateRenderer(w io.Writer, noColor bool) (*TemplateRenderer, error) {
	tmpl, err := template.New("output").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse output templates")
	}
	return &TemplateRenderer{templates: tmpl, writer: w, noColor: noColor}, nil
}

// RenderResult writes the report of one run
func (r *TemplateRenderer) RenderResult(result *types.RunResult) error {
	log := logging.GetLogger("output")

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "result.tmpl", result); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to execute template")
	}
	log.Trace().Str("templateOutput", buf.String()).Msg("Template executed")

	return r.write(buf.String())
}

// RenderError writes an error message
func (r *TemplateRenderer) RenderError(err error) error {
	return r.write("[error]Error:[/error] " + err.Error())
}

// RenderMessage writes a single line of markup text
func (r *TemplateRenderer) RenderMessage(msg string) error {
	return r.write(msg)
}

func (r *TemplateRenderer) write(markup string) error {
	out := style.Strip(markup)
	if !r.noColor {
		out = style.Render(markup)
	}
	_, err := fmt.Fprintln(r.writer, strings.TrimRight(out, "\n"))
	return err
}

// JSONRenderer provides JSON output for machine consumption
type JSONRenderer struct {
	encoder *json.Encoder
}

// NewJSON creates a JSON renderer
func NewJSON(w io.Writer) *JSONRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &JSONRenderer{encoder: encoder}
}

// RenderResult encodes the run result
func (r *JSONRenderer) RenderResult(result *types.RunResult) error {
	return r.encoder.Encode(result)
}

// RenderError encodes an error object
func (r *JSONRenderer) RenderError(err error) error {
	return r.encoder.Encode(errorObject(err))
}

// RenderMessage encodes a message object, without markup
func (r *JSONRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": style.Strip(msg)})
}

// YAMLRenderer writes YAML documents
type YAMLRenderer struct {
	writer io.Writer
}

// NewYAML creates a YAML renderer
func NewYAML(w io.Writer) *YAMLRenderer {
	return &YAMLRenderer{writer: w}
}

// RenderResult encodes the run result
func (r *YAMLRenderer) RenderResult(result *types.RunResult) error {
	return r.encode(result)
}

// RenderError encodes an error object
func (r *YAMLRenderer) RenderError(err error) error {
	return r.encode(errorObject(err))
}

// RenderMessage encodes a message object, without markup
func (r *YAMLRenderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": style.Strip(msg)})
}

func (r *YAMLRenderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func errorObject(err error) map[string]interface{} {
	obj := map[string]interface{}{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		obj["details"] = details
	}
	return obj
}
