package adapter

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	texttemplate "text/template"
	"time"
)

//go:embed templates/*.tmpl
var bundledTemplates embed.FS

// TemplateData is available to every email template.
type TemplateData struct {
	Recipient string
	AppName   string
	AppURL    string
	Link      string
	RunID     string
	SentAt    time.Time
}

// RenderedEmail is the output of a template.
type RenderedEmail struct {
	Subject string
	Text    string
	HTML    string
}

// TemplateRenderer turns a named template into an email body.
type TemplateRenderer interface {
	Render(name string, data TemplateData) (RenderedEmail, error)
	Names() ([]string, error)
}

// FSTemplateRenderer reads templates from a directory, falling back to the
// bundled set. Each template is <name>.txt.tmpl defining "subject" and
// "text", plus an optional <name>.html.tmpl.
type FSTemplateRenderer struct {
	fsys fs.FS
}

// NewTemplateRenderer creates a renderer. An empty dir uses only the bundled
// templates.
func NewTemplateRenderer(dir string) *FSTemplateRenderer {
	bundled, _ := fs.Sub(bundledTemplates, "templates")
	if dir == "" {
		return &FSTemplateRenderer{fsys: bundled}
	}

	return &FSTemplateRenderer{fsys: layeredFS{primary: os.DirFS(dir), fallback: bundled}}
}

// Render executes the named template.
func (r *FSTemplateRenderer) Render(name string, data TemplateData) (RenderedEmail, error) {
	textSrc, err := fs.ReadFile(r.fsys, name+".txt.tmpl")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return RenderedEmail{}, fmt.Errorf("unknown email template %q", name)
		}

		return RenderedEmail{}, fmt.Errorf("read template %s: %w", name, err)
	}

	textTmpl, err := texttemplate.New(name).Option("missingkey=error").Parse(string(textSrc))
	if err != nil {
		return RenderedEmail{}, fmt.Errorf("parse template %s: %w", name, err)
	}

	var out RenderedEmail

	var buf bytes.Buffer
	if err := textTmpl.ExecuteTemplate(&buf, "subject", data); err != nil {
		return RenderedEmail{}, fmt.Errorf("render %s subject: %w", name, err)
	}

	out.Subject = strings.TrimSpace(buf.String())
	if out.Subject == "" {
		return RenderedEmail{}, fmt.Errorf("template %s rendered an empty subject", name)
	}

	buf.Reset()

	if err := textTmpl.ExecuteTemplate(&buf, "text", data); err != nil {
		return RenderedEmail{}, fmt.Errorf("render %s text: %w", name, err)
	}

	out.Text = strings.TrimLeft(buf.String(), "\n")

	htmlSrc, err := fs.ReadFile(r.fsys, name+".html.tmpl")
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return out, nil
	case err != nil:
		return RenderedEmail{}, fmt.Errorf("read template %s: %w", name, err)
	}

	htmlTmpl, err := htmltemplate.New(name).Parse(string(htmlSrc))
	if err != nil {
		return RenderedEmail{}, fmt.Errorf("parse html template %s: %w", name, err)
	}

	buf.Reset()

	if err := htmlTmpl.Execute(&buf, data); err != nil {
		return RenderedEmail{}, fmt.Errorf("render %s html: %w", name, err)
	}

	out.HTML = buf.String()

	return out, nil
}

// Names lists the available templates.
func (r *FSTemplateRenderer) Names() ([]string, error) {
	matches, err := fs.Glob(r.fsys, "*.txt.tmpl")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, strings.TrimSuffix(path.Base(match), ".txt.tmpl"))
	}

	sort.Strings(names)

	return names, nil
}

// layeredFS serves files from primary and falls back to fallback.
type layeredFS struct {
	primary  fs.FS
	fallback fs.FS
}

func (l layeredFS) Open(name string) (fs.File, error) {
	f, err := l.primary.Open(name)
	if err == nil {
		return f, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return l.fallback.Open(name)
}

// Glob merges matches from both layers.
func (l layeredFS) Glob(pattern string) ([]string, error) {
	seen := make(map[string]struct{})

	var out []string

	for _, layer := range []fs.FS{l.primary, l.fallback} {
		matches, err := fs.Glob(layer, pattern)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			if _, ok := seen[match]; !ok {
				seen[match] = struct{}{}
				out = append(out, match)
			}
		}
	}

	return out, nil
}
