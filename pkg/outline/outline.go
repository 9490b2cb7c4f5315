// Package outline renders a plain-text description of layouts and tables:
// groups, separators, titles and items with their widths for a layout;
// columns with their flags and operations for a table. The text is produced
// from pongo2 templates, embedded by default.
package outline

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formlayout/pkg/form"
	"github.com/goliatone/go-formlayout/pkg/table"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const (
	layoutTemplate = "layout.tpl"
	tableTemplate  = "table.tpl"
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templates fs.FS
}

// WithFS loads layout.tpl and table.tpl from files instead of the embedded
// templates.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// Renderer executes the outline templates.
type Renderer struct {
	layout *pongo2.Template
	table  *pongo2.Template
}

// New parses the outline templates.
func New(opts ...Option) (*Renderer, error) {
	cfg := &config{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.templates == nil {
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, fmt.Errorf("outline: embedded templates: %w", err)
		}
		cfg.templates = sub
	}

	set := pongo2.NewSet("outline", pongo2.NewFSLoader(cfg.templates))
	layout, err := set.FromFile(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("outline: load template %q: %w", layoutTemplate, err)
	}
	tbl, err := set.FromFile(tableTemplate)
	if err != nil {
		return nil, fmt.Errorf("outline: load template %q: %w", tableTemplate, err)
	}
	return &Renderer{layout: layout, table: tbl}, nil
}

var defaultRenderer = sync.OnceValues(func() (*Renderer, error) { return New() })

// Layout renders l with the embedded templates.
func Layout(l *form.Layout) (string, error) {
	r, err := defaultRenderer()
	if err != nil {
		return "", err
	}
	return r.Layout(l)
}

// Table renders t with the embedded templates.
func Table(t *table.Table) (string, error) {
	r, err := defaultRenderer()
	if err != nil {
		return "", err
	}
	return r.Table(t)
}

// Layout renders the outline of l.
func (r *Renderer) Layout(l *form.Layout) (string, error) {
	if l == nil {
		return "", errors.New("outline: layout is nil")
	}
	return execute(r.layout, layoutView(l))
}

// Table renders the outline of t.
func (r *Renderer) Table(t *table.Table) (string, error) {
	if t == nil {
		return "", errors.New("outline: table is nil")
	}
	return execute(r.table, tableView(t))
}

func execute(tmpl *pongo2.Template, ctx pongo2.Context) (string, error) {
	out, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("outline: execute: %w", err)
	}
	return compact(out), nil
}

// compact drops the blank lines left behind by template tags.
func compact(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(strings.TrimRight(line, " \t"))
		b.WriteByte('\n')
	}
	return b.String()
}
