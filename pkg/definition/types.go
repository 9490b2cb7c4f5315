package definition

import "github.com/goliatone/go-formlayout/pkg/form"

// Store keeps the parsed form and table definitions. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	forms  map[string]Form
	tables map[string]Table
}

// Form describes a form: its fields in display order, an optional layout in
// array form and the validation rules to attach.
type Form struct {
	Name   string `json:"-" yaml:"-" toml:"-"`
	Source string `json:"-" yaml:"-" toml:"-"`

	Attrs   map[string]any         `json:"attrs" yaml:"attrs" toml:"attrs"`
	Context map[string]any         `json:"context" yaml:"context" toml:"context"`
	Fields  []Field                `json:"fields" yaml:"fields" toml:"fields"`
	Layout  []any                  `json:"layout" yaml:"layout" toml:"layout"`
	Rules   map[string][]form.Rule `json:"rules" yaml:"rules" toml:"rules"`
	// Disabled makes every field readonly or disabled once built.
	Disabled bool `json:"disabled" yaml:"disabled" toml:"disabled"`
}

// Field describes a single input.
type Field struct {
	Name    string         `json:"name" yaml:"name" toml:"name"`
	Type    string         `json:"type" yaml:"type" toml:"type"`
	Value   any            `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Class   string         `json:"class,omitempty" yaml:"class,omitempty" toml:"class,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty" toml:"attrs,omitempty"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
	// Help is markup shown next to the input. It is sanitised and stored in
	// the "help" option as element.HTML.
	Help string `json:"help,omitempty" yaml:"help,omitempty" toml:"help,omitempty"`
	// Form names another definition used as the nested form of a repeating
	// field. It is stored in the "form" option.
	Form string `json:"form,omitempty" yaml:"form,omitempty" toml:"form,omitempty"`
}

// Table describes a table: its columns, an optional display order and the
// table-level operations.
type Table struct {
	Name   string `json:"-" yaml:"-" toml:"-"`
	Source string `json:"-" yaml:"-" toml:"-"`

	Attrs      map[string]any `json:"attrs" yaml:"attrs" toml:"attrs"`
	Columns    []Column       `json:"columns" yaml:"columns" toml:"columns"`
	Order      []string       `json:"order" yaml:"order" toml:"order"`
	Operations []Button       `json:"operations" yaml:"operations" toml:"operations"`
}

// Column describes a table column.
type Column struct {
	Name        string         `json:"name" yaml:"name" toml:"name"`
	Sortable    *bool          `json:"sortable,omitempty" yaml:"sortable,omitempty" toml:"sortable,omitempty"`
	Hidden      bool           `json:"hidden,omitempty" yaml:"hidden,omitempty" toml:"hidden,omitempty"`
	QuickFilter *string        `json:"quickFilter,omitempty" yaml:"quickFilter,omitempty" toml:"quickFilter,omitempty"`
	Filter      string         `json:"filter,omitempty" yaml:"filter,omitempty" toml:"filter,omitempty"`
	Attrs       map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty" toml:"attrs,omitempty"`
}

// Button describes an operation offered by a table.
type Button struct {
	Name   string         `json:"name" yaml:"name" toml:"name"`
	Label  string         `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Icon   string         `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
	Hidden bool           `json:"hidden,omitempty" yaml:"hidden,omitempty" toml:"hidden,omitempty"`
	Attrs  map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty" toml:"attrs,omitempty"`
}
