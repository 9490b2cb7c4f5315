package form

import (
	"fmt"
	"maps"

	"github.com/goliatone/go-formlayout/internal/ordered"
	"github.com/goliatone/go-formlayout/pkg/attrs"
)

// Form owns an ordered set of fields keyed by name and at most one layout.
type Form struct {
	attrs.Bag[*Form]

	fields  ordered.Map[*Field]
	layout  *Layout
	context map[string]any
}

// New creates an empty form.
func New() *Form {
	f := &Form{}
	f.Bind(f)
	return f
}

// AddField registers field. A field already registered under the same name is
// replaced at its position, and layout rows holding it are rebound to the new
// field. A field registered on another form is moved to this one.
func (f *Form) AddField(field *Field) {
	if field == nil {
		return
	}
	if field.form != nil && field.form != f {
		field.form.RemoveField(field.name)
	}
	if existing, ok := f.fields.Get(field.name); ok && existing != field {
		if f.layout != nil {
			f.layout.replaceField(existing, field)
		}
		existing.form = nil
	}
	f.fields.Set(field.name, field)
	field.form = f
}

// RemoveField unregisters the named field and removes it from the layout.
// Unknown names are ignored.
func (f *Form) RemoveField(name string) {
	field, ok := f.fields.Get(name)
	if !ok {
		return
	}
	if f.layout != nil {
		f.layout.dropField(field)
	}
	f.fields.Delete(name)
	field.form = nil
}

// Fields returns the registered fields in registration order.
func (f *Form) Fields() []*Field {
	return f.fields.Values()
}

// SetFields replaces every registered field.
func (f *Form) SetFields(fields ...*Field) {
	for _, name := range f.fields.Keys() {
		f.RemoveField(name)
	}
	for _, field := range fields {
		f.AddField(field)
	}
}

func (f *Form) HasField(name string) bool {
	return f.fields.Has(name)
}

// Field returns the named field or an error wrapping ErrFieldNotFound.
func (f *Form) Field(name string) (*Field, error) {
	field, ok := f.fields.Get(name)
	if !ok {
		return nil, fmt.Errorf("form: field %q: %w", name, ErrFieldNotFound)
	}
	return field, nil
}

func (f *Form) HasLayout() bool {
	return f.layout != nil
}

// Layout returns the attached layout, or nil.
func (f *Form) Layout() *Layout {
	return f.layout
}

// EnsureLayout returns the attached layout, creating the default one first
// when there is none.
func (f *Form) EnsureLayout() *Layout {
	if f.layout == nil {
		f.CreateDefaultLayout()
	}
	return f.layout
}

// CreateDefaultLayout replaces the layout with one row per field, in field
// order.
func (f *Form) CreateDefaultLayout() {
	layout := NewLayout(f)
	for _, field := range f.fields.Values() {
		row := layout.NewRow()
		_ = row.AddField(field, 0)
	}
	f.layout = layout
}

// SetLayout attaches layout. Passing nil detaches the current layout.
func (f *Form) SetLayout(layout *Layout) error {
	if layout != nil && layout.form != f {
		return fmt.Errorf("form: set layout: %w", ErrForeignLayout)
	}
	f.layout = layout
	return nil
}

// SetLayoutArray builds a layout from data and attaches it.
func (f *Form) SetLayoutArray(data LayoutArray) error {
	layout, err := FromArray(f, data)
	if err != nil {
		return err
	}
	f.layout = layout
	return nil
}

// LayoutArray serialises the attached layout. With createDefault the
// default layout is created first when none is attached; otherwise a form
// without layout yields an empty array.
func (f *Form) LayoutArray(createDefault bool) LayoutArray {
	if createDefault {
		f.EnsureLayout()
	}
	if f.layout == nil {
		return LayoutArray{}
	}
	return f.layout.ToArray()
}

// Enable enables every field.
func (f *Form) Enable() {
	for _, field := range f.fields.Values() {
		field.Enable()
	}
}

// Disable disables every field.
func (f *Form) Disable() {
	for _, field := range f.fields.Values() {
		field.Disable()
	}
}

// SetContext stores a value for templates and renderers.
func (f *Form) SetContext(key string, value any) {
	if f.context == nil {
		f.context = make(map[string]any)
	}
	f.context[key] = value
}

// ReplaceContext replaces the whole context map.
func (f *Form) ReplaceContext(values map[string]any) {
	f.context = maps.Clone(values)
}

func (f *Form) Context(key string) (any, bool) {
	value, ok := f.context[key]
	return value, ok
}

// ContextOr returns the stored value, or def when the key is absent.
func (f *Form) ContextOr(key string, def any) any {
	if value, ok := f.context[key]; ok {
		return value
	}
	return def
}

// ContextMap returns a copy of the context map.
func (f *Form) ContextMap() map[string]any {
	return maps.Clone(f.context)
}

func (f *Form) RemoveContext(key string) {
	delete(f.context, key)
}

// Clone deep-copies the form: attributes, context, every field (rebound to
// the copy) and the layout, whose rows are rebuilt against the copied fields.
// Nested forms held in field options are shared.
func (f *Form) Clone() *Form {
	c := &Form{}
	c.Bag = f.CloneFor(c)
	c.context = maps.Clone(f.context)

	mapping := make(map[*Field]*Field, f.fields.Len())
	for _, field := range f.fields.Values() {
		copied := field.Clone()
		copied.form = c
		c.fields.Set(copied.name, copied)
		mapping[field] = copied
	}
	if f.layout != nil {
		c.layout = f.layout.cloneFor(c, mapping)
	}
	return c
}
