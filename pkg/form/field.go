package form

import "github.com/goliatone/go-formlayout/pkg/attrs"

const (
	attrType     = "type"
	attrValue    = "value"
	attrReadonly = "readonly"
	attrDisabled = "disabled"

	defaultFieldType = "text"
)

// Field is a single input. Its name is its identity within a Form. HTML
// attributes live in the embedded bag; renderer options live in a separate
// bag reachable through the Option methods.
type Field struct {
	attrs.Bag[*Field]

	name    string
	options attrs.Bag[*Field]
	form    *Form
}

// NewField creates a field. An empty type falls back to "text".
func NewField(name, typ string) *Field {
	f := &Field{name: name}
	f.Bind(f)
	f.options.Bind(f)
	if typ == "" {
		typ = defaultFieldType
	}
	f.SetAttr(attrType, typ)
	return f
}

func (f *Field) Name() string { return f.name }

// Type returns the type attribute, "text" when it is unset or not a string.
func (f *Field) Type() string {
	if typ, ok := f.Attr(attrType).(string); ok && typ != "" {
		return typ
	}
	return defaultFieldType
}

func (f *Field) SetType(typ string) { f.SetAttr(attrType, typ) }

func (f *Field) Value() any { return f.Attr(attrValue) }

func (f *Field) SetValue(value any) { f.SetAttr(attrValue, value) }

// Enable clears the readonly and disabled attributes.
func (f *Field) Enable() {
	f.DelAttr(attrReadonly)
	f.DelAttr(attrDisabled)
}

// Disable marks the field non-editable. Choice widgets are disabled, every
// other type is made readonly so the value is still submitted.
func (f *Field) Disable() {
	switch f.Type() {
	case "select", "multipleselect", "tags":
		f.SetAttr(attrDisabled, attrDisabled)
	default:
		f.SetAttr(attrReadonly, attrReadonly)
	}
}

// Option returns the resolved option value, or nil.
func (f *Field) Option(key string) any { return f.options.Attr(key) }

// OptionOr returns the resolved option value, or def when unset.
func (f *Field) OptionOr(key string, def any) any { return f.options.AttrOr(key, def) }

func (f *Field) HasOption(key string) bool { return f.options.HasAttr(key) }

// SetOption stores an option. attrs.Lazy[*Field] values are resolved with
// this field on every read.
func (f *Field) SetOption(key string, value any) { f.options.SetAttr(key, value) }

func (f *Field) SetOptions(options map[string]any) { f.options.SetAttrs(options) }

func (f *Field) DelOption(key string) { f.options.DelAttr(key) }

func (f *Field) DelOptions() { f.options.DelAttrs() }

// Options returns every option with lazy values resolved.
func (f *Field) Options() map[string]any { return f.options.Attrs() }

// Form returns the form the field is registered on, or nil.
func (f *Field) Form() *Form { return f.form }

// Layout returns the owning form's layout, or nil.
func (f *Field) Layout() *Layout {
	if f.form == nil {
		return nil
	}
	return f.form.Layout()
}

// Row returns the layout row currently holding the field, or nil.
func (f *Field) Row() *Row {
	layout := f.Layout()
	if layout == nil {
		return nil
	}
	return layout.RowOf(f)
}

// Width returns the display width assigned in the field's row.
func (f *Field) Width() (int, bool) {
	row := f.Row()
	if row == nil {
		return 0, false
	}
	return row.FieldWidth(f)
}

// SetWidth assigns the display width in the field's row. No-op when the
// field is not laid out.
func (f *Field) SetWidth(width int) {
	if row := f.Row(); row != nil {
		row.SetFieldWidth(f, width)
	}
}

// Index returns the position of the field inside its row.
func (f *Field) Index() (int, bool) {
	row := f.Row()
	if row == nil {
		return 0, false
	}
	return row.FieldIndex(f)
}

// Move relocates the field inside its row; see Row.MoveField.
func (f *Field) Move(position int) {
	if row := f.Row(); row != nil {
		row.MoveField(f, position)
	}
}

func (f *Field) MoveFirst() { f.Move(0) }

func (f *Field) MoveLast() {
	if row := f.Row(); row != nil {
		row.MoveField(f, row.Len())
	}
}

// MoveBefore places the field right before ref. Both fields must share a
// row, otherwise nothing happens.
func (f *Field) MoveBefore(ref *Field) {
	row, idx, ok := f.sibling(ref)
	if ok {
		row.MoveField(f, idx)
	}
}

// MoveAfter places the field right after ref. Both fields must share a row,
// otherwise nothing happens.
func (f *Field) MoveAfter(ref *Field) {
	row, idx, ok := f.sibling(ref)
	if ok {
		row.MoveField(f, idx+1)
	}
}

func (f *Field) sibling(ref *Field) (*Row, int, bool) {
	if ref == nil {
		return nil, 0, false
	}
	row := f.Row()
	if row == nil || ref.Row() != row {
		return nil, 0, false
	}
	idx, ok := row.FieldIndex(ref)
	return row, idx, ok
}

// Clone copies attributes and options into a new field that is not
// registered on any form.
func (f *Field) Clone() *Field {
	c := &Field{name: f.name}
	c.Bag = f.CloneFor(c)
	c.options = f.options.CloneFor(c)
	return c
}
