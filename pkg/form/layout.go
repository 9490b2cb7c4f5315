package form

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout arranges fields of one form into rows.
type Layout struct {
	form   *Form
	rows   []*Row
	member map[*Field]*Row

	group   string
	grouped bool
}

// NewLayout creates an empty layout for form. It is not attached; use
// Form.SetLayout for that.
func NewLayout(form *Form) *Layout {
	return &Layout{form: form, member: make(map[*Field]*Row)}
}

// FromArray builds a layout for form from its array form.
func FromArray(form *Form, data LayoutArray) (*Layout, error) {
	normalised, err := data.Normalize()
	if err != nil {
		return nil, err
	}
	layout := NewLayout(form)
	layout.load(normalised)
	return layout, nil
}

// Form returns the form whose fields the layout arranges.
func (l *Layout) Form() *Form { return l.form }

// Field returns the named field of the owning form.
func (l *Layout) Field(name string) (*Field, error) {
	if l.form == nil {
		return nil, fmt.Errorf("form: field %q: %w", name, ErrFieldNotFound)
	}
	return l.form.Field(name)
}

// AddRow builds a row from a single array entry and appends it:
//
//   - bool: a row whose separatorBefore is the value
//   - "group:" / ":": switches the active group, no row is created and the
//     returned row is nil
//   - other strings: a title-only row
//   - list of strings ([]string or []any): a field row
//
// Rows created here inherit the active group.
func (l *Layout) AddRow(value any) (*Row, error) {
	switch v := value.(type) {
	case bool:
		row := l.NewRow()
		row.separatorBefore = v
		return row, nil
	case string:
		if group, ok := groupMarker(v); ok {
			l.setGroup(group)
			return nil, nil
		}
		return l.NewRow(WithTitle(v)), nil
	}

	entries, err := normaliseEntries(value)
	if err != nil {
		return nil, fmt.Errorf("form: add row: %w", err)
	}
	row := l.NewRow()
	l.fillRow(row, entries)
	return row, nil
}

// NewRow appends an empty row configured by opts. The row starts in the
// active group; WithParent overrides it.
func (l *Layout) NewRow(opts ...RowOption) *Row {
	row := newRow(l)
	if l.grouped {
		row.SetParent(l.group)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(row)
		}
	}
	l.rows = append(l.rows, row)
	return row
}

// Rows returns the rows in display order.
func (l *Layout) Rows() []*Row {
	out := make([]*Row, len(l.rows))
	copy(out, l.rows)
	return out
}

// Row returns the row at index.
func (l *Layout) Row(index int) (*Row, bool) {
	if index < 0 || index >= len(l.rows) {
		return nil, false
	}
	return l.rows[index], true
}

// RowIndex returns the position of row. The boolean distinguishes "not in
// this layout" from position 0.
func (l *Layout) RowIndex(row *Row) (int, bool) {
	if row == nil {
		return 0, false
	}
	for idx, candidate := range l.rows {
		if candidate == row {
			return idx, true
		}
	}
	return 0, false
}

// RowByID returns the row with the given ID.
func (l *Layout) RowByID(id string) (*Row, bool) {
	for _, row := range l.rows {
		if row.id == id {
			return row, true
		}
	}
	return nil, false
}

// RowOf returns the row holding field, or nil.
func (l *Layout) RowOf(field *Field) *Row {
	return l.member[field]
}

// MoveRow relocates row using the same insertion-point rules as
// Row.MoveField. Rows of other layouts are ignored.
func (l *Layout) MoveRow(row *Row, position int) {
	if idx, ok := l.RowIndex(row); ok {
		l.rows = moveEntry(l.rows, idx, position)
	}
}

// RemoveRow removes row and releases the fields it held. Rows of other
// layouts are ignored.
func (l *Layout) RemoveRow(row *Row) {
	idx, ok := l.RowIndex(row)
	if !ok {
		return
	}
	l.rows = append(l.rows[:idx:idx], l.rows[idx+1:]...)
	for _, e := range row.items {
		if e.field != nil && l.member[e.field] == row {
			delete(l.member, e.field)
		}
	}
	row.layout = nil
}

// ToArray serialises the layout into its array form.
func (l *Layout) ToArray() LayoutArray {
	out := LayoutArray{}
	group, grouped := "", false
	for _, row := range l.rows {
		if row.hasParent != grouped || row.parent != group {
			out = append(out, row.parent+":")
			group, grouped = row.parent, row.hasParent
		}
		if row.separatorBefore {
			out = append(out, true)
		}
		if row.hasTitle {
			out = append(out, row.title)
		}
		if len(row.items) > 0 {
			entries := make([]string, 0, len(row.items))
			for _, e := range row.items {
				label := e.text
				if e.field != nil {
					label = e.field.Name()
				}
				if e.width > 0 {
					label += ":" + strconv.Itoa(e.width)
				}
				entries = append(entries, label)
			}
			out = append(out, entries)
		}
		if row.separatorAfter {
			out = append(out, true)
		}
	}
	return out
}

type pendingRow struct {
	separator bool
	title     string
	hasTitle  bool
}

func (p pendingRow) empty() bool {
	return !p.separator && !p.hasTitle
}

func (l *Layout) load(data LayoutArray) {
	var (
		pending pendingRow
		last    *Row
	)

	flush := func() {
		if !pending.empty() {
			row := l.NewRow()
			row.separatorBefore = pending.separator
			if pending.hasTitle {
				row.SetTitle(pending.title)
			}
		}
		pending = pendingRow{}
	}

	for _, item := range data {
		switch v := item.(type) {
		case bool:
			if !v {
				flush()
				l.NewRow()
				last = nil
				continue
			}
			if last != nil && !last.separatorAfter && pending.empty() {
				last.separatorAfter = true
				last = nil
				continue
			}
			if !pending.empty() {
				flush()
			}
			pending.separator = true
			last = nil
		case string:
			if group, ok := groupMarker(v); ok {
				flush()
				l.setGroup(group)
				last = nil
				continue
			}
			if pending.hasTitle {
				flush()
			}
			pending.title = v
			pending.hasTitle = true
			last = nil
		case []string:
			row := l.NewRow()
			row.separatorBefore = pending.separator
			if pending.hasTitle {
				row.SetTitle(pending.title)
			}
			pending = pendingRow{}
			l.fillRow(row, v)
			last = row
		}
	}
	flush()
}

func (l *Layout) fillRow(row *Row, entries []string) {
	for _, raw := range entries {
		if field, ok := l.lookup(raw); ok {
			_ = row.AddField(field, 0)
			continue
		}
		name, width := splitWidth(raw)
		if field, ok := l.lookup(name); ok {
			_ = row.AddField(field, width)
			continue
		}
		row.AddText(name, width)
	}
}

func (l *Layout) lookup(name string) (*Field, bool) {
	if l.form == nil {
		return nil, false
	}
	return l.form.fields.Get(name)
}

func (l *Layout) setGroup(group string) {
	l.group = group
	l.grouped = group != ""
}

func (l *Layout) replaceField(old, replacement *Field) {
	row := l.member[old]
	if row == nil {
		return
	}
	for idx := range row.items {
		if row.items[idx].field == old {
			row.items[idx].field = replacement
		}
	}
	delete(l.member, old)
	l.member[replacement] = row
}

func (l *Layout) dropField(field *Field) {
	row := l.member[field]
	if row == nil {
		return
	}
	if idx, ok := row.FieldIndex(field); ok {
		row.removeAt(idx)
	}
}

func (l *Layout) cloneFor(form *Form, fields map[*Field]*Field) *Layout {
	c := NewLayout(form)
	c.group, c.grouped = l.group, l.grouped
	for _, row := range l.rows {
		copied := newRow(c)
		copied.title, copied.hasTitle = row.title, row.hasTitle
		copied.parent, copied.hasParent = row.parent, row.hasParent
		copied.separatorBefore, copied.separatorAfter = row.separatorBefore, row.separatorAfter
		for _, e := range row.items {
			if e.field == nil {
				copied.items = append(copied.items, e)
				continue
			}
			field, ok := fields[e.field]
			if !ok {
				continue
			}
			copied.items = append(copied.items, entry{field: field, width: e.width})
			c.member[field] = copied
		}
		c.rows = append(c.rows, copied)
	}
	return c
}

// groupMarker reports whether s switches the active group and returns the
// group key ("" leaves the group).
func groupMarker(s string) (string, bool) {
	if !strings.HasSuffix(s, ":") {
		return "", false
	}
	return strings.TrimSuffix(s, ":"), true
}

// splitWidth separates a trailing ":width" from an entry. Entries without a
// positive numeric suffix are returned unchanged.
func splitWidth(raw string) (string, int) {
	idx := strings.LastIndex(raw, ":")
	if idx <= 0 {
		return raw, 0
	}
	width, err := strconv.Atoi(raw[idx+1:])
	if err != nil || width <= 0 {
		return raw, 0
	}
	return raw[:idx], width
}
