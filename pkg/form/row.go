package form

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Item is one entry of a row: either a field reference or a text label.
type Item struct {
	Field *Field
	Text  string
}

// IsField reports whether the item references a field.
func (i Item) IsField() bool { return i.Field != nil }

// Label returns the field name for field items and the text otherwise.
func (i Item) Label() string {
	if i.Field != nil {
		return i.Field.Name()
	}
	return i.Text
}

// entry keeps an item and its width together so the two can never drift
// apart across inserts and removals. A width of 0 means "unset".
type entry struct {
	field *Field
	text  string
	width int
}

// Row is an ordered group of items sharing presentation metadata.
type Row struct {
	id     string
	layout *Layout
	items  []entry

	title           string
	hasTitle        bool
	parent          string
	hasParent       bool
	separatorBefore bool
	separatorAfter  bool
}

// RowOption configures a row created through Layout.NewRow.
type RowOption func(*Row)

// WithTitle sets the row title.
func WithTitle(title string) RowOption {
	return func(r *Row) { r.SetTitle(title) }
}

// WithSeparatorBefore marks a separator above the row.
func WithSeparatorBefore() RowOption {
	return func(r *Row) { r.separatorBefore = true }
}

// WithSeparatorAfter marks a separator below the row.
func WithSeparatorAfter() RowOption {
	return func(r *Row) { r.separatorAfter = true }
}

// WithParent tags the row with a group key. An empty key clears it.
func WithParent(parent string) RowOption {
	return func(r *Row) { r.SetParent(parent) }
}

func newRow(layout *Layout) *Row {
	return &Row{id: uuid.NewString(), layout: layout}
}

// ID returns an identifier that stays stable for the lifetime of the row.
func (r *Row) ID() string { return r.id }

// Layout returns the owning layout, or nil once the row was removed.
func (r *Row) Layout() *Layout { return r.layout }

// Form returns the form of the owning layout, or nil.
func (r *Row) Form() *Form {
	if r.layout == nil {
		return nil
	}
	return r.layout.form
}

// Items returns the row items in display order.
func (r *Row) Items() []Item {
	out := make([]Item, len(r.items))
	for idx, e := range r.items {
		out[idx] = Item{Field: e.field, Text: e.text}
	}
	return out
}

// Widths returns the item widths, index-aligned with Items. 0 means unset.
func (r *Row) Widths() []int {
	out := make([]int, len(r.items))
	for idx, e := range r.items {
		out[idx] = e.width
	}
	return out
}

// Len returns the number of items.
func (r *Row) Len() int { return len(r.items) }

// HasField reports whether field is one of the row items.
func (r *Row) HasField(field *Field) bool {
	_, ok := r.FieldIndex(field)
	return ok
}

// HasFieldName reports whether a field with the given name is in the row.
func (r *Row) HasFieldName(name string) bool {
	_, ok := r.FieldIndexByName(name)
	return ok
}

// HasText reports whether text is one of the row's text items.
func (r *Row) HasText(text string) bool {
	_, ok := r.textIndex(text)
	return ok
}

// Field returns the named field when it is in the row.
func (r *Row) Field(name string) (*Field, bool) {
	idx, ok := r.FieldIndexByName(name)
	if !ok {
		return nil, false
	}
	return r.items[idx].field, true
}

// FieldIndex returns the position of field. The boolean distinguishes "not
// in this row" from a legitimate position 0.
func (r *Row) FieldIndex(field *Field) (int, bool) {
	if field == nil {
		return 0, false
	}
	for idx, e := range r.items {
		if e.field == field {
			return idx, true
		}
	}
	return 0, false
}

// FieldIndexByName returns the position of the field registered under name.
func (r *Row) FieldIndexByName(name string) (int, bool) {
	for idx, e := range r.items {
		if e.field != nil && e.field.Name() == name {
			return idx, true
		}
	}
	return 0, false
}

// FieldWidth returns the width of field. It reports false when the field is
// not in the row or has no width.
func (r *Row) FieldWidth(field *Field) (int, bool) {
	idx, ok := r.FieldIndex(field)
	if !ok || r.items[idx].width == 0 {
		return 0, false
	}
	return r.items[idx].width, true
}

// SetFieldWidth assigns the width of field. Values below 1 clear it.
func (r *Row) SetFieldWidth(field *Field, width int) {
	if idx, ok := r.FieldIndex(field); ok {
		r.items[idx].width = max(width, 0)
	}
}

// TextWidth returns the width of the first text item equal to text.
func (r *Row) TextWidth(text string) (int, bool) {
	idx, ok := r.textIndex(text)
	if !ok || r.items[idx].width == 0 {
		return 0, false
	}
	return r.items[idx].width, true
}

// SetTextWidth assigns the width of the first text item equal to text.
func (r *Row) SetTextWidth(text string, width int) {
	if idx, ok := r.textIndex(text); ok {
		r.items[idx].width = max(width, 0)
	}
}

// AddField appends field with the given width (0 for none). A field already
// placed in a row of the same layout, this one included, is detached from it
// first.
func (r *Row) AddField(field *Field, width int) error {
	if field == nil {
		return fmt.Errorf("form: add field: %w", ErrUnknownField)
	}
	if r.layout != nil && field.form != r.layout.form {
		return fmt.Errorf("form: add field %q: %w", field.Name(), ErrForeignField)
	}

	if r.layout != nil {
		if current := r.layout.RowOf(field); current != nil {
			idx, _ := current.FieldIndex(field)
			current.removeAt(idx)
		}
	} else if idx, ok := r.FieldIndex(field); ok {
		r.removeAt(idx)
	}

	r.items = append(r.items, entry{field: field, width: max(width, 0)})
	if r.layout != nil {
		r.layout.member[field] = r
	}
	return nil
}

// AddFieldByName appends the field registered on the owning form under name.
func (r *Row) AddFieldByName(name string, width int) error {
	form := r.Form()
	if form == nil || !form.HasField(name) {
		return fmt.Errorf("form: add field %q: %w", name, ErrUnknownField)
	}
	field, _ := form.fields.Get(name)
	return r.AddField(field, width)
}

// AddText appends a text label. Texts carry no identity and may repeat.
func (r *Row) AddText(text string, width int) {
	r.items = append(r.items, entry{text: text, width: max(width, 0)})
}

// RemoveField removes the first field item named name.
func (r *Row) RemoveField(name string) {
	if idx, ok := r.FieldIndexByName(name); ok {
		r.removeAt(idx)
	}
}

// RemoveText removes the first text item equal to text.
func (r *Row) RemoveText(text string) {
	if idx, ok := r.textIndex(text); ok {
		r.removeAt(idx)
	}
}

// MoveField relocates field inside the row. position is an insertion point
// in the current sequence, clamped into [0, Len()]: 0 moves the field first,
// Len() moves it last, and the index of another item places the field right
// before it. The width travels with the field. Unknown fields are ignored.
func (r *Row) MoveField(field *Field, position int) {
	if idx, ok := r.FieldIndex(field); ok {
		r.items = moveEntry(r.items, idx, position)
	}
}

// MoveText relocates the first text item equal to text, like MoveField.
func (r *Row) MoveText(text string, position int) {
	if idx, ok := r.textIndex(text); ok {
		r.items = moveEntry(r.items, idx, position)
	}
}

func (r *Row) Title() string { return r.title }

func (r *Row) HasTitle() bool { return r.hasTitle }

func (r *Row) SetTitle(title string) {
	r.title = title
	r.hasTitle = true
}

func (r *Row) ClearTitle() {
	r.title = ""
	r.hasTitle = false
}

// Parent returns the group key, "" when the row is not grouped.
func (r *Row) Parent() string { return r.parent }

func (r *Row) HasParent() bool { return r.hasParent }

// SetParent tags the row with a group key. An empty key clears the group.
func (r *Row) SetParent(parent string) {
	if parent == "" {
		r.ClearParent()
		return
	}
	r.parent = parent
	r.hasParent = true
}

func (r *Row) ClearParent() {
	r.parent = ""
	r.hasParent = false
}

func (r *Row) SeparatorBefore() bool { return r.separatorBefore }

func (r *Row) SetSeparatorBefore(separator bool) { r.separatorBefore = separator }

func (r *Row) SeparatorAfter() bool { return r.separatorAfter }

func (r *Row) SetSeparatorAfter(separator bool) { r.separatorAfter = separator }

// Index returns the position of the row inside its layout.
func (r *Row) Index() (int, bool) {
	if r.layout == nil {
		return 0, false
	}
	return r.layout.RowIndex(r)
}

// Move relocates the row inside its layout; see Layout.MoveRow.
func (r *Row) Move(position int) {
	if r.layout != nil {
		r.layout.MoveRow(r, position)
	}
}

func (r *Row) MoveFirst() { r.Move(0) }

func (r *Row) MoveLast() {
	if r.layout != nil {
		r.layout.MoveRow(r, len(r.layout.rows))
	}
}

// MoveBefore places the row right before ref.
func (r *Row) MoveBefore(ref *Row) {
	if r.layout == nil {
		return
	}
	if idx, ok := r.layout.RowIndex(ref); ok {
		r.layout.MoveRow(r, idx)
	}
}

// MoveAfter places the row right after ref.
func (r *Row) MoveAfter(ref *Row) {
	if r.layout == nil {
		return
	}
	if idx, ok := r.layout.RowIndex(ref); ok {
		r.layout.MoveRow(r, idx+1)
	}
}

// Remove detaches the row from its layout.
func (r *Row) Remove() {
	if r.layout != nil {
		r.layout.RemoveRow(r)
	}
}

func (r *Row) textIndex(text string) (int, bool) {
	for idx, e := range r.items {
		if e.field == nil && e.text == text {
			return idx, true
		}
	}
	return 0, false
}

func (r *Row) removeAt(idx int) {
	removed := r.items[idx]
	r.items = slices.Delete(r.items, idx, idx+1)
	if removed.field != nil && r.layout != nil && r.layout.member[removed.field] == r {
		delete(r.layout.member, removed.field)
	}
}

// moveEntry extracts the element at idx and reinserts it at the insertion
// point position of the original sequence.
func moveEntry[T any](items []T, idx, position int) []T {
	position = min(max(position, 0), len(items))
	if position == idx || position == idx+1 {
		return items
	}
	moved := items[idx]
	items = slices.Delete(items, idx, idx+1)
	if position > idx {
		position--
	}
	return slices.Insert(items, position, moved)
}
