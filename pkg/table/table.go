// Package table models data tables: name-keyed columns whose key order is the
// display order, rows wrapping opaque data, and the operations offered for
// the table and for each row.
package table

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formlayout/internal/ordered"
	"github.com/goliatone/go-formlayout/pkg/attrs"
	"github.com/goliatone/go-formlayout/pkg/element"
)

// ErrColumnNotFound is returned when a column name is not registered.
var ErrColumnNotFound = errors.New("column not found")

// Table owns columns, rows and table-level operations.
type Table struct {
	attrs.Bag[*Table]

	columns    ordered.Map[*Column]
	rows       []*Row
	operations element.ButtonSet
}

// New creates a table with the given columns.
func New(columns ...*Column) *Table {
	t := &Table{}
	t.Bind(t)
	t.SetColumns(columns...)
	return t
}

// AddColumn registers column. A column with the same name is replaced in
// place.
func (t *Table) AddColumn(column *Column) {
	if column == nil {
		return
	}
	t.columns.Set(column.Name(), column)
}

func (t *Table) HasColumn(name string) bool {
	return t.columns.Has(name)
}

// Column returns the named column or an error wrapping ErrColumnNotFound.
func (t *Table) Column(name string) (*Column, error) {
	column, ok := t.columns.Get(name)
	if !ok {
		return nil, fmt.Errorf("table: column %q: %w", name, ErrColumnNotFound)
	}
	return column, nil
}

// RemoveColumn drops the named column. Unknown names are ignored.
func (t *Table) RemoveColumn(name string) {
	t.columns.Delete(name)
}

// Columns returns every column, hidden ones included, in display order.
func (t *Table) Columns() []*Column {
	return t.columns.Values()
}

// VisibleColumns returns the columns that are not hidden, in display order.
func (t *Table) VisibleColumns() []*Column {
	all := t.columns.Values()
	visible := make([]*Column, 0, len(all))
	for _, column := range all {
		if !column.IsHidden() {
			visible = append(visible, column)
		}
	}
	return visible
}

// SetColumns replaces every column.
func (t *Table) SetColumns(columns ...*Column) {
	t.columns.Clear()
	for _, column := range columns {
		t.AddColumn(column)
	}
}

// SetOrder puts the named columns first, in the given order, and shows them.
// Columns left out are hidden and kept after the named ones in their previous
// relative order; they are never removed. Unknown and repeated names are
// ignored.
func (t *Table) SetOrder(names []string) {
	rest := t.columns.Reorder(names)
	for _, name := range names {
		if column, ok := t.columns.Get(name); ok {
			column.Show()
		}
	}
	for _, name := range rest {
		column, _ := t.columns.Get(name)
		column.Hide()
	}
}

// Order returns the column names in display order, hidden ones included.
func (t *Table) Order() []string {
	return t.columns.Keys()
}

func (t *Table) AddRow(row *Row) {
	if row == nil {
		return
	}
	t.rows = append(t.rows, row)
}

// Rows returns the rows in insertion order.
func (t *Table) Rows() []*Row {
	out := make([]*Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// SetRows replaces every row.
func (t *Table) SetRows(rows ...*Row) {
	t.rows = nil
	for _, row := range rows {
		t.AddRow(row)
	}
}

// AddOperation registers a table-level operation, replacing one with the same
// name in place.
func (t *Table) AddOperation(button *element.Button) {
	t.operations.Add(button)
}

func (t *Table) RemoveOperation(name string) {
	t.operations.Remove(name)
}

// Operation returns the named operation, hidden or not.
func (t *Table) Operation(name string) (*element.Button, bool) {
	return t.operations.Get(name)
}

// HasOperation reports whether name is registered. Hidden operations only
// count when includeHidden is set.
func (t *Table) HasOperation(name string, includeHidden bool) bool {
	return t.operations.Has(name, includeHidden)
}

// Operations returns the operations in insertion order, skipping hidden ones
// unless includeHidden is set.
func (t *Table) Operations(includeHidden bool) []*element.Button {
	return t.operations.List(includeHidden)
}

func (t *Table) SetOperations(buttons ...*element.Button) {
	t.operations.Set(buttons...)
}
