package table

import (
	"github.com/goliatone/go-formlayout/pkg/attrs"
	"github.com/goliatone/go-formlayout/pkg/form"
)

// Mapper derives the displayed value of a column from a row.
type Mapper func(row *Row) any

// Column describes one table column. Its name is its identity in the table
// and the default key used to read row data.
type Column struct {
	attrs.Bag[*Column]

	name        string
	sortable    bool
	hidden      bool
	filter      *form.Form
	mapper      Mapper
	quickFilter string
	hasQuick    bool
}

// NewColumn creates a visible, sortable column.
func NewColumn(name string) *Column {
	c := &Column{name: name, sortable: true}
	c.Bind(c)
	return c
}

func (c *Column) Name() string { return c.name }

func (c *Column) IsSortable() bool { return c.sortable }

func (c *Column) SetSortable(sortable bool) { c.sortable = sortable }

func (c *Column) IsHidden() bool { return c.hidden }

func (c *Column) SetHidden(hidden bool) { c.hidden = hidden }

func (c *Column) Show() { c.hidden = false }

func (c *Column) Hide() { c.hidden = true }

// Filter returns the form used to filter the column, or nil.
func (c *Column) Filter() *form.Form { return c.filter }

func (c *Column) HasFilter() bool { return c.filter != nil }

// SetFilter attaches a filter form. nil removes it.
func (c *Column) SetFilter(filter *form.Form) { c.filter = filter }

func (c *Column) Mapper() Mapper { return c.mapper }

func (c *Column) HasMapper() bool { return c.mapper != nil }

// SetMapper installs fn as the value mapper. nil restores direct lookups.
func (c *Column) SetMapper(fn Mapper) { c.mapper = fn }

// QuickFilter returns the quick-filter expression and whether one is set.
// An empty expression is a valid setting.
func (c *Column) QuickFilter() (string, bool) { return c.quickFilter, c.hasQuick }

func (c *Column) SetQuickFilter(expr string) {
	c.quickFilter = expr
	c.hasQuick = true
}

func (c *Column) ClearQuickFilter() {
	c.quickFilter = ""
	c.hasQuick = false
}

// Value returns what the column displays for row: the mapper result when a
// mapper is installed, the row value stored under the column name otherwise.
func (c *Column) Value(row *Row) any {
	if row == nil {
		return nil
	}
	if c.mapper != nil {
		return c.mapper(row)
	}
	return row.Get(c.name)
}
