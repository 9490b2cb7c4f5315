package table

import (
	"github.com/goliatone/go-formlayout/internal/pathwalk"
	"github.com/goliatone/go-formlayout/pkg/attrs"
	"github.com/goliatone/go-formlayout/pkg/element"
)

// Row wraps one record of table data. The data is opaque to the table; keys
// are resolved against maps, slices and structs on demand.
type Row struct {
	attrs.Bag[*Row]

	data       any
	operations element.ButtonSet
}

// NewRow wraps data.
func NewRow(data any) *Row {
	r := &Row{data: data}
	r.Bind(r)
	return r
}

func (r *Row) Data() any { return r.data }

func (r *Row) SetData(data any) { r.data = data }

// Lookup reads key from the row data. Bracketed keys (`user[name]`) descend
// into nested values. It reports false when the key is missing or nil.
func (r *Row) Lookup(key string) (any, bool) {
	segments := pathwalk.Split(key)
	if len(segments) == 0 {
		return nil, false
	}
	return pathwalk.Walk(r.data, segments)
}

// Get is Lookup without the presence flag: missing keys read as nil.
func (r *Row) Get(key string) any {
	value, _ := r.Lookup(key)
	return value
}

// AddOperation registers a row-level operation, replacing one with the same
// name in place.
func (r *Row) AddOperation(button *element.Button) {
	r.operations.Add(button)
}

func (r *Row) RemoveOperation(name string) {
	r.operations.Remove(name)
}

func (r *Row) Operation(name string) (*element.Button, bool) {
	return r.operations.Get(name)
}

func (r *Row) HasOperation(name string, includeHidden bool) bool {
	return r.operations.Has(name, includeHidden)
}

// Operations returns the row operations in insertion order, skipping hidden
// ones unless includeHidden is set.
func (r *Row) Operations(includeHidden bool) []*element.Button {
	return r.operations.List(includeHidden)
}

func (r *Row) SetOperations(buttons ...*element.Button) {
	r.operations.Set(buttons...)
}
