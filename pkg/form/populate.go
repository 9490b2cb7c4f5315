package form

import "github.com/goliatone/go-formlayout/internal/pathwalk"

// Populate copies values from data into the fields. Each field name is split
// on its brackets (`user[address][0]`) and walked through data, which may
// mix maps, slices and structs. A field whose path is missing or leads to nil
// keeps its current value.
func (f *Form) Populate(data any) {
	for _, field := range f.fields.Values() {
		segments := pathwalk.Split(field.Name())
		if len(segments) == 0 {
			continue
		}
		if value, ok := pathwalk.Walk(data, segments); ok {
			field.SetValue(value)
		}
	}
}
