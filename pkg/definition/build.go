package definition

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/goliatone/go-formlayout/pkg/element"
	"github.com/goliatone/go-formlayout/pkg/form"
	"github.com/goliatone/go-formlayout/pkg/table"
)

var (
	// ErrNotFound is returned when a form or table name is not defined.
	ErrNotFound = errors.New("definition not found")
	// ErrCycle is returned when nested form references loop back.
	ErrCycle = errors.New("nested form cycle")
)

// BuildForm builds the named form: fields in definition order, the layout
// (when one is defined) and the validation rules. Fields referencing another
// form get it built and stored in their "form" option.
func (s *Store) BuildForm(name string) (*form.Form, error) {
	return s.buildForm(name, make(map[string]bool))
}

func (s *Store) buildForm(name string, visiting map[string]bool) (*form.Form, error) {
	def, ok := s.Form(name)
	if !ok {
		return nil, fmt.Errorf("definition: form %q: %w", name, ErrNotFound)
	}
	if visiting[name] {
		return nil, fmt.Errorf("definition: form %q: %w", name, ErrCycle)
	}
	visiting[name] = true
	defer delete(visiting, name)

	f := form.New()
	setAttrs(f.SetAttr, def.Attrs)
	if def.Context != nil {
		f.ReplaceContext(def.Context)
	}

	for _, fd := range def.Fields {
		field := form.NewField(fd.Name, fd.Type)
		setAttrs(field.SetAttr, fd.Attrs)
		if fd.Class != "" {
			field.SetClass(fd.Class)
		}
		if fd.Value != nil {
			field.SetValue(fd.Value)
		}
		if len(fd.Options) > 0 {
			field.SetOptions(fd.Options)
		}
		if fd.Help != "" {
			field.SetOption("help", element.SanitizedHTML(fd.Help))
		}
		if fd.Form != "" {
			nested, err := s.buildForm(fd.Form, visiting)
			if err != nil {
				return nil, fmt.Errorf("definition: form %q field %q: %w", name, fd.Name, err)
			}
			field.SetOption("form", nested)
		}
		f.AddField(field)
	}

	if len(def.Layout) > 0 {
		if err := f.SetLayoutArray(form.LayoutArray(def.Layout)); err != nil {
			return nil, fmt.Errorf("definition: form %q layout: %w", name, err)
		}
	}
	if len(def.Rules) > 0 {
		f.Validate(form.RuleSet(def.Rules))
	}
	if def.Disabled {
		f.Disable()
	}
	return f, nil
}

// BuildTable builds the named table. Column filters name form definitions and
// are built with BuildForm. A defined order is applied last, so it decides
// which columns end up visible.
func (s *Store) BuildTable(name string) (*table.Table, error) {
	def, ok := s.Table(name)
	if !ok {
		return nil, fmt.Errorf("definition: table %q: %w", name, ErrNotFound)
	}

	t := table.New()
	setAttrs(t.SetAttr, def.Attrs)

	for _, cd := range def.Columns {
		column := table.NewColumn(cd.Name)
		setAttrs(column.SetAttr, cd.Attrs)
		if cd.Sortable != nil {
			column.SetSortable(*cd.Sortable)
		}
		column.SetHidden(cd.Hidden)
		if cd.QuickFilter != nil {
			column.SetQuickFilter(*cd.QuickFilter)
		}
		if cd.Filter != "" {
			filter, err := s.BuildForm(cd.Filter)
			if err != nil {
				return nil, fmt.Errorf("definition: table %q column %q filter: %w", name, cd.Name, err)
			}
			column.SetFilter(filter)
		}
		t.AddColumn(column)
	}

	for _, bd := range def.Operations {
		button := element.NewButton(bd.Name)
		button.SetLabel(bd.Label)
		if bd.Icon != "" {
			button.SetIcon(bd.Icon)
		}
		if bd.Hidden {
			button.Hide()
		}
		setAttrs(button.SetAttr, bd.Attrs)
		t.AddOperation(button)
	}

	if len(def.Order) > 0 {
		t.SetOrder(def.Order)
	}
	return t, nil
}

// setAttrs applies values in sorted key order, keeping attributes already set
// on the element.
func setAttrs(set func(string, any), values map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(values)) {
		set(key, values[key])
	}
}
