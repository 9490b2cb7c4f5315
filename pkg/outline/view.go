package outline

import (
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formlayout/pkg/form"
	"github.com/goliatone/go-formlayout/pkg/table"
)

func layoutView(l *form.Layout) pongo2.Context {
	rows := l.Rows()
	views := make([]map[string]any, 0, len(rows))
	group, grouped := "", false

	for idx, row := range rows {
		changed := row.HasParent() != grouped || row.Parent() != group
		view := map[string]any{
			"number":   idx + 1,
			"title":    row.Title(),
			"hasTitle": row.HasTitle(),
			"group":    row.Parent(),
			"close":    changed && grouped,
			"open":     changed && row.HasParent(),
			"before":   row.SeparatorBefore(),
			"after":    row.SeparatorAfter(),
			"indent":   "",
		}
		if row.HasParent() {
			view["indent"] = "  "
		}

		widths := row.Widths()
		items := make([]map[string]any, 0, row.Len())
		for pos, item := range row.Items() {
			items = append(items, map[string]any{
				"label": item.Label(),
				"field": item.IsField(),
				"width": widths[pos],
			})
		}
		view["items"] = items
		views = append(views, view)
		group, grouped = row.Parent(), row.HasParent()
	}

	return pongo2.Context{
		"rows":      views,
		"closeLast": grouped,
	}
}

func tableView(t *table.Table) pongo2.Context {
	columns := make([]map[string]any, 0, len(t.Columns()))
	for _, column := range t.Columns() {
		columns = append(columns, map[string]any{
			"name":  column.Name(),
			"flags": strings.Join(columnFlags(column), ", "),
		})
	}

	operations := make([]map[string]any, 0)
	for _, button := range t.Operations(true) {
		operations = append(operations, map[string]any{
			"name":   button.Name(),
			"label":  button.Label(),
			"hidden": button.IsHidden(),
		})
	}

	return pongo2.Context{
		"columns":    columns,
		"operations": operations,
		"rows":       len(t.Rows()),
	}
}

func columnFlags(column *table.Column) []string {
	var flags []string
	if column.IsHidden() {
		flags = append(flags, "hidden")
	}
	if column.IsSortable() {
		flags = append(flags, "sortable")
	}
	if column.HasFilter() {
		flags = append(flags, "filter")
	}
	if column.HasMapper() {
		flags = append(flags, "mapped")
	}
	if expr, ok := column.QuickFilter(); ok {
		flags = append(flags, "quick="+expr)
	}
	return flags
}
