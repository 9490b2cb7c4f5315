// Package definition loads form and table definition documents and builds
// form.Form and table.Table values from them. Documents are JSON, YAML or
// TOML files holding two top-level maps, `forms` and `tables`, keyed by name.
// Names must be unique across every file of a filesystem.
//
// A form definition lists its fields in display order and may carry a layout
// in array form plus validation rules keyed by field path:
//
//	forms:
//	  signup:
//	    fields:
//	      - {name: email, type: email}
//	      - {name: password, type: password}
//	    layout:
//	      - "Account:"
//	      - ["email:6", "password:6"]
//	    rules:
//	      email: [{kind: required}]
//
// Table definitions list columns, an optional display order and operations;
// a column filter names a form definition.
package definition
