// Package form models HTML forms on the server side: a Form owns its Fields,
// and an optional Layout arranges a subset of them, plus free-standing text
// labels, into Rows. Renderers consume the structure; nothing here produces
// markup.
//
// A Layout serialises to a compact array (LayoutArray) whose entries are,
// positionally:
//
//   - bool: a separator marker. `true` directly after a field row sets that
//     row's separatorAfter, otherwise it sets separatorBefore on the next row.
//   - string ending in ":": switches the active group for the rows that
//     follow (":" alone leaves the group).
//   - any other string: a row title.
//   - list of strings: a field row. Each entry is `name` or `name:width`;
//     names of registered fields bind the Field, anything else is text.
//
// FromArray and (*Layout).ToArray are inverse for every array ToArray can
// produce, which keeps layouts stored in older configuration payloads valid.
//
// Membership of a Field in a Row is tracked by the Layout, so Field.Row and
// Field.Index never scan the rows. A Field sits in at most one Row of a
// Layout: adding it to another Row detaches it first.
package form
