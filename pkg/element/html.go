package element

// HTML marks a string as markup so templating code can emit it without
// escaping. It is a value object; the model never parses it.
type HTML struct {
	data string
}

// NewHTML wraps raw verbatim. Use it only for markup produced by trusted code.
func NewHTML(raw string) HTML {
	return HTML{data: raw}
}

// SanitizedHTML wraps raw after stripping everything outside the
// user-generated-content policy (links, formatting, lists, tables).
func SanitizedHTML(raw string) HTML {
	return HTML{data: markupSanitizer().Sanitize(raw)}
}

func (h HTML) String() string {
	return h.data
}

// IsEmpty reports whether the wrapped markup is empty.
func (h HTML) IsEmpty() bool {
	return h.data == ""
}
