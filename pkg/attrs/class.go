package attrs

import "strings"

const classKey = "class"

// Class returns the space separated class list, or "" when unset.
func (b *Bag[O]) Class() string {
	class, _ := b.Attr(classKey).(string)
	return class
}

// SetClass stores class after dropping empty and repeated names. First
// occurrences keep their position.
func (b *Bag[O]) SetClass(class string) {
	b.SetAttr(classKey, strings.Join(uniqueClasses(strings.Fields(class)), " "))
}

// AddClass appends the classes in class that are not present yet.
func (b *Bag[O]) AddClass(class string) {
	b.SetClass(b.Class() + " " + class)
}

// RemoveClass drops every class listed in class.
func (b *Bag[O]) RemoveClass(class string) {
	drop := make(map[string]struct{})
	for _, name := range strings.Fields(class) {
		drop[name] = struct{}{}
	}
	kept := make([]string, 0)
	for _, name := range strings.Fields(b.Class()) {
		if _, remove := drop[name]; !remove {
			kept = append(kept, name)
		}
	}
	b.SetClass(strings.Join(kept, " "))
}

// HasClass reports whether every class listed in class is present.
func (b *Bag[O]) HasClass(class string) bool {
	current := make(map[string]struct{})
	for _, name := range strings.Fields(b.Class()) {
		current[name] = struct{}{}
	}
	for _, name := range strings.Fields(class) {
		if _, ok := current[name]; !ok {
			return false
		}
	}
	return true
}

func uniqueClasses(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
