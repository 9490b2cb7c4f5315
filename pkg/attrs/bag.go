// Package attrs holds the attribute storage shared by every form and table
// element: an ordered key/value bag whose values may be deferred until read.
package attrs

import (
	"sort"

	"github.com/goliatone/go-formlayout/internal/ordered"
)

// Lazy is a deferred attribute value. It is invoked with the bag's owner every
// time the attribute is read.
type Lazy[O any] func(owner O) any

// Bag stores element attributes in insertion order. The zero value is ready
// to use; Bind must be called before lazy values can see their owner.
type Bag[O any] struct {
	owner   O
	entries ordered.Map[any]
}

// Bind sets the owner handed to lazy values.
func (b *Bag[O]) Bind(owner O) {
	b.owner = owner
}

// Attr returns the resolved value stored under key, or nil.
func (b *Bag[O]) Attr(key string) any {
	return b.AttrOr(key, nil)
}

// AttrOr returns the resolved value stored under key, or def when the key is
// absent. A default that is itself lazy is resolved too.
func (b *Bag[O]) AttrOr(key string, def any) any {
	value, ok := b.entries.Get(key)
	if !ok {
		value = def
	}
	return b.resolve(value)
}

// HasAttr reports whether key resolves to a non-nil value.
func (b *Bag[O]) HasAttr(key string) bool {
	return b.Attr(key) != nil
}

// SetAttr stores value under key. Values of type Lazy[O] or func(O) any are
// kept unevaluated until read.
func (b *Bag[O]) SetAttr(key string, value any) {
	b.entries.Set(key, value)
}

// SetAttrs replaces every attribute. Keys are stored in sorted order since Go
// maps carry no order of their own.
func (b *Bag[O]) SetAttrs(values map[string]any) {
	b.entries.Clear()
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.entries.Set(key, values[key])
	}
}

// DelAttr removes key.
func (b *Bag[O]) DelAttr(key string) {
	b.entries.Delete(key)
}

// DelAttrs removes every attribute.
func (b *Bag[O]) DelAttrs() {
	b.entries.Clear()
}

// AttrKeys returns the attribute keys in insertion order.
func (b *Bag[O]) AttrKeys() []string {
	return b.entries.Keys()
}

// Attrs returns every attribute with lazy values resolved.
func (b *Bag[O]) Attrs() map[string]any {
	out := make(map[string]any, b.entries.Len())
	for _, key := range b.entries.Keys() {
		out[key] = b.Attr(key)
	}
	return out
}

// CloneFor copies the entries into a new bag bound to owner. Lazy values are
// shared between both bags.
func (b *Bag[O]) CloneFor(owner O) Bag[O] {
	out := Bag[O]{entries: b.entries.Clone()}
	out.Bind(owner)
	return out
}

func (b *Bag[O]) resolve(value any) any {
	switch fn := value.(type) {
	case Lazy[O]:
		if fn == nil {
			return nil
		}
		return fn(b.owner)
	case func(O) any:
		if fn == nil {
			return nil
		}
		return fn(b.owner)
	default:
		return value
	}
}
