package ordered

// Map is a string-keyed map that remembers insertion order. Replacing the
// value of an existing key keeps its position, matching the assignment
// semantics callers expect from a name-keyed collection. The zero value is
// ready to use.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// Set stores value under key, appending the key when it is new.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key. Missing keys are ignored.
func (m *Map[V]) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for idx, existing := range m.keys {
		if existing == key {
			m.keys = append(m.keys[:idx:idx], m.keys[idx+1:]...)
			break
		}
	}
}

// Clear drops every entry.
func (m *Map[V]) Clear() {
	m.keys = nil
	m.values = nil
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in order.
func (m *Map[V]) Keys() []string {
	if len(m.keys) == 0 {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in key order.
func (m *Map[V]) Values() []V {
	if len(m.keys) == 0 {
		return nil
	}
	out := make([]V, 0, len(m.keys))
	for _, key := range m.keys {
		out = append(out, m.values[key])
	}
	return out
}

// Index returns the position of key.
func (m *Map[V]) Index(key string) (int, bool) {
	if !m.Has(key) {
		return 0, false
	}
	for idx, existing := range m.keys {
		if existing == key {
			return idx, true
		}
	}
	return 0, false
}

// Reorder moves the listed keys to the front in the given order. Unknown and
// repeated keys are skipped. The keys that were not listed keep their
// relative order after the listed ones and are returned to the caller.
func (m *Map[V]) Reorder(front []string) (rest []string) {
	seen := make(map[string]struct{}, len(front))
	keys := make([]string, 0, len(m.keys))
	for _, key := range front {
		if !m.Has(key) {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	for _, key := range m.keys {
		if _, listed := seen[key]; listed {
			continue
		}
		keys = append(keys, key)
		rest = append(rest, key)
	}
	m.keys = keys
	return rest
}

// Clone returns a shallow copy: keys and the value slots are copied, values
// themselves are shared.
func (m *Map[V]) Clone() Map[V] {
	var out Map[V]
	for _, key := range m.keys {
		out.Set(key, m.values[key])
	}
	return out
}
