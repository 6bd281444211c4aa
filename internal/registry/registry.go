// Package registry provides a read-only keyed lookup table with an explicit
// fallback value for absent keys. Absence of a key is normal input, not an
// error, so lookups never fail.
package registry

// Table is an immutable key/value collection. The fallback must be a valid
// domain sentinel of the value type, never a zero placeholder the caller
// cannot safely use.
type Table[K comparable, V any] struct {
	values   map[K]V
	fallback V
}

// New builds a table from the provided entries. The map is copied so later
// mutation of the argument cannot affect in-flight computations.
func New[K comparable, V any](values map[K]V, fallback V) *Table[K, V] {
	copied := make(map[K]V, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Table[K, V]{values: copied, fallback: fallback}
}

// Get returns the value for key and whether it was present.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if t == nil {
		var zero V
		return zero, false
	}
	v, ok := t.values[key]
	return v, ok
}

// GetOrDefault returns the value for key, or the fallback when absent.
func (t *Table[K, V]) GetOrDefault(key K) V {
	if t == nil {
		var zero V
		return zero
	}
	if v, ok := t.values[key]; ok {
		return v
	}
	return t.fallback
}

// Len reports the number of registered entries, excluding the fallback.
func (t *Table[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.values)
}
