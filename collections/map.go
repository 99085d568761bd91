package collections

// CopyMap creates a shallow copy of the input map. A nil map
// is copied as an empty one.
func CopyMap[Key comparable, Value any](in map[Key]Value) map[Key]Value {
	m := make(map[Key]Value, len(in))
	for k, v := range in {
		m[k] = v
	}
	return m
}

// MapKeys gets all keys of the input map as a slice, in no particular order.
func MapKeys[Key comparable, Value any](in map[Key]Value) []Key {
	r := make([]Key, 0, len(in))
	for k := range in {
		r = append(r, k)
	}
	return r
}
