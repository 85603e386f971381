package core

import "maps"

// CloneMap returns a shallow copy of m. A nil map yields nil.
func CloneMap[M ~map[K]V, K comparable, V any](m M) M {
	return maps.Clone(m)
}
