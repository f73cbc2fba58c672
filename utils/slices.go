// Package utils provides small generic slice helpers shared across the
// module.
package utils

// AllDistinct returns true if all elements in s are distinct, and false
// otherwise.
func AllDistinct[V comparable](s []V) bool {
	m := make(map[V]struct{}, len(s))
	for _, si := range s {
		if _, exists := m[si]; exists {
			return false
		}
		m[si] = struct{}{}
	}
	return true
}
