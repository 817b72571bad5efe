package utils

func MapKeys[K comparable, V any](m map[K]V) []K {
	sl := make([]K, 0, len(m))
	for k := range m {
		sl = append(sl, k)
	}

	return sl
}

// SubtractMappings returns the entries of a that are absent from b or mapped
// to a different value in b: the minimal delta that, applied over b, yields a.
// SubtractMappings(a, a) is empty and SubtractMappings(a, nil) equals a.
func SubtractMappings[K, V comparable](a, b map[K]V) map[K]V {
	diff := make(map[K]V)
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			diff[k] = v
		}
	}

	return diff
}

// UnionKeys returns the union of the key sets of a and b, each key exactly
// once, in arbitrary order.
func UnionKeys[K comparable, V any](a, b map[K]V) []K {
	seen := make(map[K]struct{}, len(a)+len(b))
	keys := make([]K, 0, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}

	return keys
}
