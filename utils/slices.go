package utils

func Map[T1, T2 any](slice []T1, f func(T1) T2) []T2 {
	if slice == nil {
		return nil
	}

	result := make([]T2, len(slice))
	for i, e := range slice {
		result[i] = f(e)
	}

	return result
}

func Filter[T any](slice []T, f func(T) bool) []T {
	var result []T
	for _, e := range slice {
		if f(e) {
			result = append(result, e)
		}
	}

	return result
}

// NonNilSlice returns an empty slice in place of a nil one.
func NonNilSlice[T any](sl []T) []T {
	if sl == nil {
		return []T{}
	}

	return sl
}
