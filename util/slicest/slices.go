package slicest

// Map

// Map converts every element of s with fn.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(v)
	}
	return result
}

// Reduce

// ReduceD reduces slice S to type U using explicit initial value.
// - D: Uses init parameter as starting accumulator.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}

// Filter

// Filter returns the elements for which keep reports true, in order.
func Filter[T any, S ~[]T](s S, keep func(T) bool) S {
	var result S
	for _, t := range s {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}

// MaxBy returns the largest value fn produces over s, or zero for an empty slice.
func MaxBy[T any, S ~[]T](s S, fn func(T) int) int {
	best := 0
	for i, t := range s {
		if v := fn(t); i == 0 || v > best {
			best = v
		}
	}
	return best
}
