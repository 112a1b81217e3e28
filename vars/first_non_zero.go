package vars

import "slices"

// FirstNonZero returns the first value that differs from the zero value of T.
func FirstNonZero[T comparable](values ...T) (ret T) {
	i := slices.IndexFunc(values, func(v T) bool {
		return v != ret
	})
	if i < 0 {
		return
	}
	return values[i]
}
