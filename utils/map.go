package utils

// Map applies fn to every element of src and returns the resulting slice.
func Map[T, U any](src []T, fn func(T) U) []U {
	if src == nil {
		return nil
	}
	result := make([]U, len(src))
	for i, item := range src {
		result[i] = fn(item)
	}
	return result
}

func Ptr[T any](value T) *T {
	return &value
}
