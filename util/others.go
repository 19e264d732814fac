package util

func UseOtherIfNil[T comparable](value interface{}, other T) interface{} {
	if value == nil {
		return other
	}
	return value
}

// MapSlice applies f to every element of s.
func MapSlice[T any, R any](s []T, f func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}
