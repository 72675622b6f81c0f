package patch

// Coalesce returns *ptr, or fallback when ptr is nil. Optional request fields
// decode to nil pointers, so this is how absence becomes a zero value.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Ref returns a pointer to a copy of v.
func Ref[T any](v T) *T {
	return &v
}
