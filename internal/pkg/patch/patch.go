package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise fallback.
// Used for partial-update semantics: unspecified fields keep their previous value.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
