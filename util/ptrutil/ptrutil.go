package ptrutil

func ToPtr[T any](v T) *T {
	return &v
}

func Clone[T any](v *T) *T {
	if v == nil {
		return nil
	}

	clone := *v
	return &clone
}

// OrDefault returns a copy of v when it is set, otherwise a pointer to def. The result never
// aliases v so callers may hand it out freely.
func OrDefault[T any](v *T, def T) *T {
	if v != nil {
		return Clone(v)
	}
	return &def
}
