package pointer

// Ref returns a pointer to a copy of v.
//
// It is handy for optional fields, like IssueDate: pointer.Ref(date).
func Ref[T any](v T) *T {
	return &v
}
