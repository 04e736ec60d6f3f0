package mocks

// CallLog records arguments passed to a mocked method, one entry per call.
type CallLog[T any] []T

func (l CallLog[T]) Times() uint {
	return uint(len(l))
}

// Last returns the arguments of the latest call.
//
// It panics when there are no calls.
func (l CallLog[T]) Last() T {
	if len(l) == 0 {
		panic("no calls are recorded")
	}
	return l[len(l)-1]
}
