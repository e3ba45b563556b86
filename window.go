package coca

import (
	"iter"
	"slices"
)

// Window returns a lazy sequence of sliding windows of length size over
// seq. One window is yielded per element of seq, so the output has the
// same length as the input; until size elements have been seen the
// leading slots hold the zero value of T (nil for pointer types). Each
// yielded slice is freshly allocated and safe to retain.
//
// The returned sequence is single-use whenever seq is; re-invoke to
// traverse again.
func Window[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		buf := make([]T, size)
		for v := range seq {
			copy(buf, buf[1:])
			buf[size-1] = v
			if !yield(slices.Clone(buf)) {
				return
			}
		}
	}
}
