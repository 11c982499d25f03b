package gemmt

import "github.com/ajroetker/go-highway/hwy"

// view is a non-owning column-major window over caller storage.
// Element (i, j) lives at data[i+j*ld]. Narrowing is slice arithmetic
// over the parent's storage; nothing is copied and the leading
// dimension never changes.
type view[T hwy.Floats] struct {
	data []T
	ld   int
}

// shift returns the sub-view whose (0, 0) element is (i, j) of v.
// With an empty contraction (k == 0) an operand slice can be shorter
// than the computed offset; the offset is clamped so the resulting
// empty view is still legal, mirroring pointer arithmetic that is
// formed but never dereferenced.
func (v view[T]) shift(i, j int) view[T] {
	off := min(i+j*v.ld, len(v.data))
	return view[T]{data: v.data[off:], ld: v.ld}
}
