//go:build !wavesortdebug

package wavesort

import "unsafe"

// window is a raw view of an int32 slice for the unchecked kernel. Element
// access elides bounds checks entirely; build with the wavesortdebug tag to
// get a flavor that asserts every index. Nothing outside the unchecked
// kernel touches this type.
type window struct {
	base unsafe.Pointer
	n    int
}

// newWindow captures the base pointer of a non-empty slice.
func newWindow(a []int32) window {
	return window{base: unsafe.Pointer(&a[0]), n: len(a)}
}

func (w window) get(i int) int32 {
	return *(*int32)(unsafe.Add(w.base, uintptr(i)*4))
}

func (w window) set(i int, v int32) {
	*(*int32)(unsafe.Add(w.base, uintptr(i)*4)) = v
}

func (w window) swap(i, j int) {
	pi := (*int32)(unsafe.Add(w.base, uintptr(i)*4))
	pj := (*int32)(unsafe.Add(w.base, uintptr(j)*4))
	*pi, *pj = *pj, *pi
}
