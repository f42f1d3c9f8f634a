//go:build wavesortdebug

package wavesort

import "unsafe"

// window is the wavesortdebug flavor of the unchecked kernel's view: the
// same API, with every index asserted before the raw access happens.
type window struct {
	base unsafe.Pointer
	n    int
}

// newWindow captures the base pointer of a non-empty slice.
func newWindow(a []int32) window {
	return window{base: unsafe.Pointer(&a[0]), n: len(a)}
}

func (w window) check(i int) {
	if i < 0 || i >= w.n {
		panic("wavesort: window index out of range")
	}
}

func (w window) get(i int) int32 {
	w.check(i)
	return *(*int32)(unsafe.Add(w.base, uintptr(i)*4))
}

func (w window) set(i int, v int32) {
	w.check(i)
	*(*int32)(unsafe.Add(w.base, uintptr(i)*4)) = v
}

func (w window) swap(i, j int) {
	w.check(i)
	w.check(j)
	pi := (*int32)(unsafe.Add(w.base, uintptr(i)*4))
	pj := (*int32)(unsafe.Add(w.base, uintptr(j)*4))
	*pi, *pj = *pj, *pi
}
