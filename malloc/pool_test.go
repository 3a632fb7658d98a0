package malloc

import (
	"unsafe"
)

// offsetOf returns ptr's heap offset, for tests that need to compare or
// compute addresses the way the original C test-suite did via pointer
// arithmetic.
func offsetOf(a *Allocator, ptr unsafe.Pointer) int {
	base := uintptr(unsafe.Pointer(&a.heap[0]))
	return int(uintptr(ptr) - base)
}

func makeSizes(n int, f func(i int) int) []int {
	sizes := make([]int, n)
	for i := 0; i < n; i++ {
		sizes[i] = f(i)
	}
	return sizes
}
