// Package api declares the interface any fixed-capacity block-pool
// allocator in this repository must satisfy, so that callers can depend
// on the interface rather than choosing between malloc.Allocator and
// concurrent.SafeAllocator at every call site.
package api

import (
	"unsafe"

	"github.com/premwong/pool-allocator/malloc"
)

// Allocator is satisfied by *malloc.Allocator and by
// *concurrent.SafeAllocator.
type Allocator interface {
	// Init partitions the heap into len(sizes) size classes. It returns
	// false, and changes nothing (an allocator never initialized stays
	// unusable, one initialized before keeps its previous layout), if
	// sizes is empty or too long, any size is out of range, or the layout
	// cannot fit the heap.
	Init(sizes []int) bool

	// Alloc returns a pointer to n usable bytes, or nil if n is zero,
	// exceeds the largest configured class, or every class large
	// enough to serve it is exhausted.
	Alloc(n int) unsafe.Pointer

	// Free returns ptr, previously obtained from Alloc and not freed
	// since, to its owning class's free list.
	Free(ptr unsafe.Pointer)

	// Stats reports per-class layout and occupancy, largest class
	// first.
	Stats() []malloc.ClassStats
}
