package malloc

import (
	"sort"
	"unsafe"
)

// partition describes one size class: the block size the caller
// requested, the byte range of the heap it occupies, and the head of its
// free list (a payload offset, 0 meaning empty).
type partition struct {
	size  int    // requested block size, in payload bytes
	start int    // heap offset where this partition begins (a header byte)
	end   int    // heap offset, exclusive, where this partition ends
	head  uint16 // payload offset of the first free block, 0 if exhausted
}

// Allocator is a fixed-capacity segregated block-pool allocator over a
// single HeapSize-byte backing store. The zero value is not ready for
// use; call NewAllocator and then Init.
//
// Allocator is not safe for concurrent use -- see
// github.com/premwong/pool-allocator/concurrent for a mutex-guarded
// wrapper.
type Allocator struct {
	heap       [HeapSize]byte
	partitions []partition
}

// NewAllocator returns an Allocator with no size classes configured.
// Alloc will always return nil until Init succeeds.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Init partitions the heap into len(sizes) size classes, sorted
// descending by block size, and threads each partition's free list.
// It returns false -- leaving the allocator exactly as it was before
// the call failed to be observable, i.e. unusable until a later
// successful Init -- if sizes is empty or too long, any size is out of
// range, or the layout cannot fit the heap.
//
// Calling Init again discards the previous layout and silently
// invalidates every pointer returned by a prior Alloc.
func (a *Allocator) Init(sizes []int) bool {
	n := len(sizes)
	if n == 0 || n > MaxClasses {
		return false
	}
	for _, s := range sizes {
		if s < 1 || s > HeapSize-HeaderLength {
			return false
		}
	}

	sorted := make([]int, n)
	copy(sorted, sizes)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	// Compute the whole layout -- every class's byte range -- before
	// writing a single header. A later class can still fail the fit
	// check; committing headers as each class is sized would otherwise
	// leave a's live heap and partition table straddling the old and
	// new layouts if that happens.
	partitions := make([]partition, n)
	remaining := HeapSize
	cursor := 0
	for i, size := range sorted {
		stride := size + HeaderLength
		equalShare := remaining / (n - i)
		partitionBytes := equalShare - (equalShare % stride)
		if stride > partitionBytes {
			partitionBytes = stride
		}
		if partitionBytes > remaining {
			return false
		}

		end := cursor + partitionBytes
		partitions[i] = partition{
			size:  size,
			start: cursor,
			end:   end,
			head:  uint16(cursor + HeaderLength),
		}
		cursor = end
		remaining = HeapSize - cursor
	}

	for i := range partitions {
		p := &partitions[i]
		stride := p.size + HeaderLength
		for off := p.start; off < p.end; off += stride {
			nextPayload := off + stride + HeaderLength
			var next uint16
			if nextPayload < p.end && nextPayload <= 0xffff {
				next = uint16(nextPayload)
			}
			writeHeader(a.heap[:], off, next, uint8(i))
		}
	}

	a.partitions = partitions
	return true
}

// selectClass returns the index of the smallest non-empty partition
// whose block size is at least n, or -1 if no such partition exists.
// Partitions are stored largest-first, so the scan walks from the
// smallest (last) index up to the largest (first).
func (a *Allocator) selectClass(n int) int {
	for i := len(a.partitions) - 1; i >= 0; i-- {
		p := &a.partitions[i]
		if p.size >= n && p.head != 0 {
			return i
		}
	}
	return -1
}

// Alloc returns a pointer to n usable bytes drawn from the smallest
// size class that both fits n and currently has a free block, or nil if
// n is zero, exceeds the largest configured class, or every class large
// enough to serve it is exhausted.
func (a *Allocator) Alloc(n int) unsafe.Pointer {
	if n <= 0 || len(a.partitions) == 0 || n > a.partitions[0].size {
		return nil
	}
	i := a.selectClass(n)
	if i < 0 {
		return nil
	}
	p := &a.partitions[i]

	off := p.head
	hdrOffset := int(off) - HeaderLength
	next, _ := readHeader(a.heap[:], hdrOffset)
	p.head = next

	initblock(a.heap[off:int(off)+p.size])
	return unsafe.Pointer(&a.heap[off])
}

// Free returns ptr, previously obtained from Alloc and not freed since,
// to its owning class's free list. ptr must have been returned by this
// same Allocator's most recent Init generation; Free does not and cannot
// validate that in the production build.
func (a *Allocator) Free(ptr unsafe.Pointer) {
	base := uintptr(unsafe.Pointer(&a.heap[0]))
	off := int(uintptr(ptr) - base)
	hdrOffset := off - HeaderLength
	_, partitionIndex := readHeader(a.heap[:], hdrOffset)

	checkFreeContract(a, off, partitionIndex)

	p := &a.partitions[partitionIndex]
	writeHeader(a.heap[:], hdrOffset, p.head, partitionIndex)
	p.head = uint16(off)
}
