package malloc

// ClassStats reports the static and dynamic state of one size class, as
// of the moment Stats was called.
type ClassStats struct {
	Size      int // requested block size, in payload bytes
	Stride    int // Size + HeaderLength
	Blocks    int // total blocks laid out for this class at Init
	Free      int // blocks currently on the free list
	Allocated int // Blocks - Free
}

// Stats reports per-class statistics, largest class first, matching the
// order classes were placed in at Init. It walks every partition's free
// list once, so it costs O(total free blocks) -- diagnostics, not a
// member of the three-operation hot path.
func (a *Allocator) Stats() []ClassStats {
	out := make([]ClassStats, len(a.partitions))
	for i := range a.partitions {
		p := &a.partitions[i]
		stride := p.size + HeaderLength
		blocks := (p.end - p.start) / stride

		free := 0
		for off := p.head; off != 0; free++ {
			hdrOffset := int(off) - HeaderLength
			next, _ := readHeader(a.heap[:], hdrOffset)
			off = next
		}

		out[i] = ClassStats{
			Size:      p.size,
			Stride:    stride,
			Blocks:    blocks,
			Free:      free,
			Allocated: blocks - free,
		}
	}
	return out
}
