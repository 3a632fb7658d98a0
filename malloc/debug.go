//go:build debug

package malloc

import "fmt"

// initblock poisons a freshly allocated payload with 0xff so that reads
// of uninitialized memory are easy to spot under a debug build.
func initblock(payload []byte) {
	for i := range payload {
		payload[i] = 0xff
	}
}

// checkFreeContract verifies, behind the debug tag, that the partition
// index recovered from the header is in range and that the freed offset
// is block-aligned within that partition. Violations panic; the
// production build has no equivalent check.
func checkFreeContract(a *Allocator, off int, partitionIndex uint8) {
	if int(partitionIndex) >= len(a.partitions) {
		panic(fmt.Errorf("malloc: free: partition index %d out of range", partitionIndex))
	}
	p := &a.partitions[partitionIndex]
	stride := p.size + HeaderLength
	blockStart := off - HeaderLength
	if blockStart < p.start || blockStart >= p.end {
		panic(fmt.Errorf("malloc: free: offset %d outside partition %d range [%d,%d)", off, partitionIndex, p.start, p.end))
	}
	if (blockStart-p.start)%stride != 0 {
		panic(fmt.Errorf("malloc: free: offset %d is not block-aligned in partition %d", off, partitionIndex))
	}
}
