package malloc

import "encoding/binary"

// header is the 3-byte in-band record stored at the start of every block:
// the heap offset of the next free block's payload (0 means "no next"),
// and the index of the partition that owns the block. Go has no packed
// struct attribute, so the record is read and written directly against
// heap bytes rather than through a Go struct -- a naive struct{uint16;
// uint8} is not guaranteed to be exactly 3 bytes wide.
func writeHeader(heap []byte, hdrOffset int, nextFree uint16, partition uint8) {
	binary.LittleEndian.PutUint16(heap[hdrOffset:hdrOffset+2], nextFree)
	heap[hdrOffset+2] = partition
}

func readHeader(heap []byte, hdrOffset int) (nextFree uint16, partition uint8) {
	nextFree = binary.LittleEndian.Uint16(heap[hdrOffset : hdrOffset+2])
	partition = heap[hdrOffset+2]
	return nextFree, partition
}
