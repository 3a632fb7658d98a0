package malloc

// HeapSize is the total size, in bytes, of the backing store managed by
// an Allocator. Part of the on-heap layout's ABI; changing it invalidates
// every invariant documented in doc.go.
const HeapSize = 65536

// MaxClasses is the largest number of size classes an Allocator can be
// initialized with.
const MaxClasses = 255

// HeaderLength is the width, in bytes, of the packed per-block metadata
// record: a 16-bit next-free offset plus an 8-bit partition index.
const HeaderLength = 3
