// Package malloc supplies a fixed-capacity, segregated block-pool
// allocator, with a limited scope:
//
//  * Types and Functions exported by this package are not thread safe.
//    Callers needing concurrent access should serialize through
//    github.com/premwong/pool-allocator/concurrent.SafeAllocator.
//  * The entire backing store is a single 64KiB heap owned by the
//    Allocator; there is no recourse to the host allocator and no
//    growth once initialized.
//  * Size classes (partitions) are declared once, at Init, and persist
//    until the next Init. A second Init discards all outstanding
//    pointers from the previous layout.
//  * Allocated memory carries no alignment guarantee beyond a single
//    byte; callers requesting multi-byte values are responsible for
//    choosing sizes compatible with how they intend to use the block.
//
// A heap is partitioned into size classes (largest block size first),
// each a contiguous run of equally sized blocks. Each block is a 3-byte
// header followed by its payload. Free blocks of a class are threaded
// into a singly linked LIFO list through their header's next-free field;
// the head of each list is cached so allocation and free are O(1) once
// the owning class has been found.
package malloc
