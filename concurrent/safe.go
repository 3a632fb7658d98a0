// Package concurrent wraps malloc.Allocator with a lock, the way
// bnclabs-gostore's flock.RWMutex wraps an OS file lock around
// sync.RWMutex: Lock/Unlock on the mutex, delegate the actual work.
// malloc.Allocator itself holds no lock, because the heap and the
// partition table it indexes into must be protected as one unit by
// whichever collaborator needs concurrent access -- not every caller
// does.
package concurrent

import (
	"sync"
	"unsafe"

	"github.com/premwong/pool-allocator/api"
	"github.com/premwong/pool-allocator/log"
	"github.com/premwong/pool-allocator/malloc"
)

var _ api.Allocator = (*SafeAllocator)(nil)
var _ api.Allocator = (*malloc.Allocator)(nil)

// SafeAllocator makes a malloc.Allocator safe for concurrent use by
// multiple goroutines. Alloc and Free both mutate a partition's free
// list head, so both take the write lock; Stats only reads, so it takes
// the read lock.
type SafeAllocator struct {
	mu      sync.RWMutex
	alloc   *malloc.Allocator
	verbose bool
}

// NewSafeAllocator returns a SafeAllocator with no size classes
// configured. cfg's "log.level" key, if set to "debug", enables Debugf
// tracing of Init, Alloc and Free calls; see
// malloc.DefaultConfig.
func NewSafeAllocator(cfg malloc.Config) *SafeAllocator {
	verbose := false
	if level, ok := cfg["log.level"].(string); ok {
		verbose = level == "debug"
	}
	return &SafeAllocator{alloc: malloc.NewAllocator(), verbose: verbose}
}

// Init partitions the heap into len(sizes) size classes under the write
// lock. See malloc.Allocator.Init for the failure conditions.
func (s *SafeAllocator) Init(sizes []int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.alloc.Init(sizes)
	if s.verbose {
		log.Debugf("concurrent: Init(%v) = %v\n", sizes, ok)
	}
	return ok
}

// Alloc returns a pointer to n usable bytes under the write lock.
func (s *SafeAllocator) Alloc(n int) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	ptr := s.alloc.Alloc(n)
	if s.verbose {
		log.Debugf("concurrent: Alloc(%v) = %p\n", n, ptr)
	}
	return ptr
}

// Free returns ptr to its owning class's free list under the write
// lock.
func (s *SafeAllocator) Free(ptr unsafe.Pointer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.verbose {
		log.Debugf("concurrent: Free(%p)\n", ptr)
	}
	s.alloc.Free(ptr)
}

// Stats reports per-class layout and occupancy under the read lock.
func (s *SafeAllocator) Stats() []malloc.ClassStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alloc.Stats()
}
