package concurrent

import (
	"sync"
	"testing"

	"github.com/premwong/pool-allocator/malloc"
)

func TestSafeAllocatorBasic(t *testing.T) {
	sa := NewSafeAllocator(malloc.DefaultConfig())
	if !sa.Init([]int{32, 16, 8}) {
		t.Fatalf("expected init to succeed")
	}
	p := sa.Alloc(8)
	if p == nil {
		t.Fatalf("expected allocation to succeed")
	}
	sa.Free(p)
	stats := sa.Stats()
	if len(stats) != 3 {
		t.Fatalf("expected 3 classes, got %v", len(stats))
	}
}

func TestSafeAllocatorConcurrentAllocFree(t *testing.T) {
	sa := NewSafeAllocator(malloc.DefaultConfig())
	if !sa.Init([]int{16}) {
		t.Fatalf("expected init to succeed")
	}

	var wg sync.WaitGroup
	for g := 0; g < 32; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				p := sa.Alloc(16)
				if p == nil {
					continue
				}
				*(*byte)(p) = 0x1
				sa.Free(p)
			}
		}()
	}
	wg.Wait()

	stats := sa.Stats()
	if stats[0].Allocated != 0 {
		t.Errorf("expected every block freed back, got %v still allocated", stats[0].Allocated)
	}
}
