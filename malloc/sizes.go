package malloc

import "fmt"

// TargetUtilization is the fraction of a block's capacity a generated
// size-class ladder aims to keep occupied on average, mirroring the
// growth-factor idea bnclabs-gostore's block-size generator used for its
// own pools.
const TargetUtilization = 0.60

// GenerateSizes builds a ladder of block sizes from minBlock to maxBlock,
// growing each step just enough to keep the ladder's average utilization
// at or below TargetUtilization, and returns an error instead of a
// partial ladder if the result would need more than MaxClasses steps.
// It is a diagnostics helper for cmd/poolinfo and callers sizing a new
// Allocator; Init itself takes an explicit []int and never calls this.
func GenerateSizes(minBlock, maxBlock int) ([]int, error) {
	if minBlock < 1 || maxBlock < minBlock {
		return nil, fmt.Errorf("malloc: GenerateSizes: invalid range [%d,%d]", minBlock, maxBlock)
	}
	if maxBlock > HeapSize-HeaderLength {
		return nil, fmt.Errorf("malloc: GenerateSizes: maxBlock %d exceeds the largest representable block %d", maxBlock, HeapSize-HeaderLength)
	}

	nextSize := func(from int) int {
		addBy := int(float64(from) * (1.0 - TargetUtilization))
		if addBy < 1 {
			addBy = 1
		}
		size := from + addBy
		for float64(from+size)/2.0/float64(size) > TargetUtilization {
			size += addBy
		}
		return size
	}

	sizes := make([]int, 0, MaxClasses)
	for size := minBlock; size < maxBlock; {
		sizes = append(sizes, size)
		if len(sizes) > MaxClasses {
			return nil, fmt.Errorf("malloc: GenerateSizes: range [%d,%d] needs more than %d classes", minBlock, maxBlock, MaxClasses)
		}
		size = nextSize(size)
	}
	sizes = append(sizes, maxBlock)
	if len(sizes) > MaxClasses {
		return nil, fmt.Errorf("malloc: GenerateSizes: range [%d,%d] needs more than %d classes", minBlock, maxBlock, MaxClasses)
	}
	return sizes, nil
}
