// Command poolinfo reports the layout and utilization a candidate
// size-class ladder would produce, by laying it out in a fresh Allocator
// of its own: it is the diagnostics surface spec kept out of the
// three-operation core.
package main

import "fmt"
import "flag"
import "strconv"
import "strings"

import "github.com/premwong/pool-allocator/log"
import "github.com/premwong/pool-allocator/malloc"

var options struct {
	minblock int
	maxblock int
	sizes    string
}

func argParse() {
	flag.IntVar(&options.minblock, "minblock", 32,
		"minimum block size, used when -sizes is empty")
	flag.IntVar(&options.maxblock, "maxblock", 4096,
		"maximum block size, used when -sizes is empty")
	flag.StringVar(&options.sizes, "sizes", "",
		"comma separated list of explicit block sizes, overrides -minblock/-maxblock")
	flag.Parse()
}

func main() {
	argParse()
	log.SetLogger(nil, malloc.DefaultConfig())

	sizes, err := resolveSizes()
	if err != nil {
		log.Fatalf("poolinfo: %v\n", err)
		return
	}

	a := malloc.NewAllocator()
	if !a.Init(sizes) {
		log.Fatalf("poolinfo: sizes %v do not fit a %v byte heap\n", sizes, malloc.HeapSize)
		return
	}
	log.Infof("poolinfo: laid out %v classes over a %v byte heap\n", len(sizes), malloc.HeapSize)

	tellutilization(a)
}

func resolveSizes() ([]int, error) {
	if options.sizes == "" {
		return malloc.GenerateSizes(options.minblock, options.maxblock)
	}
	parts := strings.Split(options.sizes, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid -sizes entry %q: %v", p, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func tellutilization(a *malloc.Allocator) {
	stats := a.Stats()
	for _, s := range stats {
		u := float64(s.Size) / float64(s.Stride)
		fmt.Printf("size %6v, stride %6v, blocks %6v, util %.3f\n", s.Size, s.Stride, s.Blocks, u)
	}
	fmt.Printf("total %v size classes\n", len(stats))
}
