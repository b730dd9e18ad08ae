// Package parallel splits index ranges across CPU cores.
package parallel

import (
	"runtime"
	"sync"
)

// Chunks returns the [start, end) ranges that Parallelize hands to workers
// when items are split across at most workers goroutines.
func Chunks(items, workers int) [][2]int {
	if items <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > items {
		workers = items
	}

	chunkSize := (items + workers - 1) / workers
	chunks := make([][2]int, 0, workers)
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}
		chunks = append(chunks, [2]int{start, end})
	}
	return chunks
}

// Parallelize runs fn over disjoint ranges covering [0, items), one range per
// CPU core, and returns once every range has been processed.
func Parallelize(items int, fn func(start, end int)) {
	var wg sync.WaitGroup
	for _, c := range Chunks(items, runtime.NumCPU()) {
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(c[0], c[1])
	}
	wg.Wait()
}

// ParallelizeWithThreshold performs parallelization only when the number of items exceeds the threshold.
// At or below the threshold fn is called once with the full range on the calling goroutine.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
