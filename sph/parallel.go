package sph

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum particle count to fan a pass out across
// workers. Below this, goroutine overhead beats the O(N²) inner loops.
const parallelThreshold = 64

func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// forEach runs fn for every particle index, chunked across workers when the
// set is large enough. The WaitGroup is the inter-pass barrier: forEach does
// not return until every index has been processed.
func (f *Fluid) forEach(fn func(i int)) {
	n := len(f.parts)
	if n < parallelThreshold || f.workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + f.workers - 1) / f.workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
