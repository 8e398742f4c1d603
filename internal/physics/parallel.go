package physics

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelThreshold is the input length from which curves are evaluated in chunks.
const ParallelThreshold = 4096

const minChunk = 1024

// parallelFor runs fn over [0, n) split into contiguous chunks. Each chunk
// writes only its own index range, so output order matches the sequential loop.
func parallelFor(n int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if n < ParallelThreshold || workers <= 1 {
		fn(0, n)
		return
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}

	chunkSize := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait()
}
