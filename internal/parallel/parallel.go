// Package parallel provides the fork-join helper used to fan independent
// strided-buffer passes out across worker goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls fork-join execution.
type Config struct {
	Workers   int // goroutines to fan out across; <= 1 disables forking
	Threshold int // minimum iterations before forking is worth the overhead
}

// Default sizes the worker pool to the CPU count.
func Default() Config {
	return Config{Workers: runtime.NumCPU(), Threshold: 64}
}

func (c Config) fork(n int) bool {
	return c.Workers > 1 && n >= c.Threshold
}

// For runs f(i) for every i in [0, n). Iterations must be independent: each
// i is visited exactly once, in unspecified order when forking. Small n runs
// sequentially in the calling goroutine.
func For(n int, f func(i int), c Config) {
	if !c.fork(n) {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}
	chunk := (n + c.Workers - 1) / c.Workers
	if chunk < c.Threshold {
		chunk = c.Threshold
	}
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				f(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
