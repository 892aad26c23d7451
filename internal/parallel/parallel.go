// Package parallel fans independent work items out over a bounded set of goroutines.
//
// The network layer uses it to evaluate the neurons of one layer
// concurrently. That is safe because building graph nodes only reads the
// shared inputs. Backward passes are never run through this package.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether to use goroutines at all.
	NumWorkers int  // Upper bound on concurrent goroutines.
	MinItems   int  // Below this many items the loop runs inline.
}

// DefaultConfig returns a config sized to the CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinItems:   4,
	}
}

// Sequential returns a config that always runs inline.
func Sequential() Config {
	return Config{}
}

// inline reports whether n items should run on the calling goroutine.
func (c Config) inline(n int) bool {
	return !c.Enabled || c.NumWorkers < 2 || n < 2 || n < c.MinItems
}

// For executes f(i) for every i in [0, n).
//
// Each index runs exactly once. Workers pull the next index from a shared
// counter, so uneven items balance out. For returns after all calls finish.
func For(n int, f func(i int), cfg Config) {
	if cfg.inline(n) {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	workers := min(cfg.NumWorkers, n)
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				f(i)
			}
		}()
	}
	wg.Wait()
}

// Map returns []T{f(0), ..., f(n-1)}, computed with For.
//
// Results keep index order regardless of which worker produced them.
func Map[T any](n int, f func(i int) T, cfg Config) []T {
	out := make([]T, n)
	For(n, func(i int) {
		out[i] = f(i)
	}, cfg)
	return out
}
