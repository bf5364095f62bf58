package bruteforce

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dshills/mcstructureseed/pkg/constraint"
	"github.com/dshills/mcstructureseed/pkg/verify"
)

// LowBits and UpperBits split a 48-bit structure seed into the low prefix
// the pre-filter screens and the upper completion this package enumerates.
const (
	LowBits   = 20
	UpperBits = 28
)

// Solve tries every (low20, upper28) pair — low20 ranging over low20s and
// upper28 over the full [0, 2^28) — forming seed = (upper28<<LowBits)|low20
// and keeping every candidate that satisfies every constraint in cs.
// workers goroutines share the work via a single atomic task counter; a
// workers value <= 0 defaults to runtime.NumCPU().
func Solve(low20s []uint32, cs []constraint.Constraint, workers int) []int64 {
	return SolveUpperRange(low20s, cs, 0, int64(1)<<UpperBits, workers)
}

// SolveUpperRange is Solve restricted to upper28 in [lo, hi). It exists so
// callers (tests, progress-resumable runs) can scope the brute-force
// search to a bounded slice of the full 2^28 upper-bit space.
func SolveUpperRange(low20s []uint32, cs []constraint.Constraint, lo, hi int64, workers int) []int64 {
	if len(low20s) == 0 || lo >= hi {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	span := hi - lo
	total := int64(len(low20s)) * span

	var next int64
	var mu sync.Mutex
	var results []int64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				idx := atomic.AddInt64(&next, 1) - 1
				if idx >= total {
					return
				}
				low20 := low20s[idx/span]
				upper := lo + idx%span
				seed := (upper << LowBits) | int64(low20)

				if verifyAll(seed, cs) {
					mu.Lock()
					results = append(results, seed)
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	return results
}

func verifyAll(seed int64, cs []constraint.Constraint) bool {
	for _, c := range cs {
		if !verify.Verify(seed, c) {
			return false
		}
	}
	return true
}
