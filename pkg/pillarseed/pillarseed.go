package pillarseed

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dshills/mcstructureseed/pkg/constraint"
	"github.com/dshills/mcstructureseed/pkg/rng"
	"github.com/dshills/mcstructureseed/pkg/verify"
)

// Pillar-seed LCG constants, distinct from the main RNG kernel's mult and
// addend: Minecraft derives a pillar seed's middle 32 bits through its own
// two-step 64-bit schedule before the structure seed is ever assembled.
const (
	pillarMult uint64 = 1540035429
	pillarAdd  uint64 = 239479465
)

// Mid32 derives the 32-bit middle slice of a structure seed implied by
// pillar seed p and a 16-bit low completion, by running p's own two-step
// 64-bit LCG schedule and folding the result back down with the same XOR
// mask java.util.Random.setSeed uses.
func Mid32(p uint32, lower16 uint16) uint32 {
	partial := (uint64(p) << 16) | uint64(lower16)
	s1 := partial*pillarMult + pillarAdd
	s2 := s1*pillarMult + pillarAdd
	return uint32((s2 ^ rng.Mult) & 0xFFFFFFFF)
}

// Solve enumerates every structure seed consistent with pillar seed p: for
// each of the 2^16 low completions it derives a mid32 value, then tries
// every 16-bit high completion against it, running the full verifier
// chain on each of the resulting 2^32 candidates. workers goroutines
// share the (lower16, upper16) task space via a single atomic counter; a
// workers value <= 0 defaults to runtime.NumCPU().
func Solve(p uint32, cs []constraint.Constraint, workers int) []int64 {
	return SolveLowerRange(p, cs, 0, 1<<16, workers)
}

// SolveLowerRange is Solve restricted to lower16 in [lo, hi), letting
// callers scope the search to a bounded slice of the 2^16 low-completion
// space (used by tests, and by Solve with the full [0, 2^16) range).
func SolveLowerRange(p uint32, cs []constraint.Constraint, lo, hi int, workers int) []int64 {
	if lo >= hi {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	const upperSpan = int64(1) << 16
	span := int64(hi - lo)
	total := span * upperSpan

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
				lower16 := uint16(lo) + uint16(idx/upperSpan)
				upper16 := uint32(idx % upperSpan)

				mid32 := Mid32(p, lower16)
				seed := int64(upper16)<<32 | int64(mid32)

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
