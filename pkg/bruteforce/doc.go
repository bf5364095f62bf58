// Package bruteforce implements the brute-force solver: for every
// surviving 20-bit low-seed prefix, it tries every possible upper 28 bits
// and runs the full verifier chain on the resulting candidate seed.
//
// This is the fallback strategy when neither the pillarseed solver (no
// pillar seed supplied) nor the reversing solver (constraint set too
// large, or no shipwreck/portal anchor available) applies. The search is
// embarrassingly parallel: every (low20, upper28) pair is independent, so
// work is partitioned across goroutine workers by a single shared atomic
// task counter, each worker pulling the next unclaimed task index until
// the space is exhausted — no worker ever waits on another.
package bruteforce
