// Package prefilter implements a cheap, low-bit-only necessary condition
// for structure placement, used to shrink the 2^20 low-seed search space
// before the expensive full verifier runs.
//
// The LCG update state' = state*mult + addend (mod 2^48) is a ring
// homomorphism with respect to reduction mod 2^k for any k <= 48: the low k
// bits of state' depend only on the low k bits of state. SetRegionSeed's
// XOR-with-mult step is bitwise and shares the same property exactly. So
// the low 20 bits of a candidate structure seed alone determine the low
// few bits of each placement draw's raw 31-bit value, with no dependence
// on the unknown upper 28 bits.
//
// Those low bits of the raw draw equal the low bits of next_int(offset)
// itself whenever offset is divisible by the corresponding power of two
// (next_int's rejection-sampling reduction mod offset doesn't disturb bits
// below that power, since every rejected/retried band is itself a multiple
// of offset and hence of the power of two dividing it). When offset is
// odd, no such bits are recoverable and the filter degrades to a no-op for
// that structure kind — true of ruined portals' offset of 25.
package prefilter
