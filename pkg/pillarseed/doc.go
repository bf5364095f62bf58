// Package pillarseed implements the pillarseed solver: given a 32-bit
// "pillar seed" (a smaller, earlier-generation seed Minecraft derives a
// 48-bit structure seed's middle bits from), it enumerates the 2^32
// structure seeds consistent with that pillar seed instead of searching
// the full 2^48 space.
//
// The pillar seed only pins down the 32-bit middle slice of the LCG
// state, not the low or high ends, so 2^16 low completions each produce
// one candidate "mid32" value, and 2^16 high completions are then tried
// against each — 2^32 total candidates, run through the same full
// verifier chain as every other strategy.
package pillarseed
