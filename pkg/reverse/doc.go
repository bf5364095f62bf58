// Package reverse implements the reversing solver: given one or more
// observed structure constraints and a candidate low-20-bit seed prefix
// (typically a pkg/prefilter survivor), it algebraically inverts the LCG
// to enumerate the upper 28 bits consistent with one constraint's
// placement draw, instead of brute-forcing all 2^28 possibilities.
//
// The LCG step state' = state*mult + addend (mod 2^48) is affine in the
// seed's unknown high bits once the low 20 bits are fixed (see
// pkg/prefilter's doc comment for the underlying ring-homomorphism
// argument): writing state1 = k0 + V*2^20 for the unknown high-bit value
// V, the placement draw's raw 31-bit value is exactly bits_x = 8*V + c0
// for a k0-derived constant c0, with no further modular reduction in the
// way. That makes "bits_x mod offset == wantX" a genuine linear
// congruence 8*V ≡ (wantX - c0) (mod offset), solvable by the extended
// Euclidean algorithm for any offset, even/odd alike; an odd offset (as
// with ruined portals) is actually the strongest case, since
// gcd(8,offset) degenerates to 1 and the congruence pins V to a single
// residue class mod offset.
//
// Composing that same trick across a constraint's own second (z) draw,
// or across two different constraints' first draws, runs into a second
// modular reduction (state2's high bits are an affine function of V only
// after a further "mod 2^28" wraparound) that breaks the clean linear
// form. Rather than chase a multi-layer congruence that isn't actually
// linear, this package uses the one congruence that IS exactly linear —
// the anchor constraint's first placement draw — to prune candidate V
// values algebraically, then verifies every other draw (the anchor's
// second draw, every other constraint, and all attribute rolls) by
// direct simulation, which is exact and cheap per candidate.
package reverse
