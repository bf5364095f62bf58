package reverse

import (
	"github.com/dshills/mcstructureseed/pkg/constraint"
	"github.com/dshills/mcstructureseed/pkg/placement"
	"github.com/dshills/mcstructureseed/pkg/prefilter"
	"github.com/dshills/mcstructureseed/pkg/rng"
	"github.com/dshills/mcstructureseed/pkg/verify"
)

const mask48 = rng.Mask48
const mask20 = (1 << prefilter.Bits) - 1
const highBitSpace = int64(1) << 28

// MaxCandidatesPerLow20 is the largest number of high-bit candidates any
// single low20 prefix can contribute, equal to the full 2^28 high-bit
// space. Solve uses it as the cap of its per-low20 candidate loop, and it
// is never a correctness-affecting truncation: the anchor congruence's
// period already bounds the real candidate count per low20 below this.
const MaxCandidatesPerLow20 = highBitSpace

// placementConstants returns the region constants for c's concrete kind.
func placementConstants(c constraint.Constraint) placement.Constants {
	switch c.(type) {
	case constraint.Shipwreck:
		return placement.Shipwreck
	case constraint.RuinedPortal:
		return placement.RuinedPortal
	case constraint.Village:
		return placement.Village
	default:
		panic("reverse: unhandled constraint type")
	}
}

// xCongruence derives the linear congruence satisfied by V, the unknown
// high 28 bits of state1, given that c's structure places at its chunk
// and the seed's low 20 bits are fixed to low20.
//
// state0 = (base+low20+V*2^20) XOR mult (mod 2^48); since state0's low 20
// bits don't depend on V, state1 = step(state0) works out to exactly
// k0 + V*2^20, with k0 a known 20-bit constant (the LCG step is affine
// and V*2^20's low 20 bits are always zero). The placement draw's raw
// 31-bit value is then bits_x = state1>>17 = 8*V + c0, so
// "bits_x mod offset == wantX" reduces to the linear congruence
// 8*V ≡ (wantX - c0) (mod offset).
func xCongruence(c constraint.Constraint, low20 uint32) (r1, period int64, ok bool) {
	pc := placementConstants(c)
	chunkX, chunkZ := c.Chunk()
	regionX, regionZ := placement.RegionOf(chunkX, chunkZ, pc)
	base := int64(regionX)*rng.RegionMultA + int64(regionZ)*rng.RegionMultB + pc.Salt
	offset := int64(pc.Spacing - pc.Separation)

	s := uint64(base+int64(low20)) & mask20
	state0Low20 := (s ^ (rng.Mult & mask20)) & mask20
	k0 := (state0Low20*rng.Mult + rng.Addend) & mask20
	c0 := int64((k0 >> 17) & 0x7)

	valX := int64(chunkX) - int64(regionX)*int64(pc.Spacing)
	return solveLinearCongruence(8, mod(valX-c0, offset), offset)
}

// candidateSeed reconstructs the full (mod 2^48) structure seed implied by
// low20 and a solved high-bit value v for constraint c's region.
func candidateSeed(c constraint.Constraint, low20 uint32, v int64) int64 {
	pc := placementConstants(c)
	chunkX, chunkZ := c.Chunk()
	regionX, regionZ := placement.RegionOf(chunkX, chunkZ, pc)
	base := int64(regionX)*rng.RegionMultA + int64(regionZ)*rng.RegionMultB + pc.Salt

	s := uint64(base+int64(low20)) & mask20
	state0Low20 := (s ^ (rng.Mult & mask20)) & mask20
	k0 := (state0Low20*rng.Mult + rng.Addend) & mask20

	state1 := k0 | (uint64(v) << prefilter.Bits)
	state0 := rng.PrevState(state1)
	sRecovered := (state0 ^ rng.Mult) & mask48

	return int64((sRecovered - uint64(base)) & mask48)
}

// congruencePeriodBound returns the residue class period (offset /
// gcd(8,offset)) the x-draw congruence for c would produce. A candidate
// count of roughly highBitSpace/period survives per low20, so a LARGER
// period is a STRONGER filter; odd offsets (gcd(8,offset)==1) give the
// largest possible period and are the best anchors.
func congruencePeriodBound(c constraint.Constraint) int64 {
	pc := placementConstants(c)
	offset := int64(pc.Spacing - pc.Separation)
	g, _, _ := extGCD(8, offset)
	if g == 0 {
		return offset
	}
	return offset / g
}

// Solve enumerates candidate structure seeds consistent with every
// constraint in cs. It picks whichever constraint yields the strongest
// (largest-period) placement congruence as the anchor, uses that
// congruence to prune the 2^28 high-bit candidates for each surviving
// low20 prefix, and fully verifies every remaining candidate (both of the
// anchor's placement draws, plus every other constraint's placement and
// attribute draws) before returning it.
func Solve(cs []constraint.Constraint) []int64 {
	if len(cs) == 0 {
		return nil
	}

	anchor := cs[0]
	for _, c := range cs[1:] {
		if congruencePeriodBound(c) > congruencePeriodBound(anchor) {
			anchor = c
		}
	}

	checks := make([]prefilter.Check, len(cs))
	for i, c := range cs {
		chunkX, chunkZ := c.Chunk()
		checks[i] = prefilter.NewCheck(placementConstants(c), chunkX, chunkZ)
	}

	var results []int64
	for low20 := uint32(0); low20 < (1 << prefilter.Bits); low20++ {
		skip := false
		for _, chk := range checks {
			if !chk.Consistent(low20) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		r1, period, ok := xCongruence(anchor, low20)
		if !ok {
			continue
		}

		tried := 0
		for v := r1; v < highBitSpace && tried < MaxCandidatesPerLow20; v += period {
			tried++
			seed := candidateSeed(anchor, low20, v)
			if verifyAll(seed, cs) {
				results = append(results, seed)
			}
		}
	}
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
