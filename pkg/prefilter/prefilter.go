package prefilter

import (
	"math/bits"

	"github.com/dshills/mcstructureseed/pkg/placement"
	"github.com/dshills/mcstructureseed/pkg/rng"
)

// Bits is the width of the low-seed candidate space this package filters
// over: candidates are the 2^Bits possible values of a structure seed's
// low Bits bits, independent of its upper bits.
const Bits = 20

const mask20 = (1 << Bits) - 1

// maxShift caps how many low bits of a placement draw we ever try to
// recover, set by how many spare bits remain above bit 17 inside a
// Bits-wide low-seed window (bits 17, 18, 19).
const maxShift = 3

// Check holds the precomputed, seed-independent part of a single
// structure's placement mod-2^k congruence, so that many low-seed
// candidates can be tested against one observed chunk cheaply.
type Check struct {
	base20   uint64 // low Bits bits of (regionX*A + regionZ*B + salt)
	wantX    uint64 // (chunkX - regionX*spacing) mod 2^k
	wantZ    uint64 // (chunkZ - regionZ*spacing) mod 2^k
	k        uint
	disabled bool // true when offset is odd: no bits are recoverable
}

// NewCheck precomputes the congruence check for a single observed
// (chunkX, chunkZ) constraint under structure kind c.
func NewCheck(c placement.Constants, chunkX, chunkZ int32) Check {
	regionX, regionZ := placement.RegionOf(chunkX, chunkZ, c)
	offset := c.Spacing - c.Separation

	k := uint(bits.TrailingZeros(uint(offset)))
	if k > maxShift {
		k = maxShift
	}
	if offset == 0 || k == 0 {
		return Check{disabled: true}
	}

	base := int64(regionX)*rng.RegionMultA + int64(regionZ)*rng.RegionMultB + c.Salt
	kMask := uint64(1)<<k - 1

	valX := uint64(int64(chunkX) - int64(regionX)*int64(c.Spacing))
	valZ := uint64(int64(chunkZ) - int64(regionZ)*int64(c.Spacing))

	return Check{
		base20: uint64(base) & mask20,
		wantX:  valX & kMask,
		wantZ:  valZ & kMask,
		k:      k,
	}
}

// Consistent reports whether low20, the low 20 bits of a candidate
// structure seed, is consistent with this constraint's placement draws. A
// false result proves the full seed cannot place the structure here; a
// true result is necessary but not sufficient, so survivors still need a
// full verify.
func (c Check) Consistent(low20 uint32) bool {
	if c.disabled {
		return true
	}

	kMask := uint64(1)<<c.k - 1
	mult20 := rng.Mult & mask20
	addend20 := rng.Addend & mask20

	state := (c.base20 + uint64(low20)) & mask20
	state = (state ^ mult20) & mask20 // SetSeed's XOR-with-mult, low bits only

	state = (state*mult20 + addend20) & mask20 // x draw
	bitsX := (state >> 17) & kMask

	state = (state*mult20 + addend20) & mask20 // z draw
	bitsZ := (state >> 17) & kMask

	return bitsX == c.wantX && bitsZ == c.wantZ
}

// Survivors returns every low-20-bit candidate in [0, 2^Bits) consistent
// with c. It is the single-check form of IntersectSurvivors, which the
// search dispatcher uses to build the brute-force solver's worklist.
func Survivors(c Check) []uint32 {
	var out []uint32
	for low := uint32(0); low < (1 << Bits); low++ {
		if c.Consistent(low) {
			out = append(out, low)
		}
	}
	return out
}

// IntersectSurvivors returns every low-20-bit candidate consistent with
// every check in checks. An empty checks slice matches everything (no
// constraints means no filtering is possible).
func IntersectSurvivors(checks []Check) []uint32 {
	var out []uint32
	for low := uint32(0); low < (1 << Bits); low++ {
		ok := true
		for _, c := range checks {
			if !c.Consistent(low) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, low)
		}
	}
	return out
}
