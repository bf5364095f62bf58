package placement

import "github.com/dshills/mcstructureseed/pkg/rng"

// Constants are the per-structure-kind region parameters: Spacing is the
// region size in chunks, Separation is the minimum chunk gap enforced at
// the region edge, and Salt distinguishes this structure kind's RNG stream
// from every other kind sharing the same world seed.
type Constants struct {
	Spacing    int32
	Separation int32
	Salt       int64
}

// Shipwreck, RuinedPortal, and Village are the three supported structure
// kinds' region constants, taken from the generator's structure placement
// configuration.
var (
	Shipwreck    = Constants{Spacing: 24, Separation: 4, Salt: 165745295}
	RuinedPortal = Constants{Spacing: 40, Separation: 15, Salt: 34222645}
	Village      = Constants{Spacing: 34, Separation: 8, Salt: 10387312}
)

// floorDiv divides a by b rounding toward negative infinity, matching
// Java's Math.floorDiv used by the region-coordinate computation. Go's "/"
// truncates toward zero, which is wrong for negative chunk coordinates.
func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Check reports whether structureSeed places this structure kind's
// structure at exactly (chunkX, chunkZ). It replays the two next_int draws
// the generator makes for the chunk's region and compares against the
// observed position.
func Check(structureSeed int64, chunkX, chunkZ int32, c Constants) bool {
	regionX := floorDiv(chunkX, c.Spacing)
	regionZ := floorDiv(chunkZ, c.Spacing)

	r := &rng.Random{}
	r.SetRegionSeed(structureSeed, regionX, regionZ, c.Salt)

	offset := c.Spacing - c.Separation
	x := regionX*c.Spacing + r.NextInt(offset)
	if x != chunkX {
		return false
	}
	z := regionZ*c.Spacing + r.NextInt(offset)
	return z == chunkZ
}

// RegionOf returns the region coordinates containing chunk (chunkX, chunkZ)
// under c's spacing.
func RegionOf(chunkX, chunkZ int32, c Constants) (regionX, regionZ int32) {
	return floorDiv(chunkX, c.Spacing), floorDiv(chunkZ, c.Spacing)
}
