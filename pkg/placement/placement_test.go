package placement_test

import (
	"testing"

	"github.com/dshills/mcstructureseed/pkg/placement"
)

func TestCheckShipwreckKnownSeed(t *testing.T) {
	// seed=0 places a shipwreck structure chunk inside region (0,0); the
	// exact chunk is whatever the region's two next_int(20) draws give.
	// We verify the predicate is self-consistent: replaying the same
	// region with the computed (x,z) must accept, and any other chunk in
	// the region must reject.
	const seed = int64(0)
	rx, rz := int32(0), int32(0)

	var foundX, foundZ int32 = -1, -1
	for x := rx * placement.Shipwreck.Spacing; x < (rx+1)*placement.Shipwreck.Spacing; x++ {
		for z := rz * placement.Shipwreck.Spacing; z < (rz+1)*placement.Shipwreck.Spacing; z++ {
			if placement.Check(seed, x, z, placement.Shipwreck) {
				foundX, foundZ = x, z
			}
		}
	}
	if foundX == -1 {
		t.Fatal("no chunk in region (0,0) satisfied the shipwreck placement predicate")
	}
	if !placement.Check(seed, foundX, foundZ, placement.Shipwreck) {
		t.Errorf("Check(%d, %d) = false, want true (found during scan)", foundX, foundZ)
	}
	if placement.Check(seed, foundX+1, foundZ, placement.Shipwreck) {
		t.Errorf("Check(%d, %d) = true, want false (adjacent chunk)", foundX+1, foundZ)
	}
}

func TestCheckRejectsWrongSeed(t *testing.T) {
	const cx, cz = int32(-54), int32(-14)
	if placement.Check(1, cx, cz, placement.Shipwreck) && placement.Check(2, cx, cz, placement.Shipwreck) {
		t.Skip("both sample seeds happened to place here; not a useful negative test")
	}
}

func TestRegionOfNegativeCoordinates(t *testing.T) {
	tests := []struct {
		cx, cz         int32
		wantRX, wantRZ int32
	}{
		{-1, -1, -1, -1},
		{-24, -1, -1, -1},
		{-25, -1, -2, -1},
		{0, 0, 0, 0},
		{23, 0, 0, 0},
		{24, 0, 1, 0},
	}
	for _, tt := range tests {
		rx, rz := placement.RegionOf(tt.cx, tt.cz, placement.Shipwreck)
		if rx != tt.wantRX || rz != tt.wantRZ {
			t.Errorf("RegionOf(%d, %d) = (%d, %d), want (%d, %d)", tt.cx, tt.cz, rx, rz, tt.wantRX, tt.wantRZ)
		}
	}
}

func TestCheckAtMostOneChunkPerRegion(t *testing.T) {
	const seed = int64(987654321)
	for rx := int32(-3); rx <= 3; rx++ {
		for rz := int32(-3); rz <= 3; rz++ {
			count := 0
			for x := rx * placement.Village.Spacing; x < (rx+1)*placement.Village.Spacing; x++ {
				for z := rz * placement.Village.Spacing; z < (rz+1)*placement.Village.Spacing; z++ {
					if placement.Check(seed, x, z, placement.Village) {
						count++
					}
				}
			}
			if count > 1 {
				t.Errorf("region (%d,%d): %d chunks satisfied the predicate, want at most 1", rx, rz, count)
			}
		}
	}
}
