package verify

import (
	"fmt"

	"github.com/dshills/mcstructureseed/pkg/constraint"
	"github.com/dshills/mcstructureseed/pkg/content"
	"github.com/dshills/mcstructureseed/pkg/placement"
	"github.com/dshills/mcstructureseed/pkg/rng"
)

// giantPortalChance is the probability threshold below which a ruined
// portal's type roll selects from the giant pool instead of the regular
// one.
const giantPortalChance = 0.05

// mirrorChance is the threshold of a ruined portal's mirror draw: a float
// below it yields MirrorNone, one at or above it yields MirrorFrontBack.
const mirrorChance = 0.5

// Verify replays seed against c and reports whether every attribute c
// records matches what the generator would have produced. It dispatches on
// c's concrete type; adding a fourth Constraint kind requires adding a case
// here.
func Verify(seed int64, c constraint.Constraint) bool {
	switch v := c.(type) {
	case constraint.Shipwreck:
		return CheckShipwreck(seed, v)
	case constraint.RuinedPortal:
		return CheckPortal(seed, v)
	case constraint.Village:
		return CheckVillage(seed, v)
	default:
		panic(fmt.Sprintf("verify: unhandled constraint type %T", c))
	}
}

// CheckShipwreck reports whether seed places a shipwreck at s's chunk with
// exactly s's rotation, beached flag, and type.
func CheckShipwreck(seed int64, s constraint.Shipwreck) bool {
	if !placement.Check(seed, s.ChunkX, s.ChunkZ, placement.Shipwreck) {
		return false
	}

	r := &rng.Random{}
	r.SetCarverSeed(seed, s.ChunkX, s.ChunkZ)

	rotation := constraint.Rotation(r.NextInt(4))
	if rotation != s.Rotation {
		return false
	}

	var types []string
	if s.Beached {
		types = content.BeachedShipwreckTypes
	} else {
		types = content.OceanShipwreckTypes
	}
	idx := r.NextInt(int32(len(types)))
	return types[idx] == s.Type
}

// CheckPortal reports whether seed places a ruined portal at p's chunk with
// exactly p's type, rotation, and mirror. The float draws preceding the
// type roll depend on p.Biome: JUNGLE consumes one float, MOUNTAINS
// consumes one or two depending on its value, DESERT consumes none.
func CheckPortal(seed int64, p constraint.RuinedPortal) bool {
	if !placement.Check(seed, p.ChunkX, p.ChunkZ, placement.RuinedPortal) {
		return false
	}

	r := &rng.Random{}
	r.SetCarverSeed(seed, p.ChunkX, p.ChunkZ)

	switch p.Biome {
	case constraint.BiomeJungle:
		r.NextFloat()
	case constraint.BiomeMountains:
		if r.NextFloat() >= 0.5 {
			r.NextFloat()
		}
	case constraint.BiomeDesert:
		// no predraw
	}

	var typeName string
	if r.NextFloat() < giantPortalChance {
		idx := r.NextInt(int32(len(content.GiantPortalTypes)))
		typeName = content.GiantPortalTypes[idx]
	} else {
		idx := r.NextInt(int32(len(content.RegularPortalTypes)))
		typeName = content.RegularPortalTypes[idx]
	}
	if typeName != p.Type {
		return false
	}

	rotation := constraint.Rotation(r.NextInt(4))
	if rotation != p.Rotation {
		return false
	}

	mirrored := r.NextFloat() < mirrorChance
	gotMirror := constraint.MirrorNone
	if !mirrored {
		gotMirror = constraint.MirrorFrontBack
	}
	return gotMirror == p.Mirror
}

// CheckVillage reports whether seed places a village at v's chunk with
// exactly v's rotation, start piece, and abandonment flag. Unlike the other
// two kinds, village rotation is drawn with next(2) rather than
// next_int(4); the two happen to coincide in range but are not the same
// draw.
func CheckVillage(seed int64, v constraint.Village) bool {
	if !placement.Check(seed, v.ChunkX, v.ChunkZ, placement.Village) {
		return false
	}

	r := &rng.Random{}
	r.SetCarverSeed(seed, v.ChunkX, v.ChunkZ)

	rotation := constraint.Rotation(r.Next(2))
	if rotation != v.Rotation {
		return false
	}

	table, ok := content.VillageTables[v.Type]
	if !ok {
		return false
	}
	draw := r.NextInt(int32(table.DrawBound))
	piece, abandoned, ok := content.LookupVillagePiece(v.Type, int(draw))
	if !ok {
		return false
	}
	return piece == v.StartPiece && abandoned == v.Abandoned
}
