package constraint

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMirror interprets the "yes"/"no" mirror token used by the ruined
// portal line format: "yes" means the portal generated mirrored
// (FRONT_BACK); "no" means NONE. Matching is case-insensitive.
func ParseMirror(s string) (Mirror, error) {
	switch strings.ToLower(s) {
	case "yes":
		return MirrorFrontBack, nil
	case "no":
		return MirrorNone, nil
	default:
		return 0, fmt.Errorf("unknown mirror token %q, want yes or no", s)
	}
}

// ParseBool interprets a "yes"/"no" abandonment token. Matching is
// case-insensitive.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, fmt.Errorf("unknown yes/no token %q", s)
	}
}

// ParseShipBeached interprets the "Ocean"/"Beached" token on a shipwreck
// line. Matching is case-insensitive.
func ParseShipBeached(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "ocean":
		return false, nil
	case "beached":
		return true, nil
	default:
		return false, fmt.Errorf("unknown shipwreck category %q, want Ocean or Beached", s)
	}
}

// ParseBiomeCategory parses the ruined portal's numeric biome category
// (1=MOUNTAINS, 2=DESERT, 3=JUNGLE).
func ParseBiomeCategory(s string) (BiomeCategory, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid biome category %q: %w", s, err)
	}
	switch BiomeCategory(n) {
	case BiomeMountains, BiomeDesert, BiomeJungle:
		return BiomeCategory(n), nil
	default:
		return 0, fmt.Errorf("biome category %d out of range [1,3]", n)
	}
}

// villageTypeByID maps the 1..5 biome_id field to a VillageType, in
// order: PLAINS, SNOWY, TAIGA, SAVANNA, DESERT.
var villageTypeByID = map[int]VillageType{
	1: VillagePlains,
	2: VillageSnowy,
	3: VillageTaiga,
	4: VillageSavanna,
	5: VillageDesert,
}

// ParseVillageType parses the village line's numeric biome_id (1..5) into
// a VillageType.
func ParseVillageType(s string) (VillageType, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid village biome id %q: %w", s, err)
	}
	vt, ok := villageTypeByID[n]
	if !ok {
		return 0, fmt.Errorf("village biome id %d out of range [1,5]", n)
	}
	return vt, nil
}

func (t VillageType) String() string {
	switch t {
	case VillagePlains:
		return "PLAINS"
	case VillageSnowy:
		return "SNOWY"
	case VillageTaiga:
		return "TAIGA"
	case VillageSavanna:
		return "SAVANNA"
	case VillageDesert:
		return "DESERT"
	default:
		return fmt.Sprintf("VillageType(%d)", int(t))
	}
}
