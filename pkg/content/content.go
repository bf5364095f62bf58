package content

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dshills/mcstructureseed/pkg/constraint"
)

//go:embed tables.yaml
var tablesYAML []byte

// VillageEntry is one row of a village type's piece/abandonment interval
// table: a carver-seed draw in [lower, Upper) selects this piece and
// abandonment flag, where lower is the previous entry's Upper (0 for the
// first entry).
type VillageEntry struct {
	Upper     int    `yaml:"upper"`
	Piece     string `yaml:"piece"`
	Abandoned bool   `yaml:"abandoned"`
}

// VillageTable is the full draw-bound plus ordered interval list for one
// village type.
type VillageTable struct {
	DrawBound int            `yaml:"draw_bound"`
	Entries   []VillageEntry `yaml:"entries"`
}

type rawTables struct {
	Shipwreck struct {
		Ocean   []string `yaml:"ocean"`
		Beached []string `yaml:"beached"`
	} `yaml:"shipwreck"`
	RuinedPortal struct {
		Regular []string `yaml:"regular"`
		Giant   []string `yaml:"giant"`
	} `yaml:"ruined_portal"`
	Village struct {
		Types map[string]VillageTable `yaml:"types"`
	} `yaml:"village"`
}

// OceanShipwreckTypes are the 20 piece names drawn for a non-beached
// shipwreck, indexed by next_int(20).
var OceanShipwreckTypes []string

// BeachedShipwreckTypes are the 11 piece names drawn for a beached
// shipwreck, indexed by next_int(11).
var BeachedShipwreckTypes []string

// RegularPortalTypes are the 10 piece names for a non-giant ruined portal,
// indexed by next_int(10).
var RegularPortalTypes []string

// GiantPortalTypes are the 3 piece names for a giant ruined portal, indexed
// by next_int(3).
var GiantPortalTypes []string

// VillageTables maps each village type to its draw-bound and interval
// table, keyed by the constraint.VillageType names (PLAINS, SNOWY, TAIGA,
// SAVANNA, DESERT).
var VillageTables map[constraint.VillageType]VillageTable

func init() {
	var raw rawTables
	if err := yaml.Unmarshal(tablesYAML, &raw); err != nil {
		panic(fmt.Sprintf("content: parsing embedded tables.yaml: %v", err))
	}

	OceanShipwreckTypes = raw.Shipwreck.Ocean
	BeachedShipwreckTypes = raw.Shipwreck.Beached
	RegularPortalTypes = raw.RuinedPortal.Regular
	GiantPortalTypes = raw.RuinedPortal.Giant

	if len(OceanShipwreckTypes) != 20 {
		panic(fmt.Sprintf("content: expected 20 ocean shipwreck types, got %d", len(OceanShipwreckTypes)))
	}
	if len(BeachedShipwreckTypes) != 11 {
		panic(fmt.Sprintf("content: expected 11 beached shipwreck types, got %d", len(BeachedShipwreckTypes)))
	}
	if len(RegularPortalTypes) != 10 {
		panic(fmt.Sprintf("content: expected 10 regular portal types, got %d", len(RegularPortalTypes)))
	}
	if len(GiantPortalTypes) != 3 {
		panic(fmt.Sprintf("content: expected 3 giant portal types, got %d", len(GiantPortalTypes)))
	}

	names := map[string]constraint.VillageType{
		"PLAINS": constraint.VillagePlains,
		"SNOWY":  constraint.VillageSnowy,
		"TAIGA":  constraint.VillageTaiga,
		"SAVANNA": constraint.VillageSavanna,
		"DESERT": constraint.VillageDesert,
	}
	VillageTables = make(map[constraint.VillageType]VillageTable, len(names))
	for name, vt := range names {
		table, ok := raw.Village.Types[name]
		if !ok {
			panic(fmt.Sprintf("content: missing village table for %s", name))
		}
		if table.Entries[len(table.Entries)-1].Upper != table.DrawBound {
			panic(fmt.Sprintf("content: village table %s: last entry upper %d != draw_bound %d",
				name, table.Entries[len(table.Entries)-1].Upper, table.DrawBound))
		}
		if !sort.SliceIsSorted(table.Entries, func(i, j int) bool {
			return table.Entries[i].Upper < table.Entries[j].Upper
		}) {
			panic(fmt.Sprintf("content: village table %s entries not sorted ascending", name))
		}
		VillageTables[vt] = table
	}
}

// LookupVillagePiece returns the piece name and abandonment flag for draw
// value draw against vt's interval table. draw must be in [0, table.DrawBound);
// callers get that guarantee from next_int(table.DrawBound).
func LookupVillagePiece(vt constraint.VillageType, draw int) (piece string, abandoned bool, ok bool) {
	table, ok := VillageTables[vt]
	if !ok {
		return "", false, false
	}
	for _, e := range table.Entries {
		if draw < e.Upper {
			return e.Piece, e.Abandoned, true
		}
	}
	return "", false, false
}
