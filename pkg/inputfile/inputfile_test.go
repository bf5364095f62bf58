package inputfile_test

import (
	"strings"
	"testing"

	"github.com/dshills/mcstructureseed/pkg/constraint"
	"github.com/dshills/mcstructureseed/pkg/inputfile"
)

func TestParseShipwreckLine(t *testing.T) {
	in := "-54, -14, COUNTERCLOCKWISE_90, sideways_fronthalf, Ocean\n"
	res, warnings, err := inputfile.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(res.Constraints) != 1 {
		t.Fatalf("got %d constraints, want 1", len(res.Constraints))
	}
	s, ok := res.Constraints[0].(constraint.Shipwreck)
	if !ok {
		t.Fatalf("got %T, want constraint.Shipwreck", res.Constraints[0])
	}
	if s.ChunkX != -54 || s.ChunkZ != -14 || s.Rotation != constraint.RotationCounterclockwise90 ||
		s.Type != "sideways_fronthalf" || s.Beached {
		t.Errorf("parsed shipwreck = %+v, unexpected fields", s)
	}
}

func TestParseRuinedPortalLine(t *testing.T) {
	in := "52, 17, CLOCKWISE_180, portal_1, yes, 1\n"
	res, warnings, err := inputfile.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(res.Constraints) != 1 {
		t.Fatalf("got %d constraints, want 1", len(res.Constraints))
	}
	p, ok := res.Constraints[0].(constraint.RuinedPortal)
	if !ok {
		t.Fatalf("got %T, want constraint.RuinedPortal", res.Constraints[0])
	}
	if p.ChunkX != 52 || p.ChunkZ != 17 || p.Rotation != constraint.RotationClockwise180 ||
		p.Type != "portal_1" || p.Mirror != constraint.MirrorFrontBack || p.Biome != constraint.BiomeMountains {
		t.Errorf("parsed portal = %+v, unexpected fields", p)
	}
}

func TestParseVillageLineWithExplicitAbandoned(t *testing.T) {
	in := "55, -9, CLOCKWISE_180, taiga_meeting_point_1, 3, no\n"
	res, warnings, err := inputfile.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(res.Constraints) != 1 {
		t.Fatalf("got %d constraints, want 1", len(res.Constraints))
	}
	v, ok := res.Constraints[0].(constraint.Village)
	if !ok {
		t.Fatalf("got %T, want constraint.Village", res.Constraints[0])
	}
	if v.ChunkX != 55 || v.ChunkZ != -9 || v.Rotation != constraint.RotationClockwise180 ||
		v.StartPiece != "taiga_meeting_point_1" || v.Type != constraint.VillageTaiga || v.Abandoned {
		t.Errorf("parsed village = %+v, unexpected fields", v)
	}
}

func TestParseBlankAndCommentLinesIgnored(t *testing.T) {
	in := "\n# a comment\n   \n-54, -14, COUNTERCLOCKWISE_90, sideways_fronthalf, Ocean\n"
	res, warnings, err := inputfile.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(res.Constraints) != 1 {
		t.Fatalf("got %d constraints, want 1", len(res.Constraints))
	}
}

func TestParseMalformedLineWarnsAndSkips(t *testing.T) {
	in := "not, a, valid, structure, line\nbad\n-54, -14, COUNTERCLOCKWISE_90, sideways_fronthalf, Ocean\n"
	res, warnings, err := inputfile.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Constraints) != 1 {
		t.Fatalf("got %d constraints, want 1", len(res.Constraints))
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2", len(warnings))
	}
	if warnings[0].Line != 1 {
		t.Errorf("first warning line = %d, want 1", warnings[0].Line)
	}
	if warnings[1].Line != 2 {
		t.Errorf("second warning line = %d, want 2", warnings[1].Line)
	}
}

func TestParsePillarSeedOnlyLine(t *testing.T) {
	in := "0\n"
	res, warnings, err := inputfile.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if res.PillarSeed == nil || *res.PillarSeed != 0 {
		t.Fatalf("PillarSeed = %v, want pointer to 0", res.PillarSeed)
	}
	if len(res.Constraints) != 0 {
		t.Errorf("expected zero constraints alongside a pillar seed line, got %d", len(res.Constraints))
	}
}

func TestParsePillarSeedMustBeLastContentLine(t *testing.T) {
	in := "12345\n-54, -14, COUNTERCLOCKWISE_90, sideways_fronthalf, Ocean\n"
	res, warnings, err := inputfile.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PillarSeed != nil {
		t.Fatalf("expected no pillar seed when the bare token isn't the last content line, got %v", res.PillarSeed)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1 (the stray numeric line should be malformed)", len(warnings))
	}
	if len(res.Constraints) != 1 {
		t.Fatalf("got %d constraints, want 1", len(res.Constraints))
	}
}

func TestParseEmptyFileYieldsNothing(t *testing.T) {
	res, warnings, err := inputfile.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 || len(res.Constraints) != 0 || res.PillarSeed != nil {
		t.Fatalf("expected a fully empty result, got %+v warnings=%v", res, warnings)
	}
}
