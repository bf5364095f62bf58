package inputfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/mcstructureseed/pkg/constraint"
)

// Warning is a single malformed line skipped during parsing, annotated
// with its 1-based line number so the caller can report it the way the
// teacher's loaders report positional context.
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// Result is everything a constraints file yields.
type Result struct {
	Constraints []constraint.Constraint
	PillarSeed  *uint32
}

// lineParser tries to build a Constraint from a line's comma-split
// fields, returning ok=false if the field count or leading tokens don't
// match its structure kind (so the next parser in registration order
// gets a turn).
type lineParser func(fields []string) (constraint.Constraint, bool, error)

// parsers are tried in registration order: shipwreck, ruined portal,
// village, matching the order spec.md lists them in §6.
var parsers = []lineParser{parseShipwreckLine, parseRuinedPortalLine, parseVillageLine}

// Parse reads a constraints file from r, returning the parsed
// constraints and pillar seed (if any) plus a warning for every line a
// registered parser rejected. A non-nil error is only returned for an
// I/O failure reading r; malformed lines are warnings, never errors.
func Parse(r io.Reader) (Result, []Warning, error) {
	var rawLines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		rawLines = append(rawLines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Result{}, nil, fmt.Errorf("reading constraints file: %w", err)
	}

	lastContentLine := -1
	for i, raw := range rawLines {
		if isContentLine(raw) {
			lastContentLine = i
		}
	}

	var result Result
	var warnings []Warning

	for i, raw := range rawLines {
		if !isContentLine(raw) {
			continue
		}
		line := strings.TrimSpace(raw)
		lineNo := i + 1

		if i == lastContentLine && result.PillarSeed == nil {
			if seed, ok := parsePillarSeedLine(line); ok {
				result.PillarSeed = &seed
				continue
			}
		}

		c, err := parseConstraintLine(line)
		if err != nil {
			warnings = append(warnings, Warning{Line: lineNo, Message: err.Error()})
			continue
		}
		result.Constraints = append(result.Constraints, c)
	}

	return result, warnings, nil
}

// isContentLine reports whether raw (untrimmed) is neither blank nor a
// comment line.
func isContentLine(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed != "" && !strings.HasPrefix(trimmed, "#")
}

// parsePillarSeedLine recognizes the bare unsigned-32-bit-integer form
// that marks a pillar seed rather than a constraint.
func parsePillarSeedLine(line string) (uint32, bool) {
	if strings.Contains(line, ",") {
		return 0, false
	}
	n, err := strconv.ParseUint(line, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// parseConstraintLine dispatches line to each registered structure
// parser in order, returning the first match or an aggregate error
// describing why every parser rejected it.
func parseConstraintLine(line string) (constraint.Constraint, error) {
	fields := splitFields(line)

	for _, p := range parsers {
		c, ok, err := p(fields)
		if !ok {
			continue
		}
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("no structure parser accepted %d fields: %q", len(fields), line)
}

func splitFields(line string) []string {
	raw := strings.Split(line, ",")
	fields := make([]string, len(raw))
	for i, f := range raw {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

func parseChunkCoords(fields []string) (x, z int32, err error) {
	xi, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid chunk_x %q: %w", fields[0], err)
	}
	zi, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid chunk_z %q: %w", fields[1], err)
	}
	return int32(xi), int32(zi), nil
}

// parseShipwreckLine accepts exactly 5 fields:
// cx, cz, ROT, type_name, (Ocean|Beached).
func parseShipwreckLine(fields []string) (constraint.Constraint, bool, error) {
	if len(fields) != 5 {
		return nil, false, nil
	}
	x, z, err := parseChunkCoords(fields)
	if err != nil {
		return nil, true, err
	}
	rot, err := constraint.ParseRotation(fields[2])
	if err != nil {
		return nil, true, err
	}
	beached, err := constraint.ParseShipBeached(fields[4])
	if err != nil {
		return nil, true, err
	}
	return constraint.Shipwreck{
		ChunkX:   x,
		ChunkZ:   z,
		Rotation: rot,
		Type:     strings.ToLower(fields[3]),
		Beached:  beached,
	}, true, nil
}

// parseRuinedPortalLine accepts exactly 6 fields whose fifth field is a
// yes/no mirror token:
// cx, cz, ROT, portal_name, (yes|no mirror), category(1|2|3).
func parseRuinedPortalLine(fields []string) (constraint.Constraint, bool, error) {
	if len(fields) != 6 {
		return nil, false, nil
	}
	// Any other fifth field (a village biome_id) leaves the line to the
	// village parser.
	mirror, err := constraint.ParseMirror(fields[4])
	if err != nil {
		return nil, false, nil
	}
	x, z, err := parseChunkCoords(fields)
	if err != nil {
		return nil, true, err
	}
	rot, err := constraint.ParseRotation(fields[2])
	if err != nil {
		return nil, true, err
	}
	biome, err := constraint.ParseBiomeCategory(fields[5])
	if err != nil {
		return nil, true, err
	}
	return constraint.RuinedPortal{
		ChunkX:   x,
		ChunkZ:   z,
		Rotation: rot,
		Mirror:   mirror,
		Type:     strings.ToLower(fields[3]),
		Biome:    biome,
	}, true, nil
}

// parseVillageLine accepts 5 or 6 fields:
// cx, cz, ROT, piece_name, biome_id(1..5), [yes|no abandoned].
// abandoned defaults to false when the sixth field is absent.
func parseVillageLine(fields []string) (constraint.Constraint, bool, error) {
	if len(fields) != 5 && len(fields) != 6 {
		return nil, false, nil
	}
	x, z, err := parseChunkCoords(fields)
	if err != nil {
		return nil, true, err
	}
	rot, err := constraint.ParseRotation(fields[2])
	if err != nil {
		return nil, true, err
	}
	vt, err := constraint.ParseVillageType(fields[4])
	if err != nil {
		return nil, true, err
	}

	abandoned := false
	if len(fields) == 6 {
		abandoned, err = constraint.ParseBool(fields[5])
		if err != nil {
			return nil, true, err
		}
	}

	return constraint.Village{
		ChunkX:     x,
		ChunkZ:     z,
		Rotation:   rot,
		Type:       vt,
		StartPiece: strings.ToLower(fields[3]),
		Abandoned:  abandoned,
	}, true, nil
}
