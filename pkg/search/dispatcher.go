package search

import (
	"errors"
	"sort"

	"github.com/dshills/mcstructureseed/pkg/bruteforce"
	"github.com/dshills/mcstructureseed/pkg/constraint"
	"github.com/dshills/mcstructureseed/pkg/pillarseed"
	"github.com/dshills/mcstructureseed/pkg/placement"
	"github.com/dshills/mcstructureseed/pkg/prefilter"
	"github.com/dshills/mcstructureseed/pkg/reverse"
)

// ErrNoInput is returned when neither a pillar seed nor any constraint was
// supplied; there is nothing to search for.
var ErrNoInput = errors.New("search: no constraints and no pillar seed supplied")

// ErrStrategyInit is returned when a pillar seed was supplied with zero
// constraints: the pillarseed solver would otherwise "match" every one of
// its 2^32 candidates, which is never useful.
var ErrStrategyInit = errors.New("search: pillar seed supplied with zero constraints")

// maxReversingConstraints caps how many constraints the reversing solver
// is attempted with; beyond this the per-low20 verify cost of checking
// every constraint outweighs the congruence-pruning benefit, and brute
// force (which the prefilter still narrows) is preferred instead.
const maxReversingConstraints = 10

// Request is the parsed input to a search: a set of observed structures
// and, optionally, a known pillar seed.
type Request struct {
	Constraints []constraint.Constraint
	PillarSeed  *uint32
}

// Result is a completed search's output.
type Result struct {
	// Seeds are the matching structure seeds, sorted ascending.
	Seeds []int64
	// Truncated is true if more seeds matched than opts.BufferCapacity
	// allowed collecting.
	Truncated bool
}

// Run picks a solver strategy for req and runs it under opts, returning
// the sorted set of matching seeds.
//
//	if req.PillarSeed != nil:                 pillarseed solver
//	else if constraints include a shipwreck
//	  or portal, and there are <= 10 of them:  reversing solver
//	else:                                      brute-force solver
func Run(req Request, opts Options) (Result, error) {
	if req.PillarSeed == nil && len(req.Constraints) == 0 {
		return Result{}, ErrNoInput
	}
	if req.PillarSeed != nil && len(req.Constraints) == 0 {
		return Result{}, ErrStrategyInit
	}

	var raw []int64
	switch {
	case req.PillarSeed != nil:
		raw = pillarseed.Solve(*req.PillarSeed, req.Constraints, opts.Workers)
	case hasReversingAnchor(req.Constraints) && len(req.Constraints) <= maxReversingConstraints:
		raw = reverse.Solve(req.Constraints)
	default:
		raw = bruteforce.Solve(survivingLow20s(req.Constraints), req.Constraints, opts.Workers)
	}

	return finalize(raw, opts), nil
}

// hasReversingAnchor reports whether cs contains at least one shipwreck or
// ruined portal constraint, either of which the reversing solver can use
// as its congruence anchor.
func hasReversingAnchor(cs []constraint.Constraint) bool {
	for _, c := range cs {
		switch c.(type) {
		case constraint.Shipwreck, constraint.RuinedPortal:
			return true
		}
	}
	return false
}

// survivingLow20s runs the 20-bit pre-filter against every constraint in
// cs and returns the low-seed prefixes consistent with all of them, for
// the brute-force solver's worklist.
func survivingLow20s(cs []constraint.Constraint) []uint32 {
	checks := make([]prefilter.Check, len(cs))
	for i, c := range cs {
		chunkX, chunkZ := c.Chunk()
		checks[i] = prefilter.NewCheck(placementConstantsFor(c), chunkX, chunkZ)
	}
	return prefilter.IntersectSurvivors(checks)
}

func placementConstantsFor(c constraint.Constraint) placement.Constants {
	switch c.(type) {
	case constraint.Shipwreck:
		return placement.Shipwreck
	case constraint.RuinedPortal:
		return placement.RuinedPortal
	case constraint.Village:
		return placement.Village
	default:
		panic("search: unhandled constraint type")
	}
}

// finalize sorts raw ascending and truncates it to opts.BufferCapacity:
// a fixed-size output buffer that keeps writing known survivors and
// warns once capacity is exceeded, rather than growing unbounded.
func finalize(raw []int64, opts Options) Result {
	sort.Slice(raw, func(i, j int) bool { return raw[i] < raw[j] })

	if len(raw) > opts.BufferCapacity {
		return Result{Seeds: raw[:opts.BufferCapacity], Truncated: true}
	}
	return Result{Seeds: raw}
}
