// Package search ties the three solvers together behind a single
// Run entry point: it holds the CLI's tunable SearchOptions, picks a
// strategy from the supplied constraints and optional pillar seed, and
// returns the seeds the selected solver found, sorted ascending.
//
// Strategy selection follows the same dispatcher table regardless of
// which solver ends up doing the work:
//
//	if a pillar seed is supplied:      pillarseed solver
//	else:                              run the 20-bit pre-filter, then
//	  if 1..10 constraints include a shipwreck or portal: reversing solver
//	  else:                            brute-force solver
package search
