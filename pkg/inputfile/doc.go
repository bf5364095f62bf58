// Package inputfile parses a constraints file: a small text format
// describing the structures a player has observed in a Minecraft world,
// plus an optional pillar seed.
//
// Each non-blank, non-comment line is tried against each structure
// parser in registration order (shipwreck, ruined portal, village); the
// first parser that claims the line wins. The shipwreck parser claims
// every 5-field line, the ruined portal parser claims a 6-field line
// whose fifth field is a yes/no mirror token, and the village parser
// claims the remaining 6-field lines. A bare unsigned 32-bit integer is
// the pillar seed only when it is the last content line. Any other line
// that no parser claims, or that the claiming parser rejects, is
// reported as a warning and skipped rather than aborting the whole
// parse — only the caller decides whether zero resulting constraints is
// fatal.
package inputfile
