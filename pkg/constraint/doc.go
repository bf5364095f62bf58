// Package constraint defines the observed-structure facts a seed search is
// run against: chunk coordinates plus the per-structure-kind attributes
// (rotation, type, biome, abandonment, ...) a player can read off an
// in-game structure.
//
// Constraint is a closed sum type over the three supported kinds —
// Shipwreck, RuinedPortal, Village — represented as a Go interface with an
// unexported marker method rather than an inheritance hierarchy. Verifiers
// dispatch on the concrete type with a type switch; see pkg/verify.
package constraint
