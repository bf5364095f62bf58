// Package content holds the static lookup tables a verifier needs to turn a
// carver-seed draw index into a structure's named piece: shipwreck ocean and
// beached type lists, ruined portal regular and giant type lists, and the
// per-village-type start-piece/abandonment interval tables.
//
// The tables are embedded from tables.yaml at build time (go:embed) and
// parsed once at package init, so the binary never depends on an
// external data file at runtime.
package content
