// Package verify replays a candidate structure seed's full draw sequence
// for an observed constraint and reports whether every observed attribute
// (rotation, type, mirror, abandonment, ...) matches. A verifier first
// checks placement (see pkg/placement), then reopens the carver-seed RNG
// stream and consumes it in the exact order the generator does.
package verify
