// Package rng implements a bit-exact reimplementation of java.util.Random,
// the linear congruential generator that drives Minecraft's structure
// placement and per-chunk property selection.
//
// # Overview
//
// Every structure-placement and property-draw routine in this module
// replays a short, fixed sequence of calls against a Random seeded from
// either the candidate structure seed (region rolls) or a per-chunk mix of
// the structure seed and chunk coordinates (carver rolls). Reproducing the
// exact bit pattern of Java's generator, not just "a" PRNG with similar
// statistical properties, is what makes seed recovery possible: a verifier
// accepts a candidate only if replaying these calls reproduces the observed
// chunk and attributes exactly.
//
// # Seed derivation
//
//	SetSeed(s)              -> state = (s XOR 0x5DEECE66D) & mask48
//	SetRegionSeed(...)       -> raw region mix, then SetSeed
//	SetCarverSeed(...)       -> two-step chunk mix, then SetSeed
//
// # Determinism
//
// A Random is a plain value; two Randoms seeded identically produce
// identical output sequences forever. Workers in the parallel search
// packages each carry their own Random — there is no shared, mutable
// generator state.
package rng
