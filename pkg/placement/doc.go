// Package placement implements the region-based structure placement
// predicate shared by every structure kind: given a structure seed and a
// chunk position, decide whether that exact chunk is the one structure
// generation picked within its region.
package placement
