// Package export writes a search's results to disk: the final
// found_seeds.txt list of matching structure seeds, and an optional
// debug SVG heatmap of the 20-bit pre-filter's survivor density, useful
// for understanding why a search ran slow or came back empty.
package export
