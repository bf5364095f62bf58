package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/mcstructureseed/pkg/prefilter"
)

// heatmapSide is the width and height, in tiles, of the folded low-20-bit
// space: 1024*1024 == 2^20, one tile per candidate low-seed prefix.
const heatmapSide = 1024

// RenderHeatmap draws a heatmapSide x heatmapSide SVG grid, one pixel
// tile per low-20-bit candidate, shaded by how many of checks that
// candidate satisfies. It folds the linear 2^20 candidate space into a
// square image: low20's tile sits at (low20 % heatmapSide, low20 /
// heatmapSide). This is a debugging aid only; it never affects a
// search's exit code or its found_seeds.txt contract.
func RenderHeatmap(checks []prefilter.Check) []byte {
	counts := make([]int, 1<<prefilter.Bits)
	maxCount := 0
	for low := 0; low < len(counts); low++ {
		n := 0
		for _, c := range checks {
			if c.Consistent(uint32(low)) {
				n++
			}
		}
		counts[low] = n
		if n > maxCount {
			maxCount = n
		}
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(heatmapSide, heatmapSide)
	canvas.Rect(0, 0, heatmapSide, heatmapSide, "fill:#000000")

	for low, n := range counts {
		if n == 0 {
			continue
		}
		x := low % heatmapSide
		y := low / heatmapSide
		canvas.Rect(x, y, 1, 1, heatStyle(n, maxCount))
	}

	canvas.End()
	return buf.Bytes()
}

// heatStyle maps a survivor's constraint-satisfaction count to a fill
// color, green intensity scaling linearly from dim to full brightness.
func heatStyle(count, maxCount int) string {
	if maxCount <= 0 {
		maxCount = 1
	}
	intensity := 64 + (count*191)/maxCount
	return fmt.Sprintf("fill:rgb(0,%d,0)", intensity)
}

// WriteHeatmap renders the heatmap and writes it to path.
func WriteHeatmap(path string, checks []prefilter.Check) error {
	data := RenderHeatmap(checks)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing debug heatmap: %w", err)
	}
	return nil
}
