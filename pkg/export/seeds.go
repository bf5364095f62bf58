package export

import (
	"bufio"
	"fmt"
	"os"
	"sort"
)

// WriteSeeds writes seeds to path, one decimal signed 64-bit integer per
// line, ascending, LF-terminated. seeds is sorted in place.
func WriteSeeds(path string, seeds []int64) error {
	sort.Slice(seeds, func(i, j int) bool { return seeds[i] < seeds[j] })

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, s := range seeds {
		if _, err := fmt.Fprintf(w, "%d\n", s); err != nil {
			return fmt.Errorf("writing seed %d: %w", s, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing output file: %w", err)
	}
	return nil
}
