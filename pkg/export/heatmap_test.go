package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/mcstructureseed/pkg/export"
	"github.com/dshills/mcstructureseed/pkg/placement"
	"github.com/dshills/mcstructureseed/pkg/prefilter"
)

func TestRenderHeatmapProducesValidSVG(t *testing.T) {
	check := prefilter.NewCheck(placement.Shipwreck, 10, 10)
	data := export.RenderHeatmap([]prefilter.Check{check})

	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("expected output to contain an <svg> element")
	}
	if !bytes.Contains(data, []byte("</svg>")) {
		t.Error("expected output to be a closed SVG document")
	}
}

func TestRenderHeatmapEmptyChecksStillProducesCanvas(t *testing.T) {
	data := export.RenderHeatmap(nil)
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("expected a valid SVG canvas even with no checks")
	}
}

func TestWriteHeatmapWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debug.svg")

	check := prefilter.NewCheck(placement.Shipwreck, 10, 10)
	if err := export.WriteHeatmap(path, []prefilter.Check{check}); err != nil {
		t.Fatalf("WriteHeatmap: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading heatmap file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty heatmap file")
	}
}
