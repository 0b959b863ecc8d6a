package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-qmf/dsp/core"
	"github.com/cwbudde/algo-qmf/dsp/qmf"
	"github.com/cwbudde/algo-qmf/internal/testutil"
)

func TestNominalEdges(t *testing.T) {
	edges, err := NominalEdges(3, 48000)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 4 {
		t.Fatalf("edge count: got %d, want 4", len(edges))
	}

	// Residual first, then details coarsest to finest.
	wantLevels := []int{3, 2, 1, 0}
	for i, e := range edges {
		if e.Level != wantLevels[i] {
			t.Errorf("edges[%d].Level: got %d, want %d", i, e.Level, wantLevels[i])
		}
	}

	// The bands partition [0, Nyquist] with no gaps.
	if edges[0].LowHz != 0 {
		t.Errorf("residual low edge: got %v, want 0", edges[0].LowHz)
	}
	for i := 1; i < len(edges); i++ {
		if !core.NearlyEqual(edges[i].LowHz, edges[i-1].HighHz, 1e-9) {
			t.Errorf("gap between edges[%d] and edges[%d]: %v vs %v",
				i-1, i, edges[i-1].HighHz, edges[i].LowHz)
		}
	}
	if got := edges[len(edges)-1].HighHz; got != 24000 {
		t.Errorf("top edge: got %v, want 24000", got)
	}
	// Each detail band spans exactly one octave.
	for _, e := range edges[1:] {
		if !core.NearlyEqual(e.HighHz/e.LowHz, 2, 1e-9) {
			t.Errorf("level %d: edge ratio %v, want 2", e.Level, e.HighHz/e.LowHz)
		}
	}
}

func TestNominalEdges_Validation(t *testing.T) {
	if _, err := NominalEdges(0, 48000); !errors.Is(err, qmf.ErrInvalidLevels) {
		t.Errorf("levels=0: got %v, want ErrInvalidLevels", err)
	}
	if _, err := NominalEdges(3, 0); err == nil {
		t.Error("zero sample rate should fail")
	}
}

func TestBandShapes(t *testing.T) {
	const levels, size = 3, 128

	shapes, err := BandShapes(levels, size)
	if err != nil {
		t.Fatal(err)
	}
	if len(shapes) != levels+1 {
		t.Fatalf("shape count: got %d, want %d", len(shapes), levels+1)
	}

	for level, shape := range shapes {
		if len(shape) != size/2+1 {
			t.Fatalf("level %d: got %d bins, want %d", level, len(shape), size/2+1)
		}
		testutil.RequireFinite(t, shape)
	}

	// Each band's peak must fall inside its nominal range. With the sample
	// rate taken as size, bin k is the frequency k, and the level-k detail
	// band nominally spans size/2^(k+2) .. size/2^(k+1).
	for level := 0; level < levels; level++ {
		peak := peakBin(shapes[level])
		lo, hi := size>>(level+2), size>>(level+1)
		if peak < lo || peak > hi {
			t.Errorf("detail level %d: peak bin %d outside [%d, %d]", level, peak, lo, hi)
		}
	}
	// The residual peaks at DC.
	if peak := peakBin(shapes[levels]); peak != 0 {
		t.Errorf("residual: peak bin %d, want 0", peak)
	}
}

func TestBandShapes_Validation(t *testing.T) {
	if _, err := BandShapes(0, 64); !errors.Is(err, qmf.ErrInvalidLevels) {
		t.Errorf("levels=0: got %v, want ErrInvalidLevels", err)
	}
	// Not a power of two.
	if _, err := BandShapes(3, 96); err == nil {
		t.Error("non-power-of-two size should fail")
	}
	// Smaller than the bank delay.
	if _, err := BandShapes(4, 8); err == nil {
		t.Error("size below bank delay should fail")
	}
}

func peakBin(shape []float64) int {
	best, bestVal := 0, math.Inf(-1)
	for i, v := range shape {
		if v > bestVal {
			best, bestVal = i, v
		}
	}
	return best
}
