package qmf

import (
	"errors"
	"slices"
	"testing"

	"github.com/cwbudde/algo-qmf/internal/testutil"
)

func TestStageAnalysis(t *testing.T) {
	s := NewStage()

	low, high := s.Analysis([]float64{1, 1, 1, 1})
	if len(low) != 2 || len(high) != 2 {
		t.Fatalf("branch lengths: got %d/%d, want 2/2", len(low), len(high))
	}
	// Lowpass of DC: 0.5 on the first sample (zero memory), then 1.
	testutil.RequireSliceNearlyEqual(t, low, []float64{0.5, 1}, 1e-12)
	// Highpass of DC: -0.5 on the first sample, then 0.
	testutil.RequireSliceNearlyEqual(t, high, []float64{-0.5, 0}, 1e-12)
}

func TestStageAnalysis_DoesNotModifyInput(t *testing.T) {
	s := NewStage()
	input := []float64{1, 2, 3, 4}
	saved := slices.Clone(input)

	_, _ = s.Analysis(input)
	if !slices.Equal(input, saved) {
		t.Fatalf("input modified: %v", input)
	}
}

func TestStageRoundTrip_ExactDelayOfOne(t *testing.T) {
	s := NewStage()

	// A single stage reconstructs its input exactly, delayed one sample.
	input := testutil.DeterministicSine(440, 48000, 1, 64)
	out := make([]float64, len(input))

	low, high := s.Analysis(input)
	if err := s.Synthesis(low, high, out); err != nil {
		t.Fatalf("Synthesis: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out[1:], input[:len(input)-1], 1e-12)
}

func TestStageRoundTrip_AcrossChunks(t *testing.T) {
	s := NewStage()
	input := testutil.DeterministicNoise(7, 1, 128)

	var out []float64
	for _, chunk := range [][]float64{input[:64], input[64:]} {
		dst := make([]float64, len(chunk))
		low, high := s.Analysis(chunk)
		if err := s.Synthesis(low, high, dst); err != nil {
			t.Fatalf("Synthesis: %v", err)
		}
		out = append(out, dst...)
	}

	testutil.RequireSliceNearlyEqual(t, out[1:], input[:len(input)-1], 1e-12)
}

func TestStageSynthesis_LengthMismatch(t *testing.T) {
	s := NewStage()
	out := make([]float64, 4)

	if err := s.Synthesis([]float64{1, 2}, []float64{1}, out); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("uneven branches: got %v, want ErrLengthMismatch", err)
	}

	s.Reset()
	if err := s.Synthesis([]float64{1}, []float64{1}, out); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short output: got %v, want ErrLengthMismatch", err)
	}
}

func TestStageReset(t *testing.T) {
	s := NewStage()

	first, _ := s.Analysis([]float64{1, 1, 1, 1})
	_, _ = s.Analysis([]float64{5, 5, 5}) // leaves phase and memory dirty
	s.Reset()

	again, _ := s.Analysis([]float64{1, 1, 1, 1})
	testutil.RequireSliceNearlyEqual(t, again, first, 1e-12)
}
