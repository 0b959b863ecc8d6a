package qmf

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/cwbudde/algo-qmf/dsp/haar"
	"github.com/cwbudde/algo-qmf/dsp/sampling"
)

// bandFactor is the two-band split factor; the Haar QMF pair is only a
// perfect-reconstruction pair at critical resampling by 2.
const bandFactor = 2

var (
	// ErrInvalidLevels indicates a non-positive level count.
	ErrInvalidLevels = errors.New("qmf: level count must be >= 1")
	// ErrBufferLength indicates a Process buffer whose length is not a
	// multiple of the bank delay.
	ErrBufferLength = errors.New("qmf: buffer length not a multiple of bank delay")
	// ErrLengthMismatch indicates Synthesis inputs that do not add up to
	// the output length.
	ErrLengthMismatch = errors.New("qmf: band length mismatch")
)

// Stage is one level of the two-band decomposition: an analysis split into
// decimated low/high branches and the matching synthesis recombination.
// All filter memory and sampler phase live in the Stage and persist across
// calls.
type Stage struct {
	analysisLow   *haar.Filter
	analysisHigh  *haar.Filter
	synthesisLow  *haar.Filter
	synthesisHigh *haar.Filter

	lowDown  *sampling.Downsampler
	highDown *sampling.Downsampler
	lowUp    *sampling.Upsampler
	highUp   *sampling.Upsampler
}

// NewStage creates a stage with cleared filter memory and phase-0 samplers.
func NewStage() *Stage {
	return &Stage{
		analysisLow:   haar.AnalysisLowpass(),
		analysisHigh:  haar.AnalysisHighpass(),
		synthesisLow:  haar.SynthesisLowpass(),
		synthesisHigh: haar.SynthesisHighpass(),

		lowDown:  sampling.NewDownsampler(bandFactor),
		highDown: sampling.NewDownsampler(bandFactor),
		lowUp:    sampling.NewZeroUpsampler(bandFactor),
		highUp:   sampling.NewZeroUpsampler(bandFactor),
	}
}

// Analysis splits input into decimated lowpass and highpass branches.
// Each branch runs its own filter over the full input (independent filter
// memory per branch), then keeps every second sample. The returned slices
// are freshly allocated; input is not modified.
func (s *Stage) Analysis(input []float64) (low, high []float64) {
	lowFull := make([]float64, len(input))
	highFull := make([]float64, len(input))
	s.analysisLow.ProcessBlockTo(lowFull, input)
	s.analysisHigh.ProcessBlockTo(highFull, input)

	return s.lowDown.ResampleSlice(lowFull), s.highDown.ResampleSlice(highFull)
}

// Synthesis recombines a low/high branch pair into out: both branches are
// zero-stuffed by 2, run through the synthesis filters, and summed
// element-wise. The branches must come from a paired Analysis call (edited
// in place is fine) and out must have the combined length; anything else
// returns [ErrLengthMismatch] instead of silently truncating.
//
// On error the stage's filter and sampler state is indeterminate; call
// [Stage.Reset] before reusing it.
func (s *Stage) Synthesis(low, high, out []float64) error {
	if len(low) != len(high) {
		return fmt.Errorf("%w: low %d, high %d", ErrLengthMismatch, len(low), len(high))
	}
	if len(out) != len(low)+len(high) {
		return fmt.Errorf("%w: out %d, bands %d+%d", ErrLengthMismatch, len(out), len(low), len(high))
	}

	nextLow, stopLow := iter.Pull(s.lowUp.Resample(slices.Values(low)))
	defer stopLow()
	nextHigh, stopHigh := iter.Pull(s.highUp.Resample(slices.Values(high)))
	defer stopHigh()

	for i := range out {
		l, okL := nextLow()
		h, okH := nextHigh()
		if !okL || !okH {
			// Only reachable when the upsampler phases were left askew
			// by direct sampler use; a paired Analysis never gets here.
			return fmt.Errorf("%w: upsampled bands ended after %d of %d samples",
				ErrLengthMismatch, i, len(out))
		}
		out[i] = s.synthesisLow.ProcessSample(l) + s.synthesisHigh.ProcessSample(h)
	}
	return nil
}

// Reset clears all filter memory and realigns all samplers to phase 0.
func (s *Stage) Reset() {
	s.analysisLow.Reset()
	s.analysisHigh.Reset()
	s.synthesisLow.Reset()
	s.synthesisHigh.Reset()

	s.lowDown.Reset()
	s.highDown.Reset()
	s.lowUp.Reset()
	s.highUp.Reset()
}
