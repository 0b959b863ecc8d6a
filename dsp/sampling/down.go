package sampling

import (
	"iter"
	"slices"
)

// Downsampler decimates a stream by an integer factor, keeping the phase-0
// element of each group and discarding the rest.
type Downsampler struct {
	factor int
	phase  int
}

// NewDownsampler creates a decimator with the given factor.
// Factors below 1 are clamped to 1 (pass-through).
func NewDownsampler(factor int) *Downsampler {
	if factor < 1 {
		factor = 1
	}
	return &Downsampler{factor: factor}
}

// Resample returns a lazy view of src containing the phase-0 element of
// every group of factor consecutive elements.
//
// The phase counter persists across calls on the same Downsampler. If src
// ends mid-group, the partial group yields no output element; its elements
// still advance the phase, so a later call continues where this one left off.
func (d *Downsampler) Resample(src iter.Seq[float64]) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for x := range src {
			keep := d.phase == 0
			d.phase++
			if d.phase == d.factor {
				d.phase = 0
			}
			if keep && !yield(x) {
				return
			}
		}
	}
}

// ResampleSlice decimates src into a freshly allocated slice.
func (d *Downsampler) ResampleSlice(src []float64) []float64 {
	out := make([]float64, 0, (len(src)+d.factor-1)/d.factor)
	return slices.AppendSeq(out, d.Resample(slices.Values(src)))
}

// Factor returns the decimation factor.
func (d *Downsampler) Factor() int { return d.factor }

// Phase returns the current phase counter in [0, factor).
func (d *Downsampler) Phase() int { return d.phase }

// Reset realigns the sampler to phase 0.
func (d *Downsampler) Reset() { d.phase = 0 }
