package sampling

import (
	"iter"
	"slices"
)

// Upsampler interpolates a stream by an integer factor, emitting each input
// element at phase 0 followed by factor-1 copies of a fixed fill value.
type Upsampler struct {
	factor int
	fill   float64
	phase  int
}

// NewUpsampler creates an interpolator with the given factor and fill value.
// Factors below 1 are clamped to 1 (pass-through).
func NewUpsampler(factor int, fill float64) *Upsampler {
	if factor < 1 {
		factor = 1
	}
	return &Upsampler{factor: factor, fill: fill}
}

// NewZeroUpsampler creates a zero-stuffing interpolator, the form used for
// QMF synthesis.
func NewZeroUpsampler(factor int) *Upsampler {
	return NewUpsampler(factor, 0)
}

// Resample returns a lazy view of src with factor-1 fill values inserted
// after each element.
//
// The view is pull-driven: the source is consulted only at phase 0, and the
// output ends as soon as such a pull finds the source exhausted. Fill values
// owed to a group that has already begun are still emitted before that final
// pull. The phase counter advances once per element actually produced and
// does not advance on an exhausted pull; it persists across calls on the
// same Upsampler.
func (u *Upsampler) Resample(src iter.Seq[float64]) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		next, stop := iter.Pull(src)
		defer stop()
		for {
			out := u.fill
			if u.phase == 0 {
				x, ok := next()
				if !ok {
					return
				}
				out = x
			}
			u.phase++
			if u.phase == u.factor {
				u.phase = 0
			}
			if !yield(out) {
				return
			}
		}
	}
}

// ResampleSlice fully drains the interpolated view of src into a freshly
// allocated slice.
func (u *Upsampler) ResampleSlice(src []float64) []float64 {
	out := make([]float64, 0, (len(src)+1)*u.factor)
	return slices.AppendSeq(out, u.Resample(slices.Values(src)))
}

// Factor returns the interpolation factor.
func (u *Upsampler) Factor() int { return u.factor }

// Fill returns the value emitted at non-zero phases.
func (u *Upsampler) Fill() float64 { return u.fill }

// Phase returns the current phase counter in [0, factor).
func (u *Upsampler) Phase() int { return u.phase }

// Reset realigns the sampler to phase 0.
func (u *Upsampler) Reset() { u.phase = 0 }
