package haar

import (
	"math"
	"math/cmplx"
)

// Filter is a two-tap linear filter with one sample of memory.
// The zero value is not usable; construct with [New] or one of the
// canonical tap constructors.
type Filter struct {
	b0, b1 float64
	prev   float64
}

// New creates a two-tap filter with the given coefficients and cleared state.
func New(b0, b1 float64) *Filter {
	return &Filter{b0: b0, b1: b1}
}

// AnalysisLowpass returns the Haar analysis lowpass filter (0.5, 0.5).
func AnalysisLowpass() *Filter { return New(0.5, 0.5) }

// AnalysisHighpass returns the Haar analysis highpass filter (-0.5, 0.5).
func AnalysisHighpass() *Filter { return New(-0.5, 0.5) }

// SynthesisLowpass returns the Haar synthesis lowpass filter (1, 1).
func SynthesisLowpass() *Filter { return New(1, 1) }

// SynthesisHighpass returns the Haar synthesis highpass filter (1, -1).
func SynthesisHighpass() *Filter { return New(1, -1) }

// ProcessSample filters one input sample:
//
//	y[n] = b0*x[n] + b1*x[n-1]
//
// Non-finite inputs propagate; there are no error conditions.
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.b0*x + f.b1*f.prev
	f.prev = x
	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the filter memory.
func (f *Filter) Reset() {
	f.prev = 0
}

// Taps returns the filter coefficients.
func (f *Filter) Taps() (b0, b1 float64) {
	return f.b0, f.b1
}

// Response computes the complex frequency response H(e^{-jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	return complex(f.b0, 0) + complex(f.b1, 0)*cmplx.Exp(complex(0, -w))
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
