// Package sampling provides stateful decimation and zero-stuffing
// interpolation with phase that persists across calls.
//
// A [Downsampler] keeps the phase-0 element of every group of factor
// consecutive input elements; an [Upsampler] emits each input element
// followed by factor-1 fill values. Both operate as lazy transforms over
// iter.Seq streams, and both carry their phase counter from one Resample
// call to the next, so consecutive chunks of a longer stream stay aligned
// without any realignment between calls.
//
// Splitting a stream into chunks and resampling each chunk therefore
// produces exactly the output of resampling the whole stream at once:
//
//	d := sampling.NewDownsampler(2)
//	a := d.ResampleSlice([]float64{1, 2, 3}) // [1 3]
//	b := d.ResampleSlice([]float64{4, 5, 6}) // [5], phase carried over
//
// The samplers are the rate-change half of the QMF cascade in dsp/qmf,
// which always uses factor 2.
package sampling
