// Package qmf implements a recursive two-band Haar quadrature-mirror filter
// bank with perfect reconstruction.
//
// A [Bank] with N levels splits a buffer into N detail (highpass) bands plus
// one residual (lowpass) band, hands every band to a caller-supplied
// callback for inspection or in-place editing, and resynthesizes the bands
// back into the buffer. Each level halves the remaining bandwidth: level 0
// covers the top octave of the spectrum, level 1 the octave below it, and so
// on down to the residual.
//
// The decomposition is critically sampled. Each [Stage] filters its input
// with the Haar analysis pair, decimates both branches by 2, and later
// zero-stuffs and refilters them with the synthesis pair so that low + high
// reconstructs the input exactly, delayed by 2 samples per level. The bank's
// total group delay is therefore 2^N samples, reported by [Bank.Delay].
//
// Filter memory and sampler phase persist across Process calls. This is
// deliberate: a long stream can be processed in consecutive chunks and the
// reconstruction guarantee holds across the chunk boundaries. With a no-op
// callback and a settled bank, Process is the identity transform.
//
// Basic usage:
//
//	b, _ := qmf.New(3)
//	err := b.Process(buf, func(band []float64, level int) {
//	    if level == 0 { // finest detail band
//	        for i := range band {
//	            band[i] *= 0.5
//	        }
//	    }
//	})
//
// The callback fires N+1 times per Process call, residual band first
// (level N), then detail bands from level N-1 down to level 0.
//
// [Equalizer] and [Analyzer] are thin clients of Bank.Process for the two
// common uses: per-band gain and per-band level metering.
package qmf
