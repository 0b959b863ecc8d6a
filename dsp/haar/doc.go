// Package haar provides the two-tap Haar filter primitive used by the
// quadrature-mirror filter bank in dsp/qmf.
//
// A [Filter] realizes the first-order transfer function
//
//	y[n] = b0*x[n] + b1*x[n-1]
//
// with a single sample of memory. The four canonical Haar tap pairs form a
// perfect-reconstruction QMF pair together with critical resampling by 2:
//
//	analysis lowpass   ( 0.5,  0.5)
//	analysis highpass  (-0.5,  0.5)
//	synthesis lowpass  ( 1.0,  1.0)
//	synthesis highpass ( 1.0, -1.0)
//
// This package provides the processing runtime only. The cascade wiring
// (splitting, decimation, recombination) lives in dsp/qmf.
package haar
