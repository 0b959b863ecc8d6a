// Package response measures the effective frequency response of the QMF
// filter bank's band paths.
//
// [BandShapes] isolates one band at a time: it drives a fresh bank with a
// unit impulse, zeroes every other band in the callback, and FFTs the
// reconstruction. The resulting magnitude spectra show what each band
// actually passes, including the aliasing skirts inherent to the two-tap
// Haar pair.
//
// [NominalEdges] reports the ideal dyadic band edges the cascade aims for:
// the level-k detail band spans sampleRate/2^(k+2) .. sampleRate/2^(k+1),
// the residual band everything below the deepest split.
package response
