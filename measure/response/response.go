package response

import (
	"fmt"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-qmf/dsp/core"
	"github.com/cwbudde/algo-qmf/dsp/qmf"
)

// BandEdge describes the nominal frequency range of one band.
type BandEdge struct {
	Level  int // callback level: 0..N-1 detail, N residual
	LowHz  float64
	HighHz float64
}

// NominalEdges returns the ideal dyadic band edges for an N-level bank at
// the given sample rate, ordered residual band first to match the callback
// order of [qmf.Bank.Process].
func NominalEdges(levels int, sampleRate float64) ([]BandEdge, error) {
	if levels < 1 {
		return nil, fmt.Errorf("%w: got %d", qmf.ErrInvalidLevels, levels)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("response: sample rate must be positive, got %v", sampleRate)
	}

	edges := make([]BandEdge, 0, levels+1)
	edges = append(edges, BandEdge{
		Level:  levels,
		LowHz:  0,
		HighHz: sampleRate / float64(int(1)<<(levels+1)),
	})
	for level := levels - 1; level >= 0; level-- {
		edges = append(edges, BandEdge{
			Level:  level,
			LowHz:  sampleRate / float64(int(1)<<(level+2)),
			HighHz: sampleRate / float64(int(1)<<(level+1)),
		})
	}
	return edges, nil
}

// BandShapes measures the magnitude response of every band path of an
// N-level bank by isolating one band at a time and FFT-ing its impulse
// response. size is both the impulse response length and the FFT size; it
// must be a power of two no smaller than the bank delay 2^N.
//
// The result holds levels+1 spectra of size/2+1 bins each, indexed by
// callback level (index N is the residual band). Bin k corresponds to
// frequency k/size in units of the sample rate.
func BandShapes(levels, size int) ([][]float64, error) {
	if levels < 1 {
		return nil, fmt.Errorf("%w: got %d", qmf.ErrInvalidLevels, levels)
	}
	if size < 1<<levels || bits.OnesCount(uint(size)) != 1 {
		return nil, fmt.Errorf("response: size must be a power of two >= the bank delay %d, got %d",
			1<<levels, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	shapes := make([][]float64, levels+1)
	for target := 0; target <= levels; target++ {
		ir, err := isolatedImpulseResponse(levels, target, size)
		if err != nil {
			return nil, err
		}

		in := make([]complex128, size)
		for i, v := range ir {
			in[i] = complex(v, 0)
		}
		out := make([]complex128, size)
		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("response: forward FFT failed: %w", err)
		}

		shapes[target] = magnitudes(out[:size/2+1])
	}
	return shapes, nil
}

// isolatedImpulseResponse runs a unit impulse through a fresh bank with all
// bands except target muted.
func isolatedImpulseResponse(levels, target, size int) ([]float64, error) {
	bank, err := qmf.New(levels)
	if err != nil {
		return nil, err
	}

	buf := make([]float64, size)
	buf[0] = 1
	err = bank.Process(buf, func(band []float64, level int) {
		if level != target {
			core.Zero(band)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("response: band %d: %w", target, err)
	}
	return buf, nil
}

func magnitudes(bins []complex128) []float64 {
	re := make([]float64, len(bins))
	im := make([]float64, len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}
	out := make([]float64, len(bins))
	vecmath.Magnitude(out, re, im)
	return out
}
