package qmf

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-qmf/dsp/core"
)

// Level holds the measured level of one sub-band.
type Level struct {
	Band int     // callback level: 0..N-1 detail, N residual
	RMS  float64 // root-mean-square over the band's decimated samples
	Peak float64 // largest absolute sample value
}

// Analyzer measures per-band RMS and peak levels through the same
// decomposition that [Bank.Process] uses.
type Analyzer struct {
	bank    *Bank
	scratch []float64
}

// NewAnalyzer creates an analyzer over an N-level bank.
func NewAnalyzer(levels int) (*Analyzer, error) {
	bank, err := New(levels)
	if err != nil {
		return nil, err
	}
	return &Analyzer{bank: bank}, nil
}

// Measure decomposes buf, records each band's RMS and peak, and
// resynthesizes buf in place (Measure is a Process call with a metering
// callback, so buf makes the same identity round trip). Results are ordered
// as the callback fires: residual band first, then detail bands from
// coarsest to finest.
func (a *Analyzer) Measure(buf []float64) ([]Level, error) {
	out := make([]Level, 0, a.bank.Levels()+1)
	err := a.bank.Process(buf, func(band []float64, level int) {
		out = append(out, a.measureBand(band, level))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Analyzer) measureBand(band []float64, level int) Level {
	l := Level{Band: level}
	if len(band) == 0 {
		return l
	}
	a.scratch = core.EnsureLen(a.scratch, len(band))
	vecmath.MulBlock(a.scratch, band, band)
	l.RMS = math.Sqrt(vecmath.Sum(a.scratch) / float64(len(band)))
	l.Peak = vecmath.MaxAbs(band)
	return l
}

// Levels returns the number of detail levels.
func (a *Analyzer) Levels() int { return a.bank.Levels() }

// Delay returns the underlying bank delay in samples.
func (a *Analyzer) Delay() int { return a.bank.Delay() }

// Reset clears the underlying bank state.
func (a *Analyzer) Reset() { a.bank.Reset() }
