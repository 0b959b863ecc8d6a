package qmf

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-qmf/dsp/core"
)

// Equalizer applies a per-band gain between decomposition and
// recomposition. Band indexing follows the callback levels of [Bank]:
// 0..N-1 are detail bands (0 = finest), N is the residual band.
type Equalizer struct {
	bank  *Bank
	gains []float64 // linear, indexed by band level
	dB    []float64
}

// NewEqualizer creates an equalizer over an N-level bank with all gains at
// unity (0 dB).
func NewEqualizer(levels int) (*Equalizer, error) {
	bank, err := New(levels)
	if err != nil {
		return nil, err
	}
	gains := make([]float64, levels+1)
	dB := make([]float64, levels+1)
	for i := range gains {
		gains[i] = 1
	}
	return &Equalizer{bank: bank, gains: gains, dB: dB}, nil
}

// SetGainDB sets the gain of one band in dB. Negative infinity mutes the
// band entirely.
func (e *Equalizer) SetGainDB(level int, db float64) error {
	if level < 0 || level >= len(e.gains) {
		return fmt.Errorf("qmf: band level %d out of range [0, %d]", level, len(e.gains)-1)
	}
	e.dB[level] = db
	e.gains[level] = core.DBToLinear(db)
	return nil
}

// SetGainsDB sets all band gains at once, residual band last.
// The slice must hold exactly Levels()+1 values.
func (e *Equalizer) SetGainsDB(dbs []float64) error {
	if len(dbs) != len(e.gains) {
		return fmt.Errorf("qmf: need %d gains, got %d", len(e.gains), len(dbs))
	}
	for level, db := range dbs {
		if err := e.SetGainDB(level, db); err != nil {
			return err
		}
	}
	return nil
}

// GainDB returns the gain of one band in dB; out-of-range levels report NaN.
func (e *Equalizer) GainDB(level int) float64 {
	if level < 0 || level >= len(e.dB) {
		return math.NaN()
	}
	return e.dB[level]
}

// Process runs buf through the bank, scaling each band by its gain.
// The same length contract as [Bank.Process] applies.
func (e *Equalizer) Process(buf []float64) error {
	return e.bank.Process(buf, func(band []float64, level int) {
		g := e.gains[level]
		if g == 1 || len(band) == 0 {
			return
		}
		vecmath.ScaleBlockInPlace(band, g)
	})
}

// Levels returns the number of detail levels.
func (e *Equalizer) Levels() int { return e.bank.Levels() }

// Delay returns the underlying bank delay in samples.
func (e *Equalizer) Delay() int { return e.bank.Delay() }

// Reset clears the underlying bank state. Gains are kept.
func (e *Equalizer) Reset() { e.bank.Reset() }
