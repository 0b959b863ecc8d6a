package qmf

import "fmt"

// BandFunc inspects or edits one sub-band in place. The level index is the
// band's callback level: 0..N-1 are the detail bands (0 = finest, the top
// octave), N is the residual band.
type BandFunc func(band []float64, level int)

// Bank is a recursive two-band Haar QMF filter bank with N levels.
//
// A Bank owns its per-level stages exclusively; all mutable state is touched
// only inside Process, which must not be called concurrently on the same
// instance. State persists across calls so consecutive chunks of a stream
// can be processed without resetting.
type Bank struct {
	stages []*Stage
}

// New creates a bank with the given number of detail levels (>= 1).
func New(levels int) (*Bank, error) {
	if levels < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevels, levels)
	}
	stages := make([]*Stage, levels)
	for i := range stages {
		stages[i] = NewStage()
	}
	return &Bank{stages: stages}, nil
}

// Process decomposes buf into N detail bands plus one residual band, hands
// each band to fn, and resynthesizes the (possibly edited) bands back into
// buf in place. A nil fn is treated as a no-op, making Process the identity
// transform up to the bank delay.
//
// fn fires exactly N+1 times, deepest band first: the residual (level N),
// then the detail bands from level N-1 down to level 0. Synthesis at each
// level reads the band contents after fn returns, so in-place edits are
// reflected in the reconstruction.
//
// len(buf) must be a multiple of [Bank.Delay] so that every recursion level
// sees full decimation groups; other lengths return [ErrBufferLength].
func (b *Bank) Process(buf []float64, fn BandFunc) error {
	if len(buf)%b.Delay() != 0 {
		return fmt.Errorf("%w: len %d, delay %d", ErrBufferLength, len(buf), b.Delay())
	}
	if fn == nil {
		fn = func([]float64, int) {}
	}
	return b.processBand(buf, fn, 0)
}

func (b *Bank) processBand(buf []float64, fn BandFunc, level int) error {
	low, high := b.stages[level].Analysis(buf)

	if level+1 == len(b.stages) {
		fn(low, level+1)
	} else if err := b.processBand(low, fn, level+1); err != nil {
		return err
	}
	fn(high, level)

	return b.stages[level].Synthesis(low, high, buf)
}

// Delay returns the bank's fixed group delay in samples, 2^N.
// It is pure and does not touch bank state.
func (b *Bank) Delay() int {
	return 1 << len(b.stages)
}

// Levels returns the number of detail levels N.
func (b *Bank) Levels() int {
	return len(b.stages)
}

// Reset clears all filter memory and sampler phase across all levels,
// restoring the just-constructed state.
func (b *Bank) Reset() {
	for _, s := range b.stages {
		s.Reset()
	}
}
