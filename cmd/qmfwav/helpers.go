package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-qmf/dsp/core"
	"github.com/cwbudde/algo-qmf/dsp/qmf"
)

// wavInput holds a fully decoded, deinterleaved WAV file with samples
// normalized to [-1, 1].
type wavInput struct {
	rate     int
	channels int
	bitDepth int
	samples  [][]float64 // samples[channel][frame]
}

func (w *wavInput) Close() error { return nil }

// openWAVInput decodes a WAV file into normalized per-channel samples.
func openWAVInput(path string) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	format := buf.Format
	bitDepth := int(decoder.BitDepth)
	scale := pcmScale(bitDepth)

	channels := format.NumChannels
	frames := len(buf.Data) / channels
	samples := make([][]float64, channels)
	for ch := range samples {
		samples[ch] = make([]float64, frames)
	}
	for i, v := range buf.Data[:frames*channels] {
		samples[i%channels][i/channels] = float64(v) / scale
	}

	return &wavInput{
		rate:     format.SampleRate,
		channels: channels,
		bitDepth: bitDepth,
		samples:  samples,
	}, nil
}

// writeWAVOutput reinterleaves and encodes the processed samples with the
// input's format.
func writeWAVOutput(path string, in *wavInput) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, in.rate, in.bitDepth, in.channels, 1)
	scale := pcmScale(in.bitDepth)

	frames := 0
	if in.channels > 0 {
		frames = len(in.samples[0])
	}
	data := make([]int, frames*in.channels)
	for ch, channel := range in.samples {
		for i, v := range channel {
			v = core.Clamp(v, -1, 1)
			data[i*in.channels+ch] = int(v * scale)
		}
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: in.channels, SampleRate: in.rate},
		Data:           data,
		SourceBitDepth: in.bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return f.Close()
}

// reportBandLevels logs the post-processing RMS of every band of channel 0.
func reportBandLevels(in *wavInput, levels int) {
	if len(in.samples) == 0 {
		return
	}
	analyzer, err := qmf.NewAnalyzer(levels)
	if err != nil {
		log.Printf("analyzer: %v", err)
		return
	}

	delay := analyzer.Delay()
	n := len(in.samples[0]) / delay * delay
	probe := make([]float64, n)
	copy(probe, in.samples[0][:n])

	bands, err := analyzer.Measure(probe)
	if err != nil {
		log.Printf("analyzer: %v", err)
		return
	}
	for _, b := range bands {
		log.Printf("band %d: %.1f dB RMS", b.Band, core.LinearToDB(b.RMS))
	}
}

// pcmScale returns the full-scale magnitude for a PCM bit depth.
func pcmScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 127
	case 24:
		return 8388607
	case 32:
		return 2147483647
	default:
		return 32767
	}
}
