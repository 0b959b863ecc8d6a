// Command qmfwav applies per-band gains to a WAV file through a recursive
// Haar QMF filter bank.
//
// Usage:
//
//	qmfwav [flags] input.wav output.wav
//
// Gains are given in dB, finest detail band first and residual band last,
// so "-levels 3 -gains -6,0,0,3" tames the top octave and lifts the lows.
//
// Examples:
//
//	qmfwav -levels 3 -gains -6,0,0,3 in.wav out.wav
//	qmfwav -levels 4 -gains -inf,0,0,0,0 in.wav out.wav   # mute the top octave
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-qmf/dsp/qmf"
)

func main() {
	levels := flag.Int("levels", 4, "number of detail levels (octave splits)")
	gains := flag.String("gains", "", "comma-separated band gains in dB, finest detail first, residual last ('-inf' mutes)")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qmfwav [flags] input.wav output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Applies per-band gains to a WAV file through a Haar QMF filter bank.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(args[0], args[1], *levels, *gains, *verbose); err != nil {
		log.Fatalf("qmfwav: %v", err)
	}
}

func run(inPath, outPath string, levels int, gainSpec string, verbose bool) error {
	dbs, err := parseGains(gainSpec, levels)
	if err != nil {
		return err
	}

	in, err := openWAVInput(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	if verbose {
		log.Printf("input: %d Hz, %d channels, %d-bit, %d frames",
			in.rate, in.channels, in.bitDepth, len(in.samples[0]))
	}

	for ch := range in.samples {
		eq, err := qmf.NewEqualizer(levels)
		if err != nil {
			return err
		}
		if err := eq.SetGainsDB(dbs); err != nil {
			return err
		}
		if err := processChannel(eq, in.samples[ch]); err != nil {
			return fmt.Errorf("channel %d: %w", ch, err)
		}
	}

	if verbose {
		reportBandLevels(in, levels)
	}

	return writeWAVOutput(outPath, in)
}

// processChannel runs one channel through the equalizer. The channel is
// padded with zeros to a multiple of the bank delay, processed in place,
// and trimmed back to its original length.
func processChannel(eq *qmf.Equalizer, samples []float64) error {
	n := len(samples)
	delay := eq.Delay()
	padded := samples
	if rem := n % delay; rem != 0 {
		padded = make([]float64, n+delay-rem)
		copy(padded, samples)
	}
	if err := eq.Process(padded); err != nil {
		return err
	}
	copy(samples, padded[:n])
	return nil
}

// parseGains parses a comma-separated dB list into levels+1 values.
// An empty spec means unity gain everywhere; "-inf" mutes a band.
func parseGains(spec string, levels int) ([]float64, error) {
	dbs := make([]float64, levels+1)
	if spec == "" {
		return dbs, nil
	}

	parts := strings.Split(spec, ",")
	if len(parts) != levels+1 {
		return nil, fmt.Errorf("need %d gains for %d levels, got %d", levels+1, levels, len(parts))
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		// ParseFloat handles "-inf" itself.
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("gain %q: %w", p, err)
		}
		dbs[i] = v
	}
	return dbs, nil
}
