// Command qmfinfo prints the band layout of a recursive Haar QMF filter bank.
//
// Usage:
//
//	qmfinfo [flags]
//
// Examples:
//
//	qmfinfo -levels 4
//	qmfinfo -levels 6 -rate 44100
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-qmf/dsp/qmf"
	"github.com/cwbudde/algo-qmf/measure/response"
)

func main() {
	levels := flag.Int("levels", 4, "number of detail levels (octave splits)")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qmfinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the band layout and latency of a Haar QMF filter bank.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*levels, *rate); err != nil {
		fmt.Fprintf(os.Stderr, "qmfinfo: %v\n", err)
		os.Exit(1)
	}
}

func run(levels int, rate float64) error {
	bank, err := qmf.New(levels)
	if err != nil {
		return err
	}
	edges, err := response.NominalEdges(levels, rate)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BAND\tTYPE\tRANGE (Hz)\tBAND RATE (Hz)")
	for _, e := range edges {
		kind := "detail"
		depth := e.Level + 1
		if e.Level == levels {
			kind = "residual"
			depth = levels
		}
		bandRate := rate / float64(int(1)<<depth)
		fmt.Fprintf(w, "%d\t%s\t%.1f – %.1f\t%.1f\n", e.Level, kind, e.LowHz, e.HighHz, bandRate)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	delay := bank.Delay()
	fmt.Printf("\nGroup delay: %d samples (%.2f ms at %.0f Hz)\n",
		delay, float64(delay)/rate*1000, rate)
	return nil
}
