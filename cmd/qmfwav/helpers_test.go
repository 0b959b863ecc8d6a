package main

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-qmf/dsp/qmf"
)

func TestParseGains(t *testing.T) {
	dbs, err := parseGains("", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(dbs) != 4 {
		t.Fatalf("len: got %d, want 4", len(dbs))
	}
	for i, v := range dbs {
		if v != 0 {
			t.Errorf("default gain %d: got %v, want 0", i, v)
		}
	}

	dbs, err = parseGains("-6, 0, 3,-inf", 3)
	if err != nil {
		t.Fatal(err)
	}
	if dbs[0] != -6 || dbs[1] != 0 || dbs[2] != 3 {
		t.Errorf("parsed gains: got %v", dbs)
	}
	if !math.IsInf(dbs[3], -1) {
		t.Errorf("dbs[3]: got %v, want -Inf", dbs[3])
	}

	if _, err := parseGains("1,2", 3); err == nil {
		t.Error("wrong gain count should fail")
	}
	if _, err := parseGains("a,b,c,d", 3); err == nil {
		t.Error("unparsable gains should fail")
	}
}

func TestProcessChannel_PadsToDelayMultiple(t *testing.T) {
	eq, err := qmf.NewEqualizer(3)
	if err != nil {
		t.Fatal(err)
	}

	// 100 samples is not a multiple of the 8-sample delay; processChannel
	// must pad internally and still process in place.
	samples := make([]float64, 100)
	for i := range samples {
		samples[i] = 1
	}
	if err := processChannel(eq, samples); err != nil {
		t.Fatal(err)
	}
	if len(samples) != 100 {
		t.Fatalf("len changed: %d", len(samples))
	}
	for i, v := range samples[eq.Delay():] {
		if math.Abs(v-1) > 1e-12 {
			t.Fatalf("sample %d: got %v, want 1", i+eq.Delay(), v)
		}
	}
}

func TestPCMScale(t *testing.T) {
	cases := map[int]float64{8: 127, 16: 32767, 24: 8388607, 32: 2147483647}
	for depth, want := range cases {
		if got := pcmScale(depth); got != want {
			t.Errorf("pcmScale(%d): got %v, want %v", depth, got, want)
		}
	}
}
