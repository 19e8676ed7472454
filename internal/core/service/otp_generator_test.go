package service

import (
	"strconv"
	"testing"
)

func TestGenerateCode_AlwaysSixDigits(t *testing.T) {
	for i := 0; i < 5000; i++ {
		code, err := generateCode()
		if err != nil {
			t.Fatalf("generateCode returned error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 digits", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d out of [100000, 999999]", n)
		}
	}
}

func TestGenerateCode_SpreadsOverRange(t *testing.T) {
	// Statistical sanity, not a per-call guarantee: over many draws every
	// leading digit 1–9 should appear and collisions should be rare.
	const trials = 9000
	leading := make(map[byte]int)
	distinct := make(map[string]struct{}, trials)
	for i := 0; i < trials; i++ {
		code, err := generateCode()
		if err != nil {
			t.Fatalf("generateCode returned error: %v", err)
		}
		leading[code[0]]++
		distinct[code] = struct{}{}
	}

	for d := byte('1'); d <= '9'; d++ {
		if leading[d] == 0 {
			t.Fatalf("leading digit %c never generated in %d trials", d, trials)
		}
	}
	if len(distinct) < trials/2 {
		t.Fatalf("only %d distinct codes in %d trials; distribution looks degenerate", len(distinct), trials)
	}
}
