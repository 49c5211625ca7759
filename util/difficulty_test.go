// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"math/big"
	"testing"

	"github.com/powcheck/powcheck/util/ruleerr"
)

// hexToBig converts a hex string to a big.Int, failing the test on bad input.
func hexToBig(t *testing.T, hexStr string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		t.Fatalf("invalid hex string %q", hexStr)
	}
	return n
}

// TestCompactToBig ensures compact values decode to the expected targets and
// that unrepresentable values are rejected.
func TestCompactToBig(t *testing.T) {
	tests := []struct {
		name     string
		in       uint32
		out      string
		rangeErr bool
	}{
		{"genesis difficulty", 0x1d00ffff,
			"00000000ffff0000000000000000000000000000000000000000000000000000", false},
		{"block 100000 difficulty", 0x1b0404cb,
			"00000000000404cb000000000000000000000000000000000000000000000000", false},
		{"smallest valid exponent", 0x03123456, "123456", false},
		{"largest valid exponent", 0x207fffff,
			"7fffff0000000000000000000000000000000000000000000000000000000000", false},
		{"zero mantissa", 0x1d000000, "0", false},
		{"exponent zero", 0x00ffffff, "", true},
		{"exponent below minimum", 0x02123456, "", true},
		{"exponent above maximum", 0x21000001, "", true},
		{"exponent at maximum byte value", 0xff123456, "", true},
		{"sign bit set", 0x04800000, "", true},
		{"sign bit set on valid exponent", 0x1d800001, "", true},
	}

	for _, test := range tests {
		got, err := CompactToBig(test.in)
		if test.rangeErr {
			if err == nil {
				t.Errorf("%s: expected error for %#08x, got target %x",
					test.name, test.in, got)
				continue
			}
			if !ruleerr.IsRangeError(err) {
				t.Errorf("%s: wrong error kind: %v", test.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		want := hexToBig(t, test.out)
		if got.Cmp(want) != 0 {
			t.Errorf("%s: got %x, want %x", test.name, got, want)
		}
	}
}

// TestBigToCompact ensures targets re-encode to their original compact form.
func TestBigToCompact(t *testing.T) {
	tests := []struct {
		in  string
		out uint32
	}{
		{"00000000ffff0000000000000000000000000000000000000000000000000000", 0x1d00ffff},
		{"00000000000404cb000000000000000000000000000000000000000000000000", 0x1b0404cb},
		{"123456", 0x03123456},
		{"0", 0},
	}

	for i, test := range tests {
		got := BigToCompact(hexToBig(t, test.in))
		if got != test.out {
			t.Errorf("TestBigToCompact #%d: got %#08x, want %#08x",
				i, got, test.out)
		}
	}
}

// TestCompactRoundTrip decodes a handful of compact values and re-encodes
// the result, which must return the original value whenever the mantissa is
// normalized.
func TestCompactRoundTrip(t *testing.T) {
	compacts := []uint32{0x1d00ffff, 0x1b0404cb, 0x181bc330, 0x03123456, 0x207fffff}
	for _, compact := range compacts {
		target, err := CompactToBig(compact)
		if err != nil {
			t.Errorf("CompactToBig(%#08x): %v", compact, err)
			continue
		}
		if got := BigToCompact(target); got != compact {
			t.Errorf("round trip %#08x: got %#08x", compact, got)
		}
	}
}

// TestTargetMonotonicity checks that the decoded target grows with the
// mantissa and by a factor of 256 per exponent step.
func TestTargetMonotonicity(t *testing.T) {
	smaller, err := CompactToBig(0x1d00ffff)
	if err != nil {
		t.Fatalf("CompactToBig: %v", err)
	}
	larger, err := CompactToBig(0x1d010000)
	if err != nil {
		t.Fatalf("CompactToBig: %v", err)
	}
	if smaller.Cmp(larger) >= 0 {
		t.Errorf("mantissa monotonicity: %x >= %x", smaller, larger)
	}

	lowExponent, err := CompactToBig(0x1c00ffff)
	if err != nil {
		t.Fatalf("CompactToBig: %v", err)
	}
	shifted := new(big.Int).Lsh(lowExponent, 8)
	if shifted.Cmp(smaller) != 0 {
		t.Errorf("exponent step: got %x, want %x", shifted, smaller)
	}
}

// TestCalcWork checks the expected-attempts math against the well-known
// genesis value and ensures bad bits propagate their error.
func TestCalcWork(t *testing.T) {
	work, err := CalcWork(0x1d00ffff)
	if err != nil {
		t.Fatalf("CalcWork: %v", err)
	}
	if want := big.NewInt(0x100010001); work.Cmp(want) != 0 {
		t.Errorf("CalcWork(0x1d00ffff): got %v, want %v", work, want)
	}

	work, err = CalcWork(0x1d000000)
	if err != nil {
		t.Fatalf("CalcWork: %v", err)
	}
	if work.Sign() != 0 {
		t.Errorf("CalcWork on zero target: got %v, want 0", work)
	}

	_, err = CalcWork(0x02123456)
	if !ruleerr.IsRangeError(err) {
		t.Errorf("CalcWork on bad bits: got %v, want RangeError", err)
	}
}
