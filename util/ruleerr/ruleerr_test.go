package ruleerr

import (
	"testing"

	"github.com/pkg/errors"
)

// TestErrorKinds ensures the error kind of a typed error survives wrapping
// and that the two kinds don't match each other.
func TestErrorKinds(t *testing.T) {
	formatErr := NewFormatError("merkleRoot", "hash string has length 63, want 64")
	rangeErr := NewRangeError("bits", "compact target exponent 33 is outside [3, 32]")

	tests := []struct {
		name         string
		err          error
		wantIsFormat bool
		wantIsRange  bool
	}{
		{"format error", formatErr, true, false},
		{"range error", rangeErr, false, true},
		{"wrapped format error", errors.Wrap(formatErr, "parsing header"), true, false},
		{"wrapped range error", errors.Wrap(rangeErr, "decoding target"), false, true},
		{"unrelated error", errors.New("boom"), false, false},
		{"nil", nil, false, false},
	}

	for _, test := range tests {
		if got := IsFormatError(test.err); got != test.wantIsFormat {
			t.Errorf("%s: IsFormatError = %t, want %t", test.name, got,
				test.wantIsFormat)
		}
		if got := IsRangeError(test.err); got != test.wantIsRange {
			t.Errorf("%s: IsRangeError = %t, want %t", test.name, got,
				test.wantIsRange)
		}
	}
}

// TestErrorMessages ensures the field name makes it into the message, so a
// caller can tell which input to fix.
func TestErrorMessages(t *testing.T) {
	err := NewFormatError("prevBlock", "hash string has length 65, want 64")
	want := "invalid prevBlock: hash string has length 65, want 64"
	if err.Error() != want {
		t.Errorf("FormatError.Error: got %q, want %q", err.Error(), want)
	}

	rerr := NewRangeError("bits", "compact target exponent 2 is outside [3, 32]")
	wantRange := "bits out of range: compact target exponent 2 is outside [3, 32]"
	if rerr.Error() != wantRange {
		t.Errorf("RangeError.Error: got %q, want %q", rerr.Error(), wantRange)
	}
}
