package pow

import (
	"math"
	"testing"

	"github.com/pkg/errors"

	"github.com/powcheck/powcheck/util/ruleerr"
)

// TestSolveNonce runs a search against a very easy target, where roughly
// every second hash satisfies the proof of work.
func TestSolveNonce(t *testing.T) {
	header := genesisHeader(t)
	easy := *header
	easy.Bits = 0x207fffff

	nonce, found, err := SolveNonce(&easy, 0, nil)
	if err != nil {
		t.Fatalf("SolveNonce: %v", err)
	}
	if !found {
		t.Fatal("SolveNonce: no nonce found for an easy target")
	}

	solved := easy
	solved.Nonce = nonce
	confirmed, err := CheckProofOfWork(&solved)
	if err != nil {
		t.Fatalf("CheckProofOfWork: %v", err)
	}
	if !confirmed {
		t.Errorf("SolveNonce: returned nonce %d does not confirm", nonce)
	}

	// The input header must not have been touched by the search.
	if easy.Nonce != header.Nonce {
		t.Error("SolveNonce: modified the caller's header")
	}
}

// TestSolveNonceCancellation ensures a closed stop channel halts the search
// immediately.
func TestSolveNonceCancellation(t *testing.T) {
	header := genesisHeader(t)
	hard := *header
	// Target of 1; no hash can fall below it in practice.
	hard.Bits = 0x03000001

	stop := make(chan struct{})
	close(stop)

	_, found, err := SolveNonce(&hard, 0, stop)
	if !errors.Is(err, ErrSolveCancelled) {
		t.Errorf("SolveNonce: got %v, want %v", err, ErrSolveCancelled)
	}
	if found {
		t.Error("SolveNonce: cancelled search reported a nonce")
	}
}

// TestSolveNonceExhaustion starts the search at the last nonce so the space
// runs out after a single attempt.
func TestSolveNonceExhaustion(t *testing.T) {
	header := genesisHeader(t)
	hard := *header
	hard.Bits = 0x03000001

	nonce, found, err := SolveNonce(&hard, math.MaxUint32, nil)
	if err != nil {
		t.Fatalf("SolveNonce: %v", err)
	}
	if found {
		t.Errorf("SolveNonce: found impossible nonce %d", nonce)
	}
}

// TestSolveNonceBadBits ensures an undecodable target is rejected before
// any hashing happens.
func TestSolveNonceBadBits(t *testing.T) {
	header := genesisHeader(t)
	bad := *header
	bad.Bits = 0x21000001

	_, _, err := SolveNonce(&bad, 0, nil)
	if !ruleerr.IsRangeError(err) {
		t.Errorf("SolveNonce: got %v, want RangeError", err)
	}
}
