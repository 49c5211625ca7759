package pow

import (
	"math"

	"github.com/pkg/errors"

	"github.com/powcheck/powcheck/util"
	"github.com/powcheck/powcheck/wire"
)

// ErrSolveCancelled is returned by SolveNonce when the stop channel closes
// before a satisfying nonce is found.
var ErrSolveCancelled = errors.New("nonce search cancelled")

// SolveNonce searches the 32-bit nonce space, starting at startNonce, for a
// nonce that makes the header hash fall strictly below the target its Bits
// field decodes to. The given header is not modified.
//
// The search stops on the first of: a satisfying nonce (returned with found
// set to true), the nonce space running out (found is false), or the stop
// channel closing (ErrSolveCancelled). A nil stop channel disables
// cancellation. A RangeError is returned up front when Bits does not decode.
//
// Realistic network targets are computationally infeasible to satisfy on
// ordinary hardware, so callers are expected to provide a stop channel
// whenever the target is not known to be easy.
func SolveNonce(header *wire.BlockHeader, startNonce uint32, stop <-chan struct{}) (nonce uint32, found bool, err error) {
	target, err := util.CompactToBig(header.Bits)
	if err != nil {
		return 0, false, err
	}

	// Work on a copy so the caller's header stays untouched.
	candidate := *header

	for i := uint64(startNonce); i <= math.MaxUint32; i++ {
		select {
		case <-stop:
			return 0, false, ErrSolveCancelled
		default:
		}

		candidate.Nonce = uint32(i)
		if CheckProofOfWorkWithTarget(&candidate, target) {
			return candidate.Nonce, true, nil
		}
	}

	return 0, false, nil
}
