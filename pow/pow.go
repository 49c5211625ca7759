package pow

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/powcheck/powcheck/util"
	"github.com/powcheck/powcheck/util/chainhash"
	"github.com/powcheck/powcheck/wire"
)

// CheckProofOfWorkWithTarget checks whether the header has a valid proof of
// work according to the provided target. The header hash, interpreted as an
// unsigned big integer, must be strictly less than the target.
func CheckProofOfWorkWithTarget(header *wire.BlockHeader, target *big.Int) bool {
	hash := header.BlockHash()
	hashNum := chainhash.HashToBig(&hash)

	return hashNum.Cmp(target) < 0
}

// CheckProofOfWork checks whether the header has a valid proof of work
// according to its own Bits field. A RangeError is returned when Bits does
// not decode to a representable target.
func CheckProofOfWork(header *wire.BlockHeader) (bool, error) {
	target, err := util.CompactToBig(header.Bits)
	if err != nil {
		return false, err
	}
	return CheckProofOfWorkWithTarget(header, target), nil
}

// Result carries everything a caller may want to display about one proof of
// work verification.
type Result struct {
	// Header is the serialized 80-byte header as a 160-character hex
	// string.
	Header string

	// Hash is the double hash of the header as a 64-character hex string
	// in display byte order.
	Hash string

	// Target is the decoded difficulty target as a zero-padded
	// 64-character hex string.
	Target string

	// Work is the expected number of hash attempts the target represents.
	Work *big.Int

	// Confirmed reports whether the hash is strictly below the target.
	Confirmed bool
}

// Verify runs the full verification pipeline on the header: serialize,
// double hash, decode the compact target and compare. It returns the
// intermediate artifacts along with the confirmation result, or an error
// when the Bits field is out of range.
func Verify(header *wire.BlockHeader) (*Result, error) {
	target, err := util.CompactToBig(header.Bits)
	if err != nil {
		return nil, err
	}
	work, err := util.CalcWork(header.Bits)
	if err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer(make([]byte, 0, wire.BlockHeaderLen))
	if err := header.Serialize(buf); err != nil {
		return nil, errors.Wrap(err, "serializing header")
	}
	hash := chainhash.DoubleHashH(buf.Bytes())
	hashNum := chainhash.HashToBig(&hash)

	return &Result{
		Header:    hex.EncodeToString(buf.Bytes()),
		Hash:      hash.String(),
		Target:    fmt.Sprintf("%064x", target),
		Work:      work,
		Confirmed: hashNum.Cmp(target) < 0,
	}, nil
}
