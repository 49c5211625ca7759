// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"math/big"

	"github.com/powcheck/powcheck/util/ruleerr"
)

const (
	// minCompactExponent and maxCompactExponent bound the exponent byte of
	// a compact target. Below 3 the mantissa byte offset (exponent - 3)
	// would underflow; above 32 the mantissa no longer fits inside a
	// 32-byte target.
	minCompactExponent = 3
	maxCompactExponent = 32

	// compactSignBit is the sign bit of the mantissa in the compact
	// representation. A difficulty target is unsigned, so a compact value
	// with this bit set does not decode to a representable target.
	compactSignBit = 0x00800000

	// compactMantissaMask extracts the mantissa from a compact value.
	compactMantissaMask = 0x007fffff
)

var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// oneLsh256 is 1 shifted left 256 bits.
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)
)

// CompactToBig converts the compact representation used to encode difficulty
// targets to a big.Int. The representation is similar to IEEE754 floating
// point: the top byte is a base-256 exponent and the low 23 bits are the
// mantissa, so the decoded value is mantissa * 256^(exponent-3).
//
// A RangeError is returned when the exponent falls outside
// [3, 32] or the mantissa sign bit is set, since neither can be represented
// in a fixed-width 32-byte target.
func CompactToBig(compact uint32) (*big.Int, error) {
	exponent := uint(compact >> 24)
	mantissa := compact & compactMantissaMask

	if compact&compactSignBit != 0 {
		return nil, ruleerr.NewRangeError("bits",
			fmt.Sprintf("compact target %#08x has its sign bit set",
				compact))
	}
	if exponent < minCompactExponent || exponent > maxCompactExponent {
		return nil, ruleerr.NewRangeError("bits",
			fmt.Sprintf("compact target exponent %d is outside [%d, %d]",
				exponent, minCompactExponent, maxCompactExponent))
	}

	bn := big.NewInt(int64(mantissa))
	return bn.Lsh(bn, 8*(exponent-minCompactExponent)), nil
}

// BigToCompact converts a whole number n to a compact representation value.
// The compact representation only provides 23 bits of precision, so values
// larger than (2^23 - 1) only encode the most significant digits of the
// number. n must be non-negative; difficulty targets are unsigned.
func BigToCompact(n *big.Int) uint32 {
	// No need to do any work if it's zero.
	if n.Sign() == 0 {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes. So, shift the number right or left
	// accordingly. This is equivalent to:
	// mantissa = mantissa / 256^(exponent-3)
	var mantissa uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		// Use a copy to avoid modifying the caller's original number.
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23-bits, so divide the number by 256
	// and increment the exponent accordingly.
	if mantissa&compactSignBit != 0 {
		mantissa >>= 8
		exponent++
	}

	return uint32(exponent<<24) | mantissa
}

// CalcWork calculates a work value from difficulty bits. It is the expected
// number of hash attempts needed to find a block hash below the target,
// computed as 2^256 / (target + 1).
func CalcWork(bits uint32) (*big.Int, error) {
	target, err := CompactToBig(bits)
	if err != nil {
		return nil, err
	}

	// A zero target, while representable, can never be met; it carries no
	// work value.
	if target.Sign() <= 0 {
		return big.NewInt(0), nil
	}

	denominator := new(big.Int).Add(target, bigOne)
	return new(big.Int).Div(oneLsh256, denominator), nil
}
