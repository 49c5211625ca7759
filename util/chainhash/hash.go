// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/powcheck/powcheck/util/ruleerr"
)

// HashSize of array used to store hashes. See Hash.
const HashSize = 32

// HashStringSize is the length of a hash rendered as a hexadecimal string.
// Every hash string must be exactly this long; shorter strings are not
// zero-padded.
const HashStringSize = HashSize * 2

// Hash is used in several of the bitcoin messages and common structures. It
// typically represents the double sha256 of data.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash. This is the order hashes are conventionally displayed in.
func (hash Hash) String() string {
	for i := 0; i < HashSize/2; i++ {
		hash[i], hash[HashSize-1-i] = hash[HashSize-1-i], hash[i]
	}
	return hex.EncodeToString(hash[:])
}

// CloneBytes returns a copy of the bytes which represent the hash as a byte
// slice.
//
// NOTE: It is generally cheaper to just slice the hash directly thereby reusing
// the same bytes rather than calling this method.
func (hash *Hash) CloneBytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, hash[:])
	return newHash
}

// SetBytes sets the bytes which represent the hash. An error is returned if
// the number of bytes passed in is not HashSize.
func (hash *Hash) SetBytes(newHash []byte) error {
	nhlen := len(newHash)
	if nhlen != HashSize {
		return ruleerr.NewFormatError("hash",
			fmt.Sprintf("invalid hash length of %d, want %d", nhlen,
				HashSize))
	}
	copy(hash[:], newHash)

	return nil
}

// IsEqual returns true if target is the same as hash.
func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// NewHash returns a new Hash from a byte slice. An error is returned if
// the number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, err
}

// NewHashFromStr creates a Hash from a hash string. The string must be
// exactly HashStringSize hexadecimal characters in the byte-reversed order
// hashes are displayed in; anything else yields a FormatError.
func NewHashFromStr(src string) (*Hash, error) {
	ret := new(Hash)
	err := Decode(ret, src)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the byte-reversed hexadecimal string encoding of a Hash to
// a destination.
func Decode(dst *Hash, src string) error {
	if len(src) != HashStringSize {
		return ruleerr.NewFormatError("hash",
			fmt.Sprintf("hash string has length %d, want %d", len(src),
				HashStringSize))
	}

	var reversedHash Hash
	_, err := hex.Decode(reversedHash[:], []byte(src))
	if err != nil {
		return ruleerr.NewFormatError("hash",
			fmt.Sprintf("hash string is not hexadecimal: %s", err))
	}

	// Reverse copy from the temporary hash to destination. The received
	// hash is in display order, so the temporary is flipped to the
	// internal byte order used everywhere else.
	for i, b := range reversedHash {
		dst[HashSize-1-i] = b
	}

	return nil
}

// HashToBig converts a Hash into a big.Int that can be used to perform math
// comparisons. The hash bytes are reversed first since Hash keeps the
// internal little-endian order while big.Int expects most significant byte
// first.
func HashToBig(hash *Hash) *big.Int {
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}

	return new(big.Int).SetBytes(buf[:])
}
