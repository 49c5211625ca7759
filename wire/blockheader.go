// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/powcheck/powcheck/util/chainhash"
)

// BlockHeaderLen is the number of bytes a serialized block header occupies.
// Version 4 bytes + PrevBlock hash + MerkleRoot hash + Timestamp 4 bytes +
// Bits 4 bytes + Nonce 4 bytes.
const BlockHeaderLen = 16 + 2*chainhash.HashSize

// BlockHeader defines information about a block. Its double hash, compared
// against the target the Bits field decodes to, is the block's proof of
// work. Headers are treated as immutable once constructed.
type BlockHeader struct {
	// Version of the block. This is not the same as the protocol version.
	Version uint32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created, in seconds since the unix epoch. The
	// wire encoding is a uint32 and therefore limited to 2106.
	Timestamp uint32

	// Difficulty target for the block in compact form.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// BlockHash computes the block identifier hash for the given block header,
// which is the double sha256 of its serialized bytes.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Hash the header as it is serialized. The write can never fail since
	// the hash writer swallows all input, so the error return is ignored.
	writer := chainhash.NewDoubleHashWriter()
	_ = writeBlockHeader(writer, h)

	return writer.Finalize()
}

// Serialize encodes a block header from h into w in the canonical 80-byte
// wire format.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

// SerializeSize returns the number of bytes it would take to serialize the
// block header.
func (h *BlockHeader) SerializeSize() int {
	return BlockHeaderLen
}

// NewBlockHeader returns a new BlockHeader using the provided field values.
func NewBlockHeader(version uint32, prevBlock, merkleRoot *chainhash.Hash,
	timestamp, bits, nonce uint32) *BlockHeader {

	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevBlock,
		MerkleRoot: *merkleRoot,
		Timestamp:  timestamp,
		Bits:       bits,
		Nonce:      nonce,
	}
}

// readBlockHeader reads a block header from r.
func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	return readElements(r, &bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		&bh.Timestamp, &bh.Bits, &bh.Nonce)
}

// writeBlockHeader writes a block header to w in the fixed wire field order:
// version, previous block hash, merkle root, timestamp, bits, nonce.
func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	return writeElements(w, bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		bh.Timestamp, bh.Bits, bh.Nonce)
}
