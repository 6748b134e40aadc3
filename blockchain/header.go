// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"io"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/toole-brendan/ledgerforge/internal/wireenc"
)

// targetSize is the fixed byte width used to serialize a target for
// hashing: wide enough for any 256-bit threshold.
const targetSize = chainhash.HashSize

// Header is a block's proof-of-work header. MerkleRoot is derived from the
// block's Content and is always recomputed immediately before hashing;
// callers should not rely on a stale value persisting across content
// changes.
type Header struct {
	Nonce          uint64
	Target         *big.Int
	PriorBlockHash chainhash.Hash
	MerkleRoot     chainhash.Hash
}

// serialize writes a deterministic encoding of the header.
func (h *Header) serialize(w io.Writer) error {
	if err := wireenc.WriteUint64(w, h.Nonce); err != nil {
		return err
	}
	target := h.Target
	if target == nil {
		target = new(big.Int)
	}
	if err := wireenc.WriteFixedBigInt(w, target, targetSize); err != nil {
		return err
	}
	if _, err := w.Write(h.PriorBlockHash[:]); err != nil {
		return err
	}
	_, err := w.Write(h.MerkleRoot[:])
	return err
}
