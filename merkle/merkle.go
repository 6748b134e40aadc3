// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle computes a binary Merkle commitment over an ordered
// sequence of hashable leaves.
package merkle

import (
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Leaf is anything that can contribute a 256-bit hash to a Merkle tree.
type Leaf interface {
	Hash() chainhash.Hash
}

// zeroHash is the padding value used to fill an odd-length level. It is
// also the root of a tree with no leaves.
var zeroHash chainhash.Hash

// Tree holds an ordered list of leaves. The root is a pure function of the
// leaf hash sequence: reordering or replacing a leaf changes the root.
type Tree struct {
	leaves []Leaf
}

// New builds a Tree over the given leaves. The leaves are not copied
// defensively; callers should not mutate the slice afterward.
func New(leaves []Leaf) *Tree {
	return &Tree{leaves: leaves}
}

// Leaves returns the tree's leaves in their original order.
func (t *Tree) Leaves() []Leaf {
	return t.leaves
}

// branchHash hashes the big-endian 32-byte encodings of left and right,
// concatenated in that order.
func branchHash(left, right chainhash.Hash) chainhash.Hash {
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])
	return chainhash.HashH(buf[:])
}

// Root computes the Merkle root.
//
// An empty tree roots to the zero hash. A single-leaf tree roots to that
// leaf's own hash; the combining loop never runs. Otherwise each level is
// paired off two at a time; a level with an odd number of nodes is padded
// with the zero hash before pairing, not by duplicating the last node.
func (t *Tree) Root() chainhash.Hash {
	if len(t.leaves) == 0 {
		return zeroHash
	}

	level := make([]chainhash.Hash, len(t.leaves))
	for i, leaf := range t.leaves {
		level[i] = leaf.Hash()
	}

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, zeroHash)
		}

		next := make([]chainhash.Hash, len(level)/2)
		for i := range next {
			next[i] = branchHash(level[2*i], level[2*i+1])
		}
		level = next
	}

	return level[0]
}

// WriteHashesTo writes the leaf hash sequence to w, used when a caller
// needs a deterministic byte encoding of the tree's leaf order (for
// example, to fold the tree's contents into an enclosing hash alongside
// its recomputed root).
func (t *Tree) WriteHashesTo(w io.Writer) error {
	for _, leaf := range t.leaves {
		h := leaf.Hash()
		if _, err := w.Write(h[:]); err != nil {
			return err
		}
	}
	return nil
}
