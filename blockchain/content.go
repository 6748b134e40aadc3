// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/toole-brendan/ledgerforge/merkle"
)

// txLeaf adapts a Transaction to merkle.Leaf.
type txLeaf struct {
	tx *Transaction
}

func (l txLeaf) Hash() chainhash.Hash { return l.tx.Hash() }

// Content wraps a Merkle tree over a block's ordered transaction set. It
// is the only thing a Block's Header commits to (via MerkleRoot), and is
// also folded directly into the block's own hash alongside the header.
type Content struct {
	tree *merkle.Tree
	txs  []*Transaction
}

// NewContent builds Content over the given transactions, in order. Later
// transactions may spend outputs created earlier in the same slice; that
// is resolved during Block validation, not here.
func NewContent(txs []*Transaction) *Content {
	leaves := make([]merkle.Leaf, len(txs))
	for i, tx := range txs {
		leaves[i] = txLeaf{tx}
	}
	return &Content{
		tree: merkle.New(leaves),
		txs:  append([]*Transaction(nil), txs...),
	}
}

// Transactions returns the block's transactions in order.
func (c *Content) Transactions() []*Transaction { return c.txs }

// MerkleRoot returns the Merkle root over the transaction hash sequence.
func (c *Content) MerkleRoot() chainhash.Hash { return c.tree.Root() }

// serialize writes a deterministic encoding of the content, used when
// folding the content into the enclosing block's hash.
func (c *Content) serialize(w io.Writer) error {
	return c.tree.WriteHashesTo(w)
}
