// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"bytes"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Block is a header, a committed transaction set, and the bookkeeping the
// owning Blockchain attaches once the block is admitted (Height and
// CumulativeWork). A freshly constructed Block has height 0 and no
// cumulative work; those fields only mean something once Extend succeeds.
type Block struct {
	Header  Header
	Content *Content

	height         int32
	cumulativeWork *big.Rat
}

// NewBlock returns an unmined block with the given content and a zeroed
// header. Callers typically follow up with SetPriorBlockHash and Mine.
func NewBlock(content *Content) *Block {
	if content == nil {
		content = NewContent(nil)
	}
	return &Block{
		Header:  Header{Target: new(big.Int)},
		Content: content,
	}
}

// SetContent replaces the block's content.
func (b *Block) SetContent(c *Content) { b.Content = c }

// SetPriorBlockHash sets the hash of the block this one extends.
func (b *Block) SetPriorBlockHash(h chainhash.Hash) { b.Header.PriorBlockHash = h }

// SetTarget sets the block's proof-of-work target directly, without
// mining. Mine also sets this field; SetTarget exists for building a
// candidate block before mining it.
func (b *Block) SetTarget(target *big.Int) { b.Header.Target = new(big.Int).Set(target) }

// Height returns the block's height as recorded by the chain that
// admitted it. Zero for both genesis and any block that hasn't been
// admitted yet.
func (b *Block) Height() int32 { return b.height }

// CumulativeWork returns the block's cumulative work as recorded by the
// chain that admitted it, or nil if the block hasn't been admitted.
func (b *Block) CumulativeWork() *big.Rat { return b.cumulativeWork }

// Hash computes the block's identity hash: SHA-256 over a deterministic
// encoding of (header, content), with the header's MerkleRoot always
// recomputed from the current content first.
func (b *Block) Hash() chainhash.Hash {
	b.Header.MerkleRoot = b.Content.MerkleRoot()

	var buf bytes.Buffer
	// Neither serialize call can fail against a bytes.Buffer.
	_ = b.Header.serialize(&buf)
	_ = b.Content.serialize(&buf)
	return chainhash.HashH(buf.Bytes())
}

// meetsTarget reports whether the block's current hash falls below its
// target, i.e. whether it currently satisfies its own proof-of-work
// requirement.
func (b *Block) meetsTarget() bool {
	h := b.Hash()
	return new(big.Int).SetBytes(h[:]).Cmp(b.Header.Target) < 0
}

// Mine sets the block's target, resets its nonce to zero, and searches
// nonces in increasing order until the block's hash falls below target.
// No field other than Nonce (and Target, once, at the start) is touched.
// This can run forever in the worst case; use mining.MineContext for a
// cancellable search.
func (b *Block) Mine(target *big.Int) {
	b.Header.Target = new(big.Int).Set(target)
	b.Header.Nonce = 0
	for !b.meetsTarget() {
		b.Header.Nonce++
	}
}

// Validate checks the block against utxo and the mint ceiling maxMint,
// following the admission procedure: proof-of-work, coinbase shape, then
// each transaction in order. On success it returns the UTXO state as of
// this block; it never mutates utxo. On failure it returns the RuleError
// describing why.
//
// This function only checks that the block's hash already satisfies its
// target — it never (re-)mines the block itself.
func (b *Block) Validate(utxo UTXOSet, maxMint int64) (UTXOSet, error) {
	if !b.meetsTarget() {
		return nil, ruleError(ErrPoWNotSatisfied, "block hash does not fall below its target")
	}

	txs := b.Content.Transactions()
	if len(txs) == 0 {
		return utxo, nil
	}

	coinbase := txs[0]
	if !coinbase.IsCoinBase() {
		return nil, ruleError(ErrCoinbaseHasInputs, "first transaction in a non-empty block must have no inputs")
	}
	if !coinbase.ValidateMint(maxMint) {
		return nil, ruleError(ErrOverMint, "coinbase mints more than the maximum allowed")
	}

	coinbaseCount := 0
	for _, tx := range txs {
		if tx.IsCoinBase() {
			coinbaseCount++
		}
	}
	if coinbaseCount > 1 {
		return nil, ruleError(ErrMultipleCoinbase, "more than one coinbase transaction in block")
	}

	next := utxo.Clone()
	for _, tx := range txs {
		if err := tx.validate(next); err != nil {
			return nil, err
		}
		for _, in := range tx.inputs {
			delete(next, in.outPoint())
		}
		txHash := tx.Hash()
		for i, out := range tx.outputs {
			next[OutPoint{TxHash: txHash, Index: uint32(i)}] = out
		}
	}

	return next, nil
}
