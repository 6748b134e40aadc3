// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mining assembles candidate blocks and mines them against a
// proof-of-work target. Transaction selection policy (fees, size limits,
// replace-by-fee) is mempool territory and out of scope here; this package
// only concerns itself with turning an already-chosen transaction set into
// a mined Block.
package mining

import (
	"context"
	"math/big"

	"github.com/toole-brendan/ledgerforge/blockchain"
)

// NewBlockTemplate assembles an unmined candidate block extending parent,
// with coinbase placed first followed by txs in the given order. The
// caller is responsible for choosing which transactions to include and in
// what order; this function performs no selection or reordering.
func NewBlockTemplate(parent *blockchain.Block, coinbase *blockchain.Transaction, txs []*blockchain.Transaction) *blockchain.Block {
	all := make([]*blockchain.Transaction, 0, len(txs)+1)
	all = append(all, coinbase)
	all = append(all, txs...)

	block := blockchain.NewBlock(blockchain.NewContent(all))
	block.SetPriorBlockHash(parent.Hash())
	return block
}

// Mine mines block against target, logging the result. It never returns
// until a satisfying nonce is found.
func Mine(block *blockchain.Block, target *big.Int) {
	log.Debugf("mining block against target %x", target)
	block.Mine(target)
	log.Infof("mined block %s with nonce %d", block.Hash(), block.Header.Nonce)
}

// MineContext mines block against target, checking ctx for cancellation
// once every 4096 nonce attempts. It returns ctx.Err() if cancelled before a
// satisfying nonce is found, or nil once one is.
//
// This is the out-of-band cancellation hook the core mining contract
// doesn't require but allows for: Block.Mine itself never checks for
// cancellation and can run forever.
func MineContext(ctx context.Context, block *blockchain.Block, target *big.Int) error {
	block.SetTarget(target)
	block.Header.Nonce = 0

	const checkInterval = 4096
	for i := uint64(0); ; i++ {
		if i%checkInterval == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		h := block.Hash()
		if new(big.Int).SetBytes(h[:]).Cmp(target) < 0 {
			log.Infof("mined block %s with nonce %d", h, block.Header.Nonce)
			return nil
		}
		block.Header.Nonce++
	}
}
