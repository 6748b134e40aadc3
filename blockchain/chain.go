// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// rejectCacheSize bounds the number of recently-rejected block hashes the
// chain remembers, so that a block resubmitted after being rejected once
// for a consensus failure doesn't pay for re-validation every time.
const rejectCacheSize = 256

// rejectCache is a small bounded set of recently-rejected block hashes,
// evicting the oldest entry once full — the same shape the mempool's own
// orphan/seen-transaction tracking uses (a plain map plus an eviction
// order), rather than a general-purpose LRU library.
//
// Only consensus rejects belong here: a block's consensus validity is a
// pure function of the block and its parent's immutable UTXO snapshot, so
// caching that verdict is always safe. A structural reject (unknown
// parent) is not cached — the same block can become valid later purely
// because the chain's state changed (its parent arrived), and caching
// would blacklist it forever.
type rejectCache struct {
	set   map[chainhash.Hash]struct{}
	order []chainhash.Hash
	cap   int
}

func newRejectCache(capacity int) *rejectCache {
	return &rejectCache{
		set: make(map[chainhash.Hash]struct{}, capacity),
		cap: capacity,
	}
}

func (c *rejectCache) Contains(hash chainhash.Hash) bool {
	_, ok := c.set[hash]
	return ok
}

func (c *rejectCache) Add(hash chainhash.Hash) {
	if _, ok := c.set[hash]; ok {
		return
	}
	if len(c.order) >= c.cap {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.set, oldest)
	}
	c.set[hash] = struct{}{}
	c.order = append(c.order, hash)
}

// Blockchain is a DAG of blocks admitted across every known fork, together
// with a per-block UTXO snapshot and the current set of fork tips. It owns
// every block and snapshot it stores.
//
// Extend is safe to call concurrently with Tip, BlocksAtHeight, and
// CumulativeWork, but two concurrent calls to Extend are not serialized
// against each other by anything but Blockchain's own lock — callers must
// not assume Extend is reentrant beyond what that lock provides.
type Blockchain struct {
	mu sync.RWMutex

	genesisTarget *big.Int
	maxMintPerTx  int64

	blocks map[chainhash.Hash]*Block
	utxo   map[chainhash.Hash]UTXOSet
	tips   map[chainhash.Hash]*Block

	seq     map[chainhash.Hash]int
	nextSeq int
	genesis *Block
	bestTip *Block

	rejects *rejectCache
}

// NewBlockchain creates a new chain, mines a genesis block against
// genesisTarget, and admits it as the sole tip at height 0 with cumulative
// work 1.
func NewBlockchain(genesisTarget *big.Int, maxMintPerTx int64) *Blockchain {
	bc := &Blockchain{
		genesisTarget: new(big.Int).Set(genesisTarget),
		maxMintPerTx:  maxMintPerTx,
		blocks:        make(map[chainhash.Hash]*Block),
		utxo:          make(map[chainhash.Hash]UTXOSet),
		tips:          make(map[chainhash.Hash]*Block),
		seq:           make(map[chainhash.Hash]int),
		rejects:       newRejectCache(rejectCacheSize),
	}

	genesis := NewBlock(NewContent(nil))
	genesis.SetPriorBlockHash(chainhash.Hash{})
	genesis.Mine(bc.genesisTarget)
	genesis.height = 0
	genesis.cumulativeWork = big.NewRat(1, 1)

	hash := genesis.Hash()
	bc.blocks[hash] = genesis
	bc.utxo[hash] = make(UTXOSet)
	bc.tips[hash] = genesis
	bc.seq[hash] = bc.nextSeq
	bc.nextSeq++
	bc.genesis = genesis
	bc.bestTip = genesis

	return bc
}

// Genesis returns the chain's genesis block.
func (bc *Blockchain) Genesis() *Block {
	return bc.genesis
}

// Work returns the work a block with the given target represents: the
// ratio of the genesis target to that target. A lower target is harder to
// satisfy and so represents more work.
func (bc *Blockchain) Work(target *big.Int) *big.Rat {
	return new(big.Rat).SetFrac(bc.genesisTarget, target)
}

// Extend attempts to admit block onto the chain. It looks up block's
// parent, validates block against the parent's UTXO snapshot, and — on
// success — stores the block, its derived snapshot, and updates the tip
// set and best tip. A rejected block leaves the stored blocks, snapshots,
// tips, and best tip untouched; a consensus reject only records the block's
// hash in the reject cache.
func (bc *Blockchain) Extend(block *Block) bool {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	hash := block.Hash()
	if bc.rejects.Contains(hash) {
		return false
	}

	parent, ok := bc.blocks[block.Header.PriorBlockHash]
	if !ok {
		// Not cached: the parent may simply not have arrived yet, and
		// this same block can become valid the moment it does.
		log.Debugf("rejecting block %s: unknown parent %s", hash, block.Header.PriorBlockHash)
		return false
	}

	next, err := block.Validate(bc.utxo[parent.Hash()], bc.maxMintPerTx)
	if err != nil {
		// Safe to cache: validity here depends only on the block itself
		// and its parent's immutable UTXO snapshot, neither of which
		// will ever change.
		log.Debugf("rejecting block %s: %s", hash, err)
		bc.rejects.Add(hash)
		return false
	}

	block.height = parent.height + 1
	block.cumulativeWork = new(big.Rat).Add(parent.cumulativeWork, bc.Work(block.Header.Target))

	bc.blocks[hash] = block
	bc.utxo[hash] = next
	bc.seq[hash] = bc.nextSeq
	bc.nextSeq++

	delete(bc.tips, parent.Hash())
	bc.tips[hash] = block

	bc.recomputeBestTip()

	log.Infof("admitted block %s at height %d", hash, block.height)
	return true
}

// recomputeBestTip scans the tip set for the block with maximum
// cumulative work, breaking ties in favor of whichever tip was admitted
// first. Callers must hold bc.mu for writing.
func (bc *Blockchain) recomputeBestTip() {
	var best *Block
	for _, tip := range bc.tips {
		switch {
		case best == nil:
			best = tip
		case tip.cumulativeWork.Cmp(best.cumulativeWork) > 0:
			best = tip
		case tip.cumulativeWork.Cmp(best.cumulativeWork) == 0 &&
			bc.seq[tip.Hash()] < bc.seq[best.Hash()]:
			best = tip
		}
	}
	bc.bestTip = best
}

// Tip returns the current best tip: the stored block with maximum
// cumulative work, ties broken by earliest admission.
func (bc *Blockchain) Tip() *Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return bc.bestTip
}

// CumulativeWork returns the cumulative work of the stored block
// identified by hash, and whether that block is known to the chain.
func (bc *Blockchain) CumulativeWork(hash chainhash.Hash) (*big.Rat, bool) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	b, ok := bc.blocks[hash]
	if !ok {
		return nil, false
	}
	return b.cumulativeWork, true
}

// BlocksAtHeight returns every stored block at the given height, across
// every fork, in admission order.
func (bc *Blockchain) BlocksAtHeight(height int32) []*Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	var out []*Block
	for _, b := range bc.blocks {
		if b.height == height {
			out = append(out, b)
		}
	}
	sortBlocksBySeq(out, bc.seq)
	return out
}

// UTXOAt returns the UTXO snapshot for the stored block identified by
// hash, and whether that block is known to the chain. The returned set is
// a live reference into the chain's internal state and must be treated as
// read-only.
func (bc *Blockchain) UTXOAt(hash chainhash.Hash) (UTXOSet, bool) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	u, ok := bc.utxo[hash]
	return u, ok
}

// Block returns the stored block identified by hash, and whether it is
// known to the chain.
func (bc *Blockchain) Block(hash chainhash.Hash) (*Block, bool) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	b, ok := bc.blocks[hash]
	return b, ok
}

func sortBlocksBySeq(blocks []*Block, seq map[chainhash.Hash]int) {
	for i := 1; i < len(blocks); i++ {
		for j := i; j > 0 && seq[blocks[j].Hash()] < seq[blocks[j-1].Hash()]; j-- {
			blocks[j], blocks[j-1] = blocks[j-1], blocks[j]
		}
	}
}
