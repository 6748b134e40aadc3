// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

// UTXOSet maps an OutPoint to the Output it still holds unspent. Every
// stored block owns one UTXOSet: the unspent state as of that block being
// the newest block on its fork. This trades space (one snapshot per block,
// retained for the block's lifetime) for O(1) fork-hopping — no
// replay-from-common-ancestor is needed to query any tip's UTXO state.
//
// Pruning old snapshots is intentionally not provided; see §5 of the
// design notes this engine was built from.
type UTXOSet map[OutPoint]Output

// Clone returns an independent copy of the set. Validation always works
// against a clone so that a rejected block can never leave partial
// mutations visible in the parent's snapshot.
func (u UTXOSet) Clone() UTXOSet {
	next := make(UTXOSet, len(u))
	for k, v := range u {
		next[k] = v
	}
	return next
}
