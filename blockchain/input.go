// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/toole-brendan/ledgerforge/txscript"
)

// OutPoint identifies a single output: the hash of the transaction that
// created it and that transaction's output index. It is the UTXO set's
// key.
type OutPoint struct {
	TxHash chainhash.Hash
	Index  uint32
}

// Input is a pointer to a prior output plus the witness needed to satisfy
// that output's spend constraint. Once constructed, an Input is immutable
// and owned exclusively by its containing Transaction.
type Input struct {
	PriorTxHash  chainhash.Hash
	PriorTxIndex uint32
	Satisfier    txscript.Satisfier
}

// outPoint returns the OutPoint this input references.
func (in Input) outPoint() OutPoint {
	return OutPoint{TxHash: in.PriorTxHash, Index: in.PriorTxIndex}
}
