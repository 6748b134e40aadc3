// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/toole-brendan/ledgerforge/txscript"

// Output is a spendable value bearing a spend constraint. A nil Constraint
// means the output is unconditionally spendable.
//
// Output is a cheap, immutable record: UTXO snapshots hold Outputs by
// value, not by reference into the transaction that created them, so a
// snapshot stays valid independently of the transaction's own lifetime.
type Output struct {
	Amount     int64
	Constraint txscript.Constraint
}

// spendable reports whether satisfier unlocks this output.
func (o Output) spendable(satisfier txscript.Satisfier) bool {
	return txscript.Eval(o.Constraint, satisfier)
}
