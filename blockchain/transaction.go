// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"bytes"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/toole-brendan/ledgerforge/internal/wireenc"
	"github.com/toole-brendan/ledgerforge/txscript"
)

// Transaction is an inputs-to-outputs atom carrying an opaque data field.
// Its identity is the SHA-256 hash of a deterministic serialization of
// (inputs, outputs, data); that hash is stable for as long as the
// transaction's content doesn't change, which in practice is forever,
// since Transaction has no mutator methods once built.
type Transaction struct {
	inputs  []Input
	outputs []Output
	data    []byte

	hash    chainhash.Hash
	hasHash bool
}

// NewTransaction builds a Transaction from the given inputs, outputs, and
// opaque data. The slices are copied so the caller's originals can be
// reused or mutated without affecting the transaction.
func NewTransaction(inputs []Input, outputs []Output, data []byte) *Transaction {
	tx := &Transaction{
		inputs:  append([]Input(nil), inputs...),
		outputs: append([]Output(nil), outputs...),
		data:    append([]byte(nil), data...),
	}
	return tx
}

// Inputs returns the transaction's inputs in order.
func (tx *Transaction) Inputs() []Input { return tx.inputs }

// Outputs returns the transaction's outputs in order.
func (tx *Transaction) Outputs() []Output { return tx.outputs }

// Output returns the output at index n.
func (tx *Transaction) Output(n int) Output { return tx.outputs[n] }

// Data returns the transaction's opaque payload.
func (tx *Transaction) Data() []byte { return tx.data }

// IsCoinBase reports whether this transaction has no inputs.
func (tx *Transaction) IsCoinBase() bool { return len(tx.inputs) == 0 }

// serialize writes the deterministic encoding of (inputs, outputs, data)
// that Hash is computed over.
func (tx *Transaction) serialize(w io.Writer) error {
	if err := wireenc.WriteUint64(w, uint64(len(tx.inputs))); err != nil {
		return err
	}
	for _, in := range tx.inputs {
		if _, err := w.Write(in.PriorTxHash[:]); err != nil {
			return err
		}
		if err := wireenc.WriteUint32(w, in.PriorTxIndex); err != nil {
			return err
		}
		if err := wireenc.WriteVarBytes(w, in.Satisfier); err != nil {
			return err
		}
	}

	if err := wireenc.WriteUint64(w, uint64(len(tx.outputs))); err != nil {
		return err
	}
	for _, out := range tx.outputs {
		if err := wireenc.WriteUint64(w, uint64(out.Amount)); err != nil {
			return err
		}
		if err := wireenc.WriteVarBytes(w, encodeConstraint(out.Constraint)); err != nil {
			return err
		}
	}

	return wireenc.WriteVarBytes(w, tx.data)
}

// encodeConstraint folds an output constraint into deterministic bytes.
// Constraints that implement txscript.Encodable contribute their own
// encoding; a nil constraint folds to one fixed placeholder byte, and every
// other constraint type to a second, different one, so all unencodable
// constraints hash alike regardless of their predicate.
func encodeConstraint(c txscript.Constraint) []byte {
	if c == nil {
		return []byte{0x00}
	}
	if enc, ok := c.(txscript.Encodable); ok {
		return append([]byte{0x01}, enc.EncodeConstraint()...)
	}
	return []byte{0x02}
}

// Hash returns the transaction's identity hash, computing and caching it
// on first use.
func (tx *Transaction) Hash() chainhash.Hash {
	if tx.hasHash {
		return tx.hash
	}
	var buf bytes.Buffer
	// serialize never errors against a bytes.Buffer.
	_ = tx.serialize(&buf)
	tx.hash = chainhash.HashH(buf.Bytes())
	tx.hasHash = true
	return tx.hash
}

// ValidateMint checks a coinbase candidate's issuance against maxCoins.
//
// This preserves a quirk from the reference implementation this engine's
// consensus rules were drawn from: any transaction carrying inputs passes
// unconditionally (this check doesn't apply to it), and a coinbase whose
// outputs sum to exactly maxCoins also passes — the ceiling is inclusive,
// not exclusive.
func (tx *Transaction) ValidateMint(maxCoins int64) bool {
	if !tx.IsCoinBase() {
		return true
	}
	var sum int64
	for _, out := range tx.outputs {
		sum += out.Amount
	}
	return sum <= maxCoins
}

// validate checks the transaction against utxo, returning the specific
// RuleError on failure. It never mutates utxo.
func (tx *Transaction) validate(utxo UTXOSet) error {
	var inSum, outSum int64

	for _, in := range tx.inputs {
		out, ok := utxo[in.outPoint()]
		if !ok {
			return ruleError(ErrMissingUTXO, "input references an output not in the UTXO set")
		}
		if !out.spendable(in.Satisfier) {
			return ruleError(ErrConstraintUnsatisfied, "input does not satisfy the referenced output's constraint")
		}
		inSum += out.Amount
	}

	for _, out := range tx.outputs {
		outSum += out.Amount
	}

	if len(tx.inputs) != 0 && outSum > inSum {
		return ruleError(ErrOutputsExceedInputs, "transaction spends more than its inputs provide")
	}

	return nil
}

// Validate reports whether the transaction is valid against utxo. A
// coinbase (no inputs) is always considered valid here; its issuance
// ceiling is enforced separately by ValidateMint at the block level.
func (tx *Transaction) Validate(utxo UTXOSet) bool {
	return tx.validate(utxo) == nil
}
