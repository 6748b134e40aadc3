// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexTarget(t *testing.T, hexDigits string) *big.Int {
	t.Helper()
	target, ok := new(big.Int).SetString(hexDigits, 16)
	require.True(t, ok)
	return target
}

// TestMiningMonotonicity is scenario S1: a block mined against a tighter
// target (fewer leading hex Fs) must itself hash lower than one mined
// against a looser target, and each must satisfy its own target.
func TestMiningMonotonicity(t *testing.T) {
	targetA := hexTarget(t, strings.Repeat("F", 64))
	targetB := hexTarget(t, "0"+strings.Repeat("F", 63))

	a := NewBlock(NewContent(nil))
	a.Mine(targetA)

	b := NewBlock(NewContent(nil))
	b.Mine(targetB)

	hashA := a.Hash()
	hashB := b.Hash()

	intA := new(big.Int).SetBytes(hashA[:])
	intB := new(big.Int).SetBytes(hashB[:])

	assert.True(t, intA.Cmp(targetA) < 0)
	assert.True(t, intB.Cmp(targetB) < 0)
	assert.True(t, intB.Cmp(intA) < 0, "a block mined against a tighter target must hash lower")
}

func easyTarget(t *testing.T) *big.Int {
	t.Helper()
	return hexTarget(t, strings.Repeat("F", 64))
}

func TestBlockValidateRejectsUnminedPoW(t *testing.T) {
	b := NewBlock(NewContent(nil))
	b.SetTarget(new(big.Int)) // target of zero: no hash can ever satisfy it
	_, err := b.Validate(UTXOSet{}, 1000)
	require.Error(t, err)
	var ruleErr RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, ErrPoWNotSatisfied, ruleErr.ErrorCode)
}

func TestBlockValidateEmptyContentReturnsSameSnapshot(t *testing.T) {
	b := NewBlock(NewContent(nil))
	b.Mine(easyTarget(t))

	utxo := UTXOSet{OutPoint{Index: 1}: Output{Amount: 5}}
	next, err := b.Validate(utxo, 1000)
	require.NoError(t, err)

	// An empty block returns the exact same map the caller passed in,
	// not a clone of it.
	next[OutPoint{Index: 2}] = Output{Amount: 7}
	assert.Contains(t, utxo, OutPoint{Index: 2})
}

func TestBlockValidateRequiresCoinbaseFirst(t *testing.T) {
	tx := NewTransaction(
		[]Input{{PriorTxHash: [32]byte{1}, PriorTxIndex: 0}},
		[]Output{{Amount: 1}},
		nil,
	)
	b := NewBlock(NewContent([]*Transaction{tx}))
	b.Mine(easyTarget(t))

	_, err := b.Validate(UTXOSet{}, 1000)
	require.Error(t, err)
	var ruleErr RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, ErrCoinbaseHasInputs, ruleErr.ErrorCode)
}

func TestBlockValidateRejectsOverMintCoinbase(t *testing.T) {
	b := NewBlock(NewContent([]*Transaction{coinbaseTx(100)}))
	b.Mine(easyTarget(t))

	_, err := b.Validate(UTXOSet{}, 50)
	require.Error(t, err)
	var ruleErr RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, ErrOverMint, ruleErr.ErrorCode)
}

func TestBlockValidateRejectsMultipleCoinbase(t *testing.T) {
	b := NewBlock(NewContent([]*Transaction{coinbaseTx(1), coinbaseTx(1)}))
	b.Mine(easyTarget(t))

	_, err := b.Validate(UTXOSet{}, 1000)
	require.Error(t, err)
	var ruleErr RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, ErrMultipleCoinbase, ruleErr.ErrorCode)
}

func TestBlockValidateAppliesCoinbaseOutputToSnapshot(t *testing.T) {
	cb := coinbaseTx(10)
	b := NewBlock(NewContent([]*Transaction{cb}))
	b.Mine(easyTarget(t))

	next, err := b.Validate(UTXOSet{}, 1000)
	require.NoError(t, err)

	out, ok := next[OutPoint{TxHash: cb.Hash(), Index: 0}]
	require.True(t, ok)
	assert.Equal(t, int64(10), out.Amount)
}

func TestBlockValidateDoesNotMutateInputSnapshot(t *testing.T) {
	cb := coinbaseTx(10)
	b := NewBlock(NewContent([]*Transaction{cb}))
	b.Mine(easyTarget(t))

	input := UTXOSet{}
	_, err := b.Validate(input, 1000)
	require.NoError(t, err)
	assert.Empty(t, input, "Validate must not mutate the snapshot it was given")
}
