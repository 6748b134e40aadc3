// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// PubKeyConstraint is an example of a programmable spend predicate built on
// top of the opaque Constraint interface: the output is spendable by
// whoever can produce a valid ECDSA signature over the message under the
// given public key. The engine itself knows nothing about signatures; this
// type just happens to be one useful implementation of Constraint.
//
// Satisfier encodes a DER signature followed by the 32-byte message it
// signs, in that order: sig || message.
type PubKeyConstraint struct {
	PubKey *btcec.PublicKey
}

// Verify parses satisfier as sig||message and checks the signature against
// the constraint's public key. Any parse failure is reported as false, not
// a panic, but Eval's recover still covers this defensively.
func (c PubKeyConstraint) Verify(satisfier Satisfier) bool {
	if c.PubKey == nil {
		return false
	}
	const msgLen = 32
	if len(satisfier) <= msgLen {
		return false
	}
	sigBytes := satisfier[:len(satisfier)-msgLen]
	msg := satisfier[len(satisfier)-msgLen:]

	sig, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return false
	}
	return sig.Verify(msg, c.PubKey)
}

// EncodeConstraint returns a tag byte followed by the compressed public
// key encoding.
func (c PubKeyConstraint) EncodeConstraint() []byte {
	out := []byte{tagPubKey}
	if c.PubKey != nil {
		out = append(out, c.PubKey.SerializeCompressed()...)
	}
	return out
}

// NewSatisfier assembles a Satisfier in the sig||message layout
// PubKeyConstraint.Verify expects.
func NewSatisfier(sig *ecdsa.Signature, msg [32]byte) Satisfier {
	out := make(Satisfier, 0, 80)
	out = append(out, sig.Serialize()...)
	out = append(out, msg[:]...)
	return out
}
