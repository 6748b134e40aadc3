// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wireenc provides the small set of deterministic binary encoding
// primitives used to serialize ledger objects before hashing them. The
// encoding is internal to this engine: it is not meant to be
// wire-compatible with any other blockchain implementation, only stable
// across repeated runs of this one.
package wireenc

import (
	"encoding/binary"
	"io"
	"math/big"
)

// WriteUint32 writes v as 4 big-endian bytes.
func WriteUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// WriteUint64 writes v as 8 big-endian bytes.
func WriteUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// WriteVarBytes writes the length of b as a uint64 prefix followed by b
// itself, so that a reader (or a second, differently-shaped field) cannot
// be confused about where b ends.
func WriteVarBytes(w io.Writer, b []byte) error {
	if err := WriteUint64(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// WriteFixedBigInt writes n as size big-endian bytes, zero-padded on the
// left. It panics if n does not fit in size bytes or is negative, which
// would indicate a programmer error (a malformed target or hash) rather
// than bad input data.
func WriteFixedBigInt(w io.Writer, n *big.Int, size int) error {
	if n.Sign() < 0 {
		panic("wireenc: WriteFixedBigInt called with a negative value")
	}
	buf := make([]byte, size)
	n.FillBytes(buf)
	_, err := w.Write(buf)
	return err
}
