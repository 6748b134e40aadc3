// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wireenc

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteUint64BigEndian(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteUint64(&buf, 1))
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, buf.Bytes())
}

func TestWriteVarBytesPrefixesLength(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVarBytes(&buf, []byte("hi")))
	assert.Equal(t, append([]byte{0, 0, 0, 0, 0, 0, 0, 2}, "hi"...), buf.Bytes())
}

func TestWriteFixedBigIntPadsLeft(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFixedBigInt(&buf, big.NewInt(1), 4))
	assert.Equal(t, []byte{0, 0, 0, 1}, buf.Bytes())
}

func TestWriteFixedBigIntDistinguishesDistinctValues(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, WriteFixedBigInt(&a, big.NewInt(256), 4))
	require.NoError(t, WriteFixedBigInt(&b, big.NewInt(257), 4))
	assert.NotEqual(t, a.Bytes(), b.Bytes())
}
