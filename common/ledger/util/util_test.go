/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicEncodingDecoding(t *testing.T) {
	for i := 0; i < 10000; i++ {
		value := EncodeOrderPreservingVarUint64(uint64(i))
		nextValue := EncodeOrderPreservingVarUint64(uint64(i + 1))
		if !(bytes.Compare(value, nextValue) < 0) {
			t.Fatalf("A smaller number should result into smaller bytes. Encoded bytes for [%d] is [%x] and for [%d] is [%x]",
				i, value, i+1, nextValue)
		}
		decodedValue, consumed, err := DecodeOrderPreservingVarUint64(value)
		require.NoError(t, err)
		require.Equal(t, len(value), consumed)
		require.Equal(t, uint64(i), decodedValue)
	}
}

func TestDecodingAppendedValues(t *testing.T) {
	appendedValues := []byte{}
	for i := 0; i < 1000; i++ {
		appendedValues = append(appendedValues, EncodeOrderPreservingVarUint64(uint64(i))...)
	}

	len := 0
	value := uint64(0)
	for i := 0; i < 1000; i++ {
		appendedValues = appendedValues[len:]
		value, len, _ = DecodeOrderPreservingVarUint64(appendedValues)
		require.Equal(t, uint64(i), value)
	}
}

func TestDecodingBadInputBytes(t *testing.T) {
	// error case when input bytes are empty
	_, _, err := DecodeOrderPreservingVarUint64(nil)
	require.EqualError(t, err, "decoding uint64 from empty bytes")

	// error case when the size byte is greater than 8
	sizeBytes := []byte{9}
	_, _, err = DecodeOrderPreservingVarUint64(append(sizeBytes, make([]byte, 9)...))
	require.EqualError(t, err, "decoded size (9) from the size byte is greater than the maximum possible value (8)")

	// error case when the size byte announces more bytes than are present
	proper := EncodeOrderPreservingVarUint64(1000)
	_, _, err = DecodeOrderPreservingVarUint64(proper[:len(proper)-1])
	require.EqualError(t, err, "decoded size (2) exceeds the length of available bytes (1)")
}

func TestEncodingZero(t *testing.T) {
	encoded := EncodeOrderPreservingVarUint64(0)
	require.Equal(t, []byte{0}, encoded)
	decoded, consumed, err := DecodeOrderPreservingVarUint64(encoded)
	require.NoError(t, err)
	require.Equal(t, 1, consumed)
	require.Equal(t, uint64(0), decoded)
}
