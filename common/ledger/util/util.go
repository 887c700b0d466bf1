/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// EncodeOrderPreservingVarUint64 returns a byte-representation for a uint64 number such that
// all zero-bits starting bytes are trimmed in order to reduce the length of the array
// For preserving the order in a default bytes-comparison, first byte contains the number of remaining bytes.
// The presence of first byte also allows to use the returned bytes as part of a larger byte array such as a
// composite-key representation in db
func EncodeOrderPreservingVarUint64(number uint64) []byte {
	bytes := make([]byte, 8)
	binary.BigEndian.PutUint64(bytes, number)
	startingIndex := 8
	for i, b := range bytes {
		if b != 0x00 {
			startingIndex = i
			break
		}
	}
	size := 8 - startingIndex
	encodedBytes := make([]byte, size+1)
	encodedBytes[0] = byte(size)
	copy(encodedBytes[1:], bytes[startingIndex:])
	return encodedBytes
}

// DecodeOrderPreservingVarUint64 decodes the number from the bytes obtained from function 'EncodeOrderPreservingVarUint64'.
// It returns the decoded number, the number of bytes that are consumed in the process, and an error if the input bytes are malformed.
func DecodeOrderPreservingVarUint64(bytes []byte) (uint64, int, error) {
	if len(bytes) == 0 {
		return 0, 0, errors.New("decoding uint64 from empty bytes")
	}
	size := int(bytes[0])
	switch {
	case size > 8:
		return 0, 0, errors.Errorf("decoded size (%d) from the size byte is greater than the maximum possible value (8)", size)
	case len(bytes)-1 < size:
		return 0, 0, errors.Errorf("decoded size (%d) exceeds the length of available bytes (%d)", size, len(bytes)-1)
	}
	var v uint64
	for _, b := range bytes[1 : size+1] {
		v = v<<8 | uint64(b)
	}
	return v, size + 1, nil
}
