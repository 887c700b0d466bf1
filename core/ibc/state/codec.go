/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package state

import (
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/hyperledger-labs/ibc-statevp/common/ledger/util"
	"github.com/hyperledger-labs/ibc-statevp/core/ibc/keys"
)

// Counters and capability indices are stored as order-preserving varuints,
// port IDs as plain UTF-8. This is the only value wire format this module
// reads; writes are the host's business.

// EncodeCapabilityIndex encodes a capability index (or the capability
// counter) into its stored representation.
func EncodeCapabilityIndex(index uint64) []byte {
	return util.EncodeOrderPreservingVarUint64(index)
}

// DecodeCapabilityIndex decodes a stored capability index or counter value.
func DecodeCapabilityIndex(value []byte) (uint64, error) {
	index, n, err := util.DecodeOrderPreservingVarUint64(value)
	if err != nil {
		return 0, err
	}
	if n != len(value) {
		return 0, errors.Errorf("capability index value has %d trailing bytes", len(value)-n)
	}
	return index, nil
}

// EncodePortID encodes a port ID into its stored representation.
func EncodePortID(id keys.PortID) []byte {
	return []byte(id)
}

// DecodePortID decodes a stored port ID, enforcing the ICS-024 identifier
// rules on the result.
func DecodePortID(value []byte) (keys.PortID, error) {
	if !utf8.Valid(value) {
		return "", errors.New("port ID value is not valid UTF-8")
	}
	id := string(value)
	if err := keys.ValidatePortID(id); err != nil {
		return "", err
	}
	return keys.PortID(id), nil
}

func decodeCounter(val []byte, key keys.Key) (uint64, error) {
	if val == nil {
		return 0, nil
	}
	count, err := DecodeCapabilityIndex(val)
	if err != nil {
		return 0, errors.WithMessagef(err, "decoding counter [%s]", key)
	}
	return count, nil
}
