/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package state defines the read-only surface a validity predicate has onto
// the two storage snapshots of a transaction, and the classification of how
// a key changed between them.
package state

import (
	"github.com/pkg/errors"

	"github.com/hyperledger-labs/ibc-statevp/core/ibc/keys"
)

// StateReader provides point reads against the pre-transaction and
// post-transaction snapshots of storage. Both snapshots are immutable for
// the duration of validation. A nil value with a nil error means the key is
// absent from that snapshot.
type StateReader interface {
	ReadPre(key keys.Key) ([]byte, error)
	ReadPost(key keys.Key) ([]byte, error)
}

// StateChange classifies how a key's entry differs between the two
// snapshots of a transaction.
type StateChange int

const (
	// NotExists - the key is absent from both snapshots
	NotExists StateChange = iota
	// Created - the key is absent pre and present post
	Created
	// Modified - the key is present in both snapshots
	Modified
	// Deleted - the key is present pre and absent post
	Deleted
)

func (sc StateChange) String() string {
	switch sc {
	case NotExists:
		return "NOT_EXISTS"
	case Created:
		return "CREATED"
	case Modified:
		return "MODIFIED"
	case Deleted:
		return "DELETED"
	}
	return "UNKNOWN"
}

// GetStateChange computes the StateChange of a key by diffing its presence
// between the pre and post snapshots. A pure function of the two snapshots.
// Read failures propagate; callers must treat them as rejection, never as
// "unchanged".
func GetStateChange(r StateReader, key keys.Key) (StateChange, error) {
	pre, err := r.ReadPre(key)
	if err != nil {
		return NotExists, errors.WithMessagef(err, "reading the pre state of key [%s]", key)
	}
	post, err := r.ReadPost(key)
	if err != nil {
		return NotExists, errors.WithMessagef(err, "reading the post state of key [%s]", key)
	}
	switch {
	case pre == nil && post == nil:
		return NotExists, nil
	case pre == nil:
		return Created, nil
	case post == nil:
		return Deleted, nil
	default:
		return Modified, nil
	}
}

// ReadCounterPre returns the pre-transaction value of a counter key. An
// absent counter reads as zero.
func ReadCounterPre(r StateReader, key keys.Key) (uint64, error) {
	val, err := r.ReadPre(key)
	if err != nil {
		return 0, errors.WithMessagef(err, "reading the pre state of counter [%s]", key)
	}
	return decodeCounter(val, key)
}

// ReadCounter returns the post-transaction value of a counter key. An
// absent counter reads as zero.
func ReadCounter(r StateReader, key keys.Key) (uint64, error) {
	val, err := r.ReadPost(key)
	if err != nil {
		return 0, errors.WithMessagef(err, "reading the post state of counter [%s]", key)
	}
	return decodeCounter(val, key)
}
