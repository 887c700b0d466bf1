/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package stateleveldb

import (
	"sort"

	"github.com/hyperledger-labs/ibc-statevp/core/ibc/keys"
)

// UpdateBatch encloses the writes of one transaction. A nil value marks a
// delete.
type UpdateBatch struct {
	kvs map[string][]byte
}

// NewUpdateBatch constructs an empty batch.
func NewUpdateBatch() *UpdateBatch {
	return &UpdateBatch{kvs: make(map[string][]byte)}
}

// Put adds a key with a value. The value must not be empty; call Delete
// instead.
func (b *UpdateBatch) Put(key keys.Key, value []byte) {
	if len(value) == 0 {
		panic("empty value not allowed, instead call the Delete function")
	}
	b.kvs[key.String()] = value
}

// Delete marks a key as deleted.
func (b *UpdateBatch) Delete(key keys.Key) {
	b.kvs[key.String()] = nil
}

// Exists checks whether the given key is touched by the batch.
func (b *UpdateBatch) Exists(key keys.Key) bool {
	_, ok := b.kvs[key.String()]
	return ok
}

// Get returns the batched value for the key and whether the batch touches
// the key at all. A nil value with ok=true is a delete marker.
func (b *UpdateBatch) Get(key keys.Key) ([]byte, bool) {
	value, ok := b.kvs[key.String()]
	return value, ok
}

// ChangedKeys returns the touched keys in sorted order, for deterministic
// dispatch to the validity predicates.
func (b *UpdateBatch) ChangedKeys() []keys.Key {
	paths := make([]string, 0, len(b.kvs))
	for path := range b.kvs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	changed := make([]keys.Key, len(paths))
	for i, path := range paths {
		changed[i] = keys.ParseKey(path)
	}
	return changed
}
