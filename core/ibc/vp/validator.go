/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vp implements the validity predicates for the port- and
// capability-management portion of the IBC namespace. Given the changed
// keys of a transaction and the pre/post snapshot pair, it judges whether
// the proposed writes are a legal evolution of the on-chain bookkeeping:
// ports come into existence exactly once and only together with an
// authenticating capability, capabilities occupy fresh indices backed by a
// strictly advancing counter, and the registry's view of who owns a port
// agrees with every new binding. The predicates are read-only and
// deterministic; they hold no state of their own between calls.
package vp

import (
	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/hyperledger/fabric-lib-go/common/metrics"
	"github.com/hyperledger/fabric-lib-go/common/metrics/disabled"

	"github.com/hyperledger-labs/ibc-statevp/core/ibc/keys"
	"github.com/hyperledger-labs/ibc-statevp/core/ibc/state"
)

var logger = flogging.MustGetLogger("ibc.portvp")

// Validator judges the port and capability writes of one transaction
// against an immutable pre/post snapshot pair.
type Validator struct {
	state   state.StateReader
	metrics *Metrics
}

// Option customizes a Validator.
type Option func(*Validator)

// WithMetricsProvider attaches a metrics provider. Without it, metrics are
// disabled.
func WithMetricsProvider(p metrics.Provider) Option {
	return func(v *Validator) {
		v.metrics = NewMetrics(p)
	}
}

// NewValidator constructs a Validator over the given snapshot pair.
func NewValidator(sr state.StateReader, opts ...Option) *Validator {
	v := &Validator{
		state:   sr,
		metrics: NewMetrics(&disabled.Provider{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateKey routes a changed key of the IBC namespace to the predicate
// that owns it. Keys outside this module's portion of the namespace are
// rejected: the surrounding dispatcher must not hand them here.
func (v *Validator) ValidateKey(key keys.Key) (bool, error) {
	var predicate string
	var accepted bool
	var err error

	switch {
	case keys.IsCapabilityIndexKey(key), keys.IsCapabilityKey(key):
		predicate = "capability"
		accepted, err = v.ValidateCapability(key)
	case keys.IsPortKey(key):
		predicate = "port"
		accepted, err = v.ValidatePort(key)
	default:
		predicate = "unknown"
		accepted, err = false, keyErrorf("key [%s] does not belong to the port or capability namespace", key)
	}

	v.metrics.KeysChecked.With("predicate", predicate).Add(1)
	if err != nil || !accepted {
		v.metrics.Rejections.With("predicate", predicate).Add(1)
		logger.Debugf("rejected key [%s]: accepted=%t err=%s", key, accepted, err)
	}
	return accepted, err
}
