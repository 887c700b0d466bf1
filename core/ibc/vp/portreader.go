/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vp

import (
	"github.com/hyperledger-labs/ibc-statevp/core/ibc/keys"
	"github.com/hyperledger-labs/ibc-statevp/core/ibc/state"
)

// Capability is an unforgeable token proving ownership of a port binding.
// It carries nothing but its issuance index; two capabilities are equal iff
// their indices are equal.
type Capability struct {
	index uint64
}

// NewCapability returns the capability with the given issuance index.
func NewCapability(index uint64) Capability {
	return Capability{index: index}
}

// Index returns the capability's issuance index.
func (c Capability) Index() uint64 {
	return c.index
}

// PortReader is the capability-authentication surface the connection and
// channel validity predicates use to confirm that a caller legitimately
// owns a port. All reads go against the post-transaction snapshot.
type PortReader interface {
	// LookupModuleByPort returns the capability currently bound to the
	// port. Absence of a binding is a normal outcome, not a fault.
	LookupModuleByPort(id keys.PortID) (Capability, bool)

	// Authenticate reports whether the capability was issued for exactly
	// this port.
	Authenticate(c Capability, id keys.PortID) bool
}

// LookupModuleByPort implements PortReader. It reads the port-to-capability
// binding from the post snapshot; any read or decode failure is reported as
// "no binding".
func (v *Validator) LookupModuleByPort(id keys.PortID) (Capability, bool) {
	value, err := v.state.ReadPost(keys.MustPortPath(id))
	if err != nil || value == nil {
		return Capability{}, false
	}
	index, err := state.DecodeCapabilityIndex(value)
	if err != nil {
		return Capability{}, false
	}
	return NewCapability(index), true
}

// Authenticate implements PortReader.
func (v *Validator) Authenticate(c Capability, id keys.PortID) bool {
	portID, err := v.portByCapability(c)
	if err != nil {
		return false
	}
	return portID == id
}
