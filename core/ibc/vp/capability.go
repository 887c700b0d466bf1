/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vp

import (
	"github.com/hyperledger-labs/ibc-statevp/core/ibc/keys"
	"github.com/hyperledger-labs/ibc-statevp/core/ibc/state"
)

// ValidateCapability judges a write under the capabilities path. For the
// global counter it requires a strict advance; for a per-capability entry
// it requires a creation whose capability-to-port mapping agrees with the
// registry's current view of who owns the port.
func (v *Validator) ValidateCapability(key keys.Key) (bool, error) {
	if keys.IsCapabilityIndexKey(key) {
		return v.validateCapabilityIndex(key)
	}

	change, err := state.GetStateChange(v.state, key)
	if err != nil {
		return false, stateChangeErrorf("%s", err)
	}
	if change != state.Created {
		return false, stateChangeErrorf("the state change of the capability is invalid: key [%s], state change [%s]", key, change)
	}
	index, err := keys.CapabilityIndexFromKey(key)
	if err != nil {
		return false, capabilityErrorf("%s", err)
	}
	c := NewCapability(index)
	portID, err := v.portByCapability(c)
	if err != nil {
		return false, err
	}
	bound, ok := v.LookupModuleByPort(portID)
	if !ok || bound != c {
		return false, capabilityErrorf("the capability is not mapped: index [%d], port [%s]", index, portID)
	}
	return true, nil
}

// validateCapabilityIndex accepts the counter write iff the counter
// strictly advanced. Every issuance in the transaction must move it; it may
// never stall or go backward.
func (v *Validator) validateCapabilityIndex(key keys.Key) (bool, error) {
	pre, err := state.ReadCounterPre(v.state, key)
	if err != nil {
		return false, capabilityErrorf("%s", err)
	}
	post, err := state.ReadCounter(v.state, key)
	if err != nil {
		return false, capabilityErrorf("%s", err)
	}
	if pre >= post {
		return false, capabilityErrorf("invalid capability index: pre [%d], post [%d]", pre, post)
	}
	return true, nil
}

// portByCapability reads, from the post snapshot only, the port a
// capability was issued for.
func (v *Validator) portByCapability(c Capability) (keys.PortID, error) {
	value, err := v.state.ReadPost(keys.MustCapabilityPath(c.Index()))
	if err != nil {
		return "", portErrorf("reading the port failed: %s", err)
	}
	if value == nil {
		return "", portErrorf("the capability is not mapped to any port: index [%d]", c.Index())
	}
	id, err := state.DecodePortID(value)
	if err != nil {
		return "", portErrorf("decoding the port ID failed: %s", err)
	}
	return id, nil
}
