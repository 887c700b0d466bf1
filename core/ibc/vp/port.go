/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vp

import (
	"github.com/pkg/errors"

	"github.com/hyperledger-labs/ibc-statevp/core/ibc/keys"
	"github.com/hyperledger-labs/ibc-statevp/core/ibc/state"
)

// ValidatePort judges a write under a port's path. A port entry may only
// come into existence as a creation, and only together with a resolvable
// capability proving that some module legitimately owns the binding.
// Creating a port entry without such a capability is the canonical forgery
// this predicate blocks.
func (v *Validator) ValidatePort(key keys.Key) (bool, error) {
	portID, err := keys.PortIDFromKey(key)
	if err != nil {
		return false, keyErrorf("%s", err)
	}
	change, err := v.portStateChange(portID)
	if err != nil {
		return false, stateChangeErrorf("%s", err)
	}
	if change != state.Created {
		return false, portErrorf("the state change of the port is invalid: port [%s], state change [%s]", portID, change)
	}
	if _, err := v.authenticatedCapability(portID); err != nil {
		return false, portErrorf("the port is not authenticated: ID [%s], %s", portID, err)
	}
	return true, nil
}

func (v *Validator) portStateChange(id keys.PortID) (state.StateChange, error) {
	return state.GetStateChange(v.state, keys.MustPortPath(id))
}

// authenticatedCapability resolves the capability bound to the port in the
// post snapshot and confirms it authenticates the port.
func (v *Validator) authenticatedCapability(id keys.PortID) (Capability, error) {
	c, ok := v.LookupModuleByPort(id)
	if !ok {
		return Capability{}, errors.Errorf("no capability is bound to port [%s]", id)
	}
	if !v.Authenticate(c, id) {
		return Capability{}, errors.Errorf("capability [%d] does not authenticate port [%s]", c.Index(), id)
	}
	return c, nil
}
