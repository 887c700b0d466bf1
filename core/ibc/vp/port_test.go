/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vp

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger-labs/ibc-statevp/core/ibc/keys"
)

var transferPortKey = keys.ParseKey("IBC/channelEnds/ports/transfer")

func TestValidatePortCreation(t *testing.T) {
	ts := newTestState()
	ts.bindPort("transfer", 3)
	ts.mapCapability(3, "transfer")
	v := NewValidator(ts)

	accepted, err := v.ValidatePort(transferPortKey)
	require.NoError(t, err)
	require.True(t, accepted)
}

func TestValidatePortWithoutCapability(t *testing.T) {
	// the port entry is created but no capability maps back to it
	ts := newTestState()
	ts.bindPort("transfer", 3)
	v := NewValidator(ts)

	accepted, err := v.ValidatePort(transferPortKey)
	require.False(t, accepted)
	var portErr *PortError
	require.ErrorAs(t, err, &portErr)
	require.ErrorContains(t, err, "the port is not authenticated: ID [transfer]")
	require.ErrorContains(t, err, "capability [3] does not authenticate port [transfer]")
}

func TestValidatePortWithUndecodableBinding(t *testing.T) {
	ts := newTestState()
	ts.post[transferPortKey.String()] = []byte{9, 9, 9}
	v := NewValidator(ts)

	accepted, err := v.ValidatePort(transferPortKey)
	require.False(t, accepted)
	require.ErrorContains(t, err, "no capability is bound to port [transfer]")
}

func TestValidatePortCapabilityMappedElsewhere(t *testing.T) {
	ts := newTestState()
	ts.bindPort("transfer", 3)
	ts.mapCapability(3, "escrow-1")
	v := NewValidator(ts)

	accepted, err := v.ValidatePort(transferPortKey)
	require.False(t, accepted)
	require.ErrorContains(t, err, "the port is not authenticated")
}

func TestValidatePortInvalidStateChanges(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		ts := newTestState()
		ts.pre[transferPortKey.String()] = []byte("old")
		v := NewValidator(ts)

		accepted, err := v.ValidatePort(transferPortKey)
		require.False(t, accepted)
		require.ErrorContains(t, err, "the state change of the port is invalid: port [transfer], state change [DELETED]")
	})

	t.Run("modified", func(t *testing.T) {
		ts := newTestState()
		ts.pre[transferPortKey.String()] = []byte("old")
		ts.bindPort("transfer", 3)
		ts.mapCapability(3, "transfer")
		v := NewValidator(ts)

		accepted, err := v.ValidatePort(transferPortKey)
		require.False(t, accepted)
		require.ErrorContains(t, err, "state change [MODIFIED]")
	})

	t.Run("not exists", func(t *testing.T) {
		v := NewValidator(newTestState())
		accepted, err := v.ValidatePort(transferPortKey)
		require.False(t, accepted)
		require.ErrorContains(t, err, "state change [NOT_EXISTS]")
	})
}

func TestValidatePortKeyWithoutID(t *testing.T) {
	v := NewValidator(newTestState())

	accepted, err := v.ValidatePort(keys.ParseKey("IBC/channelEnds/ports"))
	require.False(t, accepted)
	var keyErr *KeyError
	require.ErrorAs(t, err, &keyErr)
	require.ErrorContains(t, err, "has no port ID")
}

func TestValidatePortSnapshotFailure(t *testing.T) {
	ts := newTestState()
	ts.errs[transferPortKey.String()] = errors.New("i/o timeout")
	v := NewValidator(ts)

	accepted, err := v.ValidatePort(transferPortKey)
	require.False(t, accepted)
	var scErr *StateChangeError
	require.ErrorAs(t, err, &scErr)
	require.ErrorContains(t, err, "i/o timeout")
}

func TestLookupModuleByPort(t *testing.T) {
	ts := newTestState()
	ts.bindPort("transfer", 3)
	v := NewValidator(ts)

	c, ok := v.LookupModuleByPort("transfer")
	require.True(t, ok)
	require.Equal(t, NewCapability(3), c)

	// absence of a binding is a normal outcome
	_, ok = v.LookupModuleByPort("escrow-1")
	require.False(t, ok)

	// an undecodable binding reads as absent
	ts.post[transferPortKey.String()] = []byte{9, 9, 9}
	_, ok = v.LookupModuleByPort("transfer")
	require.False(t, ok)
}

func TestAuthenticateRoundTrip(t *testing.T) {
	ts := newTestState()
	ts.bindPort("transfer", 3)
	ts.mapCapability(3, "transfer")
	v := NewValidator(ts)

	c := NewCapability(3)
	require.True(t, v.Authenticate(c, "transfer"))
	require.False(t, v.Authenticate(c, "escrow-1"))
	require.False(t, v.Authenticate(NewCapability(4), "transfer"))
}

func TestCapabilityEquality(t *testing.T) {
	require.Equal(t, NewCapability(5), NewCapability(5))
	require.NotEqual(t, NewCapability(5), NewCapability(7))
	require.Equal(t, uint64(5), NewCapability(5).Index())
}
