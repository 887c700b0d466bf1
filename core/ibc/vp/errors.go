/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vp

import "fmt"

// The predicate distinguishes four rejection kinds. All of them mean "this
// transaction is invalid"; the type only carries where the judgment failed
// so the host can report a precise reason. None of them ever crash
// validation.

// KeyError - the storage key could not be mapped to a protocol identifier
type KeyError struct {
	Msg string
}

func (e *KeyError) Error() string {
	return "key error: " + e.Msg
}

// StateChangeError - the snapshot diff failed or yielded an unacceptable
// classification
type StateChangeError struct {
	Msg string
}

func (e *StateChangeError) Error() string {
	return "state change error: " + e.Msg
}

// PortError - a port binding is missing, unreadable, or unauthenticated
type PortError struct {
	Msg string
}

func (e *PortError) Error() string {
	return "port error: " + e.Msg
}

// CapabilityError - a capability index or mapping is inconsistent
type CapabilityError struct {
	Msg string
}

func (e *CapabilityError) Error() string {
	return "capability error: " + e.Msg
}

func keyErrorf(format string, args ...interface{}) error {
	return &KeyError{Msg: fmt.Sprintf(format, args...)}
}

func stateChangeErrorf(format string, args ...interface{}) error {
	return &StateChangeError{Msg: fmt.Sprintf(format, args...)}
}

func portErrorf(format string, args ...interface{}) error {
	return &PortError{Msg: fmt.Sprintf(format, args...)}
}

func capabilityErrorf(format string, args ...interface{}) error {
	return &CapabilityError{Msg: fmt.Sprintf(format, args...)}
}
