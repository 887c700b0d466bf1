/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package keys maps segment-addressed storage keys of the IBC namespace to
// protocol-level identifiers and back. The segment offsets are part of the
// on-chain key layout and must not change: the capability index sits at
// segment 2, the port ID at segment 3.
package keys

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Namespace is the first segment of every storage key this module owns.
const Namespace = "IBC"

const (
	separator            = "/"
	capabilityIndexSeg   = 2
	portIDSeg            = 3
	channelEndsPrefix    = "channelEnds"
	portsPrefix          = "ports"
	capabilitiesPrefix   = "capabilities"
	capabilityCounterSeg = "capabilityIndex"
)

// Key is an ordered sequence of path segments addressing one storage entry.
type Key struct {
	segments []string
}

// NewKey constructs a Key from its segments.
func NewKey(segments ...string) Key {
	s := make([]string, len(segments))
	copy(s, segments)
	return Key{segments: s}
}

// ParseKey splits a raw storage path into a Key.
func ParseKey(path string) Key {
	return Key{segments: strings.Split(path, separator)}
}

// Segments returns a copy of the key's path segments.
func (k Key) Segments() []string {
	s := make([]string, len(k.segments))
	copy(s, k.segments)
	return s
}

func (k Key) segment(i int) (string, bool) {
	if i < 0 || i >= len(k.segments) {
		return "", false
	}
	return k.segments[i], true
}

func (k Key) String() string {
	return strings.Join(k.segments, separator)
}

// PortID names a protocol endpoint a module binds to.
type PortID string

func (p PortID) String() string {
	return string(p)
}

// ValidatePortID checks an identifier against the ICS-024 rules: length
// between 2 and 128, charset restricted to alphanumerics and ._+-#[]<>.
func ValidatePortID(id string) error {
	if len(id) < 2 || len(id) > 128 {
		return errors.Errorf("port ID [%s] has invalid length %d, must be between 2 and 128", id, len(id))
	}
	for i := 0; i < len(id); i++ {
		if !isValidIDChar(id[i]) {
			return errors.Errorf("port ID [%s] contains invalid character [%c]", id, id[i])
		}
	}
	return nil
}

func isValidIDChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("._+-#[]<>", c) >= 0
}

// PortIDFromKey returns the port ID carried by a key under the ports path.
// The port ID is the segment after IBC/channelEnds/ports.
func PortIDFromKey(key Key) (PortID, error) {
	seg, ok := key.segment(portIDSeg)
	if !ok {
		return "", errors.Errorf("key [%s] has no port ID", key)
	}
	if err := ValidatePortID(seg); err != nil {
		return "", err
	}
	return PortID(seg), nil
}

// CapabilityIndexFromKey returns the capability index carried by a key under
// the capabilities path. The index is the segment after IBC/capabilities.
func CapabilityIndexFromKey(key Key) (uint64, error) {
	seg, ok := key.segment(capabilityIndexSeg)
	if !ok {
		return 0, errors.Errorf("key [%s] has no capability index", key)
	}
	index, err := strconv.ParseUint(seg, 10, 64)
	if err != nil {
		return 0, errors.Errorf("key [%s] has a non-number capability index [%s]", key, seg)
	}
	return index, nil
}

// MustPortPath returns the canonical storage path of a port binding.
// It panics on a malformed port ID: identifiers are validated before they
// reach path construction, so a failure here is an upstream bug rather than
// a rejectable transaction.
func MustPortPath(id PortID) Key {
	if err := ValidatePortID(string(id)); err != nil {
		panic("constructing a key for a port failed: " + err.Error())
	}
	return NewKey(Namespace, channelEndsPrefix, portsPrefix, string(id))
}

// MustCapabilityPath returns the canonical storage path of a
// capability-to-port binding.
func MustCapabilityPath(index uint64) Key {
	return NewKey(Namespace, capabilitiesPrefix, strconv.FormatUint(index, 10))
}

// CapabilityIndexPath returns the fixed path of the global capability
// counter.
func CapabilityIndexPath() Key {
	return NewKey(Namespace, capabilityCounterSeg)
}

// IsCapabilityIndexKey reports whether the key addresses the global
// capability counter rather than a per-capability entry.
func IsCapabilityIndexKey(key Key) bool {
	return len(key.segments) == 2 &&
		key.segments[0] == Namespace &&
		key.segments[1] == capabilityCounterSeg
}

// IsPortKey reports whether the key lies under the ports path.
func IsPortKey(key Key) bool {
	return len(key.segments) >= 4 &&
		key.segments[0] == Namespace &&
		key.segments[1] == channelEndsPrefix &&
		key.segments[2] == portsPrefix
}

// IsCapabilityKey reports whether the key lies under the capabilities path.
func IsCapabilityKey(key Key) bool {
	return len(key.segments) >= 3 &&
		key.segments[0] == Namespace &&
		key.segments[1] == capabilitiesPrefix
}
