// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package models

// VersionVector is a per-device set of logical clocks.
//
// Each key is a stable device identifier and each value is the number of
// operations that device has originated so far. A missing key is equivalent
// to a clock of zero. The vector establishes a partial order over device
// states: A ≤ B iff every component of A is less than or equal to the
// corresponding component of B.
//
// A device's own counter only grows through its own [VersionVector.Increment];
// counters observed from peers are folded in via [VersionVector.Merge].
type VersionVector map[string]int64

// NewVersionVector returns an empty vector, the state of a device that has
// originated and observed nothing.
func NewVersionVector() VersionVector {
	return make(VersionVector)
}

// Increment raises the counter of deviceID by one and returns the new value.
// This is the only way a device's own component is supposed to advance.
func (v VersionVector) Increment(deviceID string) int64 {
	v[deviceID]++
	return v[deviceID]
}

// Get returns the current counter for deviceID, or 0 when the device has
// never been observed.
func (v VersionVector) Get(deviceID string) int64 {
	return v[deviceID]
}

// Set overwrites the counter for deviceID. Used when delivered sequences are
// folded back into the local view after in-order application.
func (v VersionVector) Set(deviceID string, clock int64) {
	v[deviceID] = clock
}

// Merge folds other into the receiver taking the pointwise maximum per
// device. Merging is commutative, associative, and idempotent, so repeated
// exchanges between peers always converge.
func (v VersionVector) Merge(other VersionVector) {
	for deviceID, clock := range other {
		if clock > v[deviceID] {
			v[deviceID] = clock
		}
	}
}

// Dominates reports whether every component of other is less than or equal
// to the receiver's, i.e. the receiver has observed at least everything
// other has.
func (v VersionVector) Dominates(other VersionVector) bool {
	for deviceID, clock := range other {
		if v[deviceID] < clock {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the vector.
func (v VersionVector) Clone() VersionVector {
	out := make(VersionVector, len(v))
	for deviceID, clock := range v {
		out[deviceID] = clock
	}
	return out
}
