// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package service

import (
	"sort"

	"github.com/dterekhov/go-mem-sync/models"
)

// DefaultOrderBufferCapacity bounds how many out-of-order entries are held
// per origin device before the oldest buffered entries are evicted.
const DefaultOrderBufferCapacity = 1000

// OrderBuffer enforces per-origin-device in-order delivery of delta entries
// despite network reordering, duplication, and partial delivery.
//
// For each origin device it keeps the entries that arrived ahead of their
// turn, keyed by sequence, plus the next sequence it expects to deliver.
// Entries below the expected sequence are duplicates of something already
// delivered and are silently discarded. There is no ordering relationship
// between different origin devices: a gap in one device's stream never
// withholds another device's deliverable entries.
//
// An OrderBuffer is owned by exactly one sync session and is driven by the
// single goroutine handling that session's inbound stream, so it needs no
// internal locking.
type OrderBuffer struct {
	capacity int

	// expected maps origin device → next sequence to deliver.
	expected map[string]int64

	// pending maps origin device → buffered entries keyed by sequence.
	pending map[string]map[int64]models.DeltaEntry
}

// NewOrderBuffer constructs an empty buffer. A non-positive capacity falls
// back to [DefaultOrderBufferCapacity].
func NewOrderBuffer(capacity int) *OrderBuffer {
	if capacity <= 0 {
		capacity = DefaultOrderBufferCapacity
	}
	return &OrderBuffer{
		capacity: capacity,
		expected: make(map[string]int64),
		pending:  make(map[string]map[int64]models.DeltaEntry),
	}
}

// InitFromVersionVector seeds the expected counters from a known vector:
// for every (device, clock) pair the next expected sequence becomes clock+1.
// Used when resuming from a snapshot so already-incorporated operations are
// not re-delivered.
func (b *OrderBuffer) InitFromVersionVector(vv models.VersionVector) {
	for deviceID, clock := range vv {
		b.expected[deviceID] = clock + 1
	}
}

// Insert accepts one received delta and returns the contiguous run of
// entries that became deliverable, in strictly increasing sequence order.
//
// A delta whose sequence is below the device's expected counter is a
// duplicate and is discarded (nil return, no error). A delta at or above the
// counter is buffered; inserting the same sequence twice overwrites
// harmlessly since equal sequences from one device carry the same logical
// operation. When the buffered entry count for the device exceeds capacity,
// the lowest-keyed entries are evicted first. Eviction is lossy: a sender
// racing far ahead of a slow consumer creates a gap only Layer-3 full sync
// can close.
func (b *OrderBuffer) Insert(delta models.DeltaEntry) []models.DeltaEntry {
	deviceID := delta.DeviceID
	seq := delta.Sequence()

	exp := b.expectedFor(deviceID)
	if seq < exp {
		// Duplicate of something already delivered or applied.
		return nil
	}

	buf := b.pending[deviceID]
	if buf == nil {
		buf = make(map[int64]models.DeltaEntry)
		b.pending[deviceID] = buf
	}
	buf[seq] = delta

	b.evictOverflow(deviceID)

	return b.flush(deviceID)
}

// flush pops and returns buffered entries starting at the expected sequence,
// advancing it per entry, stopping at the first gap.
func (b *OrderBuffer) flush(deviceID string) []models.DeltaEntry {
	buf := b.pending[deviceID]

	var run []models.DeltaEntry
	for {
		next, ok := buf[b.expected[deviceID]]
		if !ok {
			break
		}
		delete(buf, b.expected[deviceID])
		b.expected[deviceID]++
		run = append(run, next)
	}

	if len(buf) == 0 {
		delete(b.pending, deviceID)
	}
	return run
}

// evictOverflow drops the lowest-keyed buffered entries until the device's
// buffer is back within capacity.
func (b *OrderBuffer) evictOverflow(deviceID string) {
	buf := b.pending[deviceID]
	if len(buf) <= b.capacity {
		return
	}

	keys := make([]int64, 0, len(buf))
	for seq := range buf {
		keys = append(keys, seq)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, seq := range keys[:len(buf)-b.capacity] {
		delete(buf, seq)
	}
}

// HasGaps reports whether any device holds buffered entries whose lowest
// sequence is strictly above that device's expected counter, that is, a
// detected but unfilled gap.
func (b *OrderBuffer) HasGaps() bool {
	for deviceID, buf := range b.pending {
		if len(buf) == 0 {
			continue
		}
		if lowestKey(buf) > b.expected[deviceID] {
			return true
		}
	}
	return false
}

// GappedDevices lists the origin devices currently holding a detected but
// unfilled gap, sorted for deterministic iteration. A device only the buffer
// knows about (nothing delivered yet, so absent from any version vector)
// still shows up here.
func (b *OrderBuffer) GappedDevices() []string {
	var devices []string
	for deviceID, buf := range b.pending {
		if len(buf) == 0 {
			continue
		}
		if lowestKey(buf) > b.expected[deviceID] {
			devices = append(devices, deviceID)
		}
	}
	sort.Strings(devices)
	return devices
}

// MissingSequences enumerates the sequences in [expected, maxBuffered) that
// are absent from deviceID's buffer, in ascending order. The result drives
// Layer-2 re-requests or the decision to escalate to full sync. Returns nil
// when nothing is buffered for the device.
func (b *OrderBuffer) MissingSequences(deviceID string) []int64 {
	buf := b.pending[deviceID]
	if len(buf) == 0 {
		return nil
	}

	maxSeq := int64(0)
	for seq := range buf {
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	var missing []int64
	for seq := b.expectedFor(deviceID); seq < maxSeq; seq++ {
		if _, ok := buf[seq]; !ok {
			missing = append(missing, seq)
		}
	}
	return missing
}

// ExpectedSequence returns the next sequence the buffer will deliver for
// deviceID (1 for a device never seen).
func (b *OrderBuffer) ExpectedSequence(deviceID string) int64 {
	if exp, ok := b.expected[deviceID]; ok {
		return exp
	}
	return 1
}

// BufferedCount returns the number of out-of-order entries currently held
// for deviceID.
func (b *OrderBuffer) BufferedCount(deviceID string) int {
	return len(b.pending[deviceID])
}

func (b *OrderBuffer) expectedFor(deviceID string) int64 {
	if _, ok := b.expected[deviceID]; !ok {
		b.expected[deviceID] = 1
	}
	return b.expected[deviceID]
}

func lowestKey(buf map[int64]models.DeltaEntry) int64 {
	first := true
	var lowest int64
	for seq := range buf {
		if first || seq < lowest {
			lowest = seq
			first = false
		}
	}
	return lowest
}
