// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

// Package client implements the device agent runtime.
//
// It wires the local SQLite journal and entity cache, the relay HTTP/WS
// adapter, the delta producer, and the terminal status UI into a single
// process lifecycle with a reconnecting sync loop.
package client
