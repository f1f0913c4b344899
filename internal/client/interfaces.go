// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package client

// Client defines the minimal lifecycle contract for runnable agent
// applications.
type Client interface {
	// Run starts the agent and blocks until exit.
	Run() error
}
