// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

// Package tui renders the agent's terminal status screen: connection state,
// version vector, entity inventory, and the account's device registry, with
// hotkeys for a manual sync, storing a sealed entry, and copying the key
// fingerprint for pairing.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dterekhov/go-mem-sync/models"
)

// SyncStatus is one observation of the agent, rendered by the status screen.
type SyncStatus struct {
	DeviceID   string
	DeviceName string
	AccountID  string

	Connected   bool
	Vector      models.VersionVector
	PendingGaps bool
	EntityCount int
	LastSyncAt  time.Time
	LastError   string

	Devices []models.Device
	Online  []string
}

// Backend is the agent surface the status screen observes and drives.
type Backend interface {
	// Status snapshots the agent's sync state.
	Status(ctx context.Context) (SyncStatus, error)

	// TriggerSync re-announces the local vector on the live connection.
	TriggerSync(ctx context.Context) error

	// StoreSetting seals one setting value and replicates it.
	StoreSetting(ctx context.Context, key, value string) error

	// Fingerprint returns the account key fingerprint shown when pairing.
	Fingerprint() string
}

type TUI struct {
	backend Backend
	version string
}

func New(backend Backend, version string) *TUI {
	return &TUI{backend: backend, version: version}
}

// Run blocks in the status screen until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newStatusModel(ctx, t.backend, t.version)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err == tea.ErrProgramKilled && ctx.Err() != nil {
		// завершение по сигналу — не ошибка
		return nil
	}
	return err
}
