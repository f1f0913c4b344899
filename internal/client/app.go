// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package client

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dterekhov/go-mem-sync/internal/adapter"
	"github.com/dterekhov/go-mem-sync/internal/config"
	"github.com/dterekhov/go-mem-sync/internal/crypto"
	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/service"
	"github.com/dterekhov/go-mem-sync/internal/store"
	"github.com/dterekhov/go-mem-sync/internal/tui"
	"github.com/dterekhov/go-mem-sync/internal/utils"
	"github.com/dterekhov/go-mem-sync/internal/validators"
	"github.com/dterekhov/go-mem-sync/internal/workers"
	"github.com/dterekhov/go-mem-sync/models"
	"github.com/gorilla/websocket"
)

// App is the device agent: one local journal, one entity cache, one relay
// connection. It implements [tui.Backend] so the status screen can observe
// and drive it.
type App struct {
	cfg      *config.AgentConfig
	storages *store.AgentStorages
	relay    adapter.RelayAdapter
	keychain crypto.KeyChainService
	validate validators.Validator
	producer *service.DeltaProducer
	ui       *tui.TUI
	log      *logger.Logger

	// key is the account content key, derived once and never sent anywhere.
	key []byte

	// mu serialises all session and connection access: the read pump, the
	// produce path, the periodic worker, and the status screen.
	mu         sync.Mutex
	conn       *websocket.Conn
	session    *service.SyncSession
	lastSyncAt time.Time
	lastErr    error
}

// NewApp builds the agent from its configuration: opens (and migrates) the
// local SQLite database, constructs the relay adapter, and derives the
// account content key.
//
// The key derivation salts the device secret with the account ID, so every
// device of one account derives the same key and can open each other's
// sealed entries. The relay only ever sees the key's fingerprint.
func NewApp(cfg *config.AgentConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewAgentStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create agent storages: %w", err)
	}

	keychain := crypto.NewKeyChainService()

	a := &App{
		cfg:      cfg,
		storages: storages,
		relay:    adapter.NewHTTPRelayAdapter(cfg.Relay),
		keychain: keychain,
		validate: validators.NewMessageValidator(),
		key:      keychain.DeriveDeviceKey(cfg.Device.Secret, []byte(cfg.Device.AccountID)),
		log:      log,
	}
	a.ui = tui.New(a, cfg.Version)

	return a, nil
}

// Run starts the agent and blocks until the UI exits or the process is
// signalled. Registration and login happen up front; the sync loop and the
// periodic worker run in the background for the whole lifetime.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	defer a.storages.Close()

	if err := a.ensureRegistered(ctx); err != nil {
		return err
	}
	if err := a.login(ctx); err != nil {
		return err
	}

	vector, err := a.storages.Journal.LoadVector(ctx)
	if err != nil {
		return fmt.Errorf("load version vector: %w", err)
	}
	a.producer = service.NewDeltaProducer(a.cfg.Device.ID, vector, utils.NewUUIDGenerator(), a.storages.Journal)

	go a.syncLoop(ctx)

	workers.NewWorkers(
		workers.NewIntervalWorker(ctx, "periodic-sync", a.cfg.Workers.SyncInterval, a.nudgeSync, a.log),
	).Run()

	return a.ui.Run(ctx)
}

// ensureRegistered enrolls the device when the config carries no device ID
// yet. The relay assigns the ID; the user must persist it (DEVICE_ID) so the
// next start logs straight in.
func (a *App) ensureRegistered(ctx context.Context) error {
	if a.cfg.Device.ID != "" {
		return nil
	}

	device, err := a.relay.Register(ctx, models.RegisterDeviceRequest{
		AccountID:   a.cfg.Device.AccountID,
		Name:        a.cfg.Device.Name,
		Fingerprint: a.keychain.Fingerprint(a.key),
		Secret:      a.cfg.Device.Secret,
	})
	if err != nil {
		return fmt.Errorf("register device: %w", err)
	}

	a.cfg.Device.ID = device.ID
	a.log.Warn().
		Str("device_id", device.ID).
		Msg("device registered; set DEVICE_ID in the environment to keep this identity")

	return nil
}

func (a *App) login(ctx context.Context) error {
	if _, err := a.relay.Login(ctx, models.LoginDeviceRequest{
		DeviceID: a.cfg.Device.ID,
		Secret:   a.cfg.Device.Secret,
	}); err != nil {
		return fmt.Errorf("device login: %w", err)
	}
	return nil
}

// StoreSetting seals a setting value with the account key and replicates it.
func (a *App) StoreSetting(ctx context.Context, key, value string) error {
	return a.StoreEntry(ctx, models.EntitySetting, key, value)
}

// StoreEntry seals an arbitrary value and produces a store operation for it.
func (a *App) StoreEntry(ctx context.Context, category models.EntityType, key string, value any) error {
	content, err := a.keychain.SealContent(value, a.key)
	if err != nil {
		return fmt.Errorf("seal entry content: %w", err)
	}
	return a.produce(ctx, models.DeltaOperation{
		Kind:  models.OperationStore,
		Store: &models.StoreOperation{Key: key, Content: content, Category: category},
	})
}

// DeleteEntry produces a delete operation for one key.
func (a *App) DeleteEntry(ctx context.Context, key string) error {
	return a.produce(ctx, models.DeltaOperation{
		Kind:   models.OperationDelete,
		Delete: &models.DeleteOperation{Key: key},
	})
}

// produce runs one local operation through the full pipeline: validate,
// journal via the producer, fold into the local entity cache, then advance
// the live session and hint the relay. Losing the hint is harmless, the next
// greeting re-announces the vector.
func (a *App) produce(ctx context.Context, op models.DeltaOperation) error {
	if err := a.validate.Validate(ctx, op); err != nil {
		return err
	}

	entry, notify, err := a.producer.Produce(ctx, op)
	if err != nil {
		return err
	}
	if err := a.storages.Entities.ApplyOperation(ctx, op); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session != nil {
		a.session.Produced(entry)
	}
	if a.conn != nil {
		if err := a.conn.WriteJSON(notify); err != nil {
			a.log.Warn().Err(err).Msg("failed to hint relay about new delta")
		}
	}
	return nil
}

// Fingerprint implements [tui.Backend].
func (a *App) Fingerprint() string {
	return a.keychain.Fingerprint(a.key)
}

// TriggerSync implements [tui.Backend]: it re-announces the local vector on
// the live connection, prompting the relay to serve anything missing.
func (a *App) TriggerSync(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil || a.conn == nil {
		return adapter.ErrUnauthorized
	}

	msgs, err := a.session.Greet(ctx)
	if err != nil {
		return err
	}
	return writeMessages(a.conn, msgs)
}

// Status implements [tui.Backend]. Local state always renders; the device
// registry is best effort when the relay is unreachable.
func (a *App) Status(ctx context.Context) (tui.SyncStatus, error) {
	st := tui.SyncStatus{
		DeviceID:   a.cfg.Device.ID,
		DeviceName: a.cfg.Device.Name,
		AccountID:  a.cfg.Device.AccountID,
	}

	a.mu.Lock()
	st.Connected = a.conn != nil
	st.LastSyncAt = a.lastSyncAt
	if a.session != nil {
		st.Vector = a.session.LocalVector()
		st.PendingGaps = a.session.Buffer().HasGaps()
	}
	if a.lastErr != nil {
		st.LastError = a.lastErr.Error()
	}
	a.mu.Unlock()

	if st.Vector == nil && a.producer != nil {
		st.Vector = a.producer.Vector()
	}

	manifest, err := a.storages.Entities.Inventory(ctx)
	if err != nil {
		return st, fmt.Errorf("local inventory: %w", err)
	}
	st.EntityCount = manifest.Size()

	registry, err := a.relay.ListDevices(ctx)
	if err != nil {
		a.log.Debug().Err(err).Msg("device registry unavailable")
		return st, nil
	}
	st.Devices = registry.Devices
	st.Online = registry.Online

	return st, nil
}
