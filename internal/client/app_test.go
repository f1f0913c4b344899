// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/dterekhov/go-mem-sync/internal/config"
	"github.com/dterekhov/go-mem-sync/internal/crypto"
	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/mock"
	"github.com/dterekhov/go-mem-sync/internal/service"
	"github.com/dterekhov/go-mem-sync/internal/store"
	"github.com/dterekhov/go-mem-sync/internal/utils"
	"github.com/dterekhov/go-mem-sync/internal/validators"
	"github.com/dterekhov/go-mem-sync/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ──────────────────────────────── fakes ────────────────────────────────

// fakeRelay is a func-style fake of [adapter.RelayAdapter].
type fakeRelay struct {
	registerFn    func(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error)
	loginFn       func(ctx context.Context, req models.LoginDeviceRequest) (string, error)
	listDevicesFn func(ctx context.Context) (models.DeviceListResponse, error)
	token         string
}

func (f *fakeRelay) SetToken(token string) { f.token = token }
func (f *fakeRelay) Token() string         { return f.token }

func (f *fakeRelay) Register(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeRelay) Login(ctx context.Context, req models.LoginDeviceRequest) (string, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeRelay) ListDevices(ctx context.Context) (models.DeviceListResponse, error) {
	return f.listDevicesFn(ctx)
}

func (f *fakeRelay) RelayVersion(ctx context.Context) (string, error) {
	return "test", nil
}

func (f *fakeRelay) DialSync(ctx context.Context) (*websocket.Conn, error) {
	return nil, errors.New("not dialed in tests")
}

func newTestApp(t *testing.T, relay *fakeRelay) *App {
	t.Helper()

	keychain := crypto.NewKeyChainService()
	cfg := &config.AgentConfig{
		Device: config.DeviceIdentity{
			ID:        "dev-a",
			Secret:    "s3cret",
			AccountID: "acc-1",
			Name:      "laptop",
		},
	}

	return &App{
		cfg:      cfg,
		relay:    relay,
		keychain: keychain,
		validate: validators.NewMessageValidator(),
		key:      keychain.DeriveDeviceKey(cfg.Device.Secret, []byte(cfg.Device.AccountID)),
		log:      logger.Nop(),
	}
}

// ──────────────────────────── registration ─────────────────────────────

func TestEnsureRegistered_AssignsRelayDeviceID(t *testing.T) {
	var captured models.RegisterDeviceRequest
	relay := &fakeRelay{
		registerFn: func(_ context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
			captured = req
			return models.Device{ID: "dev-new", AccountID: req.AccountID}, nil
		},
	}

	app := newTestApp(t, relay)
	app.cfg.Device.ID = ""

	require.NoError(t, app.ensureRegistered(context.Background()))

	assert.Equal(t, "dev-new", app.cfg.Device.ID)
	assert.Equal(t, "acc-1", captured.AccountID)
	assert.Equal(t, "laptop", captured.Name)
	assert.Equal(t, app.Fingerprint(), captured.Fingerprint)
}

func TestEnsureRegistered_SkipsWhenIdentityKnown(t *testing.T) {
	relay := &fakeRelay{
		registerFn: func(context.Context, models.RegisterDeviceRequest) (models.Device, error) {
			t.Fatal("register must not be called for a known device")
			return models.Device{}, nil
		},
	}

	app := newTestApp(t, relay)

	require.NoError(t, app.ensureRegistered(context.Background()))
	assert.Equal(t, "dev-a", app.cfg.Device.ID)
}

func TestLogin_WrapsRelayError(t *testing.T) {
	relay := &fakeRelay{
		loginFn: func(context.Context, models.LoginDeviceRequest) (string, error) {
			return "", errors.New("boom")
		},
	}

	app := newTestApp(t, relay)

	err := app.login(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device login")
}

// ────────────────────────────── produce ────────────────────────────────

func TestStoreSetting_JournalsAndFoldsLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockLocalJournal(ctrl)
	entities := mock.NewMockLocalEntityStorage(ctrl)

	var appended models.DeltaEntry
	journal.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.DeltaEntry) error {
			appended = entry
			return nil
		})
	journal.EXPECT().SaveVector(gomock.Any(), gomock.Any()).Return(nil)
	entities.EXPECT().ApplyOperation(gomock.Any(), gomock.Any()).Return(nil)

	app := newTestApp(t, &fakeRelay{})
	app.producer = service.NewDeltaProducer("dev-a", nil, utils.NewUUIDGenerator(), journal)
	app.storages = &store.AgentStorages{Journal: journal, Entities: entities}

	require.NoError(t, app.StoreSetting(context.Background(), "theme", "dark"))

	assert.Equal(t, "dev-a", appended.DeviceID)
	assert.EqualValues(t, 1, appended.Sequence())
	require.Equal(t, models.OperationStore, appended.Operation.Kind)
	require.NotNil(t, appended.Operation.Store)
	assert.Equal(t, "theme", appended.Operation.Store.Key)
	assert.Equal(t, models.EntitySetting, appended.Operation.Store.Category)
	assert.NotEmpty(t, appended.Operation.Store.Content)
}

func TestDeleteEntry_RejectsEmptyKey(t *testing.T) {
	app := newTestApp(t, &fakeRelay{})

	err := app.DeleteEntry(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrEmptyKey)
}

// ────────────────────────────── applier ────────────────────────────────

func TestLocalApplier_JournalsThenFolds(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockLocalJournal(ctrl)
	entities := mock.NewMockLocalEntityStorage(ctrl)

	entry := models.DeltaEntry{
		ID:       "0195f1c2-0001-7000-8000-000000000001",
		DeviceID: "dev-b",
		Version:  models.VersionVector{"dev-b": 1},
		Operation: models.DeltaOperation{
			Kind:   models.OperationDelete,
			Delete: &models.DeleteOperation{Key: "stale"},
		},
	}

	gomock.InOrder(
		journal.EXPECT().Append(gomock.Any(), entry).Return(nil),
		entities.EXPECT().ApplyOperation(gomock.Any(), entry.Operation).Return(nil),
	)

	applier := &localApplier{journal: journal, entities: entities}
	require.NoError(t, applier.Apply(context.Background(), entry))
}

func TestLocalApplier_StopsOnJournalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockLocalJournal(ctrl)
	entities := mock.NewMockLocalEntityStorage(ctrl)

	wantErr := errors.New("disk full")
	journal.EXPECT().Append(gomock.Any(), gomock.Any()).Return(wantErr)

	applier := &localApplier{journal: journal, entities: entities}
	err := applier.Apply(context.Background(), models.DeltaEntry{
		ID:       "0195f1c2-0001-7000-8000-000000000002",
		DeviceID: "dev-b",
		Version:  models.VersionVector{"dev-b": 2},
	})
	assert.ErrorIs(t, err, wantErr)
}
