package validators

import (
	"context"
	"fmt"

	"github.com/dterekhov/go-mem-sync/models"
)

const (
	FieldType      = "type"
	FieldVariant   = "variant"
	FieldDeviceID  = "device_id"
	FieldSequence  = "sequence"
	FieldOperation = "operation"
)

// MessageValidator checks the structural soundness of sync protocol messages
// and delta entries before they reach the session core. It never inspects
// sealed content: ciphertext is opaque at every layer above crypto.
type MessageValidator struct {
}

func NewMessageValidator() Validator {
	return &MessageValidator{}
}

func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BroadcastMessage:
		return v.validateMessage(ctx, value, fields...)
	case *models.BroadcastMessage:
		return v.validateMessage(ctx, *value, fields...)

	case models.DeltaEntry:
		return v.validateDeltaEntry(ctx, value, fields...)
	case *models.DeltaEntry:
		return v.validateDeltaEntry(ctx, *value, fields...)

	case models.DeltaOperation:
		return v.validateOperation(value)
	case *models.DeltaOperation:
		return v.validateOperation(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *MessageValidator) validateMessage(ctx context.Context, msg models.BroadcastMessage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldVariant}
	}

	for _, field := range fields {
		switch field {
		case FieldType:
			if msg.Type.Layer() == 0 {
				return fmt.Errorf("%w: %q", ErrUnknownMessageType, msg.Type)
			}
		case FieldVariant:
			if err := v.validateVariant(ctx, msg); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

// validateVariant checks that the variant named by Type is present and
// carries its mandatory fields.
func (v *MessageValidator) validateVariant(ctx context.Context, msg models.BroadcastMessage) error {
	switch msg.Type {
	case models.MessageRelayNotify:
		if msg.RelayNotify == nil {
			return ErrMissingVariant
		}
		if msg.RelayNotify.FromDeviceID == "" {
			return ErrEmptyDeviceID
		}

	case models.MessageSyncRequest:
		if msg.SyncRequest == nil {
			return ErrMissingVariant
		}
		if msg.SyncRequest.FromDeviceID == "" {
			return ErrEmptyDeviceID
		}

	case models.MessageSyncResponse:
		if msg.SyncResponse == nil {
			return ErrMissingVariant
		}
		for _, entry := range msg.SyncResponse.Deltas {
			if err := v.validateDeltaEntry(ctx, entry); err != nil {
				return err
			}
		}

	case models.MessageDeltaAck:
		if msg.DeltaAck == nil {
			return ErrMissingVariant
		}
		if msg.DeltaAck.SourceDeviceID == "" {
			return ErrEmptyDeviceID
		}
		if msg.DeltaAck.LastSeq < 0 {
			return ErrNegativeSequence
		}

	case models.MessageFullSyncRequest:
		if msg.FullSyncRequest == nil {
			return ErrMissingVariant
		}

	case models.MessageFullSyncManifestResponse:
		if msg.FullSyncManifestResponse == nil {
			return ErrMissingVariant
		}

	case models.MessageFullSyncData:
		if msg.FullSyncData == nil {
			return ErrMissingVariant
		}
		if !models.KnownEntityType(msg.FullSyncData.EntityType) {
			return fmt.Errorf("%w: %q", ErrUnknownEntityType, msg.FullSyncData.EntityType)
		}
		if msg.FullSyncData.EntityID == "" {
			return ErrEmptyKey
		}
		if len(msg.FullSyncData.IV) == 0 || len(msg.FullSyncData.AuthTag) == 0 {
			return ErrEmptyCipherField
		}

	case models.MessageFullSyncComplete:
		if msg.FullSyncComplete == nil {
			return ErrMissingVariant
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownMessageType, msg.Type)
	}

	return nil
}

func (v *MessageValidator) validateDeltaEntry(ctx context.Context, entry models.DeltaEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeviceID, FieldSequence, FieldOperation}
	}

	for _, field := range fields {
		switch field {
		case FieldDeviceID:
			if entry.ID == "" {
				return ErrEmptyEntryID
			}
			if entry.DeviceID == "" {
				return ErrEmptyDeviceID
			}
		case FieldSequence:
			if entry.Sequence() <= 0 {
				return ErrNonPositiveSequence
			}
		case FieldOperation:
			if err := v.validateOperation(entry.Operation); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *MessageValidator) validateOperation(op models.DeltaOperation) error {
	switch op.Kind {
	case models.OperationStore:
		if op.Store == nil {
			return ErrMissingVariant
		}
		if op.Store.Key == "" {
			return ErrEmptyKey
		}
		if op.Store.Content == "" {
			return ErrEmptyContent
		}
		if !models.KnownEntityType(op.Store.Category) {
			return fmt.Errorf("%w: %q", ErrUnknownEntityType, op.Store.Category)
		}

	case models.OperationDelete:
		if op.Delete == nil {
			return ErrMissingVariant
		}
		if op.Delete.Key == "" {
			return ErrEmptyKey
		}

	case models.OperationUpdate:
		if op.Update == nil {
			return ErrMissingVariant
		}
		if op.Update.Key == "" {
			return ErrEmptyKey
		}
		if op.Update.Content == "" {
			return ErrEmptyContent
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperationKind, op.Kind)
	}

	return nil
}
