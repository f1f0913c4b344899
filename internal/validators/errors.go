package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownMessageType   = errors.New("unknown message type")
	ErrMissingVariant       = errors.New("message variant does not match its type")
	ErrEmptyDeviceID        = errors.New("device id is required")
	ErrEmptyEntryID         = errors.New("entry id is required")
	ErrEmptyKey             = errors.New("entity key is required")
	ErrEmptyContent         = errors.New("sealed content is required")
	ErrUnknownEntityType    = errors.New("unknown entity type")
	ErrUnknownOperationKind = errors.New("unknown operation kind")
	ErrNegativeSequence     = errors.New("sequence cannot be negative")
	ErrNonPositiveSequence  = errors.New("sequence must be positive")
	ErrEmptyCipherField     = errors.New("iv and auth tag are required")
)
