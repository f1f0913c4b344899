package service

import "errors"

var (
	// ErrRequiresFullSync reports that a gap in a source device's sequence
	// could not be closed by Layer-2 re-requests within the configured retry
	// bound. It is a protocol condition, not a transport failure: the caller
	// is expected to run a Layer-3 manifest exchange.
	ErrRequiresFullSync = errors.New("journal gap not bridgeable, full sync required")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongDeviceSecret   = errors.New("wrong device secret")

	ErrTokenIsExpired = errors.New("token is expired")
)
