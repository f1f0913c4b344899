package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDeviceAlreadyExists is returned when an attempt to register a device
	// fails because a device with the same identifier is already present.
	ErrDeviceAlreadyExists = errors.New("device already exists")

	// ErrNoDeviceWasFound is returned when a query expected to match at least
	// one device record produces an empty result set.
	ErrNoDeviceWasFound = errors.New("no device was found")

	// ErrDeltaNotSaved is returned when an INSERT of one or more journal
	// entries completes without error but the number of affected rows is
	// zero, indicating that no data was actually persisted.
	ErrDeltaNotSaved = errors.New("delta entry was not saved")

	// ErrEntityNotFound is returned when a lookup targets a sealed entity
	// (identified by account, type, and id) that does not exist.
	ErrEntityNotFound = errors.New("entity was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingPayload is returned when a delta's version vector or
	// operation cannot be serialised for storage.
	ErrEncodingPayload = errors.New("failed to encode journal payload")

	// ErrDecodingPayload is returned when a stored version vector or
	// operation cannot be deserialised back into its model type.
	ErrDecodingPayload = errors.New("failed to decode journal payload")
)
