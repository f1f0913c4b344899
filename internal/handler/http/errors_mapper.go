package http

import (
	"errors"
	"net/http"

	"github.com/dterekhov/go-mem-sync/internal/service"
	"github.com/dterekhov/go-mem-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongDeviceSecret:   http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,

	store.ErrDeviceAlreadyExists: http.StatusConflict,
	store.ErrNoDeviceWasFound:    http.StatusNotFound,
	store.ErrEntityNotFound:      http.StatusNotFound,
	store.ErrDeltaNotSaved:       http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingPayload:      http.StatusInternalServerError,
	store.ErrDecodingPayload:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
