package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dterekhov/go-mem-sync/internal/app"
	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/service"
	"github.com/dterekhov/go-mem-sync/internal/store"
	"github.com/dterekhov/go-mem-sync/internal/utils"
	"github.com/dterekhov/go-mem-sync/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredDevice, err := h.services.AuthService.RegisterDevice(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDeviceAlreadyExists):
			log.Err(err).Msg("device already exists")
			http.Error(w, app.MsgDeviceAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during device registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("device_id", registeredDevice.ID).Msg("device registered")

	// the relay assigns the device ID, hand it back to the caller
	utils.WriteJSON(w, registeredDevice, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoDeviceWasFound) || errors.Is(err, service.ErrWrongDeviceSecret):
			log.Err(err).Msg("no device was found/wrong secret")
			http.Error(w, app.MsgInvalidDeviceSecret, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during device login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("device_id", token.DeviceID).Msg("device successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginDeviceResponse{Token: token.SignedString}, http.StatusOK)
}
