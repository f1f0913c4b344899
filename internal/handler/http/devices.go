package http

import (
	"net/http"

	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/utils"
	"github.com/dterekhov/go-mem-sync/models"
)

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	devices, err := h.services.Devices.ListDevices(ctx, accountID)
	if err != nil {
		log.Err(err).Msg("error occurred during listing devices")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DeviceListResponse{
		Devices: devices,
		Online:  h.hub.ConnectedDevices(accountID),
	}, http.StatusOK)
}
