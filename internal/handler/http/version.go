package http

import (
	"net/http"

	"github.com/MKhiriev/go-vault-keeper/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, _ = utils.WriteJSON(w, versionResponse{Version: serverVersion}, http.StatusOK)
}
