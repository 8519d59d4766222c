package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-vault-keeper/internal/app"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
)

func ownerFromRequest(r *http.Request) (models.OwnerID, error) {
	return models.NormalizeOwnerID(chi.URLParam(r, "owner"))
}

func vaultFromRequest(r *http.Request) (models.VaultIdentity, error) {
	raw := chi.URLParam(r, "number")
	number, err := strconv.Atoi(raw)
	if err != nil {
		return models.VaultIdentity{}, errors.Join(models.ErrInvalidVaultNumber, err)
	}
	return models.NewVaultIdentity(chi.URLParam(r, "owner"), number)
}

func (h *Handler) listVaults(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidOwner)
		return
	}

	numbers, err := h.services.VaultService.ListVaults(r.Context(), owner)
	if err != nil {
		h.writeError(w, r, err, app.MsgListVaultsFailed)
		return
	}

	_, _ = utils.WriteJSON(w, models.VaultListResponse{Owner: owner, Numbers: numbers}, http.StatusOK)
}

func (h *Handler) showVault(w http.ResponseWriter, r *http.Request) {
	vault, err := vaultFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidVault)
		return
	}

	snapshot, err := h.services.VaultService.PeekVault(r.Context(), vault)
	if errors.Is(err, service.ErrVaultNotFound) {
		_, _ = utils.WriteJSON(w, models.VaultResponse{Owner: vault.Owner, Number: vault.Number}, http.StatusNotFound)
		return
	}
	if err != nil {
		h.writeError(w, r, err, app.MsgReadVaultFailed)
		return
	}

	_, _ = utils.WriteJSON(w, models.VaultResponse{
		Owner:  vault.Owner,
		Number: vault.Number,
		Exists: true,
		Size:   snapshot.Len(),
		Slots:  snapshot.Slots(),
	}, http.StatusOK)
}

// deleteVault answers 202: the owner file is rewritten asynchronously.
func (h *Handler) deleteVault(w http.ResponseWriter, r *http.Request) {
	vault, err := vaultFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidVault)
		return
	}

	if err = h.services.VaultService.DeleteVault(r.Context(), vault); err != nil {
		h.writeError(w, r, err, app.MsgDeleteVaultFailed)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) deleteAllVaults(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidOwner)
		return
	}

	if err = h.services.VaultService.DeleteAllVaults(r.Context(), owner); err != nil {
		h.writeError(w, r, err, app.MsgDeleteAllFailed)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFailures(w http.ResponseWriter, r *http.Request) {
	failures := h.services.VaultService.Failures(r.Context())
	if failures == nil {
		failures = []models.SaveFailure{}
	}

	_, _ = utils.WriteJSON(w, models.FailuresResponse{Failures: failures, Length: len(failures)}, http.StatusOK)
}
