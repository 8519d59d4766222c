package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-keeper/internal/codec"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/session"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/internal/validators"
	"github.com/MKhiriev/go-vault-keeper/internal/workers"
	"github.com/MKhiriev/go-vault-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrMissingScope:                     http.StatusForbidden,
	ErrInvalidJSON:                      http.StatusBadRequest,
	ErrEmptySessionID:                   http.StatusBadRequest,

	service.ErrTokenIsExpired:       http.StatusUnauthorized,
	service.ErrInvalidToken:         http.StatusUnauthorized,
	service.ErrInvalidTokenParams:   http.StatusBadRequest,
	service.ErrSavePending:          http.StatusConflict,
	service.ErrSharedViewUnresolved: http.StatusConflict,
	service.ErrNoOpenView:           http.StatusNotFound,
	service.ErrVaultNotFound:        http.StatusNotFound,
	service.ErrUnknownMutationKind:  http.StatusBadRequest,

	session.ErrSessionHasView: http.StatusConflict,

	models.ErrInvalidOwnerID:     http.StatusBadRequest,
	models.ErrInvalidVaultNumber: http.StatusBadRequest,
	models.ErrSlotOutOfRange:     http.StatusBadRequest,

	store.ErrDocumentNotFound:   http.StatusNotFound,
	store.ErrSaveThrottled:      http.StatusTooManyRequests,
	store.ErrCorruptDocument:    http.StatusUnprocessableEntity,
	codec.ErrCorruptBlob:        http.StatusUnprocessableEntity,
	codec.ErrUnsupportedVersion: http.StatusUnprocessableEntity,

	validators.ErrInvalidRequest:  http.StatusBadRequest,
	validators.ErrUnsupportedType: http.StatusInternalServerError,

	workers.ErrPoolClosed: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the status it maps to.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	utils.WriteError(w, r, err.Error(), status)
}
