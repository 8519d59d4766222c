// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-vault-keeper/internal/app"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
)

func sessionFromRequest(r *http.Request) (models.SessionID, error) {
	id := strings.TrimSpace(chi.URLParam(r, "session"))
	if id == "" {
		return "", ErrEmptySessionID
	}
	return models.SessionID(id), nil
}

// decodeSessionRequest reads the session path parameter and, when body is not
// nil, decodes the JSON request body into it and validates it. It writes the error response
// itself and reports whether the handler may continue.
func (h *Handler) decodeSessionRequest(w http.ResponseWriter, r *http.Request, body any) (models.SessionID, bool) {
	s, err := sessionFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidSession)
		return "", false
	}
	if body == nil {
		return s, true
	}
	if err = json.NewDecoder(r.Body).Decode(body); err != nil {
		h.writeError(w, r, ErrInvalidJSON, err.Error())
		return "", false
	}
	if err = h.validator.Validate(r.Context(), body); err != nil {
		h.writeError(w, r, err, app.MsgInvalidRequest)
		return "", false
	}
	return s, true
}

func (h *Handler) sessionJoined(w http.ResponseWriter, r *http.Request) {
	var req models.JoinRequest
	s, ok := h.decodeSessionRequest(w, r, &req)
	if !ok {
		return
	}

	owner, err := models.NormalizeOwnerID(req.Owner)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidOwner)
		return
	}

	if err = h.services.SaveOrchestrator.SessionJoined(r.Context(), s, owner); err != nil {
		h.writeError(w, r, err, app.MsgPreloadFailed)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) openView(w http.ResponseWriter, r *http.Request) {
	var req models.OpenViewRequest
	s, ok := h.decodeSessionRequest(w, r, &req)
	if !ok {
		return
	}

	vault, err := models.NewVaultIdentity(req.Owner, req.Number)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidVault)
		return
	}

	c, err := h.services.SaveOrchestrator.ViewOpened(r.Context(), s, vault, req.Size)
	if err != nil {
		h.writeError(w, r, err, app.MsgOpenViewFailed)
		return
	}

	_, _ = utils.WriteJSON(w, models.OpenViewResponse{
		Vault:   vault,
		Viewers: c.ViewerCount(),
		Slots:   c.Contents(),
	}, http.StatusOK)
}

func (h *Handler) saveState(w http.ResponseWriter, r *http.Request) {
	s, ok := h.decodeSessionRequest(w, r, nil)
	if !ok {
		return
	}

	state := h.services.SaveOrchestrator.SaveState(s)
	_, _ = utils.WriteJSON(w, models.SaveStateResponse{Session: s, State: state.String()}, http.StatusOK)
}

// mutation gates and applies a mutation attempt. With ?dry_run=true the
// attempt is only checked.
func (h *Handler) mutation(w http.ResponseWriter, r *http.Request) {
	var req models.MutationRequest
	s, ok := h.decodeSessionRequest(w, r, &req)
	if !ok {
		return
	}

	kind, err := service.ParseMutationKind(req.Kind)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidMutation)
		return
	}

	attempt := service.MutationAttempt{
		Session:     s,
		Kind:        kind,
		Slot:        req.Slot,
		Stack:       req.Stack,
		Involved:    req.Involved,
		Permissions: req.Permissions,
	}

	var decision service.Decision
	if r.URL.Query().Get("dry_run") == "true" {
		decision = h.services.SaveOrchestrator.MutationAttempt(r.Context(), attempt)
	} else if decision, err = h.services.SaveOrchestrator.Mutate(r.Context(), attempt); err != nil {
		h.writeError(w, r, err, app.MsgMutateFailed)
		return
	}

	_, _ = utils.WriteJSON(w, decision.Response(), http.StatusOK)
}

func (h *Handler) interaction(w http.ResponseWriter, r *http.Request) {
	var req models.InteractionRequest
	s, ok := h.decodeSessionRequest(w, r, &req)
	if !ok {
		return
	}

	decision := h.services.SaveOrchestrator.ViewerInteractedWithEntity(r.Context(), s, service.EntityKind(strings.ToLower(req.Entity)))
	_, _ = utils.WriteJSON(w, decision.Response(), http.StatusOK)
}

func (h *Handler) closeView(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.services.SaveOrchestrator.SessionClosedView)
}

func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.services.SaveOrchestrator.SessionDisconnected)
}

func (h *Handler) entityRemoved(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.services.SaveOrchestrator.SessionEntityRemoved)
}

// lifecycle delivers a notification that may end a view. Every outcome is a
// 200: duplicates and throttled writes are skips, not errors.
func (h *Handler) lifecycle(w http.ResponseWriter, r *http.Request, notify func(ctx context.Context, s models.SessionID) service.SaveOutcome) {
	s, ok := h.decodeSessionRequest(w, r, nil)
	if !ok {
		return
	}

	outcome := notify(r.Context(), s)
	_, _ = utils.WriteJSON(w, models.SaveResponse{Outcome: outcome.String()}, http.StatusOK)
}

func (h *Handler) relocate(w http.ResponseWriter, r *http.Request) {
	var req models.RelocationRequest
	s, ok := h.decodeSessionRequest(w, r, &req)
	if !ok {
		return
	}

	cause := service.RelocationCause(strings.ToLower(req.Cause))
	closeView, err := h.services.SaveOrchestrator.SessionForcedRelocation(r.Context(), s, cause)
	if err != nil {
		h.writeError(w, r, err, app.MsgCloseFailed)
		return
	}

	_, _ = utils.WriteJSON(w, models.RelocationResponse{CloseView: closeView}, http.StatusOK)
}
