package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-vault-keeper/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		admin := r.With(h.requireScope(models.PermissionAdmin))

		// administrative API
		admin.Get("/api/owners/{owner}/vaults", h.listVaults)
		admin.Get("/api/owners/{owner}/vaults/{number}", h.showVault)
		admin.Get("/api/diagnostics/failures", h.listFailures)
		r.With(h.requireScope(models.PermissionDelete)).Delete("/api/owners/{owner}/vaults/{number}", h.deleteVault)
		r.With(h.requireScope(models.PermissionDeleteAll)).Delete("/api/owners/{owner}/vaults", h.deleteAllVaults)

		// host bridge
		admin.Post("/api/sessions/{session}/join", h.sessionJoined)
		admin.Post("/api/sessions/{session}/view", h.openView)
		admin.Get("/api/sessions/{session}/state", h.saveState)
		admin.Post("/api/sessions/{session}/mutations", h.mutation)
		admin.Post("/api/sessions/{session}/interactions", h.interaction)
		admin.Post("/api/sessions/{session}/close", h.closeView)
		admin.Post("/api/sessions/{session}/disconnect", h.disconnect)
		admin.Post("/api/sessions/{session}/entity-removed", h.entityRemoved)
		admin.Post("/api/sessions/{session}/relocate", h.relocate)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
