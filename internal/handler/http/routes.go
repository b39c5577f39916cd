package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/admin/v1", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/reset_password/request", h.resetRequest)
			r.Post("/reset_password/verify", h.resetVerify)
			r.Post("/reset_password", h.resetComplete)
		})

		// routes behind the JWT bearer middleware
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/add", h.addAdmin)
			r.Post("/update_accesses", h.updateAccesses)
			r.Post("/update_meta", h.updateMeta)
			r.Post("/update_password", h.updatePassword)
			r.Get("/list", h.listAdmins)
			r.Get("/count", h.countAdmins)
			r.Get("/detail", h.adminDetail)
			r.Post("/delete", h.deleteAdmin)
			r.Get("/me/info", h.selfInfo)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
