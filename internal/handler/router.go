package handler

import (
	"net/http"

	"backoffice/internal/access"
	"backoffice/internal/logger"
	"backoffice/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Routes builds the application router.
func (h *Handler) Routes(csrf *middleware.CSRF, limiter *middleware.Limiter) *chi.Mux {
	r := chi.NewRouter()

	r.Use(h.stack(csrf, limiter)...)

	r.NotFound(h.view.NotFound)

	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Post("/logout", h.Logout)
		r.Get("/", h.Dashboard)

		r.Route("/admin", func(r chi.Router) {
			r.With(h.menu(access.MenuOrders)).Get("/orders", h.ListOrders)
			r.With(h.menu(access.MenuOrders)).Get("/order", h.ShowOrder)

			r.Group(func(r chi.Router) {
				r.Use(h.menu(access.MenuPayments))
				r.Get("/payments", h.ListPayments)
				r.With(h.permission(access.PermPaymentsMarkPaid)).Post("/payments", h.MarkPaymentPaid)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.menu(access.MenuPayouts))
				r.Get("/payouts", h.ListPayouts)
				r.Get("/payouts/export", h.ExportPayouts)
				r.With(h.permission(access.PermPayoutsMarkPaid)).Post("/payouts", h.MarkPayoutPaid)
			})
		})

		h.resource(r, access.MenuUsers, crud{
			list: h.ListUsers, form: h.NewUser, create: h.CreateUser,
			edit: h.EditUser, update: h.UpdateUser, remove: h.DeleteUser,
		})
		h.resource(r, access.MenuProjects, crud{
			list: h.ListProjects, form: h.NewProject, create: h.CreateProject,
			edit: h.EditProject, update: h.UpdateProject, remove: h.DeleteProject,
		})
		h.resource(r, access.MenuTasks, crud{
			list: h.ListTasks, form: h.NewTask, create: h.CreateTask,
			edit: h.EditTask, update: h.UpdateTask, remove: h.DeleteTask,
		})
		h.resource(r, access.MenuPersonas, crud{
			list: h.ListPersonas, form: h.NewPersona, create: h.CreatePersona,
			edit: h.EditPersona, update: h.UpdatePersona, remove: h.DeletePersona,
		})
	})

	return r
}

// stack is the middleware shared by every route. The session is parsed
// before logging and rate limiting so both see the user, and Recovery sits
// inside LoggingMiddleware so a panic still gets its 500 logged and counted.
func (h *Handler) stack(csrf *middleware.CSRF, limiter *middleware.Limiter) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		logger.RequestIDMiddleware,
		middleware.AuthMiddleware(h.sessions),
		middleware.LoggingMiddleware,
		middleware.Recovery(h.view.Error),
		limiter.Middleware,
		csrf.Middleware,
		h.flash.Middleware,
	}
}

type crud struct {
	list, form, create, edit, update, remove http.HandlerFunc
}

// resource mounts the six CRUD routes of name. Viewing needs the menu of the
// same name; each mutation needs "<name>.create|edit|delete".
func (h *Handler) resource(r chi.Router, name string, c crud) {
	createPerm := h.permission(access.CRUDPermission(name, "create"))
	editPerm := h.permission(access.CRUDPermission(name, "edit"))
	deletePerm := h.permission(access.CRUDPermission(name, "delete"))

	r.Route("/"+name, func(r chi.Router) {
		r.Use(h.menu(name))
		r.Get("/", c.list)
		r.With(createPerm).Get("/new", c.form)
		r.With(createPerm).Post("/", c.create)
		r.With(editPerm).Get("/{id}/edit", c.edit)
		r.With(editPerm).Post("/{id}", c.update)
		r.With(deletePerm).Post("/{id}/delete", c.remove)
	})
}

func (h *Handler) menu(name string) func(http.Handler) http.Handler {
	return middleware.RequireMenu(h.Access, name, h.view.Forbidden)
}

func (h *Handler) permission(name string) func(http.Handler) http.Handler {
	return middleware.RequirePermission(h.Access, name, h.view.Forbidden)
}
