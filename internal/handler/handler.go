package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/access"
	"backoffice/internal/apperr"
	"backoffice/internal/auth"
	"backoffice/internal/flash"
	"backoffice/internal/order"
	"backoffice/internal/payment"
	"backoffice/internal/payout"
	"backoffice/internal/persona"
	"backoffice/internal/project"
	"backoffice/internal/task"
	"backoffice/internal/user"
	"backoffice/internal/utils"
	"backoffice/internal/view"

	"github.com/go-chi/chi/v5"
)

// Services groups the domain services the handlers call.
type Services struct {
	Orders   order.Service
	Payments payment.Service
	Payouts  payout.Service
	Access   access.Service
	Users    user.Service
	Projects project.Service
	Tasks    task.Service
	Personas persona.Service
}

type Handler struct {
	Services
	sessions *auth.Sessions
	flash    *flash.Codec
	view     *view.Renderer
	now      func() time.Time
}

func New(s Services, sessions *auth.Sessions, flashCodec *flash.Codec, renderer *view.Renderer) *Handler {
	return &Handler{
		Services: s,
		sessions: sessions,
		flash:    flashCodec,
		view:     renderer,
		now:      time.Now,
	}
}

// Can holds the CRUD permissions of the current user on one resource.
type Can struct {
	Create bool
	Edit   bool
	Delete bool
}

func (h *Handler) can(r *http.Request, resource string) Can {
	ctx := r.Context()
	userID := currentUserID(r)
	return Can{
		Create: h.Access.HasPermission(ctx, userID, access.CRUDPermission(resource, "create")),
		Edit:   h.Access.HasPermission(ctx, userID, access.CRUDPermission(resource, "edit")),
		Delete: h.Access.HasPermission(ctx, userID, access.CRUDPermission(resource, "delete")),
	}
}

func currentUserID(r *http.Request) uint {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}

// parseID reads a decimal record id. Anything else, including octal or hex
// spellings such as "010" or "0x10", yields 0, which no record carries.
func parseID(s string) uint {
	s = strings.TrimSpace(s)
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0
	}
	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0
	}
	return uint(id)
}

func pathID(r *http.Request) uint {
	return parseID(chi.URLParam(r, "id"))
}

// formDate parses an optional YYYY-MM-DD form value.
func formDate(r *http.Request, field string) (*time.Time, error) {
	v := strings.TrimSpace(r.PostFormValue(field))
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, apperr.InvalidErr(field + " must be a date (YYYY-MM-DD).")
	}
	return &t, nil
}

func formUintPtr(r *http.Request, field string) *uint {
	v := parseID(r.PostFormValue(field))
	if v == 0 {
		return nil
	}
	return &v
}

// classify maps domain errors onto application error kinds.
func classify(err error) error {
	if _, ok := apperr.As(err); ok {
		return err
	}

	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		return apperr.NotFoundErr("Order not found.", err)
	case errors.Is(err, payment.ErrPaymentNotFound):
		return apperr.NotFoundErr("Payment not found.", err)
	case errors.Is(err, payout.ErrPayoutNotFound):
		return apperr.NotFoundErr("Payout not found.", err)
	case errors.Is(err, user.ErrUserNotFound):
		return apperr.NotFoundErr("User not found.", err)
	case errors.Is(err, project.ErrProjectNotFound):
		return apperr.NotFoundErr("Project not found.", err)
	case errors.Is(err, task.ErrTaskNotFound):
		return apperr.NotFoundErr("Task not found.", err)
	case errors.Is(err, persona.ErrPersonaNotFound):
		return apperr.NotFoundErr("Persona not found.", err)

	case errors.Is(err, payment.ErrAlreadyPaid), errors.Is(err, payout.ErrAlreadyPaid):
		return apperr.ConflictErr("It was already marked as paid.", err)
	case errors.Is(err, user.ErrEmailExists):
		return apperr.ConflictErr("That e-mail is already registered.", err)
	case errors.Is(err, user.ErrSelfDelete):
		return apperr.ConflictErr("You cannot delete your own user.", err)
	case errors.Is(err, user.ErrUserInUse):
		return apperr.ConflictErr("The user is still referenced and cannot be deleted.", err)
	case errors.Is(err, project.ErrCodeExists):
		return apperr.ConflictErr("That project code is already in use.", err)
	case errors.Is(err, project.ErrProjectInUse):
		return apperr.ConflictErr("Delete the project's tasks first.", err)
	case errors.Is(err, task.ErrUnknownReference):
		return apperr.InvalidErr("The selected project or assignee does not exist.")
	}

	return apperr.Wrap(err)
}

// fail answers a failed POST. Invalid input and conflicts go back to the
// form with a flash and no effect; everything else renders an error page.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, back string, err error) {
	err = classify(err)
	ae, _ := apperr.As(err)

	switch {
	case errors.Is(err, payment.ErrAlreadyPaid), errors.Is(err, payout.ErrAlreadyPaid):
		h.flash.Redirect(w, r, back, flash.KindInfo, ae.PublicMsg)
	case ae.Kind == apperr.Invalid, ae.Kind == apperr.Conflict:
		h.flash.Redirect(w, r, back, flash.KindError, ae.PublicMsg)
	default:
		h.view.Error(w, r, err)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	h.view.Error(w, r, classify(err))
}

// safeReturn accepts only local absolute paths as post-login targets.
func safeReturn(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
