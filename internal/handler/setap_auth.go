package handler

import (
	"errors"
	"net/http"
	"net/url"

	"backoffice/internal/flash"
	"backoffice/internal/logger"
	"backoffice/internal/metrics"
	"backoffice/internal/user"

	"go.uber.org/zap"
)

type loginView struct {
	Email    string
	ReturnTo string
}

// LoginForm handles GET /login.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if currentUserID(r) != 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.view.HTML(w, r, http.StatusOK, "login.html", "Sign in", loginView{
		ReturnTo: safeReturn(r.URL.Query().Get("return_to")),
	})
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	returnTo := safeReturn(r.PostFormValue("return_to"))

	u, err := h.Users.Authenticate(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if errors.Is(err, user.ErrInvalidCredentials) {
		metrics.LoginFailures.Inc()
		h.flash.Redirect(w, r, "/login?return_to="+url.QueryEscape(returnTo), flash.KindError, "Invalid e-mail or password.")
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	token, err := h.sessions.Issue(u.ID, u.RoleID, u.Email, u.Name)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.sessions.SetCookie(w, token)

	logger.FromCtx(r.Context()).Info("user signed in", zap.Uint("user_id", u.ID))
	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

// Logout handles POST /logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	h.flash.Redirect(w, r, "/login", flash.KindInfo, "You have been signed out.")
}
