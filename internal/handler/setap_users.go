package handler

import (
	"fmt"
	"net/http"
	"strings"

	"backoffice/internal/access"
	"backoffice/internal/flash"
	"backoffice/internal/user"

	"github.com/spf13/cast"
)

type usersView struct {
	Users []user.User
	Can   Can
}

type userForm struct {
	User   *user.User
	Roles  []user.Role
	Action string
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.view.HTML(w, r, http.StatusOK, "users.html", "Users", usersView{Users: users, Can: h.can(r, access.MenuUsers)})
}

func (h *Handler) NewUser(w http.ResponseWriter, r *http.Request) {
	h.renderUserForm(w, r, nil, "/users")
}

func (h *Handler) EditUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.Users.Get(r.Context(), pathID(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderUserForm(w, r, u, fmt.Sprintf("/users/%d", u.ID))
}

func (h *Handler) renderUserForm(w http.ResponseWriter, r *http.Request, u *user.User, action string) {
	roles, err := h.Users.ListRoles(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	title := "New user"
	if u != nil {
		title = "Edit user"
	}
	h.view.HTML(w, r, http.StatusOK, "user_form.html", title, userForm{User: u, Roles: roles, Action: action})
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	input := user.CreateInput{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: strings.TrimSpace(r.PostFormValue("password")),
		RoleID:   parseID(r.PostFormValue("role_id")),
		Active:   cast.ToBool(r.PostFormValue("active")),
	}

	u, err := h.Users.Create(r.Context(), input)
	if err != nil {
		h.fail(w, r, "/users/new", err)
		return
	}
	h.flash.Redirect(w, r, "/users", flash.KindSuccess, fmt.Sprintf("User %s created.", u.Email))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	input := user.UpdateInput{
		ID:       id,
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: strings.TrimSpace(r.PostFormValue("password")),
		RoleID:   parseID(r.PostFormValue("role_id")),
		Active:   cast.ToBool(r.PostFormValue("active")),
	}

	if err := h.Users.Update(r.Context(), input); err != nil {
		h.fail(w, r, fmt.Sprintf("/users/%d/edit", id), err)
		return
	}
	h.flash.Redirect(w, r, "/users", flash.KindSuccess, "User updated.")
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.Delete(r.Context(), pathID(r), currentUserID(r)); err != nil {
		h.fail(w, r, "/users", err)
		return
	}
	h.flash.Redirect(w, r, "/users", flash.KindSuccess, "User deleted.")
}
