package handler

import (
	"fmt"
	"net/http"

	"backoffice/internal/access"
	"backoffice/internal/flash"
	"backoffice/internal/persona"
)

type personasView struct {
	Personas []persona.Persona
	Can      Can
}

type personaForm struct {
	Persona *persona.Persona
	Action  string
}

func (h *Handler) ListPersonas(w http.ResponseWriter, r *http.Request) {
	personas, err := h.Personas.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.view.HTML(w, r, http.StatusOK, "personas.html", "Personas", personasView{Personas: personas, Can: h.can(r, access.MenuPersonas)})
}

func (h *Handler) NewPersona(w http.ResponseWriter, r *http.Request) {
	h.view.HTML(w, r, http.StatusOK, "persona_form.html", "New persona", personaForm{Action: "/personas"})
}

func (h *Handler) EditPersona(w http.ResponseWriter, r *http.Request) {
	p, err := h.Personas.Get(r.Context(), pathID(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.view.HTML(w, r, http.StatusOK, "persona_form.html", "Edit persona", personaForm{Persona: p, Action: fmt.Sprintf("/personas/%d", p.ID)})
}

func personaInput(r *http.Request, id uint) persona.Input {
	return persona.Input{
		ID:       id,
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Phone:    r.PostFormValue("phone"),
		Position: r.PostFormValue("position"),
	}
}

func (h *Handler) CreatePersona(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Personas.Create(r.Context(), personaInput(r, 0)); err != nil {
		h.fail(w, r, "/personas/new", err)
		return
	}
	h.flash.Redirect(w, r, "/personas", flash.KindSuccess, "Persona created.")
}

func (h *Handler) UpdatePersona(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if err := h.Personas.Update(r.Context(), personaInput(r, id)); err != nil {
		h.fail(w, r, fmt.Sprintf("/personas/%d/edit", id), err)
		return
	}
	h.flash.Redirect(w, r, "/personas", flash.KindSuccess, "Persona updated.")
}

func (h *Handler) DeletePersona(w http.ResponseWriter, r *http.Request) {
	if err := h.Personas.Delete(r.Context(), pathID(r)); err != nil {
		h.fail(w, r, "/personas", err)
		return
	}
	h.flash.Redirect(w, r, "/personas", flash.KindSuccess, "Persona deleted.")
}
