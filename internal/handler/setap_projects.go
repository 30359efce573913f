package handler

import (
	"fmt"
	"net/http"

	"backoffice/internal/access"
	"backoffice/internal/apperr"
	"backoffice/internal/flash"
	"backoffice/internal/project"
)

type projectsView struct {
	Projects []project.Project
	Can      Can
}

type projectForm struct {
	Project  *project.Project
	Statuses []project.Status
	Action   string
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Projects.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.view.HTML(w, r, http.StatusOK, "projects.html", "Projects", projectsView{Projects: projects, Can: h.can(r, access.MenuProjects)})
}

func (h *Handler) NewProject(w http.ResponseWriter, r *http.Request) {
	h.view.HTML(w, r, http.StatusOK, "project_form.html", "New project", projectForm{Statuses: project.Statuses, Action: "/projects"})
}

func (h *Handler) EditProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.Projects.Get(r.Context(), pathID(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.view.HTML(w, r, http.StatusOK, "project_form.html", "Edit project", projectForm{
		Project:  p,
		Statuses: project.Statuses,
		Action:   fmt.Sprintf("/projects/%d", p.ID),
	})
}

func projectInput(r *http.Request, id uint) (project.Input, error) {
	in := project.Input{
		ID:          id,
		Code:        r.PostFormValue("code"),
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Status:      project.Status(r.PostFormValue("status")),
	}

	start, err := formDate(r, "start_date")
	if err != nil {
		return in, err
	}
	if start == nil {
		return in, apperr.InvalidErr("start_date is required.")
	}
	in.StartDate = *start

	in.EndDate, err = formDate(r, "end_date")
	return in, err
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	in, err := projectInput(r, 0)
	if err == nil {
		_, err = h.Projects.Create(r.Context(), in)
	}
	if err != nil {
		h.fail(w, r, "/projects/new", err)
		return
	}
	h.flash.Redirect(w, r, "/projects", flash.KindSuccess, "Project created.")
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	in, err := projectInput(r, id)
	if err == nil {
		err = h.Projects.Update(r.Context(), in)
	}
	if err != nil {
		h.fail(w, r, fmt.Sprintf("/projects/%d/edit", id), err)
		return
	}
	h.flash.Redirect(w, r, "/projects", flash.KindSuccess, "Project updated.")
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.Projects.Delete(r.Context(), pathID(r)); err != nil {
		h.fail(w, r, "/projects", err)
		return
	}
	h.flash.Redirect(w, r, "/projects", flash.KindSuccess, "Project deleted.")
}
