package handler

import (
	"fmt"
	"net/http"
	"time"

	"backoffice/internal/access"
	"backoffice/internal/flash"
	"backoffice/internal/persona"
	"backoffice/internal/project"
	"backoffice/internal/task"

)

type tasksView struct {
	Tasks     []task.Task
	Projects  []project.Project
	ProjectID uint
	Now       time.Time
	Can       Can
}

type taskForm struct {
	Task      *task.Task
	ProjectID uint
	Projects  []project.Project
	Personas  []persona.Persona
	Statuses  []task.Status
	Action    string
}

// ListTasks handles GET /tasks?project_id=.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	projectID := parseID(r.URL.Query().Get("project_id"))

	tasks, err := h.Tasks.List(r.Context(), projectID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	projects, err := h.Projects.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.view.HTML(w, r, http.StatusOK, "tasks.html", "Tasks", tasksView{
		Tasks:     tasks,
		Projects:  projects,
		ProjectID: projectID,
		Now:       h.now(),
		Can:       h.can(r, access.MenuTasks),
	})
}

func (h *Handler) NewTask(w http.ResponseWriter, r *http.Request) {
	h.renderTaskForm(w, r, nil, parseID(r.URL.Query().Get("project_id")), "/tasks")
}

func (h *Handler) EditTask(w http.ResponseWriter, r *http.Request) {
	t, err := h.Tasks.Get(r.Context(), pathID(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderTaskForm(w, r, t, t.ProjectID, fmt.Sprintf("/tasks/%d", t.ID))
}

func (h *Handler) renderTaskForm(w http.ResponseWriter, r *http.Request, t *task.Task, projectID uint, action string) {
	projects, err := h.Projects.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	personas, err := h.Personas.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	title := "New task"
	if t != nil {
		title = "Edit task"
	}
	h.view.HTML(w, r, http.StatusOK, "task_form.html", title, taskForm{
		Task:      t,
		ProjectID: projectID,
		Projects:  projects,
		Personas:  personas,
		Statuses:  task.Statuses,
		Action:    action,
	})
}

func taskInput(r *http.Request, id uint) (task.Input, error) {
	in := task.Input{
		ID:          id,
		ProjectID:   parseID(r.PostFormValue("project_id")),
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Status:      task.Status(r.PostFormValue("status")),
		AssigneeID:  formUintPtr(r, "assignee_id"),
	}
	var err error
	in.DueDate, err = formDate(r, "due_date")
	return in, err
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	in, err := taskInput(r, 0)
	if err == nil {
		_, err = h.Tasks.Create(r.Context(), in)
	}
	if err != nil {
		h.fail(w, r, "/tasks/new", err)
		return
	}
	h.flash.Redirect(w, r, fmt.Sprintf("/tasks?project_id=%d", in.ProjectID), flash.KindSuccess, "Task created.")
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	in, err := taskInput(r, id)
	if err == nil {
		err = h.Tasks.Update(r.Context(), in)
	}
	if err != nil {
		h.fail(w, r, fmt.Sprintf("/tasks/%d/edit", id), err)
		return
	}
	h.flash.Redirect(w, r, fmt.Sprintf("/tasks?project_id=%d", in.ProjectID), flash.KindSuccess, "Task updated.")
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.Tasks.Delete(r.Context(), pathID(r)); err != nil {
		h.fail(w, r, "/tasks", err)
		return
	}
	h.flash.Redirect(w, r, "/tasks", flash.KindSuccess, "Task deleted.")
}
