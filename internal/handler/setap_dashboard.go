package handler

import (
	"net/http"

	"backoffice/internal/access"
	"backoffice/internal/task"
)

type statusCount struct {
	Status task.Status
	Count  int
}

type dashboardView struct {
	Tasks []statusCount
}

// Dashboard handles GET /. The menu list comes from the layout; the task
// summary is shown only to roles that can open tasks.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var data dashboardView

	if h.Access.HasMenuAccess(r.Context(), currentUserID(r), access.MenuTasks) {
		counts, err := h.Tasks.Summary(r.Context())
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		for _, s := range task.Statuses {
			data.Tasks = append(data.Tasks, statusCount{Status: s, Count: counts[s]})
		}
	}

	h.view.HTML(w, r, http.StatusOK, "dashboard.html", "Dashboard", data)
}
