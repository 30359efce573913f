package handler

import (
	"net/http"
	"strings"

	"backoffice/internal/order"

	"github.com/spf13/cast"
)

type ordersView struct {
	Page   *order.Page
	Query  string
	Status string
}

// ListOrders handles GET /admin/orders?q=&status=&page=.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := order.Filter{
		Query:         strings.TrimSpace(q.Get("q")),
		PaymentStatus: q.Get("status"),
		Page:          cast.ToInt(q.Get("page")),
	}

	page, err := h.Orders.ListOrders(r.Context(), f)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.view.HTML(w, r, http.StatusOK, "orders.html", "Orders", ordersView{
		Page:   page,
		Query:  f.Query,
		Status: f.PaymentStatus,
	})
}

// ShowOrder handles GET /admin/order?id=.
func (h *Handler) ShowOrder(w http.ResponseWriter, r *http.Request) {
	id := parseID(r.URL.Query().Get("id"))

	detail, err := h.Orders.GetOrderDetail(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.view.HTML(w, r, http.StatusOK, "order.html", "Order", detail)
}
