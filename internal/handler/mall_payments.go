package handler

import (
	"fmt"
	"net/http"

	"backoffice/internal/access"
	"backoffice/internal/flash"
	"backoffice/internal/logger"
	"backoffice/internal/metrics"
	"backoffice/internal/payment"

	"go.uber.org/zap"
)

type paymentsView struct {
	Payments    []payment.Payment
	Status      string
	CanMarkPaid bool
}

// ListPayments handles GET /admin/payments?status=.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	status := payment.Status(r.URL.Query().Get("status"))

	payments, err := h.Payments.ListPayments(r.Context(), status)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.view.HTML(w, r, http.StatusOK, "payments.html", "Payments", paymentsView{
		Payments:    payments,
		Status:      string(status),
		CanMarkPaid: h.Access.HasPermission(r.Context(), currentUserID(r), access.PermPaymentsMarkPaid),
	})
}

// MarkPaymentPaid handles POST /admin/payments.
func (h *Handler) MarkPaymentPaid(w http.ResponseWriter, r *http.Request) {
	const back = "/admin/payments"

	input := payment.MarkPaidInput{
		PaymentID:     parseID(r.PostFormValue("payment_id")),
		TransactionID: r.PostFormValue("transaction_id"),
	}

	if err := h.Payments.MarkPaid(r.Context(), input); err != nil {
		h.fail(w, r, back, err)
		return
	}

	metrics.PaymentsPaid.Inc()
	logger.FromCtx(r.Context()).Info("payment marked as paid", zap.Uint("payment_id", input.PaymentID))
	h.flash.Redirect(w, r, back, flash.KindSuccess, fmt.Sprintf("Payment #%d marked as paid.", input.PaymentID))
}
