package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"backoffice/internal/access"
	"backoffice/internal/flash"
	"backoffice/internal/logger"
	"backoffice/internal/metrics"
	"backoffice/internal/payout"

	"go.uber.org/zap"
)

type payoutsView struct {
	Payouts     []payout.Payout
	Totals      payout.Totals
	Status      string
	Methods     []string
	CanMarkPaid bool
}

// ListPayouts handles GET /admin/payouts?status=.
func (h *Handler) ListPayouts(w http.ResponseWriter, r *http.Request) {
	status := payout.Status(r.URL.Query().Get("status"))

	payouts, err := h.Payouts.ListPayouts(r.Context(), status)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.view.HTML(w, r, http.StatusOK, "payouts.html", "Payouts", payoutsView{
		Payouts:     payouts,
		Totals:      payout.Sum(payouts),
		Status:      string(status),
		Methods:     payout.Methods,
		CanMarkPaid: h.Access.HasPermission(r.Context(), currentUserID(r), access.PermPayoutsMarkPaid),
	})
}

// MarkPayoutPaid handles POST /admin/payouts.
func (h *Handler) MarkPayoutPaid(w http.ResponseWriter, r *http.Request) {
	const back = "/admin/payouts"

	input := payout.MarkPaidInput{
		PayoutID:  parseID(r.PostFormValue("payout_id")),
		Method:    r.PostFormValue("method"),
		Reference: r.PostFormValue("reference"),
	}

	if err := h.Payouts.MarkPaid(r.Context(), input); err != nil {
		h.fail(w, r, back, err)
		return
	}

	metrics.PayoutsPaid.Inc()
	logger.FromCtx(r.Context()).Info("payout marked as paid",
		zap.Uint("payout_id", input.PayoutID),
		zap.String("method", input.Method),
	)
	h.flash.Redirect(w, r, back, flash.KindSuccess, fmt.Sprintf("Payout #%d marked as paid.", input.PayoutID))
}

// ExportPayouts handles GET /admin/payouts/export?status= with an XLSX report.
func (h *Handler) ExportPayouts(w http.ResponseWriter, r *http.Request) {
	status := payout.Status(r.URL.Query().Get("status"))

	payouts, err := h.Payouts.ListPayouts(r.Context(), status)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := payout.WriteXLSX(&buf, payouts); err != nil {
		h.renderError(w, r, err)
		return
	}

	name := fmt.Sprintf("payouts-%s.xlsx", h.now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
