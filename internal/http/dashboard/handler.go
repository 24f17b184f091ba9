package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mwaldrip/ledgerboard/internal/invoice"
)

type Handler struct {
	invoices *invoice.Service
}

func NewHandler(invoices *invoice.Service) *Handler {
	return &Handler{invoices: invoices}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.overview)
}

type overviewResponse struct {
	InvoiceCount  int   `json:"invoice_count"`
	CustomerCount int   `json:"customer_count"`
	TotalPaid     int64 `json:"total_paid"`
	TotalPending  int64 `json:"total_pending"`
}

// overview serves the numbers behind the dashboard cards.
func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	sum, err := h.invoices.Summarize(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := overviewResponse{
		InvoiceCount:  sum.InvoiceCount,
		CustomerCount: sum.CustomerCount,
		TotalPaid:     sum.TotalPaid,
		TotalPending:  sum.TotalPending,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
