package invoice

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mwaldrip/ledgerboard/internal/invoice"
	"github.com/mwaldrip/ledgerboard/internal/viewcache"
)

type Handler struct {
	svc     *invoice.Service
	actions *invoice.Actions
	cache   *viewcache.Cache
}

func NewHandler(svc *invoice.Service, actions *invoice.Actions, cache *viewcache.Cache) *Handler {
	return &Handler{svc: svc, actions: actions, cache: cache}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Post("/{id}", h.update)
	r.Post("/{id}/delete", h.delete)
}

// formValues flattens the submitted form into the field mapping the
// validator accepts. Only the first value of a repeated field counts.
func formValues(r *http.Request) invoice.FormValues {
	if err := r.ParseForm(); err != nil {
		return invoice.FormValues{}
	}

	form := make(invoice.FormValues, len(r.PostForm))
	for name := range r.PostForm {
		form[name] = r.PostForm.Get(name)
	}

	return form
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	h.writeResult(w, r, h.actions.Create(r.Context(), formValues(r)))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	h.writeResult(w, r, h.actions.Update(r.Context(), chi.URLParam(r, "id"), formValues(r)))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	h.writeResult(w, r, h.actions.Delete(r.Context(), id))
}

// writeResult interprets the pipeline's outcome: navigate on success,
// surface the structured error state otherwise. Delete's silent
// success carries no redirect and answers 204.
func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, res invoice.Result) {
	if res.RedirectTo != "" {
		http.Redirect(w, r, res.RedirectTo, http.StatusSeeOther)
		return
	}

	if !res.Failed() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	status := http.StatusInternalServerError
	if len(res.Errors) > 0 {
		status = http.StatusUnprocessableEntity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(toErrorResponse(res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// list serves the invoice listing view's data. Payloads are cached per
// query-string variant until a mutation marks the listing stale.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	variant := r.URL.RawQuery

	if payload, ok := h.cache.Get(invoice.ListingPath, variant); ok {
		w.Header().Set("Content-Type", "application/json")

		if _, err := w.Write(payload); err != nil {
			slog.Error("failed to write cached response", "error", err)
		}

		return
	}

	filter := invoice.ListFilter{
		Query: r.URL.Query().Get("query"),
		Page:  1,
	}

	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		filter.Page = p
	}

	invs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	totalPages, err := h.svc.TotalPages(r.Context(), filter.Query)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(toListResponse(invs, filter.Page, totalPages))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.cache.Put(invoice.ListingPath, variant, payload)

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(payload); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
