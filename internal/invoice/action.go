package invoice

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ListingPath is the view whose cached data every successful mutation
// must mark stale, and the destination of post-mutation navigation.
const ListingPath = "/dashboard/invoices"

// Invalidator marks a view path's previously fetched data as stale so
// the next read bypasses any cached copy.
type Invalidator interface {
	Invalidate(path string)
}

// Result is the outcome of one mutation request. Exactly one of the
// two shapes is populated: RedirectTo on success, or Errors/Message on
// failure. A zero Result is a silent success (delete).
type Result struct {
	RedirectTo string
	Errors     FieldErrors
	Message    string
}

// Failed reports whether the mutation was aborted.
func (r Result) Failed() bool {
	return r.Message != "" || len(r.Errors) > 0
}

// Actions runs the form mutation pipeline: validate, persist,
// invalidate the listing view, and decide navigation. Validation and
// persistence failures are converted into a structured Result; they
// never reach the caller as errors.
type Actions struct {
	svc   *Service
	cache Invalidator
}

func NewActions(svc *Service, cache Invalidator) *Actions {
	return &Actions{svc: svc, cache: cache}
}

func (a *Actions) Create(ctx context.Context, form FormValues) Result {
	fields, errs := ParseCreateForm(form)
	if len(errs) > 0 {
		return Result{
			Errors:  errs,
			Message: "Missing fields. Failed to Create Invoice.",
		}
	}

	if _, err := a.svc.Create(ctx, fields); err != nil {
		slog.Error("create invoice failed", "error", err)
		return Result{Message: "Database Error: Failed to Create Invoice."}
	}

	a.cache.Invalidate(ListingPath)

	return Result{RedirectTo: ListingPath}
}

func (a *Actions) Update(ctx context.Context, id string, form FormValues) Result {
	fields, errs := ParseUpdateForm(id, form)
	if len(errs) > 0 {
		return Result{
			Errors:  errs,
			Message: "Missing fields. Failed to Update Invoice.",
		}
	}

	if err := a.svc.Update(ctx, fields); err != nil {
		slog.Error("update invoice failed", "invoice_id", id, "error", err)
		return Result{Message: "Database Error: Failed to Update Invoice."}
	}

	a.cache.Invalidate(ListingPath)

	return Result{RedirectTo: ListingPath}
}

// Delete stays on the current view after a successful removal;
// invalidation alone is enough for the listing to refresh.
func (a *Actions) Delete(ctx context.Context, id uuid.UUID) Result {
	if err := a.svc.Delete(ctx, id); err != nil {
		slog.Error("delete invoice failed", "invoice_id", id, "error", err)
		return Result{Message: "Database Error: Failed to Delete Invoice."}
	}

	a.cache.Invalidate(ListingPath)

	return Result{}
}
