package invoice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	invoiceHandler "github.com/mwaldrip/ledgerboard/internal/http/invoice"
	"github.com/mwaldrip/ledgerboard/internal/invoice"
	"github.com/mwaldrip/ledgerboard/internal/viewcache"
)

func setup(t *testing.T) (*invoice.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := invoice.NewMockRepository(ctrl)
	svc := invoice.NewService(repo)
	cache := viewcache.New()
	h := invoiceHandler.NewHandler(svc, invoice.NewActions(svc, cache), cache)

	router := chi.NewRouter()
	router.Route("/dashboard/invoices", h.Routes)

	return repo, router
}

func postForm(t *testing.T, router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	return w
}

func TestHandler_CreateRedirectsOnSuccess(t *testing.T) {
	repo, router := setup(t)

	repo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			assert.Equal(t, int64(1550), inv.Amount)
			assert.Equal(t, invoice.StatusPending, inv.Status)
			inv.ID = uuid.New()
			return nil
		})

	w := postForm(t, router, "/dashboard/invoices", url.Values{
		"customerId": {uuid.NewString()},
		"amount":     {"15.50"},
		"status":     {"pending"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/invoices", w.Header().Get("Location"))
}

func TestHandler_CreateReturnsFieldErrors(t *testing.T) {
	// No repository expectations: an invalid form never reaches the
	// store.
	_, router := setup(t)

	w := postForm(t, router, "/dashboard/invoices", url.Values{
		"customerId": {"c1"},
		"amount":     {"0"},
		"status":     {"paid"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Errors  map[string][]string `json:"errors"`
		Message string              `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "Missing fields. Failed to Create Invoice.", body.Message)
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, body.Errors["amount"])
	assert.Equal(t, []string{"Please select a customer."}, body.Errors["customerId"])
}

func TestHandler_DeleteAnswers204(t *testing.T) {
	repo, router := setup(t)

	id := uuid.New()
	repo.EXPECT().DeleteInvoice(gomock.Any(), id).Return(nil)

	w := postForm(t, router, "/dashboard/invoices/"+id.String()+"/delete", url.Values{})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteRejectsBadID(t *testing.T) {
	_, router := setup(t)

	w := postForm(t, router, "/dashboard/invoices/not-a-uuid/delete", url.Values{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListCachesUntilMutation(t *testing.T) {
	repo, router := setup(t)

	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	stored := []*invoice.Invoice{
		{
			ID:         uuid.New(),
			CustomerID: uuid.New(),
			Amount:     1550,
			Status:     invoice.StatusPending,
			Date:       date,
			Customer:   &invoice.CustomerInfo{Name: "Acme", Email: "billing@acme.test"},
		},
	}

	// The store is consulted once; the second read is served from the
	// cached payload.
	repo.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).Return(stored, nil).Times(1)
	repo.EXPECT().CountInvoices(gomock.Any(), "").Return(1, nil).Times(1)

	for i := 0; i < 2; i++ {
		r := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Invoices []struct {
				Amount int64  `json:"amount"`
				Status string `json:"status"`
				Date   string `json:"date"`
			} `json:"invoices"`
			TotalPages int `json:"total_pages"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Invoices, 1)
		assert.Equal(t, int64(1550), body.Invoices[0].Amount)
		assert.Equal(t, "pending", body.Invoices[0].Status)
		assert.Equal(t, "2024-05-02", body.Invoices[0].Date)
		assert.Equal(t, 1, body.TotalPages)
	}

	// A successful delete marks the listing stale; the next read hits
	// the store again.
	id := uuid.New()
	repo.EXPECT().DeleteInvoice(gomock.Any(), id).Return(nil)
	repo.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	repo.EXPECT().CountInvoices(gomock.Any(), "").Return(0, nil).Times(1)

	w := postForm(t, router, "/dashboard/invoices/"+id.String()+"/delete", url.Values{})
	require.Equal(t, http.StatusNoContent, w.Code)

	r := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusOK, rec.Code)
}
