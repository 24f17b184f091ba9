package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mwaldrip/ledgerboard/internal/invoice"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		fields    invoice.CreateFields
		setupMock func(m *invoice.MockRepository)
		wantCents int64
		wantErr   bool
	}

	customerID := uuid.New()

	tests := []testCase{
		{
			name: "ConvertsToCentsAndStampsDate",
			fields: invoice.CreateFields{
				CustomerID: customerID,
				Amount:     decimal.RequireFromString("15.50"),
				Status:     invoice.StatusPending,
			},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						assert.Equal(t, int64(1550), inv.Amount)
						assert.Equal(t, customerID, inv.CustomerID)
						assert.Equal(t, invoice.StatusPending, inv.Status)

						today := time.Now().UTC().Truncate(24 * time.Hour)
						assert.Equal(t, today, inv.Date)

						inv.ID = uuid.New()

						return nil
					})
			},
			wantCents: 1550,
		},
		{
			name: "SubCentAmountRounds",
			fields: invoice.CreateFields{
				CustomerID: customerID,
				Amount:     decimal.RequireFromString("0.005"),
				Status:     invoice.StatusPaid,
			},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						assert.Equal(t, int64(1), inv.Amount)
						inv.ID = uuid.New()
						return nil
					})
			},
			wantCents: 1,
		},
		{
			name: "RepoError",
			fields: invoice.CreateFields{
				CustomerID: customerID,
				Amount:     decimal.RequireFromString("5"),
				Status:     invoice.StatusPaid,
			},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := invoice.NewService(repo)
			got, err := svc.Create(context.Background(), tt.fields)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.wantCents, got.Amount)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	svc := invoice.NewService(repo)

	invoiceID := uuid.New()
	customerID := uuid.New()

	repo.EXPECT().
		UpdateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			assert.Equal(t, invoiceID, inv.ID)
			assert.Equal(t, customerID, inv.CustomerID)
			assert.Equal(t, int64(999), inv.Amount)
			assert.Equal(t, invoice.StatusPaid, inv.Status)
			// The stored date is never part of an update.
			assert.True(t, inv.Date.IsZero())

			return nil
		})

	err := svc.Update(context.Background(), invoice.UpdateFields{
		ID: invoiceID,
		CreateFields: invoice.CreateFields{
			CustomerID: customerID,
			Amount:     decimal.RequireFromString("9.99"),
			Status:     invoice.StatusPaid,
		},
	})
	assert.NoError(t, err)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	svc := invoice.NewService(repo)

	id := uuid.New()

	// Deleting an id that matches no row reports success too; the
	// store swallows the affected-row count.
	repo.EXPECT().DeleteInvoice(gomock.Any(), id).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), id))
}

func TestService_TotalPages(t *testing.T) {
	type testCase struct {
		name      string
		count     int
		wantPages int
	}

	tests := []testCase{
		{name: "Empty", count: 0, wantPages: 0},
		{name: "PartialPage", count: 5, wantPages: 1},
		{name: "ExactPage", count: 6, wantPages: 1},
		{name: "SpillsOver", count: 13, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			repo.EXPECT().CountInvoices(gomock.Any(), "acme").Return(tt.count, nil)

			svc := invoice.NewService(repo)

			pages, err := svc.TotalPages(context.Background(), "acme")
			require.NoError(t, err)
			assert.Equal(t, tt.wantPages, pages)
		})
	}
}
