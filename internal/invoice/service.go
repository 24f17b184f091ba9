package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error

	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	CountInvoices(ctx context.Context, query string) (int, error)
	Summarize(ctx context.Context) (*Summary, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListFilter narrows a listing. Query matches customer name, email,
// and invoice status; Page is 1-based with PerPage rows per page.
type ListFilter struct {
	Query   string
	Page    int
	PerPage int
}

// DefaultPerPage matches the dashboard's listing page size.
const DefaultPerPage = 6

// Create converts the validated amount to cents, stamps today's date
// and inserts a new row. The store assigns the id.
func (s *Service) Create(ctx context.Context, fields CreateFields) (*Invoice, error) {
	inv := &Invoice{
		CustomerID: fields.CustomerID,
		Amount:     toCents(fields.Amount),
		Status:     fields.Status,
		Date:       today(),
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// Update replaces customerId, amount and status on the row named by
// fields.ID. The date column is immutable and left untouched. An id
// that matches no row is not an error; like Delete, the operation is
// idempotent from the caller's perspective.
func (s *Service) Update(ctx context.Context, fields UpdateFields) error {
	inv := &Invoice{
		ID:         fields.ID,
		CustomerID: fields.CustomerID,
		Amount:     toCents(fields.Amount),
		Status:     fields.Status,
	}

	return s.repo.UpdateInvoice(ctx, inv)
}

// Delete removes the row named by id. Deleting an id that does not
// exist succeeds.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteInvoice(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

// TotalPages reports how many listing pages match the query.
func (s *Service) TotalPages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountInvoices(ctx, query)
	if err != nil {
		return 0, err
	}

	return (count + DefaultPerPage - 1) / DefaultPerPage, nil
}

func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	return s.repo.Summarize(ctx)
}

// toCents converts a major-unit amount to an integer count of cents.
// Dollars with more than two decimal places round half away from zero.
func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// today returns the current calendar day with the time stripped.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
