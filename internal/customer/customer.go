package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Customer is read-only from the invoice pipeline's perspective. Rows
// are created only by the seeder.
type Customer struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
}

var ErrNotFound = errors.New("customer not found")

type Repository interface {
	ListCustomers(ctx context.Context, query string) ([]*Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	CreateCustomer(ctx context.Context, c *Customer) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns customers matching the search query by name or email,
// or all customers when the query is empty.
func (s *Service) List(ctx context.Context, query string) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx, query)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*Customer, error) {
	return s.repo.GetCustomerByEmail(ctx, email)
}

func (s *Service) Create(ctx context.Context, c *Customer) error {
	return s.repo.CreateCustomer(ctx, c)
}
