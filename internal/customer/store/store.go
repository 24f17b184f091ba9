package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwaldrip/ledgerboard/internal/customer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListCustomers(ctx context.Context, searchQuery string) ([]*customer.Customer, error) {
	query := `
		SELECT id, name, email, image_url
		FROM customers
	`

	var args []any

	if searchQuery != "" {
		query += ` WHERE name ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+searchQuery+"%")
	}

	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer

	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer rows: %w", err)
	}

	return customers, nil
}

func (s *Store) GetCustomerByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	query := `
		SELECT id, name, email, image_url
		FROM customers
		WHERE email = $1
	`

	var c customer.Customer

	err := s.db.QueryRowContext(ctx, query, email).Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (name, email, image_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, c.Name, c.Email, c.ImageURL).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("creating customer: %w", err)
	}

	return nil
}
