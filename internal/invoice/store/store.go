package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mwaldrip/ledgerboard/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanInvoice reads an invoice row from the scanner.
// Expected column order: id, customer_id, amount, status, date, customer name, email, image_url
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var statusStr string

	var cust invoice.CustomerInfo

	if err := s.Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &statusStr, &inv.Date,
		&cust.Name, &cust.Email, &cust.ImageURL,
	); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(statusStr)
	cust.ID = inv.CustomerID
	inv.Customer = &cust

	return &inv, nil
}

const selectInvoiceColumns = `
	i.id, i.customer_id, i.amount, i.status, i.date,
	c.name, c.email, c.image_url
`

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.CustomerID,
		inv.Amount,
		inv.Status,
		inv.Date,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		WHERE i.id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id`

	var args []any

	argIdx := 1

	if filter.Query != "" {
		query += fmt.Sprintf(` WHERE c.name ILIKE $%d OR c.email ILIKE $%d OR i.status ILIKE $%d`,
			argIdx, argIdx, argIdx)

		args = append(args, "%"+filter.Query+"%")
		argIdx++
	}

	query += " ORDER BY i.date DESC, i.id"

	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = invoice.DefaultPerPage
	}

	if filter.Page > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, perPage, (filter.Page-1)*perPage)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invs []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invs = append(invs, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invs, nil
}

func (s *Store) CountInvoices(ctx context.Context, searchQuery string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
	`

	var args []any

	if searchQuery != "" {
		query += ` WHERE c.name ILIKE $1 OR c.email ILIKE $1 OR i.status ILIKE $1`
		args = append(args, "%"+searchQuery+"%")
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting invoices: %w", err)
	}

	return count, nil
}

// UpdateInvoice replaces customer_id, amount and status on the named
// row. The date column is immutable. The affected-row count is
// deliberately ignored: updating an id that no longer exists succeeds,
// mirroring DeleteInvoice.
func (s *Store) UpdateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`

	_, err := s.db.ExecContext(ctx, query,
		inv.CustomerID,
		inv.Amount,
		inv.Status,
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM invoices WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}

func (s *Store) Summarize(ctx context.Context) (*invoice.Summary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM invoices),
			(SELECT COUNT(*) FROM customers),
			(SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'paid'),
			(SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'pending')
	`

	var sum invoice.Summary

	err := s.db.QueryRowContext(ctx, query).Scan(
		&sum.InvoiceCount,
		&sum.CustomerCount,
		&sum.TotalPaid,
		&sum.TotalPending,
	)
	if err != nil {
		return nil, fmt.Errorf("summarizing invoices: %w", err)
	}

	return &sum, nil
}
