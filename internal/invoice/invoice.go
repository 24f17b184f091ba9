package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents the payment state of an invoice.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// ErrNotFound is returned when an invoice id does not resolve to a row.
var ErrNotFound = errors.New("invoice not found")

// Invoice represents a billed amount owed by a customer.
type Invoice struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int64 // Amount in cents
	Status     Status
	Date       time.Time     // Calendar day, assigned at creation, immutable
	Customer   *CustomerInfo // Loaded via JOIN
}

// CustomerInfo is the read-only slice of the customer record the
// listing views need alongside each invoice.
type CustomerInfo struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
}

// Summary aggregates the numbers shown on the dashboard overview cards.
type Summary struct {
	InvoiceCount  int
	CustomerCount int
	TotalPaid     int64 // cents
	TotalPending  int64 // cents
}
