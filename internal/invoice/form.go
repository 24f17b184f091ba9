package invoice

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FormValues is the flat field-name to raw-string mapping a submitted
// form arrives as. No nesting, no repeated fields.
type FormValues map[string]string

// FieldErrors maps a field name to the ordered list of validation
// messages attached to it.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

const (
	msgSelectCustomer = "Please select a customer."
	msgAmountTooLow   = "Please enter an amount greater than $0."
	msgSelectStatus   = "Please select an invoice status."
)

// CreateFields is a validated create submission. Amount is still in
// major units; conversion to cents happens in the service.
type CreateFields struct {
	CustomerID uuid.UUID
	Amount     decimal.Decimal
	Status     Status
}

// UpdateFields is a validated update submission. ID names the row to
// replace; the stored date is never touched.
type UpdateFields struct {
	ID uuid.UUID
	CreateFields
}

// ParseCreateForm validates a create submission. It accepts only
// customerId, amount and status; id and date are server-assigned.
// It is pure: no I/O, deterministic, and it accumulates one error per
// failed field rather than stopping at the first.
func ParseCreateForm(form FormValues) (CreateFields, FieldErrors) {
	errs := FieldErrors{}
	fields := CreateFields{}

	customerID, err := uuid.Parse(form["customerId"])
	if err != nil {
		errs.add("customerId", msgSelectCustomer)
	} else {
		fields.CustomerID = customerID
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(form["amount"]))
	if err != nil || !amount.IsPositive() {
		errs.add("amount", msgAmountTooLow)
	} else {
		fields.Amount = amount
	}

	switch status := Status(form["status"]); status {
	case StatusPending, StatusPaid:
		fields.Status = status
	default:
		errs.add("status", msgSelectStatus)
	}

	if len(errs) > 0 {
		return CreateFields{}, errs
	}

	return fields, nil
}

// ParseUpdateForm validates an update submission: the same field set as
// create, plus the id of the target row.
func ParseUpdateForm(id string, form FormValues) (UpdateFields, FieldErrors) {
	fields, errs := ParseCreateForm(form)

	invoiceID, err := uuid.Parse(id)
	if err != nil {
		if errs == nil {
			errs = FieldErrors{}
		}

		errs.add("id", "Invalid invoice id.")
	}

	if len(errs) > 0 {
		return UpdateFields{}, errs
	}

	return UpdateFields{ID: invoiceID, CreateFields: fields}, nil
}
