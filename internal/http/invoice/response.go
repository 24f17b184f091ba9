package invoice

import (
	"github.com/google/uuid"

	"github.com/mwaldrip/ledgerboard/internal/invoice"
)

type invoiceResponse struct {
	ID         uuid.UUID         `json:"id"`
	CustomerID uuid.UUID         `json:"customer_id"`
	Amount     int64             `json:"amount"`
	Status     invoice.Status    `json:"status"`
	Date       string            `json:"date"`
	Customer   *customerResponse `json:"customer,omitempty"`
}

type customerResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

type listResponse struct {
	Invoices   []invoiceResponse `json:"invoices"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

type errorResponse struct {
	Errors  invoice.FieldErrors `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	resp := invoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		Status:     inv.Status,
		Date:       inv.Date.Format("2006-01-02"),
	}

	if inv.Customer != nil {
		resp.Customer = &customerResponse{
			Name:     inv.Customer.Name,
			Email:    inv.Customer.Email,
			ImageURL: inv.Customer.ImageURL,
		}
	}

	return resp
}

func toListResponse(invs []*invoice.Invoice, page, totalPages int) listResponse {
	resp := listResponse{
		Invoices:   make([]invoiceResponse, len(invs)),
		Page:       page,
		TotalPages: totalPages,
	}
	for i, inv := range invs {
		resp.Invoices[i] = toResponse(inv)
	}

	return resp
}

func toErrorResponse(res invoice.Result) errorResponse {
	return errorResponse{Errors: res.Errors, Message: res.Message}
}
