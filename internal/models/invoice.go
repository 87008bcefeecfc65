package models

import "time"

const (
	InvoiceStatusDraft   = "Draft"
	InvoiceStatusSent    = "Sent"
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusOverdue = "Overdue"
	InvoiceStatusVoid    = "Void"
)

type Invoice struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoice_number"`
	IncidentID    string            `json:"incident_id"`
	PropertyID    string            `json:"property_id,omitempty"`
	IssuedDate    time.Time         `json:"issued_date"`
	DueDate       time.Time         `json:"due_date"`
	PaidDate      *time.Time        `json:"paid_date,omitempty"`
	LineItems     []InvoiceLineItem `json:"line_items"`
	TotalAmount   float64           `json:"total_amount"`
	Status        string            `json:"status"`
}

type InvoiceLineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Total       float64 `json:"total"`
}

func (i Invoice) Clone() Invoice {
	out := i
	out.PaidDate = cloneTime(i.PaidDate)
	if i.LineItems != nil {
		out.LineItems = append([]InvoiceLineItem(nil), i.LineItems...)
	}
	return out
}

type InvoiceFilter struct {
	Status     string
	IncidentID string
	PropertyID string
}

// BillingRate - тариф на выезд для тарифицируемых типов инцидентов
type BillingRate struct {
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
}
