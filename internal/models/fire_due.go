package models

import "time"

const (
	FireDueStatusUnpaid  = "Unpaid"
	FireDueStatusOverdue = "Overdue"
	FireDueStatusPaid    = "Paid"
)

// FireDue - ежегодный пожарный сбор с объекта
type FireDue struct {
	ID          string     `json:"id"`
	PropertyID  string     `json:"property_id"`
	Year        int        `json:"year"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

func (d FireDue) Clone() FireDue {
	out := d
	out.PaymentDate = cloneTime(d.PaymentDate)
	return out
}

type FireDuePatch struct {
	Amount      *float64
	Status      *string
	PaymentDate *time.Time
}

// FireDueWithDetails - сбор с адресом, участком и владельцами
type FireDueWithDetails struct {
	FireDue
	Address   string `json:"address"`
	ParcelID  string `json:"parcel_id"`
	OwnerName string `json:"owner_name"`
}

type FireDueFilter struct {
	Year       int
	Status     string
	PropertyID string
}

// BulkPaymentResult - итог массовой отметки об оплате
type BulkPaymentResult struct {
	Updated []FireDue `json:"updated"`
	Missing []string  `json:"missing,omitempty"`
}
