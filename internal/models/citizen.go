package models

import "time"

type Citizen struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	PropertyIDs []string `json:"property_ids"`
}

func (c Citizen) Clone() Citizen {
	out := c
	out.PropertyIDs = cloneStrings(c.PropertyIDs)
	return out
}

const (
	ForgivenessPending  = "Pending"
	ForgivenessApproved = "Approved"
	ForgivenessDenied   = "Denied"
)

// BillForgivenessRequest - заявка жителя на списание пожарного сбора
type BillForgivenessRequest struct {
	ID          string     `json:"id"`
	CitizenID   string     `json:"citizen_id"`
	FireDueID   string     `json:"fire_due_id"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

func (r BillForgivenessRequest) Clone() BillForgivenessRequest {
	out := r
	out.ResolvedAt = cloneTime(r.ResolvedAt)
	return out
}

type ForgivenessRequestWithDetails struct {
	BillForgivenessRequest
	CitizenName string `json:"citizen_name"`
	BillLabel   string `json:"bill_label"`
}
