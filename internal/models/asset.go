package models

import "time"

const (
	AssetStatusInService    = "In Service"
	AssetStatusOutOfService = "Out of Service"
	AssetStatusRetired      = "Retired"

	AssignedToApparatus = "Apparatus"
	AssignedToPersonnel = "Personnel"
)

// Asset - единица оборудования; компоненты комплекта ссылаются на родителя через ParentID
type Asset struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	SerialNumber   string     `json:"serial_number"`
	Category       string     `json:"category"`
	Status         string     `json:"status"`
	AssignedToID   string     `json:"assigned_to_id,omitempty"`
	AssignedToType string     `json:"assigned_to_type,omitempty"`
	ParentID       string     `json:"parent_id,omitempty"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	Cost           float64    `json:"cost"`
}

func (a Asset) Clone() Asset {
	out := a
	out.PurchaseDate = cloneTime(a.PurchaseDate)
	return out
}

type AssetPatch struct {
	Name         *string
	SerialNumber *string
	Category     *string
	Status       *string
	ParentID     *string
	PurchaseDate *time.Time
	Cost         *float64
}

func (p AssetPatch) Apply(a *Asset) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.SerialNumber != nil {
		a.SerialNumber = *p.SerialNumber
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.ParentID != nil {
		a.ParentID = *p.ParentID
	}
	if p.PurchaseDate != nil {
		a.PurchaseDate = cloneTime(p.PurchaseDate)
	}
	if p.Cost != nil {
		a.Cost = *p.Cost
	}
}

type AssetFilter struct {
	Status       string
	Category     string
	AssignedToID string
	ParentID     string
	Search       string
}
