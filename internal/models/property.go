package models

import "time"

type Owner struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	MailingAddress string `json:"mailing_address,omitempty"`
}

type OwnerPatch struct {
	Name           *string
	Phone          *string
	Email          *string
	MailingAddress *string
}

func (p OwnerPatch) Apply(o *Owner) {
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.Phone != nil {
		o.Phone = *p.Phone
	}
	if p.Email != nil {
		o.Email = *p.Email
	}
	if p.MailingAddress != nil {
		o.MailingAddress = *p.MailingAddress
	}
}

type Property struct {
	ID              string           `json:"id"`
	ParcelID        string           `json:"parcel_id"`
	Address         string           `json:"address"`
	OccupancyType   string           `json:"occupancy_type"`
	OwnerIDs        []string         `json:"owner_ids"`
	PreIncidentPlan *PreIncidentPlan `json:"pre_incident_plan,omitempty"`
}

// PreIncidentPlan - тактический план объекта (не больше одного на объект)
type PreIncidentPlan struct {
	ID               string    `json:"id"`
	UpdatedAt        time.Time `json:"updated_at"`
	ConstructionType string    `json:"construction_type,omitempty"`
	Hazards          []string  `json:"hazards,omitempty"`
	AccessNotes      string    `json:"access_notes,omitempty"`
	HydrantLocations []string  `json:"hydrant_locations,omitempty"`
	KnoxBox          bool      `json:"knox_box"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
}

func (p PreIncidentPlan) Clone() PreIncidentPlan {
	out := p
	out.Hazards = cloneStrings(p.Hazards)
	out.HydrantLocations = cloneStrings(p.HydrantLocations)
	return out
}

func (p Property) Clone() Property {
	out := p
	out.OwnerIDs = cloneStrings(p.OwnerIDs)
	if p.PreIncidentPlan != nil {
		plan := p.PreIncidentPlan.Clone()
		out.PreIncidentPlan = &plan
	}
	return out
}

type PropertyPatch struct {
	ParcelID      *string
	Address       *string
	OccupancyType *string
	OwnerIDs      *[]string
}

func (p PropertyPatch) Apply(prop *Property) {
	if p.ParcelID != nil {
		prop.ParcelID = *p.ParcelID
	}
	if p.Address != nil {
		prop.Address = *p.Address
	}
	if p.OccupancyType != nil {
		prop.OccupancyType = *p.OccupancyType
	}
	if p.OwnerIDs != nil {
		prop.OwnerIDs = cloneStrings(*p.OwnerIDs)
	}
}

// PropertyWithOwners - объект вместе с именами владельцев
type PropertyWithOwners struct {
	Property
	OwnerNames string `json:"owner_names"`
}

type PropertyFilter struct {
	OccupancyType string
	HasPIP        *bool
	Search        string
}
